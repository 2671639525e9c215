/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package model defines the core contracts that all dxmime domain model
// types MUST implement to ensure consistency, type safety, and proper
// behavior across the entire system.
//
// Every domain type representing a protocol entity (such as MediaType,
// Type, Tree, Suffix, ParameterName) SHOULD implement the Model interface
// or its constituent parts (Validatable, Serializable, Loggable,
// Identifiable, ZeroCheckable). These interfaces establish a common
// contract for validation, serialization, logging, and identity that
// enables generic operations and guarantees safety at compile time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid states cannot be constructed or persisted.
// Serialization provides round-trip guarantees for configuration files and
// API payloads. Loggable protects sensitive data from accidental exposure
// in logs. Identifiable enables reflection and structured logging.
// ZeroCheckable supports optional field detection.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. Most model types are designed as
// immutable value types, making them naturally safe for concurrent read
// access. Callers MUST synchronize any concurrent writes to mutable
// instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON,
// ToYAML, Clone, and Equal. These helpers rely on the Model contract and
// will fail at compile time if applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxmime domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and unsafe
// (full) string representations; Identifiable supplies a canonical type
// name; and ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are generally treated as immutable value types. Methods
// defined on Model SHOULD NOT mutate the receiver unless explicitly
// documented. Concurrent reads are safe; concurrent writes require external
// synchronization.
//
// Example implementation:
//
//	type Charset string
//
//	func (c Charset) Validate() error {
//	    if c == "" {
//	        return errors.New("charset required")
//	    }
//	    return nil
//	}
//
//	func (c Charset) TypeName() string { return "Charset" }
//	func (c Charset) IsZero() bool { return c == "" }
//	func (c Charset) Redacted() string { return string(c) }
//	func (c Charset) String() string { return string(c) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Charset)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for use in business logic, persistence, or transmission.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency, recursively validate any nested objects by calling their
// Validate methods, and return nil if and only if the instance is fully
// valid. When validation fails, the returned error MUST describe what is
// invalid in a way that helps callers diagnose and fix the problem. Generic
// messages such as "validation failed" are discouraged; prefer specific
// messages like "length required to be [1..127] characters".
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects such as logging or emitting
// metrics, and MUST NOT depend on external mutable state.
//
// Callers SHOULD invoke Validate at critical boundaries: immediately after
// unmarshaling external data, after constructing instances from user input,
// before persisting to storage, and at any API boundary where data crosses
// trust or ownership boundaries.
//
// If Validate is called on a zero-value instance, it SHOULD typically
// return an error unless the zero value represents a valid state. In this
// module Tree and Suffix are the documented exceptions: their zero values
// denote the standards tree and the absent suffix respectively, both valid.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads
	// but not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML formats. All model types MUST support
// both formats to enable configuration files (typically YAML), API request
// and response bodies (typically JSON), logging and debugging output, and
// persistence to storage systems.
//
// Implementations MUST call Validate before marshaling to ensure that only
// valid instances are serialized. If the instance fails validation, the
// marshal method MUST return the validation error rather than serializing
// the invalid state. Similarly, implementations MUST validate after
// unmarshaling, routing raw strings through the corresponding parse factory
// so that external case variants normalize on the way in. If the
// deserialized instance is invalid, the unmarshal method MUST return an
// error and callers MUST NOT use the receiver.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML. Fields marked "omitempty" MAY be
// omitted when they hold zero values, but deserializing such data MUST
// reconstruct a semantically equivalent instance.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and require exclusive access.
//
// Aggregate implementations SHOULD use the "type alias" pattern to avoid
// infinite recursion: define a local alias of the model type, cast the
// receiver to the alias, and delegate to the library marshal or unmarshal
// function.
//
// Example:
//
//	func (m MediaType) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type alias MediaType
//	    return json.Marshal((alias)(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging. All model types MUST implement
// Loggable to prevent accidental exposure of sensitive data in application
// logs.
//
// The Redacted method returns a representation suitable for production
// logging. It MUST hide or mask sensitive fields while preserving enough
// information for troubleshooting. Media type components are public
// protocol metadata, so in this module Redacted is typically identical to
// String; the split is kept so that future parameter-bearing types can
// redact values that carry user data.
//
// Redacted MUST be fast because it is called frequently during logging. It
// MUST be safe to call concurrently and MUST NOT mutate the receiver or
// have side effects.
//
// The String method returns a human-readable representation that MAY
// include sensitive data. It is intended for development, debugging, and
// test assertions. Production logging MUST use Redacted.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production. This method MUST redact or mask all sensitive fields
	// while preserving enough information for debugging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	Redacted() string

	// String returns a human-readable representation of the instance. This
	// method MAY include sensitive data and MUST NOT be used for production
	// logging. Use Redacted instead for logging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name, enabling debugging, structured logging, and
// precise error messages.
//
// The name returned by TypeName MUST be constant for a given type and
// unique within the dxmime domain. It SHOULD follow CamelCase convention
// (for example, "MediaType", "ParameterName") and MUST NOT include a
// package prefix. The name identifies the type, not the instance.
//
// TypeName MUST be fast and MUST NOT allocate memory. It SHOULD typically
// return a string constant. It MUST NOT have side effects and MUST be safe
// to call concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name MUST
	// be constant for the type, unique within dxmime, in CamelCase, and
	// without a package prefix.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently. It SHOULD return a string
	// constant.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection,
// default value handling, and conditional logic based on whether an
// instance contains meaningful data.
//
// IsZero MUST return true if and only if the instance is semantically
// empty. For string-backed types this means the empty string. For struct
// types IsZero SHOULD return true only when every required field is zero:
// a MediaType with no Type and no Subtype is zero regardless of its
// optional Tree and Suffix fields.
//
// Note that zero does not imply invalid: Tree and Suffix have valid zero
// values denoting the standards tree and the absent suffix.
//
// IsZero MUST be fast, deterministic, and idempotent. It MUST NOT allocate
// memory, MUST NOT have side effects, and MUST be safe to call
// concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive, symmetric, transitive, and
// consistent. Equal SHOULD compare all semantically significant fields and
// ignore internal or cached state. Nested objects SHOULD be compared by
// recursively calling Equal when they are Comparable.
//
// Types whose backing string is not canonical (such as a quoted parameter
// value) MUST define Equal on the logical value, which is exactly why
// callers use Equal instead of ==.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type. It returns true if both instances represent the same
	// logical value, false otherwise.
	//
	// This method MUST NOT mutate the receiver or the argument, MUST NOT
	// have side effects, and MUST be safe to call concurrently.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional; the immutable value types of this
// module rarely need it, but mutable aggregates or types containing shared
// references SHOULD implement it.
//
// The Clone method MUST create a deep copy sharing no references with the
// original. The cloned instance MUST be valid if the original is valid, and
// cloning MUST be idempotent.
//
// Clone MUST NOT mutate the receiver, MUST NOT have side effects, and MUST
// be safe to call concurrently.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance. The returned instance has
	// the same value but shares no references with the original.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	Clone() T
}

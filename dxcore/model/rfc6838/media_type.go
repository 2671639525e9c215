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

package rfc6838

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxmime/dxcore/errors"
	"dirpx.dev/dxmime/dxcore/model"
	"gopkg.in/yaml.v3"
)

// MediaType represents a complete Internet Media Type as defined by RFC
// 6838, composed of a top-level type, an optional registration tree, a
// subtype and an optional structured syntax suffix.
//
// This type implements the model.Model interface. The canonical string form
// is
//
//	type/tree.subtype+suffix
//
// where the tree (trailing '.' included) and the suffix (leading '+'
// included) render as empty strings when absent, so "text/plain" and
// "application/vnd.api+json" both come out of String exactly as they went
// into ParseMediaType (modulo lowercase normalization).
//
// A MediaType owns its components by value and is immutable once
// constructed; transforms such as WithoutSuffix return new values. Equality
// is structural across all four components.
//
// Construct a MediaType either by parsing a raw string with ParseMediaType,
// or directly from already-parsed components with a struct literal. The
// components carry their own validity, so direct construction from values
// produced by the component factories cannot yield an invalid aggregate.
//
// Parameters are not yet supported: ParseMediaType discards everything from
// the first ';' onward.
//
// The zero value of MediaType is not valid; a valid value MUST have at
// least a Type and a Subtype.
type MediaType struct {
	// Type is the top-level type (required).
	Type Type `json:"type" yaml:"type"`

	// Tree is the registration tree. The zero value denotes the implicit
	// IANA standards tree.
	Tree Tree `json:"tree,omitempty" yaml:"tree,omitempty"`

	// Subtype is the format identifier within the type and tree (required).
	Subtype Subtype `json:"subtype" yaml:"subtype"`

	// Suffix is the optional structured syntax suffix. The zero value
	// denotes absence.
	Suffix Suffix `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Compile-time assertion that MediaType implements model.Model.
var _ model.Model = (*MediaType)(nil)

// ParseMediaType parses a raw media type string into a MediaType.
//
// The decomposition proceeds in strict order, each step narrowing the
// remaining slice:
//
//  1. The input is truncated at the first ';'. Parameters, if any, are
//     discarded without error; this is a documented limitation.
//  2. The first '/' splits off the top-level type candidate. A missing '/'
//     fails the parse.
//  3. On the remainder, the first '.' closes the tree candidate (dot
//     included). A leading '.' fails the parse, since it cannot denote a
//     non-empty tree label. No '.' at all means the standards tree.
//  4. The last '+' (not the first: a subtype may legally contain '+')
//     splits the subtype candidate from the suffix candidate. No '+' means
//     no suffix.
//  5. Each candidate is fed to its component factory in order: type, tree,
//     subtype, suffix. The first failure aborts the whole parse and is
//     returned unchanged, with no partial result and no recovery.
//
// Example usage:
//
//	mt, err := rfc6838.ParseMediaType("Application/VND.API+JSON; charset=utf-8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(mt.Type)     // Output: "application"
//	fmt.Println(mt.Tree)     // Output: "vnd."
//	fmt.Println(mt.Subtype)  // Output: "api"
//	fmt.Println(mt.Suffix)   // Output: "+json"
//	fmt.Println(mt.String()) // Output: "application/vnd.api+json"
func ParseMediaType(s string) (MediaType, error) {
	raw := s

	// Parameters are not yet supported; ignore everything from the first ';'.
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}

	slash := strings.IndexByte(raw, '/')
	if slash < 0 {
		return MediaType{}, &dxerrors.ParseError{
			Type:   "MediaType",
			Value:  s,
			Reason: "missing delimiter '/' after type",
		}
	}
	typeRaw := raw[:slash]
	rest := raw[slash+1:]

	var treeRaw string
	switch dot := strings.IndexByte(rest, '.'); {
	case dot == 0:
		return MediaType{}, &dxerrors.ParseError{
			Type:   "MediaType",
			Value:  s,
			Reason: "missing tree between '/' and '.'",
		}
	case dot > 0:
		treeRaw = rest[:dot+1]
		rest = rest[dot+1:]
	}

	subtypeRaw := rest
	var suffixRaw string
	if plus := strings.LastIndexByte(rest, '+'); plus >= 0 {
		subtypeRaw = rest[:plus]
		suffixRaw = rest[plus:]
	}

	typ, err := ParseType(typeRaw)
	if err != nil {
		return MediaType{}, err
	}

	tree, err := ParseTree(treeRaw)
	if err != nil {
		return MediaType{}, err
	}

	subtype, err := ParseSubtype(subtypeRaw)
	if err != nil {
		return MediaType{}, err
	}

	suffix, err := ParseSuffix(suffixRaw)
	if err != nil {
		return MediaType{}, err
	}

	return MediaType{Type: typ, Tree: tree, Subtype: subtype, Suffix: suffix}, nil
}

// MustParse parses a raw media type string and panics if parsing fails. It
// is intended for package-level values and test fixtures built from string
// literals known to be valid, in the spirit of regexp.MustCompile.
//
// Callers MUST NOT use MustParse on untrusted input; use ParseMediaType and
// handle the error instead.
func MustParse(s string) MediaType {
	mt, err := ParseMediaType(s)
	if err != nil {
		panic(fmt.Sprintf("rfc6838: MustParse(%q): %v", s, err))
	}
	return mt
}

// String returns the media type in canonical form
// "type/tree.subtype+suffix". The tree already carries its trailing '.' and
// the suffix its leading '+', both rendering as empty strings when absent,
// so String is the exact inverse of ParseMediaType for any input without a
// parameter section.
//
// This method implements the fmt.Stringer interface and the model.Loggable
// contract.
func (m MediaType) String() string {
	return string(m.Type) + "/" + string(m.Tree) + string(m.Subtype) + string(m.Suffix)
}

// Redacted returns a safe representation for production logging. Media
// types contain no sensitive data, so Redacted is identical to String.
//
// This method implements the model.Loggable contract.
func (m MediaType) Redacted() string {
	return m.String()
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract.
func (m MediaType) TypeName() string {
	return "MediaType"
}

// IsZero reports whether this MediaType is the zero value.
//
// This method implements the model.ZeroCheckable contract. A MediaType is
// considered zero if it has no Type and no Subtype (the minimum required
// components).
func (m MediaType) IsZero() bool {
	return m.Type.IsZero() && m.Subtype.IsZero()
}

// Equal reports whether this MediaType is equal to another MediaType.
//
// Two MediaTypes are equal if all four components are equal: Type, Tree,
// Subtype and Suffix (absent suffixes compare equal to each other and
// unequal to any present suffix).
func (m MediaType) Equal(other MediaType) bool {
	return m.Type.Equal(other.Type) &&
		m.Tree.Equal(other.Tree) &&
		m.Subtype.Equal(other.Subtype) &&
		m.Suffix.Equal(other.Suffix)
}

// WithoutSuffix returns a copy of this MediaType with the suffix cleared.
// The receiver is unchanged; this is the only transform MediaType supports.
//
// Example:
//
//	mt := rfc6838.MustParse("application/vnd.api+json")
//	fmt.Println(mt.WithoutSuffix().String()) // Output: "application/vnd.api"
func (m MediaType) WithoutSuffix() MediaType {
	return MediaType{Type: m.Type, Tree: m.Tree, Subtype: m.Subtype}
}

// Validate checks whether this MediaType satisfies all RFC 6838
// requirements.
//
// This method implements the model.Validatable contract. Validation rules:
//
//   - Type MUST be non-zero and valid
//   - Subtype MUST be non-zero and valid
//   - Tree MUST be valid (the zero value, the standards tree, is valid)
//   - Suffix MUST be valid (the zero value, no suffix, is valid)
func (m MediaType) Validate() error {
	if m.Type.IsZero() {
		return &dxerrors.ValidationError{Type: "MediaType", Field: "Type", Reason: "is required"}
	}
	if err := m.Type.Validate(); err != nil {
		return fmt.Errorf("invalid Type: %w", err)
	}

	if err := m.Tree.Validate(); err != nil {
		return fmt.Errorf("invalid Tree: %w", err)
	}

	if m.Subtype.IsZero() {
		return &dxerrors.ValidationError{Type: "MediaType", Field: "Subtype", Reason: "is required"}
	}
	if err := m.Subtype.Validate(); err != nil {
		return fmt.Errorf("invalid Subtype: %w", err)
	}

	if err := m.Suffix.Validate(); err != nil {
		return fmt.Errorf("invalid Suffix: %w", err)
	}

	return nil
}

// MarshalJSON serializes this MediaType to JSON as an object with type,
// tree, subtype and suffix fields (tree and suffix omitted when absent).
//
// This method implements the json.Marshaler interface and the
// model.Serializable contract.
func (m MediaType) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type mediaType MediaType
	return json.Marshal(mediaType(m))
}

// UnmarshalJSON deserializes a MediaType from JSON. Component fields are
// routed through their own unmarshalers, so case variants normalize and
// invalid components fail the whole operation.
//
// This method implements the json.Unmarshaler interface and the
// model.Serializable contract.
func (m *MediaType) UnmarshalJSON(data []byte) error {
	type mediaType MediaType
	var tmp mediaType
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &dxerrors.UnmarshalError{Type: "MediaType", Data: data, Reason: err.Error()}
	}

	*m = MediaType(tmp)
	return m.Validate()
}

// MarshalYAML serializes this MediaType to YAML.
//
// This method implements the yaml.Marshaler interface and the
// model.Serializable contract.
func (m MediaType) MarshalYAML() (interface{}, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type mediaType MediaType
	return mediaType(m), nil
}

// UnmarshalYAML deserializes a MediaType from YAML.
//
// This method implements the yaml.Unmarshaler interface and the
// model.Serializable contract.
func (m *MediaType) UnmarshalYAML(node *yaml.Node) error {
	type mediaType MediaType
	var tmp mediaType
	if err := node.Decode(&tmp); err != nil {
		return &dxerrors.UnmarshalError{Type: "MediaType", Reason: err.Error()}
	}

	*m = MediaType(tmp)
	return m.Validate()
}

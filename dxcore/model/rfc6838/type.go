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

	"dirpx.dev/dxmime/dxcore/ascii"
	dxerrors "dirpx.dev/dxmime/dxcore/errors"
	"dirpx.dev/dxmime/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Type represents the top-level type of a media type as defined by RFC 6838
// section 4.2, the segment before the '/' in "application/json" or
// "text/plain". The top-level type places the content into one of the broad
// registered categories (application, audio, font, image, message, model,
// multipart, text, video) or an unregistered extension category.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value of Type (empty string "") is not
// valid; a media type always has a top-level type.
//
// Type values are stored in normalized lowercase form. A valid Type MUST be
// between 1 and 127 characters long, MUST begin with an ASCII alphanumeric
// character, and MUST contain only alphanumerics or the restricted-name
// punctuation '!', '#', '$', '&', '-', '^', '_', '.', '+'. Validation is
// strict pass/fail: input is never trimmed, truncated or otherwise repaired,
// so a value such as " text" fails rather than being silently corrected.
//
// Construct Type values through ParseType, which folds ASCII case before
// validating so that "TEXT", "Text" and "text" all produce the same value.
// Because the canonical stored form is lowercase, a Type obtained by a plain
// string conversion that contains uppercase letters fails Validate.
//
// Example usage:
//
//	t, err := rfc6838.ParseType("Application")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.String()) // Output: "application"
type Type string

// String returns the string representation of the Type, which is the
// normalized lowercase top-level type name itself.
//
// This method satisfies the model.Loggable interface's String requirement.
// It MUST NOT mutate the receiver, MUST NOT have side effects, and MUST be
// safe to call concurrently. The returned string is the Type value itself,
// ensuring zero allocations.
func (t Type) String() string {
	return string(t)
}

// Redacted returns a safe string representation suitable for logging in
// production environments. Top-level type names are public protocol metadata
// and contain no sensitive data, so Redacted is identical to String.
//
// This method satisfies the model.Loggable interface's Redacted requirement.
func (t Type) Redacted() string {
	return t.String()
}

// TypeName returns the canonical name of this model type for debugging,
// logging, and reflection purposes. This method satisfies the
// model.Identifiable interface's TypeName requirement.
//
// The returned value is always the constant string "Type".
func (t Type) TypeName() string {
	return "Type"
}

// IsZero reports whether this Type instance is in a zero or empty state.
// The zero value (empty string) carries no top-level type and fails
// validation; a valid media type always names its category.
//
// This method satisfies the model.ZeroCheckable interface's IsZero
// requirement.
func (t Type) IsZero() bool {
	return t == ""
}

// Equal reports whether this Type is equal to another Type. Equality is
// structural on the normalized lowercase form, so two values produced by
// ParseType from different case variants of the same name compare equal.
func (t Type) Equal(other Type) bool {
	return t == other
}

// Validate checks that the Type value conforms to the RFC 6838 restricted
// name rules for top-level types. This method satisfies the model.Validatable
// interface's Validate requirement.
//
// Validate returns nil if all of the following hold: the length in bytes is
// between 1 and 127 inclusive; the first character is ASCII alphanumeric;
// every character is alphanumeric or one of '!', '#', '$', '&', '-', '^',
// '_', '.', '+'; and the value is entirely lowercase (the canonical stored
// form). Each violated rule yields a distinct errors.ValidationError naming
// the rule, never a generic failure.
//
// This method is pure: it MUST NOT mutate the receiver, performs no
// normalization or repair, and is safe to call concurrently.
func (t Type) Validate() error {
	s := string(t)

	if len(s) == 0 || len(s) > componentMaxLen {
		return &dxerrors.ValidationError{
			Type:   "Type",
			Reason: "length required to be [1..127] characters",
			Value:  s,
		}
	}

	if !ascii.IsAlphanumeric(rune(s[0])) {
		return &dxerrors.ValidationError{
			Type:   "Type",
			Reason: "first character required to be alphanumeric",
			Value:  s,
		}
	}

	if !IsRestrictedName(s) {
		return &dxerrors.ValidationError{
			Type:   "Type",
			Reason: "containing non-valid characters",
			Value:  s,
		}
	}

	if s != lowercase(s) {
		return &dxerrors.ValidationError{
			Type:   "Type",
			Reason: "required to be lowercase",
			Value:  s,
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Type to its
// lowercase string representation as a JSON string. Marshaling an invalid
// Type fails with the validation error, preventing invalid data from being
// serialized.
func (t Type) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON string
// into a Type value. The input is routed through ParseType, so any case
// variant of a valid top-level type unmarshals to the canonical lowercase
// value and any invalid input fails with a descriptive error.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Type", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Type to its
// lowercase string representation. Marshaling an invalid Type fails with the
// validation error.
func (t Type) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return string(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML scalar
// into a Type value through ParseType.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Type", Reason: err.Error()}
	}

	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*t = parsed
	return nil
}

// ParseType parses a string into a Type value, folding ASCII case to
// lowercase and validating the result against the RFC 6838 top-level type
// rules. This is the validated-construction entry point replacing a throwing
// constructor: failure is an ordinary error value, inspectable with
// errors.As.
//
// Case folding is the only normalization applied; leading or trailing
// whitespace is NOT trimmed and makes the input invalid. ParseType returns a
// *errors.ParseError whose Reason names the specific violated rule and whose
// Cause carries the underlying validation error.
//
// This function is pure and safe to call concurrently.
//
// Example:
//
//	t, err := rfc6838.ParseType("TEXT")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.String()) // Output: "text"
func ParseType(s string) (Type, error) {
	t := Type(lowercase(s))
	if err := t.Validate(); err != nil {
		return "", &dxerrors.ParseError{Type: "Type", Value: s, Reason: violatedRule(err), Cause: err}
	}
	return t, nil
}

// Compile-time verification that Type implements model.Model.
var _ model.Model = (*Type)(nil)

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

// Subtype represents the subtype of a media type, the specific format
// identifier within a top-level type and registration tree, such as "json"
// in "application/json" or "api" in "application/vnd.api+json".
//
// Subtype follows the same RFC 6838 restricted-name rules as Type: length
// 1–127 bytes, leading alphanumeric, characters limited to alphanumerics and
// '!', '#', '$', '&', '-', '^', '_', '.', '+', stored in normalized
// lowercase. Note that '+' is a legal interior character; suffix detection
// in ParseMediaType therefore splits on the last '+', not the first.
//
// The zero value (empty string) is not valid; a media type always has a
// subtype. Construct values through ParseSubtype. This type implements the
// model.Model interface.
type Subtype string

// String returns the normalized lowercase subtype.
func (s Subtype) String() string {
	return string(s)
}

// Redacted returns a safe representation for production logging. Subtypes
// are public protocol metadata, so Redacted is identical to String.
func (s Subtype) Redacted() string {
	return s.String()
}

// TypeName returns the constant string "Subtype", satisfying the
// model.Identifiable contract.
func (s Subtype) TypeName() string {
	return "Subtype"
}

// IsZero reports whether this Subtype is the (invalid) empty value.
func (s Subtype) IsZero() bool {
	return s == ""
}

// Equal reports whether this Subtype equals another. Equality is structural
// on the normalized lowercase form.
func (s Subtype) Equal(other Subtype) bool {
	return s == other
}

// Validate checks the RFC 6838 restricted-name rules for subtypes: length
// 1–127 bytes, leading alphanumeric character, restricted-name charset, and
// canonical lowercase form. Each violated rule yields a distinct
// errors.ValidationError.
func (s Subtype) Validate() error {
	str := string(s)

	if len(str) == 0 || len(str) > componentMaxLen {
		return &dxerrors.ValidationError{
			Type:   "Subtype",
			Reason: "length required to be [1..127] characters",
			Value:  str,
		}
	}

	if !ascii.IsAlphanumeric(rune(str[0])) {
		return &dxerrors.ValidationError{
			Type:   "Subtype",
			Reason: "first character required to be alphanumeric",
			Value:  str,
		}
	}

	if !IsRestrictedName(str) {
		return &dxerrors.ValidationError{
			Type:   "Subtype",
			Reason: "containing non-valid characters",
			Value:  str,
		}
	}

	if str != lowercase(str) {
		return &dxerrors.ValidationError{
			Type:   "Subtype",
			Reason: "required to be lowercase",
			Value:  str,
		}
	}

	return nil
}

// MarshalJSON serializes the Subtype as a JSON string after validating it.
func (s Subtype) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON deserializes a JSON string into a Subtype through
// ParseSubtype, normalizing case and rejecting invalid input.
func (s *Subtype) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &dxerrors.UnmarshalError{Type: "Subtype", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseSubtype(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return nil
}

// MarshalYAML serializes the Subtype as a YAML scalar after validating it.
func (s Subtype) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return string(s), nil
}

// UnmarshalYAML deserializes a YAML scalar into a Subtype through
// ParseSubtype.
func (s *Subtype) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &dxerrors.UnmarshalError{Type: "Subtype", Reason: err.Error()}
	}

	parsed, err := ParseSubtype(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return nil
}

// ParseSubtype parses a string into a Subtype value, folding ASCII case to
// lowercase and validating against the restricted-name rules. Whitespace is
// never trimmed. On failure it returns a *errors.ParseError naming the
// violated rule.
func ParseSubtype(s string) (Subtype, error) {
	sub := Subtype(lowercase(s))
	if err := sub.Validate(); err != nil {
		return "", &dxerrors.ParseError{Type: "Subtype", Value: s, Reason: violatedRule(err), Cause: err}
	}
	return sub, nil
}

// Compile-time verification that Subtype implements model.Model.
var _ model.Model = (*Subtype)(nil)

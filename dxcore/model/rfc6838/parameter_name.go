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

// ParameterName represents the attribute name of a media type parameter,
// such as "charset" in "text/plain; charset=utf-8".
//
// Parameter parsing itself is not yet wired into ParseMediaType (parameters
// after ';' are currently discarded); ParameterName is provided and fully
// validated for forward compatibility. The rules are identical to Type:
// length 1–127 bytes, leading alphanumeric, restricted-name charset, stored
// lowercase (parameter names are case-insensitive on the wire). The zero
// value (empty string) is not valid.
type ParameterName string

// String returns the normalized lowercase parameter name.
func (n ParameterName) String() string {
	return string(n)
}

// Redacted returns a safe representation for production logging. Parameter
// names are protocol metadata, so Redacted is identical to String.
func (n ParameterName) Redacted() string {
	return n.String()
}

// TypeName returns the constant string "ParameterName", satisfying the
// model.Identifiable contract.
func (n ParameterName) TypeName() string {
	return "ParameterName"
}

// IsZero reports whether this ParameterName is the (invalid) empty value.
func (n ParameterName) IsZero() bool {
	return n == ""
}

// Equal reports whether this ParameterName equals another. Equality is
// structural on the normalized lowercase form.
func (n ParameterName) Equal(other ParameterName) bool {
	return n == other
}

// Validate checks the restricted-name rules for parameter names, the same
// rule set as Type: length 1-127 bytes, leading alphanumeric character,
// restricted-name charset, canonical lowercase form.
func (n ParameterName) Validate() error {
	s := string(n)

	if len(s) == 0 || len(s) > componentMaxLen {
		return &dxerrors.ValidationError{
			Type:   "ParameterName",
			Reason: "length required to be [1..127] characters",
			Value:  s,
		}
	}

	if !ascii.IsAlphanumeric(rune(s[0])) {
		return &dxerrors.ValidationError{
			Type:   "ParameterName",
			Reason: "first character required to be alphanumeric",
			Value:  s,
		}
	}

	if !IsRestrictedName(s) {
		return &dxerrors.ValidationError{
			Type:   "ParameterName",
			Reason: "containing non-valid characters",
			Value:  s,
		}
	}

	if s != lowercase(s) {
		return &dxerrors.ValidationError{
			Type:   "ParameterName",
			Reason: "required to be lowercase",
			Value:  s,
		}
	}

	return nil
}

// MarshalJSON serializes the ParameterName as a JSON string after validating
// it.
func (n ParameterName) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON deserializes a JSON string into a ParameterName through
// ParseParameterName.
func (n *ParameterName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "ParameterName", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseParameterName(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*n = parsed
	return nil
}

// MarshalYAML serializes the ParameterName as a YAML scalar after validating
// it.
func (n ParameterName) MarshalYAML() (interface{}, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return string(n), nil
}

// UnmarshalYAML deserializes a YAML scalar into a ParameterName through
// ParseParameterName.
func (n *ParameterName) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "ParameterName", Reason: err.Error()}
	}

	parsed, err := ParseParameterName(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*n = parsed
	return nil
}

// ParseParameterName parses a string into a ParameterName value, folding
// ASCII case to lowercase and validating against the restricted-name rules.
// Whitespace is never trimmed. On failure it returns a *errors.ParseError
// naming the violated rule.
func ParseParameterName(s string) (ParameterName, error) {
	n := ParameterName(lowercase(s))
	if err := n.Validate(); err != nil {
		return "", &dxerrors.ParseError{Type: "ParameterName", Value: s, Reason: violatedRule(err), Cause: err}
	}
	return n, nil
}

// Compile-time verification that ParameterName implements model.Model.
var _ model.Model = (*ParameterName)(nil)

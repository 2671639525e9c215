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

// ParameterValue represents the value of a media type parameter, such as
// "utf-8" in "text/plain; charset=utf-8". A value may be bare or quoted
// ("utf-8" vs "\"utf-8\""); the backing string retains the raw form
// verbatim, quotes included, and no case folding is applied: parameter
// values are case-sensitive unless a specific parameter says otherwise.
//
// Parameter parsing itself is not yet wired into ParseMediaType (parameters
// after ';' are currently discarded); ParameterValue is provided and fully
// validated for forward compatibility.
//
// A valid ParameterValue MUST be between 1 and 127 bytes long. A quoted
// value MUST have a matching trailing quote, non-empty interior content, and
// no interior quote character. A bare value MUST satisfy the restricted-name
// charset. The Value accessor strips quoting to expose the logical value,
// and Equal compares logical values, so ParameterValue("foo") and
// ParameterValue(`"foo"`) are equal despite differing raw forms. The
// built-in == operator compares raw backing strings and MUST NOT be used for
// semantic equality.
//
// The zero value (empty string) is not valid.
type ParameterValue string

// String returns the raw backing string, which may include surrounding
// quotes. Use Value for the logical (unquoted) value.
func (v ParameterValue) String() string {
	return string(v)
}

// Redacted returns a safe representation for production logging. Media type
// parameter values are protocol metadata (charsets, profiles, boundaries),
// not credentials, so Redacted is identical to String.
func (v ParameterValue) Redacted() string {
	return v.String()
}

// TypeName returns the constant string "ParameterValue", satisfying the
// model.Identifiable contract.
func (v ParameterValue) TypeName() string {
	return "ParameterValue"
}

// IsZero reports whether this ParameterValue is the (invalid) empty value.
func (v ParameterValue) IsZero() bool {
	return v == ""
}

// Quoted reports whether the raw backing string is a quoted value.
func (v ParameterValue) Quoted() bool {
	return len(v) > 0 && v[0] == '"'
}

// Value returns the logical value with any surrounding quotes stripped.
// For a bare value this is the backing string itself.
func (v ParameterValue) Value() string {
	if v.Quoted() && len(v) >= 2 && v[len(v)-1] == '"' {
		return string(v[1 : len(v)-1])
	}
	return string(v)
}

// Equal reports whether this ParameterValue equals another. Equality is
// defined on the logical (unquoted) value, so a bare and a quoted spelling
// of the same content compare equal.
func (v ParameterValue) Equal(other ParameterValue) bool {
	return v.Value() == other.Value()
}

// Validate checks the parameter value rules: length 1–127 bytes; a quoted
// value needs a matching trailing quote, non-empty interior and no interior
// quote; a bare value is limited to the restricted-name charset. Each
// violated rule yields a distinct errors.ValidationError.
func (v ParameterValue) Validate() error {
	s := string(v)

	if len(s) == 0 || len(s) > componentMaxLen {
		return &dxerrors.ValidationError{
			Type:   "ParameterValue",
			Reason: "length required to be [1..127] characters",
			Value:  s,
		}
	}

	if s[0] == '"' {
		if len(s) == 1 || s[len(s)-1] != '"' {
			return &dxerrors.ValidationError{
				Type:   "ParameterValue",
				Reason: `quoted string missing trailing '"'`,
				Value:  s,
			}
		}

		if len(s) == 2 {
			return &dxerrors.ValidationError{
				Type:   "ParameterValue",
				Reason: "quoted string empty",
				Value:  s,
			}
		}

		if strings.ContainsRune(s[1:len(s)-1], '"') {
			return &dxerrors.ValidationError{
				Type:   "ParameterValue",
				Reason: `quoted string containing '"'`,
				Value:  s,
			}
		}

		return nil
	}

	if !IsRestrictedName(s) {
		return &dxerrors.ValidationError{
			Type:   "ParameterValue",
			Reason: "non-quoted string containing non-valid characters",
			Value:  s,
		}
	}

	return nil
}

// MarshalJSON serializes the ParameterValue as a JSON string (raw form,
// quotes included if present) after validating it.
func (v ParameterValue) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON deserializes a JSON string into a ParameterValue through
// ParseParameterValue.
func (v *ParameterValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "ParameterValue", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseParameterValue(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*v = parsed
	return nil
}

// MarshalYAML serializes the ParameterValue as a YAML scalar (raw form)
// after validating it.
func (v ParameterValue) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return string(v), nil
}

// UnmarshalYAML deserializes a YAML scalar into a ParameterValue through
// ParseParameterValue.
func (v *ParameterValue) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "ParameterValue", Reason: err.Error()}
	}

	parsed, err := ParseParameterValue(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*v = parsed
	return nil
}

// ParseParameterValue parses a string into a ParameterValue. Unlike the
// other component factories it applies no normalization at all: the raw
// form, quoted or bare, is retained verbatim. On failure it returns a
// *errors.ParseError naming the violated rule.
func ParseParameterValue(s string) (ParameterValue, error) {
	v := ParameterValue(s)
	if err := v.Validate(); err != nil {
		return "", &dxerrors.ParseError{Type: "ParameterValue", Value: s, Reason: violatedRule(err), Cause: err}
	}
	return v, nil
}

// Compile-time verification that ParameterValue implements model.Model.
var _ model.Model = (*ParameterValue)(nil)

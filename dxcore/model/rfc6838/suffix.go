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

// Suffix represents the optional structured syntax suffix of a media type,
// the RFC 6839-style indicator appended to a subtype, such as "+json" in
// "application/vnd.api+json". The stored value includes the leading '+'
// delimiter.
//
// This type implements the model.Model interface. The zero value of Suffix
// (empty string "") is valid and represents the absence of a suffix:
// "text/plain" has a zero Suffix. Absence is an ordinary state, not an
// error.
//
// Non-empty Suffix values are stored in normalized lowercase form and MUST
// be between 2 and 127 bytes long, MUST begin with '+', MUST have an ASCII
// alphanumeric second character, and everything after the '+' MUST be
// alphanumeric or one of '!', '#', '$', '&', '-', '^', '_' (the modified
// restricted-name set; a suffix cannot itself contain '+' or '.'). Input is
// never trimmed or repaired.
//
// Construct values through ParseSuffix; the empty string parses to the
// absent suffix without error.
type Suffix string

// String returns the normalized lowercase suffix including its leading '+',
// or the empty string when no suffix is present.
func (s Suffix) String() string {
	return string(s)
}

// Redacted returns a safe representation for production logging. Suffixes
// are public protocol metadata, so Redacted is identical to String.
func (s Suffix) Redacted() string {
	return s.String()
}

// TypeName returns the constant string "Suffix", satisfying the
// model.Identifiable contract.
func (s Suffix) TypeName() string {
	return "Suffix"
}

// IsZero reports whether this Suffix is the zero value. The zero value is
// valid and means the media type carries no structured syntax suffix.
func (s Suffix) IsZero() bool {
	return s == ""
}

// Equal reports whether this Suffix equals another. Equality is structural
// on the normalized lowercase form; two absent suffixes are equal.
func (s Suffix) Equal(other Suffix) bool {
	return s == other
}

// Validate checks the structured syntax suffix rules. The empty string
// (absent suffix) is valid and skips every check. A non-empty value MUST be
// 2–127 bytes, begin with '+', have an alphanumeric second character,
// contain only modified restricted-name characters after the '+', and be
// entirely lowercase. Each violated rule yields a distinct
// errors.ValidationError.
func (s Suffix) Validate() error {
	if s.IsZero() {
		return nil
	}

	str := string(s)

	if len(str) < 2 || len(str) > componentMaxLen {
		return &dxerrors.ValidationError{
			Type:   "Suffix",
			Reason: "length required to be [2..127] characters",
			Value:  str,
		}
	}

	if str[0] != '+' {
		return &dxerrors.ValidationError{
			Type:   "Suffix",
			Reason: "first character required to be '+'",
			Value:  str,
		}
	}

	if !ascii.IsAlphanumeric(rune(str[1])) {
		return &dxerrors.ValidationError{
			Type:   "Suffix",
			Reason: "second character required to be alphanumeric",
			Value:  str,
		}
	}

	if !IsModifiedRestrictedName(str[1:]) {
		return &dxerrors.ValidationError{
			Type:   "Suffix",
			Reason: "containing non-valid characters",
			Value:  str,
		}
	}

	if str != lowercase(str) {
		return &dxerrors.ValidationError{
			Type:   "Suffix",
			Reason: "required to be lowercase",
			Value:  str,
		}
	}

	return nil
}

// MarshalJSON serializes the Suffix as a JSON string after validating it.
// The absent suffix marshals to "".
func (s Suffix) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON deserializes a JSON string into a Suffix through
// ParseSuffix. The empty JSON string unmarshals to the absent suffix.
func (s *Suffix) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &dxerrors.UnmarshalError{Type: "Suffix", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseSuffix(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return nil
}

// MarshalYAML serializes the Suffix as a YAML scalar after validating it.
func (s Suffix) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return string(s), nil
}

// UnmarshalYAML deserializes a YAML scalar into a Suffix through
// ParseSuffix.
func (s *Suffix) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &dxerrors.UnmarshalError{Type: "Suffix", Reason: err.Error()}
	}

	parsed, err := ParseSuffix(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return nil
}

// ParseSuffix parses a string into a Suffix value. The empty string parses
// to the absent suffix with no error. Non-empty input is folded to lowercase
// and validated against the suffix rules, '+' included; whitespace is never
// trimmed. On failure ParseSuffix returns a *errors.ParseError naming the
// violated rule.
//
// Example:
//
//	suf, err := rfc6838.ParseSuffix("+JSON")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(suf.String()) // Output: "+json"
func ParseSuffix(s string) (Suffix, error) {
	suf := Suffix(lowercase(s))
	if err := suf.Validate(); err != nil {
		return "", &dxerrors.ParseError{Type: "Suffix", Value: s, Reason: violatedRule(err), Cause: err}
	}
	return suf, nil
}

// Compile-time verification that Suffix implements model.Model.
var _ model.Model = (*Suffix)(nil)

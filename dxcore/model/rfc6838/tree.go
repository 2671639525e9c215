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

// Tree represents the registration tree of a media type, the optional
// namespace prefix of the subtype defined by RFC 6838 section 3, such as
// "vnd." (vendor tree) in "application/vnd.api+json" or "x." (unregistered
// tree). The stored value includes the trailing '.' delimiter.
//
// This type implements the model.Model interface. The zero value of Tree
// (empty string "") is valid and represents the IANA standards tree, which
// carries no facet prefix: "text/plain" has an empty Tree. This mirrors the
// empty-vs-absent distinction of the wire format itself, where the standards
// tree is implicit and never spelled out.
//
// Non-empty Tree values are stored in normalized lowercase form and MUST be
// between 2 and 127 bytes long, MUST begin with an ASCII alphanumeric
// character, MUST end with '.', and everything before the trailing dot MUST
// be alphanumeric or one of '!', '#', '$', '&', '-', '^', '_' (the modified
// restricted-name set: interior '.' and '+' are structural delimiters and
// therefore excluded). As with every component, input is never trimmed or
// repaired.
//
// Construct values through ParseTree; the empty string parses to the
// standards tree without error.
//
// Example usage:
//
//	tree, err := rfc6838.ParseTree("VND.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tree.String())   // Output: "vnd."
//	fmt.Println(tree.Standard()) // Output: false
type Tree string

// String returns the normalized lowercase tree including its trailing '.'.
// The string is empty for the standards tree.
func (t Tree) String() string {
	return string(t)
}

// Redacted returns a safe representation for production logging. Tree facets
// are public protocol metadata, so Redacted is identical to String.
func (t Tree) Redacted() string {
	return t.String()
}

// TypeName returns the constant string "Tree", satisfying the
// model.Identifiable contract.
func (t Tree) TypeName() string {
	return "Tree"
}

// IsZero reports whether this Tree is the zero value. Unlike most model
// types, the zero value is valid: it denotes the implicit IANA standards
// tree.
func (t Tree) IsZero() bool {
	return t == ""
}

// Standard reports whether this Tree is the standards tree (the empty
// string). Equivalent to IsZero, named for the RFC 6838 vocabulary.
func (t Tree) Standard() bool {
	return t.IsZero()
}

// Equal reports whether this Tree equals another. Equality is structural on
// the normalized lowercase form; two standards-tree values are equal.
func (t Tree) Equal(other Tree) bool {
	return t == other
}

// Validate checks the RFC 6838 rules for registration trees. The empty
// string (standards tree) is valid and skips every check. A non-empty value
// MUST be 2–127 bytes, begin with an alphanumeric character, end with '.',
// contain only modified restricted-name characters before the trailing dot,
// and be entirely lowercase. Each violated rule yields a distinct
// errors.ValidationError.
func (t Tree) Validate() error {
	if t.IsZero() {
		return nil
	}

	s := string(t)

	if len(s) < 2 || len(s) > componentMaxLen {
		return &dxerrors.ValidationError{
			Type:   "Tree",
			Reason: "length required to be [2..127] characters",
			Value:  s,
		}
	}

	if !ascii.IsAlphanumeric(rune(s[0])) {
		return &dxerrors.ValidationError{
			Type:   "Tree",
			Reason: "first character required to be alphanumeric",
			Value:  s,
		}
	}

	if s[len(s)-1] != '.' {
		return &dxerrors.ValidationError{
			Type:   "Tree",
			Reason: "last character required to be '.'",
			Value:  s,
		}
	}

	if !IsModifiedRestrictedName(s[:len(s)-1]) {
		return &dxerrors.ValidationError{
			Type:   "Tree",
			Reason: "containing non-valid characters",
			Value:  s,
		}
	}

	if s != lowercase(s) {
		return &dxerrors.ValidationError{
			Type:   "Tree",
			Reason: "required to be lowercase",
			Value:  s,
		}
	}

	return nil
}

// MarshalJSON serializes the Tree as a JSON string after validating it. The
// standards tree marshals to "".
func (t Tree) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON deserializes a JSON string into a Tree through ParseTree.
// The empty JSON string unmarshals to the standards tree.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Tree", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseTree(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*t = parsed
	return nil
}

// MarshalYAML serializes the Tree as a YAML scalar after validating it.
func (t Tree) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return string(t), nil
}

// UnmarshalYAML deserializes a YAML scalar into a Tree through ParseTree.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Tree", Reason: err.Error()}
	}

	parsed, err := ParseTree(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*t = parsed
	return nil
}

// ParseTree parses a string into a Tree value. The empty string parses to
// the standards tree with no error; emptiness is a valid state here, not a
// failure. Non-empty input is folded to lowercase and validated against the
// tree rules; whitespace is never trimmed. On failure ParseTree returns a
// *errors.ParseError naming the violated rule.
//
// Example:
//
//	tree, err := rfc6838.ParseTree("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tree.Standard()) // Output: true
func ParseTree(s string) (Tree, error) {
	t := Tree(lowercase(s))
	if err := t.Validate(); err != nil {
		return "", &dxerrors.ParseError{Type: "Tree", Value: s, Reason: violatedRule(err), Cause: err}
	}
	return t, nil
}

// Compile-time verification that Tree implements model.Model.
var _ model.Model = (*Tree)(nil)

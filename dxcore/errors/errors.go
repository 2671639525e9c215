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

// Package errors provides reusable error types for dxmime model types.
//
// This package defines the common error types used across the dxmime packages
// when parsing, validating, marshaling and unmarshaling media type components
// (top-level type, registration tree, subtype, suffix, parameters) and the
// MediaType aggregate. By centralizing these types, the package eliminates
// code duplication and provides a consistent error handling story across the
// entire dxmime surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / validation / unmarshaling code,
//   - easy to recognize via errors.As and type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a media type component or a full
//     MediaType fails. This is the single failure kind callers observe at the
//     parse boundary; Reason names the specific violated rule (for example,
//     "missing delimiter '/' after type" or "containing non-valid characters").
//
//   - UnmarshalError
//     Returned when unmarshaling data into a model type fails due to invalid
//     input, parse errors or constraint violations. Use this in
//     UnmarshalJSON / UnmarshalYAML implementations to provide precise
//     diagnostics to callers.
//
//   - ValidationError
//     Returned when validation of a model type fails. Use this in Validate()
//     methods to report constraint violations such as length bounds, charset
//     violations, or missing required components.
//
// # Usage
//
// Parse factories wrap validation failures so that callers see a single
// parse-failure kind while errors.As still reaches the underlying rule:
//
//	import "dirpx.dev/dxmime/dxcore/errors"
//
//	func ParseSubtype(s string) (Subtype, error) {
//	    sub := Subtype(normalize(s))
//	    if err := sub.Validate(); err != nil {
//	        return "", &errors.ParseError{Type: "Subtype", Value: s, Reason: err.Error()}
//	    }
//	    return sub, nil
//	}
package errors

// ParseError is returned when parsing a string into a media type component or
// a full MediaType fails.
//
// Type identifies the logical type being parsed (for example, "Type", "Tree",
// "Suffix", "MediaType"), Value contains the exact string that could not be
// interpreted, and Reason names the specific rule that was violated. This
// struct is intended for use in error messages and diagnostics; callers MAY
// pattern-match on Type to provide component-specific guidance to users.
//
// Parsing is deterministic: retrying an identical string against an identical
// validator can never succeed, so callers SHOULD reject the corresponding
// input at the boundary rather than retry.
//
// # Example
//
//	func ParseMediaType(s string) (MediaType, error) {
//	    if !strings.ContainsRune(s, '/') {
//	        // Returned error will format as:
//	        // "dxmime: cannot parse MediaType from <value>: missing delimiter '/' after type"
//	        return MediaType{}, &errors.ParseError{
//	            Type:   "MediaType",
//	            Value:  s,
//	            Reason: "missing delimiter '/' after type",
//	        }
//	    }
//	    // ...
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Tree").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Reason is a short, human-readable description of the violated rule.
	Reason string

	// Cause optionally holds the underlying validation error that triggered
	// the parse failure. May be nil for purely structural failures (for
	// example, a missing delimiter), where no component value ever existed to
	// validate.
	//
	// When Cause is set, Reason SHOULD repeat its message so that Error()
	// remains self-contained.
	Cause error
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxmime: cannot parse {Type} from {Value}: {Reason}"
//
// For example:
//
//	"dxmime: cannot parse Suffix from +: length required to be [2..127] characters"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring errors.As where possible.
func (e *ParseError) Error() string {
	return "dxmime: cannot parse " + e.Type + " from " + e.Value + ": " + e.Reason
}

// Unwrap returns the underlying cause of the parse failure, if any.
//
// Parse factories that fail because a component's Validate method rejected the
// normalized value SHOULD store that validation error in Cause so that
// errors.As can reach the specific ValidationError from the parse boundary.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "MediaType"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong (for
// example, a syntax error from the decoder or a violated component rule).
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their configuration or payload could not be
// interpreted. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack.
//
// # Example
//
//	func (m *MediaType) UnmarshalJSON(data []byte) error {
//	    var raw mediaType
//	    if err := json.Unmarshal(data, &raw); err != nil {
//	        return &errors.UnmarshalError{
//	            Type:   "MediaType",
//	            Data:   data,
//	            Reason: err.Error(),
//	        }
//	    }
//	    // ...
//	}
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on size
	// considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "unexpected end of
	// JSON input") rather than repeating the type name; the type name is
	// already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxmime: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"dxmime: cannot unmarshal MediaType: unexpected end of JSON input"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "dxmime: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Type", "Tree", "MediaType"), Field optionally identifies which field failed
// validation (used by the MediaType aggregate to name the offending
// component), Reason provides a human-readable explanation of the validation
// failure, and Value optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report length
// bound violations, charset violations, or missing required components.
//
// # Example
//
//	func (t Type) Validate() error {
//	    if len(t) == 0 || len(t) > 127 {
//	        return &errors.ValidationError{
//	            Type:   "Type",
//	            Reason: "length required to be [1..127] characters",
//	            Value:  string(t),
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxmime: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxmime: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"dxmime: invalid MediaType.Subtype: length required to be [1..127] characters"
//	"dxmime: invalid Tree: last character required to be '.'"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxmime: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxmime: invalid " + e.Type + ": " + e.Reason
}

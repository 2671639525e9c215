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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one. Each failure is wrapped with the
// model's position in the slice and its type name, then aggregated into a
// single combined error using rxmerr.Collector. The function always
// processes the entire slice even when early elements fail, ensuring
// complete error reporting.
//
// An empty slice is considered valid and returns nil.
//
// Example usage for batch validation of an allow list:
//
//	allowed := []rfc6838.MediaType{jsonType, yamlType, cborType}
//	if err := model.ValidateAll(allowed); err != nil {
//	    log.Error("validation failed", "error", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero reports false. Use it to clean slices of empty or uninitialized
// values before processing or serialization.
//
// The returned slice is always a fresh allocation and never shares backing
// storage with the input. If every model is zero, or the input is empty or
// nil, FilterZero returns an empty non-nil slice. The function does not
// validate models; it only checks for zero values.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails. It is
// intended for test fixtures, package initialization, and other contexts
// where an invalid model is a programming error rather than a recoverable
// runtime condition; the panic message includes the model's type name and
// the validation error.
//
// Callers MUST NOT use MustValidate in server code, request handlers, or
// any context where a panic would disrupt service availability.
//
// Example usage in test setup where invalid data indicates a test bug:
//
//	func TestSomething(t *testing.T) {
//	    mt := model.MustValidate(rfc6838.MediaType{Type: "text", Subtype: "plain"})
//	    // Use mt knowing it's valid
//	}
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default. When unsafe is false it delegates to Redacted; when
// unsafe is true it delegates to String, which MAY include sensitive data.
//
// The single call site makes the safe/unsafe choice explicit and auditable.
// Production logging SHOULD always pass false; debugging tools MAY expose
// unsafe mode behind an operator setting.
//
//	log.Info("negotiated", "type", model.SafeString(mt, false)) // Redacted()
//	log.Debug("details", "type", model.SafeString(mt, true))    // String() (UNSAFE)
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it. If validation
// fails, the error is returned with the model's type name and no marshaling
// is attempted, so invalid data never reaches the encoder. If validation
// succeeds, the model's own MarshalJSON is honored.
//
// Callers who have already validated through other means MAY call
// json.Marshal directly to avoid the redundant validation pass.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it. The behavior
// mirrors ToJSON: validation failure short-circuits with a descriptive
// error, and the model's own MarshalYAML is honored on success.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result, so
// malformed or incomplete data from external sources is rejected at the
// boundary. If either step fails, the receiver's state is undefined and
// MUST NOT be used.
//
// Example usage for safely loading a model from JSON with validation:
//
//	var mt rfc6838.MediaType
//	if err := model.FromJSON(data, &mt); err != nil {
//	    return err
//	}
//	// Use mt knowing it's valid
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result. The
// behavior mirrors FromJSON; it is the loading path for configuration
// files. If either step fails, the receiver's state is undefined and MUST
// NOT be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model through a JSON round trip. The
// approach works for any Model type without type-specific copy logic:
// serialization copies nested structures, slices, and maps by value, so the
// clone shares no references with the original.
//
// The trade-off is encoding overhead. Types cloned on hot paths SHOULD
// implement Cloneable[T] with hand-written copy logic instead. If Clone
// returns an error, the returned model is the zero value and MUST NOT be
// used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models by serializing both to JSON and comparing the
// bytes. If either marshal fails, Equal returns false rather than risking a
// false positive.
//
// JSON-based comparison ignores unexported fields and treats values as
// equal only when their serialized forms match exactly. Types with
// non-canonical backing strings SHOULD implement Comparable[T] and be
// compared through their own Equal method instead; this helper is the
// generic fallback.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}

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

package rfc6838_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	dxerrors "dirpx.dev/dxmime/dxcore/errors"
	"dirpx.dev/dxmime/dxcore/model/rfc6838"
	"gopkg.in/yaml.v3"
)

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rfc6838.MediaType
		wantErr bool
	}{
		{
			"vendor tree with suffix",
			"application/vnd.api+json",
			rfc6838.MediaType{
				Type:    rfc6838.Type("application"),
				Tree:    rfc6838.Tree("vnd."),
				Subtype: rfc6838.Subtype("api"),
				Suffix:  rfc6838.Suffix("+json"),
			},
			false,
		},
		{
			"standards tree no suffix",
			"text/plain",
			rfc6838.MediaType{
				Type:    rfc6838.Type("text"),
				Subtype: rfc6838.Subtype("plain"),
			},
			false,
		},
		{
			"subtype with interior plus",
			"application/x+y+json",
			rfc6838.MediaType{
				Type:    rfc6838.Type("application"),
				Subtype: rfc6838.Subtype("x+y"),
				Suffix:  rfc6838.Suffix("+json"),
			},
			false,
		},
		{
			"case folds to lowercase",
			"TEXT/PLAIN",
			rfc6838.MediaType{
				Type:    rfc6838.Type("text"),
				Subtype: rfc6838.Subtype("plain"),
			},
			false,
		},
		{
			"parameters discarded",
			"text/plain; charset=utf-8",
			rfc6838.MediaType{
				Type:    rfc6838.Type("text"),
				Subtype: rfc6838.Subtype("plain"),
			},
			false,
		},
		{
			"unregistered tree",
			"application/x.thing",
			rfc6838.MediaType{
				Type:    rfc6838.Type("application"),
				Tree:    rfc6838.Tree("x."),
				Subtype: rfc6838.Subtype("thing"),
			},
			false,
		},
		{
			"suffix only xml",
			"image/svg+xml",
			rfc6838.MediaType{
				Type:    rfc6838.Type("image"),
				Subtype: rfc6838.Subtype("svg"),
				Suffix:  rfc6838.Suffix("+xml"),
			},
			false,
		},

		{"missing slash", "application.json", rfc6838.MediaType{}, true},
		{"missing tree label", "application/.json", rfc6838.MediaType{}, true},
		{"empty", "", rfc6838.MediaType{}, true},
		{"empty type", "/plain", rfc6838.MediaType{}, true},
		{"empty subtype", "text/", rfc6838.MediaType{}, true},
		{"whitespace not trimmed", " text/plain", rfc6838.MediaType{}, true},
		{"invalid type charset", "te xt/plain", rfc6838.MediaType{}, true},
		{"dangling plus", "application/json+", rfc6838.MediaType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rfc6838.ParseMediaType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMediaType() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseMediaType() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMediaType_StructuralErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantReason string
	}{
		{"missing slash", "application.json", "missing delimiter '/' after type"},
		{"missing tree label", "application/.json", "missing tree between '/' and '.'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rfc6838.ParseMediaType(tt.input)
			if err == nil {
				t.Fatal("ParseMediaType() expected error, got nil")
			}

			var parseErr *dxerrors.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *errors.ParseError", err)
			}
			if parseErr.Type != "MediaType" {
				t.Errorf("ParseError.Type = %q, want %q", parseErr.Type, "MediaType")
			}
			if parseErr.Reason != tt.wantReason {
				t.Errorf("ParseError.Reason = %q, want %q", parseErr.Reason, tt.wantReason)
			}
		})
	}
}

func TestParseMediaType_ComponentErrorPropagation(t *testing.T) {
	// A component failure surfaces as that component's ParseError, untouched.
	_, err := rfc6838.ParseMediaType("text/" + strings.Repeat("a", 128))
	if err == nil {
		t.Fatal("ParseMediaType() expected error, got nil")
	}

	var parseErr *dxerrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *errors.ParseError", err)
	}
	if parseErr.Type != "Subtype" {
		t.Errorf("ParseError.Type = %q, want %q", parseErr.Type, "Subtype")
	}
}

func TestMediaType_String(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full form", "application/vnd.api+json", "application/vnd.api+json"},
		{"no tree no suffix", "text/plain", "text/plain"},
		{"suffix only", "image/svg+xml", "image/svg+xml"},
		{"tree only", "application/x.thing", "application/x.thing"},
		{"case normalized", "Application/VND.API+JSON", "application/vnd.api+json"},
		{"parameters dropped", "text/plain; charset=utf-8", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := rfc6838.ParseMediaType(tt.input)
			if err != nil {
				t.Fatalf("ParseMediaType() error = %v", err)
			}
			if got := mt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMediaType_RoundTrip(t *testing.T) {
	// Parsing a canonical string and rendering it back is the identity.
	inputs := []string{
		"text/plain",
		"text/html",
		"application/json",
		"application/vnd.api+json",
		"application/x.thing+xml",
		"image/svg+xml",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			mt, err := rfc6838.ParseMediaType(input)
			if err != nil {
				t.Fatalf("ParseMediaType() error = %v", err)
			}
			if got := mt.String(); got != input {
				t.Errorf("round trip = %q, want %q", got, input)
			}

			// Reparsing the rendered form yields an equal value.
			again, err := rfc6838.ParseMediaType(mt.String())
			if err != nil {
				t.Fatalf("reparse error = %v", err)
			}
			if !again.Equal(mt) {
				t.Errorf("reparse = %+v, want %+v", again, mt)
			}
		})
	}
}

func TestMediaType_Equal(t *testing.T) {
	lower, err := rfc6838.ParseMediaType("text/plain")
	if err != nil {
		t.Fatalf("ParseMediaType() error = %v", err)
	}
	upper, err := rfc6838.ParseMediaType("TEXT/PLAIN")
	if err != nil {
		t.Fatalf("ParseMediaType() error = %v", err)
	}

	if !lower.Equal(upper) {
		t.Error("case variants should parse to equal values")
	}

	withSuffix := rfc6838.MustParse("application/vnd.api+json")
	if withSuffix.Equal(withSuffix.WithoutSuffix()) {
		t.Error("values differing only in suffix should not compare equal")
	}
}

func TestMediaType_WithoutSuffix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips suffix", "application/vnd.api+json", "application/vnd.api"},
		{"no suffix unchanged", "text/plain", "text/plain"},
		{"keeps interior plus", "application/x+y+json", "application/x+y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := rfc6838.MustParse(tt.input)
			if got := mt.WithoutSuffix().String(); got != tt.want {
				t.Errorf("WithoutSuffix().String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMediaType_WithoutSuffix_Immutable(t *testing.T) {
	original := rfc6838.MustParse("application/vnd.api+json")
	_ = original.WithoutSuffix()
	if original.Suffix.IsZero() {
		t.Error("WithoutSuffix() should not mutate the receiver")
	}
}

func TestMediaType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mt      rfc6838.MediaType
		wantErr bool
	}{
		{
			"valid minimal",
			rfc6838.MediaType{Type: "text", Subtype: "plain"},
			false,
		},
		{
			"valid full",
			rfc6838.MediaType{Type: "application", Tree: "vnd.", Subtype: "api", Suffix: "+json"},
			false,
		},
		{"zero value", rfc6838.MediaType{}, true},
		{"missing type", rfc6838.MediaType{Subtype: "plain"}, true},
		{"missing subtype", rfc6838.MediaType{Type: "text"}, true},
		{"invalid type", rfc6838.MediaType{Type: "TEXT", Subtype: "plain"}, true},
		{"invalid tree", rfc6838.MediaType{Type: "text", Tree: "vnd", Subtype: "plain"}, true},
		{"invalid suffix", rfc6838.MediaType{Type: "text", Subtype: "plain", Suffix: "json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mt.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMediaType_IsZero(t *testing.T) {
	if !(rfc6838.MediaType{}).IsZero() {
		t.Error("zero MediaType should report zero")
	}
	if rfc6838.MustParse("text/plain").IsZero() {
		t.Error("parsed MediaType should not report zero")
	}
}

func TestMediaType_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		mt      rfc6838.MediaType
		want    string
		wantErr bool
	}{
		{
			"full form",
			rfc6838.MustParse("application/vnd.api+json"),
			`{"type":"application","tree":"vnd.","subtype":"api","suffix":"+json"}`,
			false,
		},
		{
			"omits absent tree and suffix",
			rfc6838.MustParse("text/plain"),
			`{"type":"text","subtype":"plain"}`,
			false,
		},
		{"invalid zero value", rfc6838.MediaType{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.mt)
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMediaType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    rfc6838.MediaType
		wantErr bool
	}{
		{
			"full form",
			`{"type":"application","tree":"vnd.","subtype":"api","suffix":"+json"}`,
			rfc6838.MustParse("application/vnd.api+json"),
			false,
		},
		{
			"minimal form",
			`{"type":"text","subtype":"plain"}`,
			rfc6838.MustParse("text/plain"),
			false,
		},
		{
			"case variants normalize",
			`{"type":"TEXT","subtype":"PLAIN"}`,
			rfc6838.MustParse("text/plain"),
			false,
		},
		{"missing subtype", `{"type":"text"}`, rfc6838.MediaType{}, true},
		{"invalid tree", `{"type":"text","tree":"vnd","subtype":"plain"}`, rfc6838.MediaType{}, true},
		{"invalid JSON", `not json`, rfc6838.MediaType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got rfc6838.MediaType
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("UnmarshalJSON() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMediaType_JSON_RoundTrip(t *testing.T) {
	original := rfc6838.MustParse("application/vnd.api+json")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded rfc6838.MediaType
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if !decoded.Equal(original) {
		t.Errorf("JSON round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestMediaType_YAML_RoundTrip(t *testing.T) {
	original := rfc6838.MustParse("application/x.thing+xml")

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var decoded rfc6838.MediaType
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if !decoded.Equal(original) {
		t.Errorf("YAML round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestMustParse(t *testing.T) {
	mt := rfc6838.MustParse("text/plain")
	if mt.String() != "text/plain" {
		t.Errorf("MustParse() = %q, want %q", mt.String(), "text/plain")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() should panic on invalid input")
		}
	}()
	rfc6838.MustParse("not a media type")
}

func TestMediaType_TypeName(t *testing.T) {
	if got := (rfc6838.MediaType{}).TypeName(); got != "MediaType" {
		t.Errorf("TypeName() = %q, want %q", got, "MediaType")
	}
}

func TestMediaType_Redacted(t *testing.T) {
	mt := rfc6838.MustParse("text/plain")
	if mt.Redacted() != mt.String() {
		t.Errorf("Redacted() = %q, want %q", mt.Redacted(), mt.String())
	}
}

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
	"strings"
	"testing"

	"dirpx.dev/dxmime/dxcore/model/rfc6838"
)

func TestParameterValue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   rfc6838.ParameterValue
		wantErr bool
	}{
		// Valid values
		{"bare", rfc6838.ParameterValue("utf-8"), false},
		{"bare with dot", rfc6838.ParameterValue("1.0"), false},
		{"quoted", rfc6838.ParameterValue(`"utf-8"`), false},
		{"quoted with space", rfc6838.ParameterValue(`"hello world"`), false},
		{"max length bare", rfc6838.ParameterValue(strings.Repeat("a", 127)), false},

		// Invalid values
		{"empty", rfc6838.ParameterValue(""), true},
		{"over max length", rfc6838.ParameterValue(strings.Repeat("a", 128)), true},
		{"bare with space", rfc6838.ParameterValue("hello world"), true},
		{"bare with semicolon", rfc6838.ParameterValue("utf-8;"), true},
		{"missing trailing quote", rfc6838.ParameterValue(`"utf-8`), true},
		{"lone quote", rfc6838.ParameterValue(`"`), true},
		{"empty quoted", rfc6838.ParameterValue(`""`), true},
		{"interior quote", rfc6838.ParameterValue(`"ut"f-8"`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParameterValue_Value(t *testing.T) {
	tests := []struct {
		name  string
		value rfc6838.ParameterValue
		want  string
	}{
		{"bare", rfc6838.ParameterValue("utf-8"), "utf-8"},
		{"quoted strips quotes", rfc6838.ParameterValue(`"utf-8"`), "utf-8"},
		{"quoted with space", rfc6838.ParameterValue(`"hello world"`), "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Value(); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParameterValue_Equal(t *testing.T) {
	bare := rfc6838.ParameterValue("utf-8")
	quoted := rfc6838.ParameterValue(`"utf-8"`)
	other := rfc6838.ParameterValue("ascii")

	if !bare.Equal(quoted) {
		t.Error("bare and quoted spellings of the same value should compare equal")
	}
	if bare.Equal(other) {
		t.Error("different values should not compare equal")
	}
}

func TestParseParameterValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rfc6838.ParameterValue
		wantErr bool
	}{
		{"bare kept verbatim", "utf-8", rfc6838.ParameterValue("utf-8"), false},
		{"quoted kept verbatim", `"utf-8"`, rfc6838.ParameterValue(`"utf-8"`), false},
		{"case preserved", "UTF-8", rfc6838.ParameterValue("UTF-8"), false},

		{"empty", "", rfc6838.ParameterValue(""), true},
		{"bare with space", "hello world", rfc6838.ParameterValue(""), true},
		{"missing trailing quote", `"utf-8`, rfc6838.ParameterValue(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rfc6838.ParseParameterValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseParameterValue() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseParameterValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

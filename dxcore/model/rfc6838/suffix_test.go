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

func TestSuffix_Validate(t *testing.T) {
	tests := []struct {
		name    string
		suffix  rfc6838.Suffix
		wantErr bool
	}{
		// Valid suffixes
		{"absent (zero)", rfc6838.Suffix(""), false},
		{"json", rfc6838.Suffix("+json"), false},
		{"xml", rfc6838.Suffix("+xml"), false},
		{"zip", rfc6838.Suffix("+zip"), false},
		{"digit second", rfc6838.Suffix("+7z"), false},
		{"max length", rfc6838.Suffix("+" + strings.Repeat("a", 126)), false},

		// Invalid suffixes
		{"single plus", rfc6838.Suffix("+"), true},
		{"missing leading plus", rfc6838.Suffix("json"), true},
		{"second char plus", rfc6838.Suffix("++json"), true},
		{"second char dash", rfc6838.Suffix("+-json"), true},
		{"interior plus", rfc6838.Suffix("+js+on"), true},
		{"interior dot", rfc6838.Suffix("+js.on"), true},
		{"uppercase", rfc6838.Suffix("+JSON"), true},
		{"over max length", rfc6838.Suffix("+" + strings.Repeat("a", 127)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.suffix.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSuffix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rfc6838.Suffix
		wantErr bool
	}{
		{"empty is absent", "", rfc6838.Suffix(""), false},
		{"json", "+json", rfc6838.Suffix("+json"), false},
		{"uppercase folds", "+JSON", rfc6838.Suffix("+json"), false},

		{"missing leading plus", "json", rfc6838.Suffix(""), true},
		{"single plus", "+", rfc6838.Suffix(""), true},
		{"whitespace not trimmed", " +json ", rfc6838.Suffix(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rfc6838.ParseSuffix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSuffix() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSuffix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuffix_IsZero(t *testing.T) {
	if !rfc6838.Suffix("").IsZero() {
		t.Error("empty Suffix should be zero")
	}
	if rfc6838.Suffix("+json").IsZero() {
		t.Error("non-empty Suffix should not be zero")
	}
}

func TestSuffix_Equal(t *testing.T) {
	if !rfc6838.Suffix("").Equal(rfc6838.Suffix("")) {
		t.Error("two absent suffixes should compare equal")
	}
	if rfc6838.Suffix("").Equal(rfc6838.Suffix("+json")) {
		t.Error("absent suffix should not equal a present suffix")
	}
	if !rfc6838.Suffix("+json").Equal(rfc6838.Suffix("+json")) {
		t.Error("equal suffixes should compare equal")
	}
}

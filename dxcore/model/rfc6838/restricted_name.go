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
	stderrors "errors"
	"strings"

	"dirpx.dev/dxmime/dxcore/ascii"
	dxerrors "dirpx.dev/dxmime/dxcore/errors"
)

const (
	// restrictedNameExtra lists the punctuation characters RFC 6838 permits
	// in restricted names (type, subtype, parameter name) beyond
	// alphanumerics.
	restrictedNameExtra = "!#$&-^_.+"

	// modifiedRestrictedNameExtra is restrictedNameExtra without '.' and '+',
	// which act as structural delimiters in tree and suffix positions and
	// therefore cannot appear inside them.
	modifiedRestrictedNameExtra = "!#$&-^_"

	// componentMaxLen is the RFC 6838 upper bound on type and subtype names:
	// both MUST NOT exceed 127 characters.
	componentMaxLen = 127
)

// IsRestrictedName reports whether every character of s is alphanumeric or
// one of '!', '#', '$', '&', '-', '^', '_', '.', '+'.
//
// This is the RFC 6838 restricted-name character set shared by the Type,
// Subtype and ParameterName components (and the bare form of ParameterValue).
// The empty string vacuously satisfies the predicate; length and
// first-character rules are enforced separately by each component's Validate.
func IsRestrictedName(s string) bool {
	for _, r := range s {
		if !ascii.IsAlphanumeric(r) && !strings.ContainsRune(restrictedNameExtra, r) {
			return false
		}
	}
	return true
}

// IsModifiedRestrictedName reports whether every character of s is
// alphanumeric or one of '!', '#', '$', '&', '-', '^', '_'.
//
// Same as IsRestrictedName but excluding '.' and '+', the character set used
// for the interior of the Tree and Suffix components where those two
// characters delimit structure instead of carrying it.
func IsModifiedRestrictedName(s string) bool {
	for _, r := range s {
		if !ascii.IsAlphanumeric(r) && !strings.ContainsRune(modifiedRestrictedNameExtra, r) {
			return false
		}
	}
	return true
}

// lowercase folds ASCII uppercase letters in s to lowercase, leaving every
// other byte untouched. This is the only normalization the package performs;
// input is never trimmed or otherwise repaired.
func lowercase(s string) string {
	return strings.Map(ascii.ToLowercase, s)
}

// violatedRule extracts the violated-rule text from a component validation
// error so that parse failures can repeat it in a self-contained message.
func violatedRule(err error) string {
	var ve *dxerrors.ValidationError
	if stderrors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

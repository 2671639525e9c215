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

// Package ascii provides character classification and case conversion
// predicates over the ASCII range.
//
// All functions operate on runes but only classify within the 7-bit ASCII
// range: runes outside [0, 127] fail every predicate and pass through the
// case conversions unchanged. This makes the package suitable for validating
// protocol identifiers (such as RFC 6838 media type components) where
// non-ASCII input MUST be rejected rather than interpreted.
//
// Every function is pure, allocation-free and safe for concurrent use.
package ascii

// IsDigit reports whether r is a digit [0-9].
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsAlphabeticLowercase reports whether r is a lowercase letter [a-z].
func IsAlphabeticLowercase(r rune) bool { return r >= 'a' && r <= 'z' }

// IsAlphabeticUppercase reports whether r is an uppercase letter [A-Z].
func IsAlphabeticUppercase(r rune) bool { return r >= 'A' && r <= 'Z' }

// IsAlphabetic reports whether r is a letter [a-zA-Z].
func IsAlphabetic(r rune) bool {
	return IsAlphabeticUppercase(r) || IsAlphabeticLowercase(r)
}

// IsAlphanumeric reports whether r is a letter or digit [a-zA-Z0-9].
func IsAlphanumeric(r rune) bool {
	return IsAlphabetic(r) || IsDigit(r)
}

// IsAlphanumericLowercase reports whether r is a lowercase letter or digit [a-z0-9].
func IsAlphanumericLowercase(r rune) bool {
	return IsAlphabeticLowercase(r) || IsDigit(r)
}

// IsAlphanumericUppercase reports whether r is an uppercase letter or digit [A-Z0-9].
func IsAlphanumericUppercase(r rune) bool {
	return IsAlphabeticUppercase(r) || IsDigit(r)
}

// IsHexadecimal reports whether r is a hexadecimal digit [0-9a-fA-F].
func IsHexadecimal(r rune) bool {
	return IsDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

// ToLowercase converts r to lowercase if it is [A-Z]; any other rune is
// returned unchanged.
func ToLowercase(r rune) rune {
	if IsAlphabeticUppercase(r) {
		return r + ('a' - 'A')
	}
	return r
}

// ToUppercase converts r to uppercase if it is [a-z]; any other rune is
// returned unchanged.
func ToUppercase(r rune) rune {
	if IsAlphabeticLowercase(r) {
		return r - ('a' - 'A')
	}
	return r
}

// IsControl reports whether r is an ASCII control character: NUL through
// Unit Separator (0x00-0x1F), or Delete (0x7F).
func IsControl(r rune) bool {
	return (r >= 0 && r <= 0x1f) || r == 0x7f
}

// IsPrintable reports whether r is a printable ASCII character: space,
// letters, digits, or punctuation (0x20-0x7E).
func IsPrintable(r rune) bool { return r >= 0x20 && r <= 0x7e }

// IsGraphical reports whether r is a printable ASCII character other than
// space.
func IsGraphical(r rune) bool { return IsPrintable(r) && r != ' ' }

// IsBlank reports whether r is a space or horizontal tabulation.
func IsBlank(r rune) bool { return r == ' ' || r == '\t' }

// IsSpace reports whether r is ASCII whitespace: space, form feed, newline,
// carriage return, horizontal tabulation or vertical tabulation.
func IsSpace(r rune) bool {
	return (r >= '\t' && r <= '\r') || r == ' '
}

// IsPunctuation reports whether r is one of
// ! " # $ % & ' ( ) * + , - . / : ; < = > ? @ [ \ ] ^ _ ` { | } ~
func IsPunctuation(r rune) bool {
	return (r >= 0x21 && r <= 0x2f) || (r >= 0x3a && r <= 0x40) ||
		(r >= 0x5b && r <= 0x60) || (r >= 0x7b && r <= 0x7e)
}

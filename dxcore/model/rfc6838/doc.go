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

// Package rfc6838 models Internet Media Types as defined by RFC 6838.
//
// A media type string has the canonical form
//
//	type/tree.subtype+suffix
//
// for example "application/vnd.api+json": top-level type "application",
// registration tree "vnd." (the vendor tree), subtype "api" and structured
// syntax suffix "+json". The tree and suffix are optional; "text/plain" has
// the implicit standards tree (empty Tree) and no suffix (zero Suffix).
//
// Each syntactic component is its own validated value type (Type, Tree,
// Subtype, Suffix, plus ParameterName and ParameterValue reserved for future
// parameter support). Components are constructed through ParseX factories
// that fold ASCII case to lowercase and enforce the RFC's length and
// restricted-name character rules; once constructed they are immutable and
// safe for concurrent use. The MediaType aggregate composes the four core
// components, parses raw strings with ParseMediaType, and reproduces the
// canonical string form with String.
//
// Parameters (";name=value" pairs, RFC 2045) are not yet supported:
// ParseMediaType discards everything from the first ';' onward. This is a
// documented limitation, not an error.
//
// All types implement model.Model: validation, JSON and YAML serialization,
// safe logging and zero-value detection follow the same contract as the rest
// of the dxmime domain.
//
// References:
//
//	https://datatracker.ietf.org/doc/html/rfc6838
//	https://datatracker.ietf.org/doc/html/rfc2045#section-5.1 (ABNF)
//	https://datatracker.ietf.org/doc/html/rfc7231#section-3.1.1.1
package rfc6838

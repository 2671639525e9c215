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

// Well-known media types, provided so callers comparing against common
// formats do not have to parse string literals themselves. All values are
// IANA-registered except ApplicationYAML companions noted below.
var (
	// TextPlain is "text/plain", unformatted text.
	TextPlain = MustParse("text/plain")

	// TextHTML is "text/html", HTML documents.
	TextHTML = MustParse("text/html")

	// TextCSV is "text/csv", comma-separated values (RFC 4180).
	TextCSV = MustParse("text/csv")

	// TextMarkdown is "text/markdown", Markdown documents (RFC 7763).
	TextMarkdown = MustParse("text/markdown")

	// ApplicationJSON is "application/json", JSON documents (RFC 8259).
	ApplicationJSON = MustParse("application/json")

	// ApplicationYAML is "application/yaml", YAML documents (RFC 9512).
	ApplicationYAML = MustParse("application/yaml")

	// ApplicationXML is "application/xml", XML documents (RFC 7303).
	ApplicationXML = MustParse("application/xml")

	// ApplicationCBOR is "application/cbor", CBOR payloads (RFC 8949).
	ApplicationCBOR = MustParse("application/cbor")

	// ApplicationPDF is "application/pdf", PDF documents.
	ApplicationPDF = MustParse("application/pdf")

	// ApplicationZip is "application/zip", ZIP archives.
	ApplicationZip = MustParse("application/zip")

	// ApplicationOctetStream is "application/octet-stream", arbitrary
	// binary data.
	ApplicationOctetStream = MustParse("application/octet-stream")

	// ApplicationProblemJSON is "application/problem+json", HTTP problem
	// details (RFC 9457).
	ApplicationProblemJSON = MustParse("application/problem+json")

	// ApplicationVndAPIJSON is "application/vnd.api+json", the JSON:API
	// document format.
	ApplicationVndAPIJSON = MustParse("application/vnd.api+json")

	// ImagePNG is "image/png", PNG images.
	ImagePNG = MustParse("image/png")

	// ImageJPEG is "image/jpeg", JPEG images.
	ImageJPEG = MustParse("image/jpeg")

	// ImageSVG is "image/svg+xml", SVG vector images.
	ImageSVG = MustParse("image/svg+xml")
)

// Package uricodec is a bidirectional codec between structured typed values
// and URI-style string encodings, implementing RFC 6570 variable expansion,
// RFC 1866 form encoding and the OpenAPI 3.0.3 parameter serialization rules
// (style/explode semantics for the simple, form and deepObject styles).
//
// # Overview
//
// The codec is built around two intermediate representations that decouple
// value traversal from string formatting:
//
//   - [Node]: a tree (unset | primitive | array | map) built while walking a
//     typed value on the encode path.
//
//   - [Values]: a flat multimap from parsed keys to raw string values, built
//     while splitting the input on the decode path. Structural
//     reconstruction happens only once the target type is known.
//
// The encode path runs value -> [Encoder] -> [Node] -> serializer -> string;
// the decode path runs string -> parser -> [Values] -> [Decoder] -> value.
//
// # Encoding and decoding
//
//	out, err := uricodec.Encode([]string{"red", "green", "blue"}, "list", uricodec.FormExplode)
//	// out == "list=red&list=green&list=blue"
//
//	var list []string
//	err = uricodec.Decode(&list, "list", "list=red,green,blue", uricodec.FormUnexplode)
//	// list == []string{"red", "green", "blue"}
//
// Struct-like values implement [Encodable] and [Decodable] to describe their
// fields; everything else is handled by a plain type switch, no reflection.
//
// # Configurations
//
// [Config] bundles style, explode and space escaping. The seven standard
// configurations of the OpenAPI matrix are predeclared: [FormExplode],
// [FormUnexplode], [SimpleExplode], [SimpleUnexplode], [FormDataExplode],
// [FormDataUnexplode] and [DeepObjectExplode]. The only injectable extension
// point is the [DateTranscoder]; dates default to ISO 8601.
//
// # Concurrency
//
// Every call constructs its own encoder, serializer, parser and decoder:
// concurrent Encode and Decode calls need no coordination as long as the
// shared [Config] value is not mutated.
//
// # Known asymmetry
//
// An empty array and an empty map both serialize to the empty string under
// the simple style, and an empty simple string decodes back as a one-element
// container holding one empty string. This round-trip asymmetry follows the
// source rules deliberately; see the package tests.
package uricodec

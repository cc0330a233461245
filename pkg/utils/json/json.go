// Package json is the JSON codec used across the module. It is backed by
// sonic and keeps the encoding/json call signatures.
package json

import (
	"github.com/bytedance/sonic"
)

var (
	std = sonic.ConfigStd

	// number keeps numeric literals intact when a document is decoded into
	// interface{} values and encoded again.
	number = sonic.Config{
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
		UseNumber:        true,
	}.Froze()
)

// Marshal returns the JSON encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	return std.Marshal(v)
}

// MarshalIndent is like Marshal but applies Indent to format the output.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return std.MarshalIndent(v, prefix, indent)
}

// MarshalToString returns the JSON encoding of v as a string.
func MarshalToString(v interface{}) (string, error) {
	return std.MarshalToString(v)
}

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v interface{}) error {
	return std.Unmarshal(data, v)
}

// UnmarshalFromString is like Unmarshal but reads from a string.
func UnmarshalFromString(s string, v interface{}) error {
	return std.UnmarshalFromString(s, v)
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return std.Valid(data)
}

// Pretty re-encodes a JSON document with two-space indentation. Numbers are
// carried through as literals so large integers survive unchanged.
func Pretty(data []byte) ([]byte, error) {
	var doc interface{}
	if err := number.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return number.MarshalIndent(doc, "", "  ")
}

// PrettyValue encodes v with two-space indentation.
func PrettyValue(v interface{}) ([]byte, error) {
	return number.MarshalIndent(v, "", "  ")
}

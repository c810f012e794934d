// Package schemes carries the default transliteration table: IAST,
// Harvard-Kyoto and Devanagari, each mapped from SLP1.
//
// The table is embedded into the binary and parsed with package jsonschemes.
// Example usage:
//
//	tl, err := schemes.Default(transliterate.Options{Fallback: "?"})
//	if err != nil {
//		...
//	}
//	s, _ := tl.Convert("rAmaH", transliterate.SLP1, transliterate.IAST) // rāmaḥ
package schemes

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/npillmayer/transliterate"
	"github.com/npillmayer/transliterate/jsonschemes"
)

//go:embed schemes.json
var table []byte

// Table returns a reader for the embedded JSON table document.
func Table() io.Reader {
	return bytes.NewReader(table)
}

// Default compiles the embedded table. Table data is validated on every
// call; clients are expected to compile once and share the result.
func Default(opts transliterate.Options) (*transliterate.Transliterator, error) {
	return jsonschemes.LoadSchemes("default", Table(), opts)
}

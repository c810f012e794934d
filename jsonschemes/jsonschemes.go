/*
Package jsonschemes reads transliteration tables from JSON documents.

A document carries a format version and one entry per scheme:

	{
	  "version": 1,
	  "schemes": {
	    "iast": {
	      "kind": "linear",
	      "vowels": { "a": "a", "A": "ā" },
	      "consonants": { "k": "k", "K": "kh" },
	      "virama": { "": "" }
	    },
	    "dn": {
	      "kind": "abugida",
	      "inherent_vowel": "a",
	      "vowel_signs": { "A": "ा" },
	      "vowels": { "a": "अ", "A": "आ" },
	      "consonants": { "k": "क", "K": "ख" },
	      "virama": { "": "्" }
	    }
	  }
	}

Keys of the group objects are SLP1 tokens, values are the scheme's
renderings. Recognized groups are vowels, yogavaahas, virama, consonants,
symbols, accents, extra_consonants and shortcuts. Unknown fields are rejected.
*/
package jsonschemes

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/transliterate"
)

// Version is the document format version understood by this package.
const Version = 1

func tracer() tracing.Trace {
	return tracing.Select("transliterate.json")
}

type document struct {
	Version int                  `json:"version"`
	Schemes map[string]schemeDoc `json:"schemes"`
}

type schemeDoc struct {
	Kind            string            `json:"kind"`
	InherentVowel   string            `json:"inherent_vowel,omitempty"`
	VowelSigns      map[string]string `json:"vowel_signs,omitempty"`
	Vowels          map[string]string `json:"vowels,omitempty"`
	Yogavaahas      map[string]string `json:"yogavaahas,omitempty"`
	Virama          map[string]string `json:"virama,omitempty"`
	Consonants      map[string]string `json:"consonants,omitempty"`
	Symbols         map[string]string `json:"symbols,omitempty"`
	Accents         map[string]string `json:"accents,omitempty"`
	ExtraConsonants map[string]string `json:"extra_consonants,omitempty"`
	Shortcuts       map[string]string `json:"shortcuts,omitempty"`
}

func (doc schemeDoc) definition(id string) (transliterate.SchemeDefinition, error) {
	kind, err := transliterate.ParseKind(doc.Kind)
	if err != nil {
		return transliterate.SchemeDefinition{}, fmt.Errorf("scheme %q: %w", id, err)
	}
	def := transliterate.SchemeDefinition{
		ID:            transliterate.Scheme(id),
		Kind:          kind,
		VowelSigns:    doc.VowelSigns,
		InherentVowel: doc.InherentVowel,
		Groups: map[transliterate.Group]map[string]string{
			transliterate.Vowels:          doc.Vowels,
			transliterate.Yogavaahas:      doc.Yogavaahas,
			transliterate.Virama:          doc.Virama,
			transliterate.Consonants:      doc.Consonants,
			transliterate.Symbols:         doc.Symbols,
			transliterate.Accents:         doc.Accents,
			transliterate.ExtraConsonants: doc.ExtraConsonants,
			transliterate.Shortcuts:       doc.Shortcuts,
		},
	}
	return def, nil
}

// Reader streams scheme definitions from a JSON table document, in lexical
// order of scheme identifiers. The document is decoded on the first call to
// Next.
type Reader struct {
	input   io.Reader
	doc     *document
	ids     []string
	current int
}

// NewReader creates a Reader for a JSON table document.
func NewReader(input io.Reader) *Reader {
	return &Reader{input: input}
}

// LoadSchemes parses a JSON table document and returns a ready-to-use
// transliterator.
func LoadSchemes(name string, input io.Reader, opts transliterate.Options) (*transliterate.Transliterator, error) {
	return transliterate.LoadSchemes(name, NewReader(input), opts)
}

// Next returns the next scheme definition.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (transliterate.SchemeDefinition, error) {
	if r.doc == nil {
		if err := r.decode(); err != nil {
			return transliterate.SchemeDefinition{}, err
		}
	}
	if r.current >= len(r.ids) {
		return transliterate.SchemeDefinition{}, io.EOF
	}
	id := r.ids[r.current]
	r.current++
	return r.doc.Schemes[id].definition(id)
}

func (r *Reader) decode() error {
	dec := json.NewDecoder(r.input)
	dec.DisallowUnknownFields()
	doc := &document{}
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("decoding JSON scheme table: %w", err)
	}
	if doc.Version != Version {
		return fmt.Errorf("unsupported JSON scheme table version %d, expected %d", doc.Version, Version)
	}
	r.doc = doc
	r.ids = slices.Sorted(maps.Keys(doc.Schemes))
	tracer().Debugf("JSON scheme table with %d schemes", len(r.ids))
	return nil
}

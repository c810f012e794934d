/*
Package yamlschemes reads transliteration tables from YAML documents.

The document layout is the same as for package jsonschemes:

	version: 1
	schemes:
	  hk:
	    kind: linear
	    vowels: { a: a, A: A, f: R }
	    virama: { "": "" }
	    consonants: { k: k, K: kh, z: S }

YAML is convenient for hand-maintained tables, e.g. for schemes added
locally on top of the default table.
*/
package yamlschemes

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/transliterate"
)

// Version is the document format version understood by this package.
const Version = 1

func tracer() tracing.Trace {
	return tracing.Select("transliterate.yaml")
}

type document struct {
	Version int                  `yaml:"version"`
	Schemes map[string]schemeDoc `yaml:"schemes"`
}

type schemeDoc struct {
	Kind            string            `yaml:"kind"`
	InherentVowel   string            `yaml:"inherent_vowel"`
	VowelSigns      map[string]string `yaml:"vowel_signs"`
	Vowels          map[string]string `yaml:"vowels"`
	Yogavaahas      map[string]string `yaml:"yogavaahas"`
	Virama          map[string]string `yaml:"virama"`
	Consonants      map[string]string `yaml:"consonants"`
	Symbols         map[string]string `yaml:"symbols"`
	Accents         map[string]string `yaml:"accents"`
	ExtraConsonants map[string]string `yaml:"extra_consonants"`
	Shortcuts       map[string]string `yaml:"shortcuts"`
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

// Reader streams scheme definitions from a YAML table document, in lexical
// order of scheme identifiers.
type Reader struct {
	input   io.Reader
	doc     *document
	ids     []string
	current int
}

// NewReader creates a Reader for a YAML table document.
func NewReader(input io.Reader) *Reader {
	return &Reader{input: input}
}

// LoadSchemes parses a YAML table document and returns a ready-to-use
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
	dec := yaml.NewDecoder(r.input)
	dec.KnownFields(true)
	doc := &document{}
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return fmt.Errorf("decoding YAML scheme table: empty document")
		}
		return fmt.Errorf("decoding YAML scheme table: %w", err)
	}
	if doc.Version != Version {
		return fmt.Errorf("unsupported YAML scheme table version %d, expected %d", doc.Version, Version)
	}
	r.doc = doc
	r.ids = slices.Sorted(maps.Keys(doc.Schemes))
	tracer().Debugf("YAML scheme table with %d schemes", len(r.ids))
	return nil
}

package transliterate

import (
	"io"
	"testing"
)

type sliceSchemeReader struct {
	entries []SchemeDefinition
	index   int
}

func (r *sliceSchemeReader) Next() (SchemeDefinition, error) {
	if r.index >= len(r.entries) {
		return SchemeDefinition{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}

type failingSchemeReader struct{ err error }

func (r failingSchemeReader) Next() (SchemeDefinition, error) {
	return SchemeDefinition{}, r.err
}

// Test scheme which renders the digraph "kz" differently from "k"+"z".
const testScheme Scheme = "tst"

func testIAST() SchemeDefinition {
	return SchemeDefinition{
		ID:   IAST,
		Kind: Linear,
		Groups: map[Group]map[string]string{
			Vowels: {
				"a": "a", "A": "ā", "i": "i", "I": "ī", "u": "u", "f": "ṛ",
				"x": "ḷ", "e": "e", "E": "ai", "o": "o", "O": "au",
			},
			Yogavaahas: {"M": "ṃ", "H": "ḥ"},
			Virama:     {"": ""},
			Consonants: {
				"k": "k", "K": "kh", "g": "g", "c": "c", "j": "j", "Y": "ñ",
				"t": "t", "d": "d", "n": "n", "p": "p", "b": "b", "m": "m",
				"y": "y", "r": "r", "v": "v", "S": "ś", "z": "ṣ", "s": "s",
				"h": "h", "kz": "kṣ", "jY": "jñ",
			},
			Symbols: {"1": "1", "2": "2", "3": "3", ".": "."},
		},
	}
}

func testDevanagari() SchemeDefinition {
	return SchemeDefinition{
		ID:            Devanagari,
		Kind:          Abugida,
		InherentVowel: "a",
		VowelSigns: map[string]string{
			"A": "ा", "i": "ि", "I": "ी", "u": "ु", "f": "ृ",
			"e": "े", "E": "ै", "o": "ो", "O": "ौ",
		},
		Groups: map[Group]map[string]string{
			Vowels: {
				"a": "अ", "A": "आ", "i": "इ", "I": "ई", "u": "उ", "f": "ऋ",
				"x": "ऌ", "e": "ए", "E": "ऐ", "o": "ओ", "O": "औ",
			},
			Yogavaahas: {"M": "ं", "H": "ः", "M£": "ꣳ"},
			Virama:     {"": "्"},
			Consonants: {
				"k": "क", "K": "ख", "g": "ग", "c": "च", "j": "ज", "Y": "ञ",
				"t": "त", "d": "द", "n": "न", "p": "प", "b": "ब", "m": "म",
				"y": "य", "r": "र", "v": "व", "S": "श", "z": "ष", "s": "स",
				"h": "ह", "kz": "क्ष", "jY": "ज्ञ",
			},
			Symbols: {"1": "१", "2": "२", "3": "३", ".": "।"},
		},
	}
}

func testDigraphScheme() SchemeDefinition {
	return SchemeDefinition{
		ID:   testScheme,
		Kind: Linear,
		Groups: map[Group]map[string]string{
			Vowels:     {"a": "a"},
			Consonants: {"k": "k", "z": "s", "kz": "x"},
		},
	}
}

func testDefinitions() []SchemeDefinition {
	return []SchemeDefinition{testIAST(), testDevanagari(), testDigraphScheme()}
}

func mustLoad(t *testing.T, opts Options, defs ...SchemeDefinition) *Transliterator {
	t.Helper()
	if len(defs) == 0 {
		defs = testDefinitions()
	}
	tl, err := LoadSchemes("test", &sliceSchemeReader{entries: defs}, opts)
	if err != nil {
		t.Fatalf("cannot load test schemes: %v", err)
	}
	return tl
}

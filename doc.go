/*
Package transliterate converts Sanskrit text between romanization schemes and
Devanagari.

All conversions route through SLP1, an ASCII encoding with one token per
phoneme (plus a few digraphs such as "kz" for क्ष). Every other scheme is
described by a table mapping SLP1 tokens to the scheme's rendering, grouped
by phonetic class (vowels, consonants, yogavaahas, virama, symbols, accents,
extra consonants, shortcuts). Tables are compiled once into forward and
reverse maps plus a first-character token index; conversion then uses a
greedy longest-match tokenizer.

Schemes come in two kinds. Linear schemes (IAST, Harvard-Kyoto) substitute
token for token. Abugida schemes (Devanagari) need extra care: a consonant
glyph carries an inherent "a", other vowels are attached as dependent vowel
signs, and a consonant without a vowel is marked by the virama.

Table data is not part of this package. It is fed through a SchemeReader;
package jsonschemes and package yamlschemes parse concrete document formats,
and package schemes carries the default table as an embedded artifact:

	tl, err := schemes.Default(transliterate.Options{})
	...
	s, err := tl.Convert("saMskftam", transliterate.SLP1, transliterate.Devanagari)
	// s == "संस्कृतम्"

A compiled Transliterator is immutable and may be shared between goroutines.

Further Reading

	https://en.wikipedia.org/wiki/SLP1
	https://en.wikipedia.org/wiki/International_Alphabet_of_Sanskrit_Transliteration
	https://github.com/indic-transliteration/common_maps

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package transliterate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transliterate'
func tracer() tracing.Trace {
	return tracing.Select("transliterate")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

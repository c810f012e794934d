package transliterate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// pitchMarks are the combining accent marks removed by FoldAccents:
// combining grave and acute (svarita and udatta in romanized Vedic text) and
// the Devanagari udatta and anudatta.
var pitchMarks = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x0301, Stride: 1},
		{Lo: 0x0951, Hi: 0x0952, Stride: 1},
	},
})

// accentedVowels maps precomposed vowels carrying a pitch accent to the
// plain vowel. ś decomposes to s plus acute too, but it is a letter of its own.
// è and ò denote the short e and o and are not listed.
var accentedVowels = map[rune]rune{
	'á': 'a', 'à': 'a', 'Á': 'A', 'À': 'A',
	'é': 'e', 'É': 'E',
	'í': 'i', 'ì': 'i', 'Í': 'I', 'Ì': 'I',
	'ó': 'o', 'Ó': 'O',
	'ú': 'u', 'ù': 'u', 'Ú': 'U', 'Ù': 'U',
	'ṁ': 'ṃ', 'Ṁ': 'Ṃ', // candrabindu spelling of the anusvara
}

// FoldAccents strips pitch-accent marks from text and folds nasalization
// variants, so that accented input matches the tokens of unaccented input.
//
//	"agním īḷe" => "agnim īḷe"
//	"saṁskṛta"  => "saṃskṛta"
//
// Letters which are renderings of a scheme stay untouched, e.g. "ś", "è"
// and "ò". Invalid UTF-8 is passed through byte by byte, as in Convert.
// FoldAccents is idempotent.
func FoldAccents(text string) string {
	if utf8.ValidString(text) {
		return foldValid(text)
	}
	var out strings.Builder
	out.Grow(len(text))
	for len(text) > 0 {
		n := validPrefix(text)
		out.WriteString(foldValid(text[:n]))
		if n < len(text) {
			out.WriteByte(text[n])
			n++
		}
		text = text[n:]
	}
	return out.String()
}

func foldValid(text string) string {
	// transformers carry state, so every call builds its own chain
	t := transform.Chain(runes.Map(foldRune), runes.Remove(pitchMarks))
	folded, _, err := transform.String(t, text)
	if err != nil {
		tracer().Errorf("folding accents: %v", err)
		return text
	}
	return folded
}

// validPrefix returns the length of the longest valid UTF-8 prefix of s.
func validPrefix(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}

func foldRune(r rune) rune {
	if f, ok := accentedVowels[r]; ok {
		return f
	}
	return r
}

package transliterate

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/transliterate/runemap"
)

// ID of the vowel-suppression mark within a signTable. Vowel signs use IDs
// from 2 upwards; 0 means "not a mark".
const suppressionID = 1

// signTable holds the combining marks of an abugida scheme: dependent vowel
// signs and the vowel-suppression mark. Each mark is a single BMP code point.
type signTable struct {
	signs  map[string]string // SLP1 vowel => dependent vowel sign
	marks  runemap.Paged     // code point => mark ID
	vowels []string          // mark ID => SLP1 vowel
}

func newSignTable(id Scheme, signs map[string]string, suppression string) (*signTable, error) {
	st := &signTable{
		signs:  maps.Clone(signs),
		vowels: []string{"", ""}, // IDs 0 and 1 carry no vowel
	}
	if st.signs == nil {
		st.signs = make(map[string]string)
	}
	r, ok := singleRune(suppression)
	if !ok || !st.marks.Set(r, suppressionID) {
		return nil, errConfig(id, "vowel-suppression mark %q is not a single BMP code point", suppression)
	}
	for _, vowel := range slices.Sorted(maps.Keys(st.signs)) {
		sign := st.signs[vowel]
		r, ok := singleRune(sign)
		if vowel == "" || !ok {
			return nil, errConfig(id, "vowel sign %q for %q is not a single code point", sign, vowel)
		}
		if st.marks.Lookup(r) != 0 {
			return nil, errConfig(id, "vowel sign %q is used more than once", sign)
		}
		st.vowels = append(st.vowels, vowel)
		if !st.marks.Set(r, uint16(len(st.vowels)-1)) {
			return nil, errConfig(id, "vowel sign %q is outside the BMP", sign)
		}
	}
	return st, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return r, false
	}
	return r, true
}

// mark reports whether r is a combining mark of the scheme. For a vowel
// sign it returns the sign's SLP1 vowel, for the suppression mark "".
func (st *signTable) mark(r rune) (string, bool) {
	id := st.marks.Lookup(r)
	if id == 0 {
		return "", false
	}
	return st.vowels[id], true
}

// encodeAbugida converts SLP1 text to an abugida scheme.
//
// A consonant is followed by
//   - nothing, if the next token is the inherent vowel (which is consumed),
//   - a dependent vowel sign, if the next token is a vowel which has one
//     (the vowel is consumed),
//   - the vowel-suppression mark otherwise.
//
// Any other token is written as its independent form.
func (t *Transliterator) encodeAbugida(text string, cs *compiledScheme) string {
	assert(cs.signs != nil, "abugida scheme compiled without sign table")
	var out strings.Builder
	out.Grow(len(text) * 3)
	renders := func(token string) bool {
		_, ok := cs.forward[token]
		return ok
	}
	i := 0
	for i < len(text) {
		match := findLongestMatchFunc(text, i, t.pivotIndex, renders)
		if match == "" {
			i += t.passThrough(&out, text, i)
			continue
		}
		out.WriteString(cs.forward[match])
		i += len(match)
		if !t.classes.consonants[match] {
			continue
		}
		next := findLongestMatchFunc(text, i, t.pivotIndex, renders)
		if next == cs.inherent {
			i += len(next)
			continue
		}
		if t.classes.vowels[next] {
			if sign, ok := cs.signs.signs[next]; ok {
				out.WriteString(sign)
				i += len(next)
				continue
			}
		}
		out.WriteString(cs.forward[""])
	}
	return out.String()
}

// decodeAbugida converts text in an abugida scheme to SLP1.
//
// Base characters are matched against the scheme's renderings. A consonant
// is followed by its dependent vowel sign, by the vowel-suppression mark, or
// by neither, in which case the inherent vowel is restored. Marks without a
// preceding consonant are not part of any rendering and are treated as
// untranslatable.
func (t *Transliterator) decodeAbugida(text string, cs *compiledScheme) string {
	assert(cs.signs != nil, "abugida scheme compiled without sign table")
	var out strings.Builder
	out.Grow(len(text))
	i := 0
	for i < len(text) {
		match := findLongestMatch(text, i, cs.index)
		if match == "" {
			i += t.passThrough(&out, text, i)
			continue
		}
		token := cs.reverse[match]
		out.WriteString(token)
		i += len(match)
		if !t.classes.consonants[token] {
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if vowel, ok := cs.signs.mark(r); ok {
			out.WriteString(vowel) // empty for the suppression mark
			i += size
			continue
		}
		out.WriteString(cs.inherent)
	}
	return out.String()
}

package transliterate

import (
	"strings"
	"unicode/utf8"
)

// convertLinear substitutes every token of text found in index by its
// mapping. Tokens of index without an entry in mapping are skipped during
// matching, so a shorter token may still apply. Untranslatable code points
// are handled by passThrough.
func (t *Transliterator) convertLinear(text string, mapping map[string]string, index tokenIndex) string {
	var out strings.Builder
	out.Grow(len(text))
	mapped := func(token string) bool {
		_, ok := mapping[token]
		return ok
	}
	i := 0
	for i < len(text) {
		match := findLongestMatchFunc(text, i, index, mapped)
		if match == "" {
			i += t.passThrough(&out, text, i)
			continue
		}
		out.WriteString(mapping[match])
		i += len(match)
	}
	return out.String()
}

// passThrough writes the fallback, or the code point at offset unchanged if
// no fallback is configured. It returns the width of the code point in
// bytes. Invalid UTF-8 is passed through one byte at a time.
func (t *Transliterator) passThrough(out *strings.Builder, text string, offset int) int {
	_, size := utf8.DecodeRuneInString(text[offset:])
	if t.options.Fallback != "" {
		out.WriteString(t.options.Fallback)
	} else {
		out.WriteString(text[offset : offset+size])
	}
	return size
}

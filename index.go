package transliterate

import (
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// tokenIndex groups registered tokens by their first code point. Every
// candidate list is sorted by byte length, descending, so that scanning it
// front to back yields the longest match first.
type tokenIndex map[rune][]string

// IndexStats reports density metrics for a token index.
type IndexStats struct {
	Tokens       int // number of distinct tokens
	Buckets      int // number of distinct first code points
	MaxBucket    int // largest candidate list
	LongestToken int // in bytes
}

// AvgCandidates is the mean number of candidates a lookup has to scan.
func (s IndexStats) AvgCandidates() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Tokens) / float64(s.Buckets)
}

// tokenRegistry collects tokens for an index. Tokens may be registered more
// than once (the pivot tokens are shared by all schemes); the trie keeps a
// single entry per token.
type tokenRegistry struct {
	tr *trie.Trie
}

func newTokenRegistry() *tokenRegistry {
	return &tokenRegistry{tr: trie.New()}
}

// Add registers a non-empty token. It reports whether the token was new.
func (reg *tokenRegistry) Add(token string) bool {
	if token == "" {
		return false
	}
	if _, found := reg.tr.Find(token); found {
		return false
	}
	reg.tr.Add(token, utf8.RuneCountInString(token))
	return true
}

// Freeze builds the first-character index from all registered tokens.
func (reg *tokenRegistry) Freeze() tokenIndex {
	index := make(tokenIndex)
	for _, key := range reg.tr.Keys() {
		first, _ := utf8.DecodeRuneInString(key)
		index[first] = append(index[first], key)
	}
	for _, candidates := range index {
		sort.Slice(candidates, func(i, j int) bool {
			if len(candidates[i]) != len(candidates[j]) {
				return len(candidates[i]) > len(candidates[j])
			}
			return candidates[i] < candidates[j]
		})
	}
	return index
}

func (index tokenIndex) Stats() IndexStats {
	stats := IndexStats{Buckets: len(index)}
	for _, candidates := range index {
		stats.Tokens += len(candidates)
		stats.MaxBucket = max(stats.MaxBucket, len(candidates))
		if len(candidates) > 0 {
			// longest candidate is first
			stats.LongestToken = max(stats.LongestToken, len(candidates[0]))
		}
	}
	return stats
}

// findLongestMatch returns the longest token of index which is a prefix of
// text[offset:], or "" if there is none.
func findLongestMatch(text string, offset int, index tokenIndex) string {
	return findLongestMatchFunc(text, offset, index, nil)
}

// findLongestMatchFunc is findLongestMatch restricted to candidates accepted
// by accept. A nil accept admits every candidate.
func findLongestMatchFunc(text string, offset int, index tokenIndex, accept func(string) bool) string {
	if offset >= len(text) {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(text[offset:])
	candidates, ok := index[first]
	if !ok {
		return ""
	}
	rest := text[offset:]
	for _, token := range candidates {
		if len(token) > len(rest) || rest[:len(token)] != token {
			continue
		}
		if accept == nil || accept(token) {
			return token
		}
	}
	return ""
}

package transliterate

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Options provides user-configurable options for transliteration.
type Options struct {
	// Fallback is written for every code point which cannot be
	// transliterated. If empty, the original code point is retained.
	Fallback string
	// Classifier is the scheme whose groups define which SLP1 tokens are
	// vowels and consonants. Defaults to IAST.
	Classifier Scheme
}

// Transliterator converts text between compiled schemes. It is immutable
// after LoadSchemes returns and safe for concurrent use.
type Transliterator struct {
	Identifier string // identifies the table the transliterator was built from
	options    Options
	schemes    map[Scheme]*compiledScheme
	pivotIndex tokenIndex // SLP1 tokens of all schemes, for encoding
	classes    pivotClasses
}

// LoadSchemes compiles scheme definitions from a streaming, format-agnostic
// source.
//
// Parsing of table documents is intentionally outside the base package. Use
// adapters like package jsonschemes to parse concrete formats and feed this
// API. The classifier scheme (see Options) must be among the definitions,
// otherwise a *ConfigurationError is returned.
func LoadSchemes(name string, reader SchemeReader, opts Options) (*Transliterator, error) {
	if opts.Classifier == "" {
		opts.Classifier = IAST
	}
	t := &Transliterator{
		Identifier: fmt.Sprintf("schemes: %s", name),
		options:    opts,
		schemes:    make(map[Scheme]*compiledScheme),
	}
	pivot := newTokenRegistry()
	classified := false
	for {
		def, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading scheme definitions from %s: %w", name, err)
		}
		if def.ID == "" || def.ID == SLP1 {
			return nil, errConfig(def.ID, "invalid scheme identifier")
		}
		if _, dup := t.schemes[def.ID]; dup {
			return nil, errConfig(def.ID, "scheme defined more than once")
		}
		cs, err := compileScheme(def, pivot)
		if err != nil {
			return nil, err
		}
		t.schemes[def.ID] = cs
		if def.ID == opts.Classifier {
			t.classes = classify(def)
			classified = true
		}
	}
	if !classified {
		return nil, errConfig(opts.Classifier, "classifier scheme is missing, cannot classify pivot tokens")
	}
	for _, id := range slices.Sorted(maps.Keys(t.schemes)) {
		if err := t.schemes[id].checkClasses(t.classes); err != nil {
			return nil, err
		}
	}
	t.pivotIndex = pivot.Freeze()
	for _, id := range t.Schemes() {
		stats, _ := t.IndexStats(id)
		tracer().Infof("token index %s: tokens=%d buckets=%d max-bucket=%d longest=%d avg=%.2f",
			id, stats.Tokens, stats.Buckets, stats.MaxBucket, stats.LongestToken, stats.AvgCandidates())
	}
	return t, nil
}

// Convert converts text from scheme source to scheme target.
//
// Conversion is routed through SLP1. Untranslatable code points are passed
// through or replaced by the fallback (see Options); they never cause an
// error. Unregistered schemes result in an *UnsupportedSchemeError. If source
// and target are equal, text is returned unchanged.
func (t *Transliterator) Convert(text string, source, target Scheme) (string, error) {
	if source == target {
		return text, nil
	}
	src, err := t.lookup(source, "source")
	if err != nil {
		return "", err
	}
	dst, err := t.lookup(target, "target")
	if err != nil {
		return "", err
	}
	pivotText := text
	if src != nil {
		switch src.kind {
		case Abugida:
			pivotText = t.decodeAbugida(text, src)
		default:
			pivotText = t.convertLinear(text, src.reverse, src.index)
		}
	}
	if dst == nil {
		return pivotText, nil
	}
	switch dst.kind {
	case Abugida:
		return t.encodeAbugida(pivotText, dst), nil
	default:
		return t.convertLinear(pivotText, dst.forward, t.pivotIndex), nil
	}
}

// ConvertNormalized is Convert applied to text with accents folded (see
// FoldAccents). Folding is skipped for SLP1 input, where accent marks are
// regular tokens.
func (t *Transliterator) ConvertNormalized(text string, source, target Scheme) (string, error) {
	if source != SLP1 {
		text = FoldAccents(text)
	}
	return t.Convert(text, source, target)
}

// lookup returns the compiled scheme for id, or nil for SLP1.
func (t *Transliterator) lookup(id Scheme, role string) (*compiledScheme, error) {
	if id == SLP1 {
		return nil, nil
	}
	cs, ok := t.schemes[id]
	if !ok {
		return nil, &UnsupportedSchemeError{Scheme: id, Role: role}
	}
	return cs, nil
}

// Schemes returns the registered schemes in lexical order, including SLP1.
func (t *Transliterator) Schemes() []Scheme {
	ids := slices.Collect(maps.Keys(t.schemes))
	ids = append(ids, SLP1)
	slices.Sort(ids)
	return ids
}

// Kind returns the kind of a registered scheme. SLP1 is Linear.
func (t *Transliterator) Kind(id Scheme) (Kind, error) {
	cs, err := t.lookup(id, "")
	if err != nil || cs == nil {
		return Linear, err
	}
	return cs.kind, nil
}

// IndexStats reports metrics of a scheme's decoding index. For SLP1 the
// shared encoding index is reported.
func (t *Transliterator) IndexStats(id Scheme) (IndexStats, error) {
	cs, err := t.lookup(id, "")
	if err != nil {
		return IndexStats{}, err
	}
	if cs == nil {
		return t.pivotIndex.Stats(), nil
	}
	return cs.index.Stats(), nil
}

// Collisions lists the reverse-map entries dropped for a scheme because
// their rendering had already been claimed by another SLP1 token.
func (t *Transliterator) Collisions(id Scheme) []Collision {
	cs, ok := t.schemes[id]
	if !ok {
		return nil
	}
	return slices.Clone(cs.collisions)
}

package transliterate

import (
	"maps"
	"slices"
)

// compiledScheme is the frozen, read-only form of a SchemeDefinition.
type compiledScheme struct {
	id         Scheme
	kind       Kind
	forward    map[string]string // SLP1 token => rendering
	reverse    map[string]string // rendering => SLP1 token
	index      tokenIndex        // renderings, for decoding
	signs      *signTable        // Abugida only
	inherent   string            // Abugida only
	collisions []Collision
}

// Collision records a rendering claimed by more than one SLP1 token of a
// scheme. Reverse maps keep the token registered first (in group order,
// then lexical order of SLP1 tokens within a group); later claims are
// dropped. Note that this is first-wins, not last-wins: a shortcut never
// shadows the regular token for the same rendering when decoding, as
// shortcuts are registered last. Shortcuts still apply when encoding.
type Collision struct {
	Rendering string
	Kept      string
	Dropped   string
}

// pivotClasses holds the classification of SLP1 tokens. Classification is a
// property of the pivot token and is shared by all schemes.
type pivotClasses struct {
	vowels     map[string]bool
	consonants map[string]bool // including extra consonants
}

func classify(def SchemeDefinition) pivotClasses {
	c := pivotClasses{
		vowels:     make(map[string]bool),
		consonants: make(map[string]bool),
	}
	for token := range def.Groups[Vowels] {
		c.vowels[token] = true
	}
	for token := range def.Groups[Consonants] {
		c.consonants[token] = true
	}
	for token := range def.Groups[ExtraConsonants] {
		c.consonants[token] = true
	}
	return c
}

// compileScheme builds forward and reverse maps and the decoding index for
// one scheme definition. All SLP1 tokens of the scheme are registered with
// pivot, which collects the encoding index shared by all schemes.
func compileScheme(def SchemeDefinition, pivot *tokenRegistry) (*compiledScheme, error) {
	if def.Kind != Linear && def.Kind != Abugida {
		return nil, errConfig(def.ID, "invalid scheme kind %s", def.Kind)
	}
	for g := range def.Groups {
		if g < 0 || g >= numGroups {
			return nil, errConfig(def.ID, "invalid token group %s", g)
		}
	}
	cs := &compiledScheme{
		id:      def.ID,
		kind:    def.Kind,
		forward: make(map[string]string),
		reverse: make(map[string]string),
	}
	renderings := newTokenRegistry()
	owner := make(map[string]Group)
	for g := Vowels; g < numGroups; g++ {
		group := def.Groups[g]
		for _, token := range slices.Sorted(maps.Keys(group)) {
			rendering := group[token]
			if token == "" && g != Virama {
				return nil, errConfig(def.ID, "empty token in group %s", g)
			}
			if prev, dup := owner[token]; dup {
				return nil, errConfig(def.ID, "token %q appears in groups %s and %s", token, prev, g)
			}
			owner[token] = g
			cs.forward[token] = rendering
			if token == "" {
				continue // suppression mark
			}
			pivot.Add(token)
			if rendering == "" {
				continue
			}
			if kept, taken := cs.reverse[rendering]; taken {
				tracer().Debugf("scheme %s: rendering %q claimed by %q and %q, keeping %q",
					def.ID, rendering, kept, token, kept)
				cs.collisions = append(cs.collisions, Collision{
					Rendering: rendering,
					Kept:      kept,
					Dropped:   token,
				})
				continue
			}
			cs.reverse[rendering] = token
			renderings.Add(rendering)
		}
	}
	cs.index = renderings.Freeze()
	if def.Kind == Abugida {
		if err := cs.compileAbugida(def, owner); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func (cs *compiledScheme) compileAbugida(def SchemeDefinition, owner map[string]Group) error {
	mark, ok := cs.forward[""]
	if !ok || mark == "" {
		return errConfig(def.ID, "abugida scheme requires a vowel-suppression mark in group %s", Virama)
	}
	if def.InherentVowel == "" {
		return errConfig(def.ID, "abugida scheme requires an inherent vowel")
	}
	if g, ok := owner[def.InherentVowel]; !ok || g != Vowels {
		return errConfig(def.ID, "inherent vowel %q is not a vowel of this scheme", def.InherentVowel)
	}
	if _, ok := def.VowelSigns[def.InherentVowel]; ok {
		return errConfig(def.ID, "inherent vowel %q must not have a vowel sign", def.InherentVowel)
	}
	signs, err := newSignTable(def.ID, def.VowelSigns, mark)
	if err != nil {
		return err
	}
	cs.signs = signs
	cs.inherent = def.InherentVowel
	return nil
}

// checkClasses verifies that an abugida scheme's vowel signs and inherent
// vowel are classified as vowels; otherwise the encoder would never use them.
func (cs *compiledScheme) checkClasses(classes pivotClasses) error {
	if cs.kind != Abugida {
		return nil
	}
	if !classes.vowels[cs.inherent] {
		return errConfig(cs.id, "inherent vowel %q is not classified as a vowel", cs.inherent)
	}
	for _, vowel := range slices.Sorted(maps.Keys(cs.signs.signs)) {
		if !classes.vowels[vowel] {
			return errConfig(cs.id, "vowel sign for %q, which is not classified as a vowel", vowel)
		}
	}
	return nil
}

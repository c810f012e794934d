package transliterate

import "fmt"

// Scheme identifies a transliteration scheme, e.g. "iast".
type Scheme string

// Schemes of the default table. SLP1 is the pivot encoding and is always
// registered, independent of table contents.
const (
	SLP1       Scheme = "slp1"
	IAST       Scheme = "iast"
	HK         Scheme = "hk"
	Devanagari Scheme = "dn"
)

// Kind selects the conversion algorithm used for a scheme.
type Kind int8

const (
	// Linear schemes substitute token for token.
	Linear Kind = iota
	// Abugida schemes attach vowels to consonants as dependent signs and
	// mark vowel-less consonants with a suppression mark.
	Abugida
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Abugida:
		return "abugida"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps the textual kind of a table document to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "abugida":
		return Abugida, nil
	}
	return Linear, fmt.Errorf("unknown scheme kind %q", s)
}

// Group is the phonetic class of a token.
type Group int8

// Groups, in registration order. The order decides which pivot token wins
// when two of them share a rendering (see Collision).
const (
	Vowels Group = iota
	Yogavaahas
	Virama
	Consonants
	Symbols
	Accents
	ExtraConsonants
	Shortcuts
	numGroups
)

var groupNames = [numGroups]string{
	"vowels", "yogavaahas", "virama", "consonants",
	"symbols", "accents", "extra_consonants", "shortcuts",
}

func (g Group) String() string {
	if g < 0 || g >= numGroups {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// ParseGroup maps a group name of a table document to a Group.
func ParseGroup(name string) (Group, error) {
	for g, n := range groupNames {
		if n == name {
			return Group(g), nil
		}
	}
	return -1, fmt.Errorf("unknown token group %q", name)
}

// SchemeDefinition is the uncompiled table for one scheme. Groups map SLP1
// tokens to the scheme's rendering. The empty SLP1 token is reserved for the
// Virama group and renders the vowel-suppression mark.
//
// VowelSigns and InherentVowel are used by Abugida schemes only: VowelSigns
// maps SLP1 vowel tokens to the dependent sign attached to a consonant,
// InherentVowel is the SLP1 vowel implied by a bare consonant glyph.
type SchemeDefinition struct {
	ID            Scheme
	Kind          Kind
	Groups        map[Group]map[string]string
	VowelSigns    map[string]string
	InherentVowel string
}

// SchemeReader yields scheme definitions one-by-one.
// It should return io.EOF when the stream is exhausted.
type SchemeReader interface {
	Next() (SchemeDefinition, error)
}

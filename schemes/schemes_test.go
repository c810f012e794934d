package schemes

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tl "github.com/npillmayer/transliterate"
	"github.com/npillmayer/transliterate/jsonschemes"
)

func mustDefault(t *testing.T, opts tl.Options) *tl.Transliterator {
	t.Helper()
	tr, err := Default(opts)
	if err != nil {
		t.Fatalf("cannot compile default table: %v", err)
	}
	return tr
}

func TestDefaultConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "transliterate")
	defer teardown()
	//
	tr := mustDefault(t, tl.Options{})
	tests := []struct {
		name           string
		text           string
		source, target tl.Scheme
		want           string
	}{
		{"SLP1 to IAST", "saMskfta", tl.SLP1, tl.IAST, "saṃskṛta"},
		{"SLP1 to IAST with hyphen", "saMskfta-BAzA", tl.SLP1, tl.IAST, "saṃskṛta-bhāṣā"},
		{"SLP1 to HK", "saMskfta", tl.SLP1, tl.HK, "saMskRta"},
		{"SLP1 to Devanagari", "saMskftam", tl.SLP1, tl.Devanagari, "संस्कृतम्"},
		{"SLP1 to Devanagari complex", "rAmaH kfzRaSca", tl.SLP1, tl.Devanagari, "रामः कृष्णश्च"},
		{"SLP1 to Devanagari vowel start", "indra", tl.SLP1, tl.Devanagari, "इन्द्र"},
		{"IAST to SLP1", "saṃskṛta", tl.IAST, tl.SLP1, "saMskfta"},
		{"HK to SLP1", "saMskRta", tl.HK, tl.SLP1, "saMskfta"},
		{"Devanagari to SLP1", "संस्कृतम्", tl.Devanagari, tl.SLP1, "saMskftam"},
		{"Devanagari to SLP1 complex", "रामः कृष्णश्च", tl.Devanagari, tl.SLP1, "rAmaH kfzRaSca"},
		{"Devanagari to SLP1 vowel start", "इन्द्र", tl.Devanagari, tl.SLP1, "indra"},
		{"IAST to Devanagari", "saṃskṛtam", tl.IAST, tl.Devanagari, "संस्कृतम्"},
		{"Devanagari to HK", "संस्कृतम्", tl.Devanagari, tl.HK, "saMskRtam"},
		{"HK to IAST", "saMskRta", tl.HK, tl.IAST, "saṃskṛta"},
		{"IAST to IAST", "saṃskṛta", tl.IAST, tl.IAST, "saṃskṛta"},
		{"SLP1 to SLP1", "saMskfta", tl.SLP1, tl.SLP1, "saMskfta"},
		{"empty string", "", tl.SLP1, tl.IAST, ""},
		{"unmapped characters", "abc_123", tl.SLP1, tl.IAST, "abc_123"},
		{"IAST diphthongs", "kailāsa gauḍa", tl.IAST, tl.SLP1, "kElAsa gOqa"},
		{"HK retroflex and sibilants", "kRSNaH", tl.HK, tl.SLP1, "kfzRaH"},
		{"Devanagari digits and danda", "१२३ ।", tl.Devanagari, tl.SLP1, "123 ."},
		{"double danda", "..", tl.SLP1, tl.Devanagari, "॥"},
		{"om", "AUM", tl.SLP1, tl.Devanagari, "ॐ"},
		{"avagraha", "so'ham", tl.SLP1, tl.Devanagari, "सोऽहम्"},
		{"nukta consonant", "Q0a", tl.SLP1, tl.Devanagari, "\u0922\u093c"},
		{"decomposed nukta consonant", "\u0922\u093c\u093f", tl.Devanagari, tl.SLP1, "Q0i"},
		{"precomposed nukta consonant", "\u0958", tl.Devanagari, tl.SLP1, "k0a"},
		{"short e sign", "kèt", tl.SLP1, tl.Devanagari, "कॆत्"},
		{"accent mark", "a\\gni", tl.SLP1, tl.Devanagari, "अ॒ग्नि"},
	}
	for _, tt := range tests {
		got, err := tr.Convert(tt.text, tt.source, tt.target)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Convert(%q) = %q, want %q", tt.name, tt.text, got, tt.want)
		}
	}
}

func TestDefaultFallback(t *testing.T) {
	tr := mustDefault(t, tl.Options{Fallback: "?"})
	tests := []struct {
		text           string
		source, target tl.Scheme
		want           string
	}{
		{"abc_123", tl.SLP1, tl.IAST, "abc?123"},
		{"अ_ब", tl.Devanagari, tl.SLP1, "a?ba"},
	}
	for _, tt := range tests {
		got, err := tr.Convert(tt.text, tt.source, tt.target)
		if err != nil || got != tt.want {
			t.Errorf("Convert(%q) = %q, %v; want %q", tt.text, got, err, tt.want)
		}
	}
}

func TestDefaultUnsupported(t *testing.T) {
	tr := mustDefault(t, tl.Options{})
	var uerr *tl.UnsupportedSchemeError
	if _, err := tr.Convert("test", "unsupported", tl.IAST); !errors.As(err, &uerr) || uerr.Role != "source" {
		t.Errorf("expected unsupported source, got %v", err)
	}
	if _, err := tr.Convert("test", tl.IAST, "unsupported"); !errors.As(err, &uerr) || uerr.Role != "target" {
		t.Errorf("expected unsupported target, got %v", err)
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	tr := mustDefault(t, tl.Options{})
	words := []string{
		"saMskftam", "rAmaH kfzRaSca", "indra", "agnimIqe purohitam",
		"jYAnam", "kzatriya", "AUM namaH SivAya", "devO", "so'ham",
	}
	for _, target := range []tl.Scheme{tl.IAST, tl.HK, tl.Devanagari} {
		for _, w := range words {
			out, err := tr.Convert(w, tl.SLP1, target)
			if err != nil {
				t.Fatal(err)
			}
			back, err := tr.Convert(out, target, tl.SLP1)
			if err != nil {
				t.Fatal(err)
			}
			if back != w {
				t.Errorf("round trip via %s: %q => %q => %q", target, w, out, back)
			}
		}
	}
}

func TestDefaultNormalized(t *testing.T) {
	tr := mustDefault(t, tl.Options{})
	tests := []struct {
		text           string
		source, target tl.Scheme
		want           string
	}{
		{"agním īḍe puróhitaṃ", tl.IAST, tl.Devanagari, "अग्निम् ईडे पुरोहितं"},
		{"śivaḥ", tl.IAST, tl.SLP1, "SivaH"},
		{"śívaḥ", tl.IAST, tl.SLP1, "SivaH"},
		{"kṛṣṇá", tl.IAST, tl.HK, "kRSNa"},
		{"अ॑ग्नि॒", tl.Devanagari, tl.SLP1, "agni"},
		{"x\xffy", tl.IAST, tl.SLP1, "x\xffy"},
	}
	for _, tt := range tests {
		got, err := tr.ConvertNormalized(tt.text, tt.source, tt.target)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ConvertNormalized(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// Folding must never alter a rendering of the default table. Accent groups
// are exempt, their marks are what folding removes.
func TestFoldingKeepsRenderings(t *testing.T) {
	r := jsonschemes.NewReader(Table())
	for {
		def, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		for g, group := range def.Groups {
			if g == tl.Accents {
				continue
			}
			for token, rendering := range group {
				if folded := tl.FoldAccents(rendering); folded != rendering {
					t.Errorf("%s %s %q: rendering %q folds to %q", def.ID, g, token, rendering, folded)
				}
			}
		}
		for vowel, sign := range def.VowelSigns {
			if folded := tl.FoldAccents(sign); folded != sign {
				t.Errorf("%s vowel sign for %q folds to %q", def.ID, vowel, folded)
			}
		}
	}
}

func TestDefaultTableIsConsistent(t *testing.T) {
	tr := mustDefault(t, tl.Options{})
	for _, id := range tr.Schemes() {
		if c := tr.Collisions(id); len(c) != 0 {
			t.Errorf("scheme %s has reverse-map collisions: %v", id, c)
		}
	}
	if k, _ := tr.Kind(tl.Devanagari); k != tl.Abugida {
		t.Errorf("expected Devanagari to be an abugida, is %s", k)
	}
	stats, err := tr.IndexStats(tl.SLP1)
	if err != nil || stats.LongestToken != len("AUM") {
		t.Errorf("unexpected pivot index stats %+v, %v", stats, err)
	}
}

package runemap

import "testing"

func TestPagedSetAndLookup(t *testing.T) {
	var m Paged
	if !m.Set('ा', 1) || !m.Set('्', 2) {
		t.Fatalf("expected BMP code points to be accepted")
	}
	if id := m.Lookup('ा'); id != 1 {
		t.Fatalf("expected id 1 for vowel sign, got %d", id)
	}
	if id := m.Lookup('्'); id != 2 {
		t.Fatalf("expected id 2 for virama, got %d", id)
	}
	if id := m.Lookup('क'); id != 0 {
		t.Fatalf("expected unmapped consonant, got %d", id)
	}
	if m.NumPages() != 1 {
		t.Fatalf("Devanagari should occupy one page, got %d", m.NumPages())
	}
}

func TestPagedUnpopulatedPage(t *testing.T) {
	var m Paged
	m.Set('a', 7)
	if id := m.Lookup('ā'); id != 0 {
		t.Fatalf("lookup in absent page should be 0, got %d", id)
	}
	if m.Set('ā', 0); m.NumPages() != 1 {
		t.Fatalf("clearing in an absent page must not allocate, pages=%d", m.NumPages())
	}
}

func TestPagedRejectsNonBMP(t *testing.T) {
	var m Paged
	if m.Set('𑀅', 3) {
		t.Fatalf("expected non-BMP code point to be rejected")
	}
	if id := m.Lookup('𑀅'); id != 0 {
		t.Fatalf("expected 0 for non-BMP lookup, got %d", id)
	}
}

func TestPagedClear(t *testing.T) {
	var m Paged
	m.Set('ि', 4)
	m.Set('ि', 0)
	if id := m.Lookup('ि'); id != 0 {
		t.Fatalf("expected cleared entry, got %d", id)
	}
}

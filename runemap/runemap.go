/*
Package runemap provides a compact lookup table from BMP code points to small
dense IDs.

It is used by the abugida decoder to recognize combining marks (dependent vowel
signs and the vowel-suppression mark) which always occur as single code points
following a base character.
*/
package runemap

// Paged maps BMP code points (0..65535) to dense IDs (uint16).
// It's a two-level page table:
//   - top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads. A script block like Devanagari
// (U+0900..U+097F) occupies a single page of 512 bytes.
//
// ID 0 means "not mapped".
type Paged struct {
	top   [256]uint16 // page index (1-based); 0 means none
	pages []uint16    // flat: NumPages*256
}

// Lookup returns the dense ID for r, or 0 if r is absent or outside the BMP.
func (m *Paged) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	hi := uint16(r) >> 8
	pi := m.top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *Paged) NumPages() int { return len(m.pages) >> 8 }

func (m *Paged) ensurePage(hi uint16) uint16 {
	pi := m.top[hi]
	if pi != 0 {
		return pi
	}
	m.pages = append(m.pages, make([]uint16, 256)...)
	pi = uint16(len(m.pages) >> 8) // number of pages, 1-based index
	m.top[hi] = pi
	return pi
}

// Set sets mapping r -> id (id may be 0 to clear). It returns false if r is
// not a BMP code point.
func (m *Paged) Set(r rune, id uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := uint16(r) >> 8
	pi := m.top[hi]
	if pi == 0 {
		if id == 0 {
			return true
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << 8
	m.pages[base+int(r&0xFF)] = id
	return true
}

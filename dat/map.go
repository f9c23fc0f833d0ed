package dat

// Alphabet maps BMP code points (0..0xFFFF) to dense alphabet IDs.
// It's a two-level page table:
//   - top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - pages is a flat array of NumPages*256 entries.
//
// A Tamil table touches only a handful of pages (ASCII, general punctuation
// and the Tamil block U+0B80..U+0BFF), so it stays at a few KB.
type Alphabet struct {
	top   [256]uint16
	pages []uint16
}

// Dense returns the dense alphabet ID for r, 0 if absent or outside the BMP.
func (m *Alphabet) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.top[r>>8]
	if pi == 0 {
		return 0
	}
	return m.pages[int(pi-1)<<8+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *Alphabet) NumPages() int { return len(m.pages) >> 8 }

// Set maps r to dense (dense may be 0 to clear). It reports false for code
// points outside the BMP.
func (m *Alphabet) Set(r rune, dense uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := r >> 8
	pi := m.top[hi]
	if pi == 0 {
		if dense == 0 {
			return true
		}
		m.pages = append(m.pages, make([]uint16, 256)...)
		pi = uint16(len(m.pages) >> 8)
		m.top[hi] = pi
	}
	m.pages[int(pi-1)<<8+int(r&0xFF)] = dense
	return true
}

package tamilbraille

import "fmt"

const absentCells = 0xFF
const initialCellStoreSlots = 2 // include slot 0 + root slot

// cellStore keeps the cell lists of table entries directly indexed by trie
// state. Each cell is stored as one byte, so a row of the store holds at
// most width cells.
type cellStore struct {
	width   uint8
	length  []uint8 // will grow with demand
	payload []byte  // will grow with demand
}

func packCells(cells []Dots) ([]byte, error) {
	if len(cells) >= absentCells {
		return nil, fmt.Errorf("too many cells for one entry: %d", len(cells))
	}
	packed := make([]byte, len(cells))
	for i, d := range cells {
		if !d.Valid() {
			return nil, fmt.Errorf("cell %d is not a six-dot pattern: %#x", i, uint8(d))
		}
		packed[i] = byte(d)
	}
	return packed, nil
}

func newCellStore(maxCells uint8) *cellStore {
	s := &cellStore{
		width:   maxCells,
		length:  make([]uint8, initialCellStoreSlots),
		payload: make([]byte, initialCellStoreSlots*int(maxCells)),
	}
	for i := range s.length {
		s.length[i] = absentCells
	}
	return s
}

func (s *cellStore) ensure(pos int) {
	if pos < len(s.length) {
		return
	}
	grow := pos + 1 - len(s.length)
	old := len(s.length)
	s.length = append(s.length, make([]uint8, grow)...)
	for i := old; i < len(s.length); i++ {
		s.length[i] = absentCells
	}
	if s.width > 0 {
		s.payload = append(s.payload, make([]byte, grow*int(s.width))...)
	}
}

// Put stores the cells of the entry at trie state pos.
func (s *cellStore) Put(pos int, cells []Dots) error {
	packed, err := packCells(cells)
	if err != nil {
		return err
	}
	return s.PutPacked(pos, packed)
}

// PutPacked stores already-packed cells at trie state pos.
func (s *cellStore) PutPacked(pos int, packed []byte) error {
	if pos <= 0 {
		return fmt.Errorf("illegal trie position: %d", pos)
	}
	if len(packed) > int(s.width) {
		return fmt.Errorf("entry too large: %d cells, store width %d", len(packed), s.width)
	}
	s.ensure(pos)
	s.length[pos] = uint8(len(packed))
	base := pos * int(s.width)
	copy(s.payload[base:base+len(packed)], packed)
	return nil
}

// Cells returns a copy of the cells stored at trie state pos. The boolean
// result is false if pos does not terminate a key.
func (s *cellStore) Cells(pos int) ([]Dots, bool) {
	if pos < 0 || pos >= len(s.length) {
		return nil, false
	}
	n := s.length[pos]
	if n == absentCells {
		return nil, false
	}
	base := pos * int(s.width)
	cells := make([]Dots, n)
	for i, b := range s.payload[base : base+int(n)] {
		cells[i] = Dots(b)
	}
	return cells, true
}

// Has reports whether trie state pos terminates a key.
func (s *cellStore) Has(pos int) bool {
	return pos >= 0 && pos < len(s.length) && s.length[pos] != absentCells
}

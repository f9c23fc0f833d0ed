package tamilbraille

import (
	"fmt"
	"strings"
)

// Dots is the set of raised dots of one six-dot braille cell.
// Bit p-1 is set if dot p is raised, so dots 1/4 form the top row,
// 2/5 the middle row and 3/6 the bottom row.
//
// This is exactly the offset of the cell's code point from U+2800.
type Dots uint8

// Blank is the cell without raised dots.
const Blank Dots = 0

const allDots Dots = 0x3F

// BrailleBase is the code point of the empty braille pattern.
const BrailleBase rune = 0x2800

// DotsOf creates a cell from dot positions. Positions must be in 1..6;
// repeating a position is an error.
func DotsOf(positions ...int) (Dots, error) {
	var d Dots
	for _, p := range positions {
		if p < 1 || p > 6 {
			return Blank, fmt.Errorf("dot position out of range (1..6): %d", p)
		}
		bit := Dots(1 << (p - 1))
		if d&bit != 0 {
			return Blank, fmt.Errorf("duplicate dot position: %d", p)
		}
		d |= bit
	}
	return d, nil
}

// MustDots is like DotsOf, but panics on illegal positions.
// It is intended for static table data.
func MustDots(positions ...int) Dots {
	d, err := DotsOf(positions...)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// DotsFromRune returns the cell for a six-dot braille code point
// (U+2800..U+283F).
func DotsFromRune(r rune) (Dots, bool) {
	if r < BrailleBase || r > BrailleBase+rune(allDots) {
		return Blank, false
	}
	return Dots(r - BrailleBase), true
}

// Valid is false if d has bits set beyond dot 6.
func (d Dots) Valid() bool {
	return d&^allDots == 0
}

// Has reports whether dot p is raised.
func (d Dots) Has(p int) bool {
	if p < 1 || p > 6 {
		return false
	}
	return d&(1<<(p-1)) != 0
}

// Positions returns the raised dots in ascending order.
func (d Dots) Positions() []int {
	pp := make([]int, 0, 6)
	for p := 1; p <= 6; p++ {
		if d.Has(p) {
			pp = append(pp, p)
		}
	}
	return pp
}

// Rune returns the Unicode braille code point of the cell.
func (d Dots) Rune() rune {
	return BrailleBase + rune(d&allDots)
}

// String returns the raised dots as digits, e.g. "134", or "0" for a blank cell.
func (d Dots) String() string {
	if d&allDots == Blank {
		return "0"
	}
	var b strings.Builder
	for _, p := range d.Positions() {
		b.WriteByte(byte('0' + p))
	}
	return b.String()
}

// MappingID identifies a Mapping within one ConversionResult.
// IDs are handed out from 1 upwards; 0 means "no mapping".
type MappingID uint32

// BrailleCell is one cell of braille output.
type BrailleCell struct {
	Dots       Dots
	SourceText string    // the text this cell renders, for labeling
	MappingID  MappingID // owning mapping, 0 if none
}

// Rune returns the Unicode braille code point of the cell.
func (c BrailleCell) Rune() rune {
	return c.Dots.Rune()
}

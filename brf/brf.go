/*
Package brf transcodes braille cells to BRF, the ASCII braille encoding used
by embossers and braille file formats.

Cells are taken in the Unicode braille bit layout (U+2800 + dots), as
produced by package tamilbraille, and mapped to the North American ASCII
braille table.
*/
package brf

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tamilbraille"
)

// tracer writes to trace with key 'tamilbraille.brf'
func tracer() tracing.Trace {
	return tracing.Select("tamilbraille.brf")
}

// asciiBraille holds the BRF character for each six-dot pattern, indexed
// by dots.
const asciiBraille = " A1B'K2L@CIF/MSP\"E3H9O6R^DJG>NTQ,*5<-U8V.%[$+X!&;:4\\0Z7(_?W]#Y)="

// Unmapped is written for braille code points outside the six-dot range.
const Unmapped = '?'

var fromASCII = func() [128]int16 {
	var tab [128]int16
	for i := range tab {
		tab[i] = -1
	}
	for d := 0; d < len(asciiBraille); d++ {
		tab[asciiBraille[d]] = int16(d)
	}
	return tab
}()

// Char returns the BRF character of a cell.
func Char(d tamilbraille.Dots) byte {
	return asciiBraille[d&0x3F]
}

// Dots returns the cell of a BRF character. Lower case letters are accepted
// as their upper case counterparts.
func Dots(c byte) (tamilbraille.Dots, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c >= 128 || fromASCII[c] < 0 {
		return tamilbraille.Blank, false
	}
	return tamilbraille.Dots(fromASCII[c]), true
}

// Encode returns the BRF text for a sequence of cells.
func Encode(cells []tamilbraille.BrailleCell) string {
	b := make([]byte, len(cells))
	for i, c := range cells {
		b[i] = Char(c.Dots)
	}
	return string(b)
}

// EncodeResult returns the BRF text of a conversion result, one line per
// row of cells.
func EncodeResult(res *tamilbraille.ConversionResult) string {
	lines := res.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Encode(l)
	}
	return strings.Join(out, "\n")
}

// FromUnicode converts text containing Unicode braille to BRF.
//
// No-break spaces and blank cells become spaces, and runs of ⠹ collapse to
// a single one. Braille patterns with dots 7 or 8 cannot be expressed in
// BRF and are replaced by Unmapped. All other characters are copied
// unchanged, so headings in print may be mixed with braille.
func FromUnicode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var prev rune
	for _, r := range text {
		if r == '⠹' && prev == '⠹' {
			continue
		}
		prev = r
		switch {
		case r == '\u00A0':
			b.WriteByte(' ')
		case r >= tamilbraille.BrailleBase && r <= tamilbraille.BrailleBase+0x3F:
			d, _ := tamilbraille.DotsFromRune(r)
			b.WriteByte(Char(d))
		case r > tamilbraille.BrailleBase+0x3F && r <= tamilbraille.BrailleBase+0xFF:
			tracer().Errorf("unmapped braille symbol %q (%U)", r, r)
			b.WriteRune(Unmapped)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

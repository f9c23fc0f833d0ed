package tamilbraille

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ConversionResult is the immutable outcome of one conversion.
// All accessors return copies.
type ConversionResult struct {
	text     string
	runes    []rune
	lines    [][]BrailleCell
	mappings []Mapping
	words    []WordBoundary
	byID     map[MappingID]int
}

// Convert transliterates text with the built-in table.
// See (*Table).Convert.
func Convert(text string) *ConversionResult {
	return DefaultTable().Convert(text)
}

// Convert transliterates text into braille cells.
//
// Text is normalized to NFC first; all indices of the result refer to code
// points of the normalized text. Convert never fails: units without a table
// entry are rendered as blank cells and keep their text.
func (t *Table) Convert(text string) *ConversionResult {
	normalized := norm.NFC.String(text)
	runes := []rune(normalized)
	units := Segment(runes, t)
	mappings, lines := buildMappings(units)
	words := FindWordBoundaries(runes)
	tracer().Debugf("converted %d code points into %d mappings on %d lines, %d words",
		len(runes), len(mappings), len(lines), len(words))
	return assemble(normalized, runes, mappings, lines, words)
}

func assemble(text string, runes []rune, mappings []Mapping, lines [][]BrailleCell,
	words []WordBoundary) *ConversionResult {
	//
	res := &ConversionResult{
		text:     text,
		runes:    runes,
		lines:    lines,
		mappings: mappings,
		words:    words,
		byID:     make(map[MappingID]int, len(mappings)),
	}
	for i, m := range mappings {
		res.byID[m.ID] = i
	}
	return res
}

// Text returns the normalized input text.
func (res *ConversionResult) Text() string {
	return res.text
}

// Len returns the number of code points of the normalized text.
func (res *ConversionResult) Len() int {
	return len(res.runes)
}

// Lines returns the cells grouped into rows, one row per line of text.
func (res *ConversionResult) Lines() [][]BrailleCell {
	lines := make([][]BrailleCell, len(res.lines))
	for i, l := range res.lines {
		lines[i] = append([]BrailleCell{}, l...)
	}
	return lines
}

// Cells returns all cells in text order.
func (res *ConversionResult) Cells() []BrailleCell {
	var cells []BrailleCell
	for _, l := range res.lines {
		cells = append(cells, l...)
	}
	return cells
}

// Mappings returns the mappings in text order.
func (res *ConversionResult) Mappings() []Mapping {
	mappings := make([]Mapping, len(res.mappings))
	for i, m := range res.mappings {
		mappings[i] = m.clone()
	}
	return mappings
}

// WordBoundaries returns the word spans in text order.
func (res *ConversionResult) WordBoundaries() []WordBoundary {
	return append([]WordBoundary{}, res.words...)
}

// MappingByID returns the mapping with identifier id.
func (res *ConversionResult) MappingByID(id MappingID) (Mapping, bool) {
	i, ok := res.byID[id]
	if !ok {
		return Mapping{}, false
	}
	return res.mappings[i].clone(), true
}

// MappingAt returns the mapping covering code-point index i.
func (res *ConversionResult) MappingAt(i int) (Mapping, bool) {
	k := sort.Search(len(res.mappings), func(k int) bool {
		return res.mappings[k].EndIndex >= i
	})
	if k == len(res.mappings) || !res.mappings[k].Contains(i) {
		return Mapping{}, false
	}
	return res.mappings[k].clone(), true
}

// WordAt returns the word containing code-point index i. White space does
// not belong to any word.
func (res *ConversionResult) WordAt(i int) (WordBoundary, bool) {
	k := sort.Search(len(res.words), func(k int) bool {
		return res.words[k].EndIndex >= i
	})
	if k == len(res.words) || !res.words[k].Contains(i) {
		return WordBoundary{}, false
	}
	return res.words[k], true
}

// MappingsInWord returns the mappings whose spans lie within w.
func (res *ConversionResult) MappingsInWord(w WordBoundary) []Mapping {
	var mappings []Mapping
	for _, m := range res.mappings {
		if m.StartIndex >= w.StartIndex && m.EndIndex <= w.EndIndex {
			mappings = append(mappings, m.clone())
		}
	}
	return mappings
}

// Braille returns the cells as Unicode braille, with rows separated by
// newlines.
func (res *ConversionResult) Braille() string {
	var b strings.Builder
	for i, l := range res.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range l {
			b.WriteRune(c.Rune())
		}
	}
	return b.String()
}

// Validate checks the structural invariants of the result:
// mappings tile the text without gaps or overlaps and reproduce it, IDs are
// unique, all cells are six-dot patterns owned by their mapping, and word
// boundaries cover exactly the non-whitespace code points.
func (res *ConversionResult) Validate() error {
	var errs []error
	next := 0
	var b strings.Builder
	seen := make(map[MappingID]bool, len(res.mappings))
	for _, m := range res.mappings {
		if m.StartIndex != next {
			errs = append(errs, fmt.Errorf("mapping %d starts at %d, expected %d", m.ID, m.StartIndex, next))
		}
		if m.EndIndex < m.StartIndex {
			errs = append(errs, fmt.Errorf("mapping %d has inverted span [%d,%d]", m.ID, m.StartIndex, m.EndIndex))
		}
		if m.ID == 0 || seen[m.ID] {
			errs = append(errs, fmt.Errorf("mapping ID %d is not unique", m.ID))
		}
		seen[m.ID] = true
		if m.EndIndex < len(res.runes) && m.StartIndex >= 0 && m.EndIndex >= m.StartIndex &&
			string(res.runes[m.StartIndex:m.EndIndex+1]) != m.SourceText {
			errs = append(errs, fmt.Errorf("mapping %d text %q does not match span [%d,%d]",
				m.ID, m.SourceText, m.StartIndex, m.EndIndex))
		}
		for _, c := range m.Cells {
			if !c.Dots.Valid() {
				errs = append(errs, fmt.Errorf("mapping %d has malformed cell %#x", m.ID, uint8(c.Dots)))
			}
			if c.MappingID != m.ID || c.SourceText != m.SourceText {
				errs = append(errs, fmt.Errorf("cell of mapping %d refers to mapping %d", m.ID, c.MappingID))
			}
		}
		b.WriteString(m.SourceText)
		next = m.EndIndex + 1
	}
	if next != len(res.runes) {
		errs = append(errs, fmt.Errorf("mappings cover %d of %d code points", next, len(res.runes)))
	}
	if b.String() != res.text {
		errs = append(errs, errors.New("mapping texts do not reproduce the input text"))
	}
	errs = append(errs, res.validateWords()...)
	return errors.Join(errs...)
}

func (res *ConversionResult) validateWords() []error {
	var errs []error
	covered := make([]bool, len(res.runes))
	prevEnd := -2
	for _, w := range res.words {
		if w.StartIndex <= prevEnd+1 || w.EndIndex < w.StartIndex || w.EndIndex >= len(res.runes) {
			errs = append(errs, fmt.Errorf("word [%d,%d] is out of order or adjacent to its predecessor",
				w.StartIndex, w.EndIndex))
			continue
		}
		for i := w.StartIndex; i <= w.EndIndex; i++ {
			covered[i] = true
		}
		prevEnd = w.EndIndex
	}
	for i, r := range res.runes {
		if covered[i] == unicode.IsSpace(r) {
			errs = append(errs, fmt.Errorf("word coverage wrong at index %d (%q)", i, r))
			break
		}
	}
	return errs
}

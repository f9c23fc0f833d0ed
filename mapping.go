package tamilbraille

// Mapping is the result for one orthographic unit: the source text it
// consumed and the cells generated for it. StartIndex and EndIndex are
// inclusive code-point offsets into the normalized text.
type Mapping struct {
	ID         MappingID
	SourceText string
	Cells      []BrailleCell
	StartIndex int
	EndIndex   int
	Class      UnitClass
	Mapped     bool // false if the cells are a fallback for a unit without table entry
}

// Contains reports whether code-point index i lies within the mapping.
func (m Mapping) Contains(i int) bool {
	return i >= m.StartIndex && i <= m.EndIndex
}

// Braille returns the mapping's cells as Unicode braille.
func (m Mapping) Braille() string {
	rr := make([]rune, len(m.Cells))
	for i, c := range m.Cells {
		rr[i] = c.Rune()
	}
	return string(rr)
}

func (m Mapping) clone() Mapping {
	m.Cells = append([]BrailleCell(nil), m.Cells...)
	return m
}

// buildMappings turns units into mappings and groups their cells into rows,
// one row per line of text. IDs are handed out in text order, starting at 1.
func buildMappings(units []Unit) ([]Mapping, [][]BrailleCell) {
	mappings := make([]Mapping, 0, len(units))
	var rows [][]BrailleCell
	if len(units) > 0 {
		rows = append(rows, []BrailleCell{})
	}
	var nextID MappingID
	for i, u := range units {
		if u.Class == ClassLineBreak {
			rows = append(rows, []BrailleCell{})
		}
		dots := unitCells(u)
		if u.Class == ClassDigit && u.Mapped && i > 0 && units[i-1].Class == ClassDigit {
			dots = continueNumber(dots)
		}
		nextID++
		m := Mapping{
			ID:         nextID,
			SourceText: u.Text,
			StartIndex: u.Start,
			EndIndex:   u.End,
			Class:      u.Class,
			Mapped:     u.Mapped,
			Cells:      make([]BrailleCell, len(dots)),
		}
		for j, d := range dots {
			m.Cells[j] = BrailleCell{Dots: d, SourceText: u.Text, MappingID: m.ID}
		}
		mappings = append(mappings, m)
		if u.Class != ClassLineBreak {
			last := len(rows) - 1
			rows[last] = append(rows[last], m.Cells...)
		}
	}
	return mappings, rows
}

// unitCells applies the cell policy for each class of unit.
func unitCells(u Unit) []Dots {
	switch {
	case u.Class == ClassLineBreak, u.Class == ClassFormat:
		return nil
	case u.Class == ClassWhitespace:
		return []Dots{Blank}
	case !u.Mapped:
		tracer().Debugf("no braille for %q at %d, using blank cell", u.Text, u.Start)
		return []Dots{Blank}
	}
	return u.Cells
}

// continueNumber drops the numeric indicator from a digit which continues
// a number.
func continueNumber(dots []Dots) []Dots {
	if len(dots) > 1 && dots[0] == numericIndicator {
		return dots[1:]
	}
	return dots
}

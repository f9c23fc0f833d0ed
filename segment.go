package tamilbraille

// Unit is one orthographic unit ("akshara") of normalized text.
// Start and End are inclusive code-point offsets.
type Unit struct {
	Start, End int
	Text       string
	Class      UnitClass
	Cells      []Dots // cells from the table; nil for units without an entry
	Mapped     bool   // unit was resolved by a table entry
}

// Segment splits normalized text into orthographic units.
//
// Line breaks, white space and format controls form units of their own
// ("\r\n" is one unit). Everything else is matched greedily against the
// keys of table, preferring the longest key. Code points which do not start
// any key, e.g. a vowel sign without a preceding consonant, become unmapped
// single units.
func Segment(text []rune, table *Table) []Unit {
	units := make([]Unit, 0, len(text))
	for i := 0; i < len(text); {
		class := Classify(text[i])
		length := 1
		var cells []Dots
		mapped := false
		switch class {
		case ClassLineBreak:
			if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				length = 2
			}
		case ClassWhitespace, ClassFormat:
		default:
			if n, c := table.LongestMatch(text[i:]); n > 0 {
				length, cells, mapped = n, c, true
			} else {
				class = ClassUnmapped
			}
		}
		units = append(units, Unit{
			Start:  i,
			End:    i + length - 1,
			Text:   string(text[i : i+length]),
			Class:  class,
			Cells:  cells,
			Mapped: mapped,
		})
		i += length
	}
	return units
}

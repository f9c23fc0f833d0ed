/*
Package tablefile reads and writes transliteration tables in a plain text
format.

One entry per line: the key, followed by one field per cell. A cell field
lists the raised dots as digits, "0" is a blank cell.

	% Tamil, Bharati braille
	\message{tamil-bharati}
	க      13
	கா     13 345
	க்ஷ     12345

Lines starting with "%" are comments. Keys which start with "%" or "\", or
which contain white space or invisible characters, are written as code points
in the form "U+0B95+0BCD".
*/
package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tamilbraille"
)

// tracer writes to trace with key 'tamilbraille.tablefile'
func tracer() tracing.Trace {
	return tracing.Select("tamilbraille.tablefile")
}

// Reader streams table entries from text source files.
// It implements tamilbraille.EntryReader.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	cells      []tamilbraille.Dots
}

// LoadTable parses table data and returns a compiled table.
// If the data carries a \message{...} line, it names the table, otherwise
// name is used.
func LoadTable(name string, reader io.Reader) (*tamilbraille.Table, error) {
	r := NewReader(reader)
	t, err := tamilbraille.LoadTable(name, r)
	if err != nil {
		return nil, err
	}
	if r.Identifier() != "" {
		t.Name = r.Identifier()
	}
	return t, nil
}

// Extend parses table data and overlays it onto base, returning a new table.
// Naming follows LoadTable.
func Extend(base *tamilbraille.Table, name string, reader io.Reader) (*tamilbraille.Table, error) {
	r := NewReader(reader)
	t, err := base.Extend(name, r)
	if err != nil {
		return nil, err
	}
	if r.Identifier() != "" {
		t.Name = r.Identifier()
	}
	return t, nil
}

// NewReader creates a reader for table data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		cells:   make([]tamilbraille.Dots, 0, 4),
	}
}

// Identifier returns the table name from a \message{...} line, if one has
// been read.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (key, cells).
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() (string, []tamilbraille.Dots, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		key, err := r.decodeLine(line)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return key, r.cells, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}

func (r *Reader) decodeLine(line string) (string, error) {
	fields := strings.Fields(line)
	key, err := decodeKey(fields[0])
	if err != nil {
		return "", err
	}
	if len(fields) == 1 {
		tracer().Infof("line %d: entry %q has no cells", r.line, key)
	}
	r.cells = r.cells[:0]
	for _, f := range fields[1:] {
		d, err := decodeCell(f)
		if err != nil {
			return "", fmt.Errorf("entry %q: %w", key, err)
		}
		r.cells = append(r.cells, d)
	}
	return key, nil
}

func decodeCell(field string) (tamilbraille.Dots, error) {
	if field == "0" {
		return tamilbraille.Blank, nil
	}
	positions := make([]int, 0, len(field))
	for _, ch := range field {
		if ch < '1' || ch > '6' {
			return tamilbraille.Blank, fmt.Errorf("illegal dot %q in cell %q", ch, field)
		}
		positions = append(positions, int(ch-'0'))
	}
	return tamilbraille.DotsOf(positions...)
}

func decodeKey(field string) (string, error) {
	if !strings.HasPrefix(field, "U+") {
		return field, nil
	}
	var b strings.Builder
	for _, hex := range strings.Split(field[2:], "+") {
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || cp > unicode.MaxRune {
			return "", fmt.Errorf("illegal code point %q in key %q", hex, field)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}

func encodeKey(key string) string {
	plain := !strings.HasPrefix(key, "%") && !strings.HasPrefix(key, "\\") &&
		!strings.HasPrefix(key, "U+")
	for _, r := range key {
		if !unicode.IsGraphic(r) || unicode.IsSpace(r) {
			plain = false
		}
	}
	if plain {
		return key
	}
	hex := make([]string, 0, len(key))
	for _, r := range key {
		hex = append(hex, fmt.Sprintf("%04X", r))
	}
	return "U+" + strings.Join(hex, "+")
}

// Write writes all entries of t in table file format.
func Write(w io.Writer, t *tamilbraille.Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%% %d entries\n", t.Len())
	fmt.Fprintf(bw, "\\message{%s}\n", t.Name)
	for _, e := range t.Entries() {
		bw.WriteString(encodeKey(e.Key))
		for _, d := range e.Cells {
			bw.WriteByte('\t')
			bw.WriteString(d.String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

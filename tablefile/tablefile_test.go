package tablefile

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tamilbraille"
)

const sample = `% sample table
\message{sample}
க	13
கா	13 345

U+0025	3456 14
U+0B95+0BCD	13 4
ஂ	0
`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(sample))
	type entry struct {
		key   string
		cells []tamilbraille.Dots
	}
	want := []entry{
		{"க", []tamilbraille.Dots{tamilbraille.MustDots(1, 3)}},
		{"கா", []tamilbraille.Dots{tamilbraille.MustDots(1, 3), tamilbraille.MustDots(3, 4, 5)}},
		{"%", []tamilbraille.Dots{tamilbraille.MustDots(3, 4, 5, 6), tamilbraille.MustDots(1, 4)}},
		{"க்", []tamilbraille.Dots{tamilbraille.MustDots(1, 3), tamilbraille.MustDots(4)}},
		{"ஂ", []tamilbraille.Dots{tamilbraille.Blank}},
	}
	for i, w := range want {
		key, cells, err := r.Next()
		if err != nil {
			t.Fatalf("entry %d: Next failed: %v", i, err)
		}
		if key != w.key || !reflect.DeepEqual(cells, w.cells) {
			t.Fatalf("entry %d: got %q %v, want %q %v", i, key, cells, w.key, w.cells)
		}
	}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if r.Identifier() != "sample" {
		t.Fatalf("identifier mismatch: %q", r.Identifier())
	}
}

func TestReaderErrors(t *testing.T) {
	for _, src := range []string{
		"க\t17\n",
		"க\t1a\n",
		"க\t11\n",
		"U+ZZZZ\t1\n",
	} {
		r := NewReader(strings.NewReader(src))
		if _, _, err := r.Next(); err == nil || err == io.EOF {
			t.Fatalf("expected error for %q, got %v", src, err)
		}
	}
}

func TestLoadTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tamilbraille.tablefile")
	defer teardown()
	//
	table, err := LoadTable("fallback", strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if table.Name != "sample" {
		t.Fatalf("table should be named by \\message, is %q", table.Name)
	}
	if table.Len() != 5 {
		t.Fatalf("expected 5 entries, have %d", table.Len())
	}
	if got := table.Convert("கா").Braille(); got != "⠅⠜" {
		t.Fatalf("கா should be ⠅⠜, is %q", got)
	}
}

func TestExtendDefaultTable(t *testing.T) {
	table, err := Extend(tamilbraille.DefaultTable(), "override", strings.NewReader("க\t123456\n"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Name != "override" {
		t.Fatalf("table without \\message should keep its given name, is %q", table.Name)
	}
	if got := table.Convert("க").Braille(); got != "⠿" {
		t.Fatalf("overridden க should be ⠿, is %q", got)
	}
	if got := table.Convert("கா").Braille(); got != "⠅⠜" {
		t.Fatalf("entries not overridden must be kept, கா is %q", got)
	}
	if table.Len() != tamilbraille.DefaultTable().Len() || len(table.Entries()) != table.Len() {
		t.Fatalf("override changed the number of entries: Len()=%d, %d entries",
			table.Len(), len(table.Entries()))
	}
	if got := tamilbraille.Convert("க").Braille(); got != "⠅" {
		t.Fatalf("default table must not change, க is %q", got)
	}
}

func TestWriteReadsBack(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, tamilbraille.DefaultTable()); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTable("copy", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if table.Name != tamilbraille.DefaultTable().Name {
		t.Fatalf("name not preserved: %q", table.Name)
	}
	if !reflect.DeepEqual(table.Entries(), tamilbraille.DefaultTable().Entries()) {
		t.Fatalf("entries differ after writing and reading the default table")
	}
}

func TestEncodeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"கா", "கா"},
		{"%", "U+0025"},
		{"\\", "U+005C"},
		{"U+", "U+0055+002B"},
		{"\u200C", "U+200C"},
	}
	for _, tt := range tests {
		if got := encodeKey(tt.key); got != tt.want {
			t.Fatalf("encodeKey(%q): got %q, want %q", tt.key, got, tt.want)
		}
		if back, err := decodeKey(encodeKey(tt.key)); err != nil || back != tt.key {
			t.Fatalf("key %q does not decode back, got %q (%v)", tt.key, back, err)
		}
	}
}

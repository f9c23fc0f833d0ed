package brf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tamilbraille"
)

func TestCharCoversAllCells(t *testing.T) {
	seen := map[byte]bool{}
	for d := tamilbraille.Dots(0); d < 64; d++ {
		c := Char(d)
		if seen[c] {
			t.Fatalf("BRF character %q used twice", c)
		}
		seen[c] = true
		back, ok := Dots(c)
		if !ok || back != d {
			t.Fatalf("BRF %q should decode to %v, got %v", c, d, back)
		}
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'⠀', ' '},
		{'⠁', 'A'},
		{'⠅', 'K'},
		{'⠜', '>'},
		{'⠼', '#'},
		{'⠹', '?'},
		{'⠿', '='},
		{'⠳', '\\'},
	}
	for _, tt := range tests {
		d, _ := tamilbraille.DotsFromRune(tt.r)
		if got := Char(d); got != tt.want {
			t.Fatalf("BRF of %q: got %q, want %q", tt.r, got, tt.want)
		}
	}
	if d, ok := Dots('k'); !ok || d != tamilbraille.MustDots(1, 3) {
		t.Fatalf("lower case k should decode to dots 13, got %v", d)
	}
	if _, ok := Dots('~'); ok {
		t.Fatalf("'~' is not a BRF character")
	}
}

func TestEncodeResult(t *testing.T) {
	res := tamilbraille.Convert("கா 12\nஅ")
	if got := EncodeResult(res); got != "K> #AB\nA" {
		t.Fatalf("unexpected BRF %q", got)
	}
	if got := EncodeResult(tamilbraille.Convert("")); got != "" {
		t.Fatalf("empty conversion should give empty BRF, got %q", got)
	}
}

func TestFromUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tamilbraille.brf")
	defer teardown()
	//
	tests := []struct {
		text string
		want string
	}{
		{"⠅⠜", "K>"},
		{" ⠀ ", "   "},
		{"⠹⠹⠹⠁⠹", "?A?"},
		{"தமிழ்: ⠞", "தமிழ்: T"},
		{"⡀", "?"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FromUnicode(tt.text); got != tt.want {
			t.Fatalf("FromUnicode(%q): got %q, want %q", tt.text, got, tt.want)
		}
	}
}

package tamilbraille

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want UnitClass
	}{
		{'க', ClassConsonant},
		{'ஹ', ClassConsonant},
		{'அ', ClassVowel},
		{'ஔ', ClassVowel},
		{'ா', ClassVowelSign},
		{'ொ', ClassVowelSign},
		{'ௗ', ClassVowelSign},
		{'்', ClassVirama},
		{'ஃ', ClassSign},
		{'ௐ', ClassSign},
		{'௭', ClassDigit},
		{'7', ClassDigit},
		{'?', ClassPunctuation},
		{'௹', ClassPunctuation},
		{' ', ClassWhitespace},
		{'\t', ClassWhitespace},
		{'\u00A0', ClassWhitespace},
		{'\n', ClassLineBreak},
		{'\r', ClassLineBreak},
		{'\u2028', ClassLineBreak},
		{'\u200D', ClassFormat},
		{'a', ClassUnmapped},
		{'஋', ClassUnmapped}, // unassigned in the Tamil block
	}
	for _, tt := range tests {
		if got := Classify(tt.r); got != tt.want {
			t.Fatalf("class of %q (%U): got %s, want %s", tt.r, tt.r, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	type span struct {
		start, end int
		class      UnitClass
		mapped     bool
	}
	tests := []struct {
		text string
		want []span
	}{
		{"", nil},
		{"க", []span{{0, 0, ClassConsonant, true}}},
		{"கா", []span{{0, 1, ClassConsonant, true}}},
		{"க்ஷ", []span{{0, 2, ClassConsonant, true}}},
		{"க்க", []span{{0, 1, ClassConsonant, true}, {2, 2, ClassConsonant, true}}},
		{"ாக", []span{{0, 0, ClassUnmapped, false}, {1, 1, ClassConsonant, true}}},
		{"கா ி", []span{{0, 1, ClassConsonant, true}, {2, 2, ClassWhitespace, false}, {3, 3, ClassUnmapped, false}}},
		{"்", []span{{0, 0, ClassUnmapped, false}}},
		{"அ\r\nஆ", []span{{0, 0, ClassVowel, true}, {1, 2, ClassLineBreak, false}, {3, 3, ClassVowel, true}}},
		{"\n\r", []span{{0, 0, ClassLineBreak, false}, {1, 1, ClassLineBreak, false}}},
		{"க\u200Dx", []span{{0, 0, ClassConsonant, true}, {1, 1, ClassFormat, false}, {2, 2, ClassUnmapped, false}}},
		{"12.", []span{{0, 0, ClassDigit, true}, {1, 1, ClassDigit, true}, {2, 2, ClassPunctuation, true}}},
	}
	for _, tt := range tests {
		units := Segment([]rune(tt.text), DefaultTable())
		if len(units) != len(tt.want) {
			t.Fatalf("%q: got %d units, want %d", tt.text, len(units), len(tt.want))
		}
		for i, u := range units {
			w := tt.want[i]
			if u.Start != w.start || u.End != w.end || u.Class != w.class || u.Mapped != w.mapped {
				t.Fatalf("%q unit %d: got [%d,%d] %s mapped=%v, want [%d,%d] %s mapped=%v",
					tt.text, i, u.Start, u.End, u.Class, u.Mapped, w.start, w.end, w.class, w.mapped)
			}
			if u.Text != string([]rune(tt.text)[u.Start:u.End+1]) {
				t.Fatalf("%q unit %d: text %q does not match its span", tt.text, i, u.Text)
			}
		}
	}
}

package tamilbraille

import "unicode"

// WordBoundary is the span of one maximal run of non-whitespace code points.
// StartIndex and EndIndex are inclusive code-point offsets.
type WordBoundary struct {
	StartIndex int
	EndIndex   int
}

// Contains reports whether code-point index i lies within the word.
func (w WordBoundary) Contains(i int) bool {
	return i >= w.StartIndex && i <= w.EndIndex
}

// Len returns the number of code points of the word.
func (w WordBoundary) Len() int {
	return w.EndIndex - w.StartIndex + 1
}

// FindWordBoundaries scans text once and returns the spans of all maximal
// runs of non-whitespace code points, in order.
func FindWordBoundaries(text []rune) []WordBoundary {
	var words []WordBoundary
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, WordBoundary{StartIndex: start, EndIndex: i - 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, WordBoundary{StartIndex: start, EndIndex: len(text) - 1})
	}
	return words
}

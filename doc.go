/*
Package tamilbraille converts Tamil text into six-dot braille cells.

Conversion keeps an exact alignment between the source text and the cells:
every code point of the (NFC-normalized) input belongs to exactly one
Mapping, and every cell refers back to its mapping. Clients use this for
highlighting, grouping cells by word and re-encoding the cells, e.g. as BRF
(see package brf).

The engine is a single pass:

	text → NFC → Segment → mappings and rows of cells
	text → NFC → FindWordBoundaries → word spans

Segmentation matches the longest key of a transliteration Table. Tables are
compiled from a stream of entries into a frozen double-array trie (package
dat) plus a compact cell store indexed by trie state. The built-in table
follows Bharati braille; package tablefile reads custom tables from text
files.

Conversion is total: units without a table entry are rendered as blank
cells, with their text preserved.

Further Reading

	https://en.wikipedia.org/wiki/Bharati_Braille
	https://www.unicode.org/charts/PDF/U0B80.pdf   (Tamil block)
	https://www.unicode.org/charts/PDF/U2800.pdf   (Braille patterns)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package tamilbraille

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tamilbraille'
func tracer() tracing.Trace {
	return tracing.Select("tamilbraille")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

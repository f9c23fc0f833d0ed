package tamilbraille

import "unicode"

// UnitClass classifies code points, and the orthographic units starting
// with them, for segmentation.
type UnitClass uint8

// Unit classes. Units are classified by their first code point; units not
// covered by the transliteration table are ClassUnmapped.
const (
	ClassUnmapped    UnitClass = iota
	ClassConsonant             // க..ஹ, may carry a vowel sign or pulli
	ClassVowelSign             // dependent vowel signs ா..ௌ, ௗ
	ClassVirama                // pulli ்
	ClassVowel                 // independent vowels அ..ஔ
	ClassSign                  // aytham ஃ, anusvara ஂ, om ௐ
	ClassDigit                 // Tamil and ASCII digits
	ClassPunctuation           // punctuation and symbols
	ClassWhitespace            // white space other than line breaks
	ClassLineBreak             // LF, CR, CR+LF, LS, PS, NEL
	ClassFormat                // invisible format controls (ZWJ, ZWNJ, BOM)
)

var classNames = [...]string{
	"unmapped", "consonant", "vowel-sign", "virama", "vowel", "sign",
	"digit", "punctuation", "whitespace", "line-break", "format",
}

func (c UnitClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "<unknown>"
}

// Tamil code points (Unicode block U+0B80..U+0BFF).
const (
	tamilAnusvara  rune = 0x0B82
	tamilAytham    rune = 0x0B83
	tamilVirama    rune = 0x0BCD
	tamilAuLength  rune = 0x0BD7
	tamilOm        rune = 0x0BD0
	tamilDigitZero rune = 0x0BE6
	tamilDigitNine rune = 0x0BEF
)

// Classify returns the class of a single code point.
func Classify(r rune) UnitClass {
	switch {
	case isLineBreak(r):
		return ClassLineBreak
	case unicode.IsSpace(r):
		return ClassWhitespace
	case r == 0x200C || r == 0x200D || r == 0xFEFF:
		return ClassFormat
	case r >= 0x0B80 && r <= 0x0BFF:
		return classifyTamil(r)
	case r >= '0' && r <= '9':
		return ClassDigit
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return ClassPunctuation
	}
	return ClassUnmapped
}

func classifyTamil(r rune) UnitClass {
	switch {
	case r == tamilAnusvara || r == tamilAytham || r == tamilOm:
		return ClassSign
	case r >= 0x0B85 && r <= 0x0B94:
		if unicode.Is(unicode.Lo, r) {
			return ClassVowel
		}
	case r >= 0x0B95 && r <= 0x0BB9:
		if unicode.Is(unicode.Lo, r) {
			return ClassConsonant
		}
	case r == tamilVirama:
		return ClassVirama
	case r >= 0x0BBE && r <= 0x0BCC, r == tamilAuLength:
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) {
			return ClassVowelSign
		}
	case r >= tamilDigitZero && r <= tamilDigitNine:
		return ClassDigit
	case r >= 0x0BF0 && r <= 0x0BFA:
		return ClassPunctuation // numerals 10/100/1000, calendrical and currency signs
	}
	return ClassUnmapped
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

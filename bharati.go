package tamilbraille

// The built-in table follows Bharati braille, the common braille standard
// for Indian scripts, as used for Tamil. Each consonant is written with its
// own cell; a vowel sign adds the cell of the corresponding independent vowel,
// and the pulli adds dot 4.

type letter struct {
	r     rune
	cells []Dots
}

var tamilVowels = []letter{
	{'அ', []Dots{MustDots(1)}},
	{'ஆ', []Dots{MustDots(3, 4, 5)}},
	{'இ', []Dots{MustDots(2, 4)}},
	{'ஈ', []Dots{MustDots(3, 5)}},
	{'உ', []Dots{MustDots(1, 3, 6)}},
	{'ஊ', []Dots{MustDots(1, 2, 5, 6)}},
	{'எ', []Dots{MustDots(2, 6)}},
	{'ஏ', []Dots{MustDots(1, 5)}},
	{'ஐ', []Dots{MustDots(3, 4)}},
	{'ஒ', []Dots{MustDots(1, 3, 4, 6)}},
	{'ஓ', []Dots{MustDots(1, 3, 5)}},
	{'ஔ', []Dots{MustDots(2, 4, 6)}},
}

// vowel sign → independent vowel it stands for
var tamilVowelSigns = []struct {
	sign, vowel rune
}{
	{'ா', 'ஆ'},
	{'ி', 'இ'},
	{'ீ', 'ஈ'},
	{'ு', 'உ'},
	{'ூ', 'ஊ'},
	{'ெ', 'எ'},
	{'ே', 'ஏ'},
	{'ை', 'ஐ'},
	{'ொ', 'ஒ'},
	{'ோ', 'ஓ'},
	{'ௌ', 'ஔ'},
}

var tamilConsonants = []letter{
	{'க', []Dots{MustDots(1, 3)}},
	{'ங', []Dots{MustDots(3, 4, 6)}},
	{'ச', []Dots{MustDots(1, 4)}},
	{'ஜ', []Dots{MustDots(2, 4, 5)}},
	{'ஞ', []Dots{MustDots(2, 5)}},
	{'ட', []Dots{MustDots(2, 3, 4, 5, 6)}},
	{'ண', []Dots{MustDots(3, 4, 5, 6)}},
	{'த', []Dots{MustDots(2, 3, 4, 5)}},
	{'ந', []Dots{MustDots(1, 3, 4, 5)}},
	{'ன', []Dots{MustDots(5, 6)}},
	{'ப', []Dots{MustDots(1, 2, 3, 4)}},
	{'ம', []Dots{MustDots(1, 3, 4)}},
	{'ய', []Dots{MustDots(1, 3, 4, 5, 6)}},
	{'ர', []Dots{MustDots(1, 2, 3, 5)}},
	{'ற', []Dots{MustDots(1, 2, 4, 5, 6)}},
	{'ல', []Dots{MustDots(1, 2, 3)}},
	{'ள', []Dots{MustDots(4, 5, 6)}},
	{'ழ', []Dots{MustDots(1, 2, 3, 5, 6)}},
	{'வ', []Dots{MustDots(1, 2, 3, 6)}},
	{'ஶ', []Dots{MustDots(1, 4, 6)}},
	{'ஷ', []Dots{MustDots(1, 2, 3, 4, 6)}},
	{'ஸ', []Dots{MustDots(2, 3, 4)}},
	{'ஹ', []Dots{MustDots(1, 2, 5)}},
}

// conjuncts written with a cell of their own
var tamilConjuncts = []struct {
	key   string
	cells []Dots
}{
	{"க்ஷ", []Dots{MustDots(1, 2, 3, 4, 5)}},
}

var tamilSigns = []letter{
	{'ஃ', []Dots{MustDots(6)}},
	{'ஂ', []Dots{MustDots(5, 6)}},
	{'ௐ', []Dots{MustDots(1, 3, 5), MustDots(1, 3, 4), MustDots(4)}}, // read as ஓம்
}

var pulli = MustDots(4)

var numericIndicator = MustDots(3, 4, 5, 6)

// digit letters a..j for 1..9, 0
var digitCells = [10]Dots{
	MustDots(2, 4, 5),
	MustDots(1),
	MustDots(1, 2),
	MustDots(1, 4),
	MustDots(1, 4, 5),
	MustDots(1, 5),
	MustDots(1, 2, 4),
	MustDots(1, 2, 4, 5),
	MustDots(1, 2, 5),
	MustDots(2, 4),
}

var punctuation = []struct {
	key   string
	cells []Dots
}{
	{".", []Dots{MustDots(2, 5, 6)}},
	{",", []Dots{MustDots(2)}},
	{";", []Dots{MustDots(2, 3)}},
	{":", []Dots{MustDots(2, 5)}},
	{"?", []Dots{MustDots(2, 3, 6)}},
	{"!", []Dots{MustDots(2, 3, 5)}},
	{"'", []Dots{MustDots(3)}},
	{"\"", []Dots{MustDots(3, 5, 6)}},
	{"-", []Dots{MustDots(3, 6)}},
	{"(", []Dots{MustDots(2, 3, 5, 6)}},
	{")", []Dots{MustDots(2, 3, 5, 6)}},
	{"/", []Dots{MustDots(3, 4)}},
	{"[", []Dots{MustDots(6), MustDots(2, 3, 5, 6)}},
	{"]", []Dots{MustDots(2, 3, 5, 6), MustDots(3)}},
	{"*", []Dots{MustDots(3, 5), MustDots(3, 5)}},
	{"&", []Dots{MustDots(4), MustDots(1, 2, 3, 4, 6)}},
	{"+", []Dots{MustDots(5), MustDots(2, 3, 5)}},
	{"=", []Dots{MustDots(5), MustDots(2, 3, 5, 6)}},
	{"‘", []Dots{MustDots(3)}},
	{"’", []Dots{MustDots(3)}},
	{"“", []Dots{MustDots(2, 3, 6)}},
	{"”", []Dots{MustDots(3, 5, 6)}},
	{"\u2013", []Dots{MustDots(3, 6), MustDots(3, 6)}},
	{"\u2014", []Dots{MustDots(3, 6), MustDots(3, 6)}},
	{"…", []Dots{MustDots(2, 5, 6), MustDots(2, 5, 6), MustDots(2, 5, 6)}},
	{"।", []Dots{MustDots(2, 5, 6)}},
}

// bharatiEntries lists all entries of the built-in table.
func bharatiEntries() []Entry {
	entries := make([]Entry, 0, 400)
	add := func(key string, cells ...Dots) {
		entries = append(entries, Entry{Key: key, Cells: cells})
	}
	vowelCell := make(map[rune]Dots, len(tamilVowels))
	for _, v := range tamilVowels {
		add(string(v.r), v.cells...)
		vowelCell[v.r] = v.cells[0]
	}
	for _, s := range tamilSigns {
		add(string(s.r), s.cells...)
	}
	// consonant forms: bare (inherent a), with pulli, with each vowel sign
	syllables := func(base string, cells []Dots) {
		add(base, cells...)
		add(base+string(tamilVirama), append(cells[:len(cells):len(cells)], pulli)...)
		for _, vs := range tamilVowelSigns {
			add(base+string(vs.sign), append(cells[:len(cells):len(cells)], vowelCell[vs.vowel])...)
		}
	}
	for _, c := range tamilConsonants {
		syllables(string(c.r), c.cells)
	}
	for _, c := range tamilConjuncts {
		syllables(c.key, c.cells)
	}
	for i, d := range digitCells {
		add(string(rune('0'+i)), numericIndicator, d)
		add(string(tamilDigitZero+rune(i)), numericIndicator, d)
	}
	for _, p := range punctuation {
		add(p.key, p.cells...)
	}
	return entries
}

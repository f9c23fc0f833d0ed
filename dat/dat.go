/*
Package dat implements a frozen double-array trie over a dense alphabet.

It is the read-only key index of a transliteration table: every table key is
a path of dense symbols from the root, and the state reached after the last
symbol of a key identifies the key. Payloads are kept outside of the trie,
indexed by state.
*/
package dat

// DAT is a frozen double-array trie.
//   - States are indices into Base/Check (0 is unused, Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array, both of length NStates().
	Base  []int32
	Check []int32

	// Alphabet maps BMP code points to dense IDs [0..Sigma].
	Alphabet Alphabet
}

// New creates an empty trie with its root at state 1.
func New() *DAT {
	return &DAT{
		Root:  1,
		Base:  make([]int32, 2),
		Check: make([]int32, 2),
	}
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a code point to its dense alphabet ID, 0 if absent.
func (d *DAT) Dense(r rune) uint16 { return d.Alphabet.Dense(r) }

// Grow makes sure idx is a valid slot index.
func (d *DAT) Grow(idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

// FindBase returns the smallest base for which every label lands on a
// free slot.
func (d *DAT) FindBase(labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == int(d.Root) || (t < len(d.Check) && d.Check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

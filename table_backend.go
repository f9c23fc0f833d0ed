package tamilbraille

// keyIterator walks successive prefix states for one key.
type keyIterator interface {
	Next(r rune) int
}

// TrieStats reports density metrics for the key trie of a table.
type TrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots.
func (s TrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// keyTrie is the internal backend abstraction for table keys.
//
// Keys are allocated while the trie is mutable, using temporary positions.
// After Freeze, ResolvePosition maps a temporary position to the final
// state ID, and Iterator walks the frozen trie.
type keyTrie interface {
	EncodeKey(s string) ([]uint16, bool)
	AllocPositionForKey(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Iterator() keyIterator
	Stats() TrieStats
}

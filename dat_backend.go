package tamilbraille

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/tamilbraille/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datBackend collects keys in a pointer-based build trie and compiles it
// into a double-array trie on Freeze.
type datBackend struct {
	frozen      bool
	root        *datBuildNode
	nextNodeID  int
	nextDenseID uint16
	resolved    []uint32 // tmpID → state, set by Freeze
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:       &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID: 2,
		compiled:   dat.New(),
	}
}

func (db *datBackend) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		dense := db.compiled.Dense(r)
		if dense == 0 {
			if db.frozen || r > 0xFFFF || db.nextDenseID == ^uint16(0) {
				return nil, false
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.compiled.Alphabet.Set(r, dense)
		}
		key = append(key, dense)
	}
	return key, len(key) > 0
}

func (db *datBackend) AllocPositionForKey(key []uint16) int {
	if len(key) == 0 || db.frozen {
		return 0
	}
	n := db.root
	for _, c := range key {
		if c == 0 {
			return 0
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    db.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			db.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	return n.tmpID
}

func (db *datBackend) ResolvePosition(pos int) int {
	if !db.frozen || pos <= 0 || pos >= len(db.resolved) {
		return 0
	}
	return int(db.resolved[pos])
}

func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Grow(int(d.Root))
	db.resolved = make([]uint32, db.nextNodeID)
	db.root.state = d.Root
	db.resolved[db.root.tmpID] = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := d.FindBase(labels)
		d.Grow(base + int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			db.resolved[child.tmpID] = child.state
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.frozen = true
}

// Iterator walks the compiled trie. The backend must be frozen.
func (db *datBackend) Iterator() keyIterator {
	assert(db.frozen, "key trie iterated before Freeze")
	return &datIterator{
		d:     db.compiled,
		state: db.compiled.Root,
	}
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(r rune) int {
	if it.dead {
		return 0
	}
	next, ok := it.d.Transition(it.state, it.d.Dense(r))
	if !ok {
		it.dead = true
		return 0
	}
	it.state = next
	return int(next)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() TrieStats {
	d := db.compiled
	stats := TrieStats{
		Backend:    "dat",
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			stats.MaxStateID = max(stats.MaxStateID, i)
		}
	}
	stats.UsedSlots = used
	return stats
}

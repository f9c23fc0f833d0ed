package tamilbraille

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/derekparker/trie"
)

// Entry is one row of a transliteration table: an orthographic key (one or
// more code points) and the ordered cells it is rendered with.
type Entry struct {
	Key   string
	Cells []Dots
}

// EntryReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
// Implementations may reuse the returned cell slice between calls.
type EntryReader interface {
	Next() (key string, cells []Dots, err error)
}

// EntryList returns an EntryReader over in-memory entries.
func EntryList(entries ...Entry) EntryReader {
	return &entryList{entries: entries}
}

type entryList struct {
	entries []Entry
	index   int
}

func (l *entryList) Next() (string, []Dots, error) {
	if l.index >= len(l.entries) {
		return "", nil, io.EOF
	}
	e := l.entries[l.index]
	l.index++
	return e.Key, e.Cells, nil
}

// Table is a compiled, read-only transliteration table.
//
// A table holds:
//   - a registry of all entries, for exact lookup and listing
//   - a frozen key trie plus a compact cell store, for longest-match scanning.
//
// Tables are never mutated after LoadTable returns and may be shared
// between goroutines.
type Table struct {
	Name    string // identifies the table
	entries *trie.Trie
	size    int
	keys    keyTrie
	cells   *cellStore
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := LoadTable("tamil-bharati", EntryList(bharatiEntries()...))
	assert(err == nil, "built-in Tamil table does not compile")
	return t
})

// DefaultTable returns the built-in Tamil table, following Bharati braille.
func DefaultTable() *Table {
	return defaultTable()
}

// LoadTable compiles a table from a stream of entries. If a key occurs more
// than once, the last entry wins.
//
// File format parsing is outside of this package. Use adapters like package
// tablefile to parse concrete formats and feed this API.
func LoadTable(name string, reader EntryReader) (*Table, error) {
	return buildTable(name, trie.New(), 0, reader)
}

// Extend compiles a new table from the entries of t, overlaid with the
// entries of reader. t is left unchanged.
func (t *Table) Extend(name string, reader EntryReader) (*Table, error) {
	registry := trie.New()
	for _, e := range t.Entries() {
		registry.Add(e.Key, e.Cells)
	}
	return buildTable(name, registry, t.size, reader)
}

func buildTable(name string, registry *trie.Trie, size int, reader EntryReader) (*Table, error) {
	for {
		key, cells, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if err = checkKey(key); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if _, err = packCells(cells); err != nil {
			return nil, fmt.Errorf("table %s: entry %q: %w", name, key, err)
		}
		// Add on an existing key replaces its cells
		if _, found := registry.Find(key); found {
			tracer().Debugf("table %s: entry %q replaces an earlier entry", name, key)
		} else {
			size++
		}
		registry.Add(key, slices.Clone(cells))
	}
	return compileTable(name, registry, size)
}

func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	for _, r := range key {
		if r == 0 || r > 0xFFFF {
			return fmt.Errorf("key %q: code point %U not supported", key, r)
		}
	}
	return nil
}

func compileTable(name string, registry *trie.Trie, size int) (*Table, error) {
	type pendingCells struct {
		pos   int
		cells []Dots
	}
	keys := registry.Keys()
	slices.Sort(keys)
	backend := newDATBackend()
	pending := make([]pendingCells, 0, len(keys))
	maxCells := 0
	for _, key := range keys {
		cells := registryCells(registry, key)
		encoded, ok := backend.EncodeKey(key)
		if !ok {
			return nil, fmt.Errorf("table %s: cannot encode key %q", name, key)
		}
		pos := backend.AllocPositionForKey(encoded)
		if pos == 0 {
			return nil, fmt.Errorf("table %s: could not allocate trie position for key %q", name, key)
		}
		if len(cells) >= absentCells {
			return nil, fmt.Errorf("table %s: entry %q has too many cells: %d", name, key, len(cells))
		}
		maxCells = max(maxCells, len(cells))
		pending = append(pending, pendingCells{pos: pos, cells: cells})
	}
	backend.Freeze()
	tracer().Debugf("table %s: key trie %s", name, backend)
	store := newCellStore(uint8(maxCells))
	for _, p := range pending {
		state := backend.ResolvePosition(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("table %s: could not resolve trie position %d after freeze", name, p.pos)
		}
		if err := store.Put(state, p.cells); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
	}
	t := &Table{
		Name:    name,
		entries: registry,
		size:    size,
		keys:    backend,
		cells:   store,
	}
	stats := t.Stats()
	tracer().Infof("table %s: %d entries, trie used=%d total=%d fill=%.2f maxStateID=%d",
		name, size, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	return t, nil
}

func registryCells(registry *trie.Trie, key string) []Dots {
	node, found := registry.Find(key)
	if !found {
		return nil
	}
	cells, _ := node.Meta().([]Dots)
	return cells
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Lookup returns the cells for an exact key.
func (t *Table) Lookup(key string) ([]Dots, bool) {
	if t == nil || t.entries == nil {
		return nil, false
	}
	if _, found := t.entries.Find(key); !found {
		return nil, false
	}
	return slices.Clone(registryCells(t.entries, key)), true
}

// Entries returns all entries, sorted by key.
func (t *Table) Entries() []Entry {
	if t == nil || t.entries == nil {
		return nil
	}
	keys := t.entries.Keys()
	slices.Sort(keys)
	entries := make([]Entry, len(keys))
	for i, key := range keys {
		entries[i] = Entry{Key: key, Cells: slices.Clone(registryCells(t.entries, key))}
	}
	return entries
}

// LongestMatch finds the longest key which is a prefix of text. It returns
// the number of code points matched and the key's cells, or 0 and nil if no
// key matches.
func (t *Table) LongestMatch(text []rune) (int, []Dots) {
	if t == nil || t.keys == nil {
		return 0, nil
	}
	it := t.keys.Iterator()
	length, state := 0, 0
	for i, r := range text {
		s := it.Next(r)
		if s == 0 {
			break
		}
		if t.cells.Has(s) {
			length, state = i+1, s
		}
	}
	if length == 0 {
		return 0, nil
	}
	cells, _ := t.cells.Cells(state)
	return length, cells
}

// Stats reports density metrics for the key trie.
func (t *Table) Stats() TrieStats {
	if t == nil || t.keys == nil {
		return TrieStats{}
	}
	return t.keys.Stats()
}

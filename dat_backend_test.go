package tamilbraille

import (
	"strings"
	"testing"
)

func TestDATBackendResolvesKeys(t *testing.T) {
	db := newDATBackend()
	keys := []string{"க", "கா", "க்ஷ", "அ"}
	positions := make([]int, len(keys))
	for i, k := range keys {
		enc, ok := db.EncodeKey(k)
		if !ok {
			t.Fatalf("cannot encode %q", k)
		}
		positions[i] = db.AllocPositionForKey(enc)
		if positions[i] == 0 {
			t.Fatalf("no position for %q", k)
		}
	}
	if db.ResolvePosition(positions[0]) != 0 {
		t.Fatalf("positions must not resolve before Freeze")
	}
	db.Freeze()
	if !strings.Contains(db.String(), "frozen=true") {
		t.Fatalf("unexpected backend description %s", db)
	}
	for i, k := range keys {
		it := db.Iterator()
		state := 0
		for _, r := range k {
			state = it.Next(r)
		}
		if state == 0 || state != db.ResolvePosition(positions[i]) {
			t.Fatalf("walking %q ends in state %d, resolved position is %d",
				k, state, db.ResolvePosition(positions[i]))
		}
	}
	it := db.Iterator()
	if it.Next('x') != 0 || it.Next('க') != 0 {
		t.Fatalf("iterator must stay dead after a failed transition")
	}
	if _, ok := db.EncodeKey("x"); ok {
		t.Fatalf("frozen backend must not extend its alphabet")
	}
}

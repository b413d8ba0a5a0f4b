package rax

import "testing"

func TestLowWalkFullMatch(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "hello", 1)

	matched, stop, _, splitPos := lowWalk(tr, []byte("hello"), nil)
	if matched != 5 {
		t.Fatalf("matched = %d, want 5", matched)
	}
	if !stop.iskey {
		t.Fatalf("stop node should be a key")
	}
	if stop.iscompr && splitPos != 0 {
		t.Fatalf("splitPos = %d, want 0 at a clean boundary", splitPos)
	}
}

func TestLowWalkPartialMatch(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "hello", 1)

	matched, _, _, _ := lowWalk(tr, []byte("help"), nil)
	if matched != 3 {
		t.Fatalf("matched = %d, want 3 (shared prefix 'hel')", matched)
	}
}

func TestLowWalkPushesTrail(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "romane", 1)
	mustInsert(t, tr, "romanus", 2)
	mustInsert(t, tr, "romulus", 3)

	trail := newAncestorStack[int]()
	_, _, _, _ = lowWalk(tr, []byte("romanus"), &trail)
	if trail.len() == 0 {
		t.Fatalf("expected a non-empty ancestor trail for a multi-node path")
	}
}

package rax

import "testing"

func TestRemoveBasic(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "hello", 1)

	removed, err := tr.Remove([]byte("hello"))
	if err != nil || !removed {
		t.Fatalf("Remove: removed=%v err=%v", removed, err)
	}
	if _, ok := tr.Find([]byte("hello")); ok {
		t.Fatalf("Find after Remove: still present")
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() after Remove: %d", tr.Len())
	}

	removed, err = tr.Remove([]byte("hello"))
	if err != nil || removed {
		t.Fatalf("second Remove: removed=%v err=%v", removed, err)
	}
}

// TestRemoveRecompresses checks invariant 6: removing one key from a
// three-way split must re-merge the surviving two-key chain back into
// a single compressed node.
func TestRemoveRecompresses(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "romane", 1)
	mustInsert(t, tr, "romanus", 2)
	mustInsert(t, tr, "romulus", 3)

	nodesBefore := tr.NumNodes()

	if removed, err := tr.Remove([]byte("romulus")); err != nil || !removed {
		t.Fatalf("Remove(romulus): removed=%v err=%v", removed, err)
	}

	if v, ok := tr.Find([]byte("romane")); !ok || v != 1 {
		t.Fatalf("Find(romane): v=%v ok=%v", v, ok)
	}
	if v, ok := tr.Find([]byte("romanus")); !ok || v != 2 {
		t.Fatalf("Find(romanus): v=%v ok=%v", v, ok)
	}
	if _, ok := tr.Find([]byte("romulus")); ok {
		t.Fatalf("Find(romulus): still present")
	}
	if tr.NumNodes() >= nodesBefore {
		t.Fatalf("expected recompression to shrink node count: before=%d after=%d", nodesBefore, tr.NumNodes())
	}
}

// TestRemovePrunesDeadChain exercises the dead-chain-prune loop when
// removing the only key under a long unique suffix.
func TestRemovePrunesDeadChain(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "alligator", 1)
	mustInsert(t, tr, "alien", 2)

	if removed, err := tr.Remove([]byte("alligator")); err != nil || !removed {
		t.Fatalf("Remove(alligator): removed=%v err=%v", removed, err)
	}
	if v, ok := tr.Find([]byte("alien")); !ok || v != 2 {
		t.Fatalf("Find(alien): v=%v ok=%v", v, ok)
	}
	if _, ok := tr.Find([]byte("alligator")); ok {
		t.Fatalf("Find(alligator): still present")
	}
}

// TestRemoveNullChildBoundary is spec.md §8's scenario 6: insert a key,
// then the empty key as null, then remove the first key, and confirm
// no out-of-bounds access occurs and the empty key survives.
func TestRemoveNullChildBoundary(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "D", 1)
	if _, err := tr.InsertNull(nil); err != nil {
		t.Fatalf("InsertNull: %v", err)
	}
	if removed, err := tr.Remove([]byte("D")); err != nil || !removed {
		t.Fatalf("Remove(D): removed=%v err=%v", removed, err)
	}
	if _, ok := tr.Find(nil); !ok {
		t.Fatalf("Find(empty): expected present after removing D")
	}
}

func TestRemoveAllKeysShrinksToEmptyTree(t *testing.T) {
	tr := buildCanonicalTree(t)
	for _, k := range canonicalKeys {
		if removed, err := tr.Remove([]byte(k)); err != nil || !removed {
			t.Fatalf("Remove(%q): removed=%v err=%v", k, removed, err)
		}
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() after removing all keys: %d", tr.Len())
	}
	if tr.NumNodes() != 1 {
		t.Fatalf("NumNodes() after removing all keys: %d, want 1 (bare head)", tr.NumNodes())
	}
}

package rax

// Tree is a compressed radix tree mapping byte-string keys to values of
// type V. The zero value is not usable; construct one with New. A Tree
// is single-owner: it performs no internal synchronization and
// concurrent calls from multiple goroutines are undefined (spec.md §5).
//
// Invariants maintained across every exported operation:
//
//  1. head is always present; head.iskey may be true iff the empty
//     string is a key.
//  2. Compressed nodes represent chains of length >= 1 whose
//     intermediate positions are not keys and have exactly one child;
//     only a branching node with size 0 terminates a compressed span.
//  3. Edge bytes within a branching node are strictly ascending, no
//     duplicates.
//  4. numElements equals the number of nodes with iskey == true.
//  5. numNodes equals the total number of allocated nodes, including
//     head.
//  6. No branching node has a single non-key child whose shape would
//     permit merging into a compressed node (restored by Remove's
//     re-compression pass).
//  7. Keys are ordered lexicographically by unsigned byte value;
//     shorter keys precede longer keys sharing their full prefix.
type Tree[V any] struct {
	head        *node[V]
	numElements int
	numNodes    int
	alloc       allocator
}

// New returns a handle to an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{head: newNode[V](), numNodes: 1, alloc: defaultAllocator{}}
}

// newTestTree builds a tree with an injected allocator, used only by
// this package's own tests to drive deterministic out-of-memory paths.
func newTestTree[V any](alloc allocator) *Tree[V] {
	return &Tree[V]{head: newNode[V](), numNodes: 1, alloc: alloc}
}

// Len reports the number of keys currently stored (numele in spec.md).
func (t *Tree[V]) Len() int { return t.numElements }

// NumNodes reports the total number of allocated nodes, including head
// (numnodes in spec.md). Exposed for invariant testing.
func (t *Tree[V]) NumNodes() int { return t.numNodes }

// Find looks up key and reports whether it is present. A present key
// whose value was stored as the null/unit value (InsertNull(key))
// returns the zero value of V with ok == true, disambiguated
// from absence exactly as spec.md's isnull flag disambiguates from the
// NOT_FOUND sentinel.
func (t *Tree[V]) Find(key []byte) (value V, ok bool) {
	matched, stop, _, splitPos := lowWalk(t, key, nil)
	if matched != len(key) || (stop.iscompr && splitPos != 0) {
		return value, false
	}
	return stop.getValue()
}

// FindRaw mirrors rax.c's raxFind literally: it returns the stored
// value boxed in any, or the NotFound sentinel if the key is absent.
// Prefer Find in new code; FindRaw exists for parity with spec.md §6's
// NOT_FOUND-sentinel contract.
func (t *Tree[V]) FindRaw(key []byte) any {
	v, ok := t.Find(key)
	if !ok {
		return NotFound
	}
	return v
}

// FindKey is Find for a typed Key, named after the teacher's own
// MultiMap.ContainsKey/GetValuesFor convention of taking a Key rather
// than a raw []byte.
func (t *Tree[V]) FindKey(key Key) (value V, ok bool) {
	return t.Find(key)
}

package rax

// pathFrame records one step of the iterator's downward path: the
// ancestor node n, the index within n.children that was taken (0 for a
// compressed node, which only ever has one child), and the length of
// it.key before this frame's bytes were appended (so ascending can
// truncate the key buffer back to exactly that point).
type pathFrame[V any] struct {
	n            *node[V]
	idx          int
	keyLenBefore int
}

// walkStop describes where a seek's downward walk halted. Exactly one
// of atBoundary, compressedMismatch or branchMismatch is true.
type walkStop[V any] struct {
	matched int
	stop    *node[V]

	atBoundary bool // stop reached cleanly; check stop.iskey

	compressedMismatch bool // halted inside a compressed node's inline string
	splitPos           int  // index within stop.data where the walk halted

	branchMismatch bool // halted at a branching node with no exact edge
	edgeIdx        int  // insertion point among stop's sorted edges
}

// walk descends from the tree head matching key, resetting and
// rebuilding it.key/it.path along the way. It stops either at a clean
// node boundary, inside a compressed node's inline string, or at a
// branching node lacking the next edge byte — mirroring lowWalk, but
// additionally tracking child indices (via node.findEdge) so seek can
// locate sibling edges without rescanning.
func (it *Iterator[V]) walk(key []byte) walkStop[V] {
	it.key = it.key[:0]
	it.path = it.path[:0]
	h := it.tree.head
	i := 0
	for h.size() > 0 && i < len(key) {
		if h.iscompr {
			j := 0
			for j < h.size() && i < len(key) {
				if h.data[j] != key[i] {
					break
				}
				j++
				i++
			}
			if j != h.size() {
				return walkStop[V]{matched: i, stop: h, compressedMismatch: true, splitPos: j}
			}
			h = it.pushCompressedFull(h)
			continue
		}
		idx, exact := h.findEdge(key[i])
		if !exact {
			return walkStop[V]{matched: i, stop: h, branchMismatch: true, edgeIdx: idx}
		}
		h = it.pushBranchChild(h, idx)
		i++
	}
	return walkStop[V]{matched: i, stop: h, atBoundary: true}
}

func (it *Iterator[V]) pushCompressedFull(h *node[V]) *node[V] {
	return it.pushCompressedPartial(h, 0)
}

func (it *Iterator[V]) pushCompressedPartial(h *node[V], from int) *node[V] {
	keyLenBefore := len(it.key)
	it.key = append(it.key, h.data[from:]...)
	it.path = append(it.path, pathFrame[V]{n: h, idx: 0, keyLenBefore: keyLenBefore})
	return *h.firstChildSlot()
}

func (it *Iterator[V]) pushBranchChild(h *node[V], idx int) *node[V] {
	keyLenBefore := len(it.key)
	it.key = append(it.key, h.data[idx])
	it.path = append(it.path, pathFrame[V]{n: h, idx: idx, keyLenBefore: keyLenBefore})
	return h.children[idx]
}

// descendLeftmost walks down from n, always taking the smallest edge
// (or a compressed node's single child), stopping at the first iskey
// node reached — the smallest key in n's subtree (spec.md §4.E rule 1).
func (it *Iterator[V]) descendLeftmost(n *node[V]) bool {
	for {
		if n.iskey {
			it.node = n
			return true
		}
		if n.size() == 0 {
			return false
		}
		if n.iscompr {
			n = it.pushCompressedFull(n)
		} else {
			n = it.pushBranchChild(n, 0)
		}
	}
}

// descendRightmost walks down from n always taking the largest edge,
// stopping at the deepest-last iskey node (the largest key in n's
// subtree; spec.md §4.E rule 2).
func (it *Iterator[V]) descendRightmost(n *node[V]) bool {
	for {
		if n.size() == 0 {
			it.node = n
			return true
		}
		if n.iscompr {
			n = it.pushCompressedFull(n)
		} else {
			n = it.pushBranchChild(n, len(n.children)-1)
		}
	}
}

// descendPastBoundaryLeft and descendPastBoundaryRight skip h's own
// arrival point (used when h itself must be excluded, e.g. a strict
// ">"/"<" seek landing exactly on a key, or Next/Prev advancing past
// the current node) and continue into its subtree.
func (it *Iterator[V]) descendPastBoundaryLeft(h *node[V]) bool {
	if h.iscompr {
		return it.descendLeftmost(it.pushCompressedFull(h))
	}
	return it.descendLeftmost(it.pushBranchChild(h, 0))
}

func (it *Iterator[V]) descendPastBoundaryRight(h *node[V]) bool {
	if h.iscompr {
		return it.descendRightmost(it.pushCompressedFull(h))
	}
	return it.descendRightmost(it.pushBranchChild(h, len(h.children)-1))
}

// ascendForSuccessor pops ancestors off it.path, truncating the key
// buffer to match, until it finds one with an unvisited child whose
// edge is greater than the one already taken; it then descends leftmost
// from that child. Compressed ancestors have no siblings and are simply
// skipped over.
func (it *Iterator[V]) ascendForSuccessor() bool {
	for len(it.path) > 0 {
		f := it.path[len(it.path)-1]
		it.path = it.path[:len(it.path)-1]
		it.key = it.key[:f.keyLenBefore]
		if f.n.iscompr {
			continue
		}
		if f.idx+1 < len(f.n.children) {
			return it.descendLeftmost(it.pushBranchChild(f.n, f.idx+1))
		}
	}
	return false
}

// ascendForPredecessor is the dual of ascendForSuccessor, except that an
// ancestor which is itself a key (a proper prefix of the key being left)
// is the predecessor when it has no smaller sibling edge to descend.
func (it *Iterator[V]) ascendForPredecessor() bool {
	for len(it.path) > 0 {
		f := it.path[len(it.path)-1]
		it.path = it.path[:len(it.path)-1]
		it.key = it.key[:f.keyLenBefore]
		if !f.n.iscompr && f.idx-1 >= 0 {
			return it.descendRightmost(it.pushBranchChild(f.n, f.idx-1))
		}
		if f.n.iskey {
			it.node = f.n
			return true
		}
	}
	return false
}

// resolveSuccessor positions the iterator at the least key satisfying
// ">=" (or ">" when excludeEqual) relative to the key passed to walk,
// given where the walk halted. Grounded on spec.md §4.E's "Seek
// resolution algorithm".
func (it *Iterator[V]) resolveSuccessor(ws walkStop[V], key []byte, excludeEqual bool) bool {
	switch {
	case ws.atBoundary:
		h := ws.stop
		if h.iskey && !excludeEqual && ws.matched == len(key) {
			it.node = h
			return true
		}
		if h.size() > 0 {
			return it.descendPastBoundaryLeft(h)
		}
		return it.ascendForSuccessor()
	case ws.compressedMismatch:
		if ws.matched == len(key) || key[ws.matched] < ws.stop.data[ws.splitPos] {
			return it.descendLeftmost(it.pushCompressedFull(ws.stop))
		}
		return it.ascendForSuccessor()
	default: // branchMismatch
		if ws.edgeIdx < ws.stop.size() {
			return it.descendLeftmost(it.pushBranchChild(ws.stop, ws.edgeIdx))
		}
		return it.ascendForSuccessor()
	}
}

// resolvePredecessor is the dual of resolveSuccessor, for "<=" / "<".
func (it *Iterator[V]) resolvePredecessor(ws walkStop[V], key []byte, excludeEqual bool) bool {
	switch {
	case ws.atBoundary:
		h := ws.stop
		// A key at h that is a proper prefix of key (the walk ran out of
		// tree before key ended) is strictly less than key.
		if h.iskey && (!excludeEqual || ws.matched < len(key)) {
			it.node = h
			return true
		}
		// Any descendant of h extends h's own prefix, hence sorts after
		// it (invariant 7): never a candidate for "<"; must ascend.
		return it.ascendForPredecessor()
	case ws.compressedMismatch:
		if ws.matched == len(key) || key[ws.matched] < ws.stop.data[ws.splitPos] {
			// The tree's forced continuation already exceeds key: this
			// whole subtree sorts after key. Only the stop node's own
			// key, a proper prefix of key, can precede it here.
			if ws.stop.iskey {
				it.node = ws.stop
				return true
			}
			return it.ascendForPredecessor()
		}
		return it.descendRightmost(it.pushCompressedFull(ws.stop))
	default: // branchMismatch
		if ws.edgeIdx-1 >= 0 {
			return it.descendRightmost(it.pushBranchChild(ws.stop, ws.edgeIdx-1))
		}
		if ws.stop.iskey {
			it.node = ws.stop
			return true
		}
		return it.ascendForPredecessor()
	}
}

package rax

import (
	"fmt"
	"math/rand/v2"
)

// Iterator is a bidirectional, lexicographically ordered cursor over a
// Tree. The zero value is not ready for use; call Start to bind it to a
// tree. An Iterator is not safe for concurrent use, and becomes invalid
// if the underlying tree is mutated while it is positioned — mirroring
// spec.md §5's single-owner model.
type Iterator[V any] struct {
	tree *Tree[V]

	key  []byte         // key bytes from head to node, maintained incrementally
	path []pathFrame[V] // ancestor trail; path[len-1] is node's immediate parent
	node *node[V]       // current position, nil if at-start/at-end

	atStart    bool
	atEnd      bool
	justJumped bool // set by Seek: the next Next/Prev returns the resolved position without moving
}

// Start binds it to tree in the at-start state, with no current
// position. Grounded on rax.c's raxStart.
func (it *Iterator[V]) Start(tree *Tree[V]) {
	it.tree = tree
	it.key = it.key[:0]
	it.path = it.path[:0]
	it.node = nil
	it.atStart = true
	it.atEnd = false
	it.justJumped = false
}

// Stop releases the iterator's key buffer and parent trail. The
// iterator may be reused via Start afterward.
func (it *Iterator[V]) Stop() {
	it.tree = nil
	it.key = nil
	it.path = nil
	it.node = nil
	it.atStart = false
	it.atEnd = false
	it.justJumped = false
}

// Key returns a copy of the current position's key. It returns nil if
// the iterator has no current position.
func (it *Iterator[V]) Key() []byte {
	if it.node == nil {
		return nil
	}
	k := make([]byte, len(it.key))
	copy(k, it.key)
	return k
}

// Value returns the current position's stored value, and whether the
// iterator is positioned on a key. A key holding the null value reports
// the zero value of V with true (mirroring node.getValue).
func (it *Iterator[V]) Value() (V, bool) {
	if it.node == nil {
		var zero V
		return zero, false
	}
	return it.node.getValue()
}

// AtEnd reports whether the iterator has run off either end.
func (it *Iterator[V]) AtEnd() bool { return it.atEnd }

func (it *Iterator[V]) finishSeek(found bool) {
	it.atStart = false
	if found {
		it.atEnd = false
		it.justJumped = true
		return
	}
	it.node = nil
	it.atEnd = true
	it.justJumped = false
}

// Seek positions the iterator per op and key, where op is one of "==",
// ">=", "<=", ">", "<", "^" (first key) or "$" (last key). It reports
// ok and, per spec.md §4.E rule 5, a seek that finds no matching
// successor/predecessor still "succeeds" (ok == true for
// >=/>/<=/<) but leaves the iterator at-end. Grounded on spec.md §4.E's
// seek resolution algorithm; rax.c has no equivalent (the teacher's and
// the wider corpus's own iterator/seek code was consulted for idiom
// only, since raxSeek is absent from the original source).
func (it *Iterator[V]) Seek(op string, key []byte) (bool, error) {
	switch op {
	case "^":
		it.key = it.key[:0]
		it.path = it.path[:0]
		h := it.tree.head
		found := h.iskey || h.size() != 0
		ok := found && it.descendLeftmost(h)
		it.finishSeek(ok)
		return ok, nil
	case "$":
		it.key = it.key[:0]
		it.path = it.path[:0]
		h := it.tree.head
		found := h.iskey || h.size() != 0
		ok := found && it.descendRightmost(h)
		it.finishSeek(ok)
		return ok, nil
	case "==":
		ws := it.walk(key)
		found := ws.atBoundary && ws.matched == len(key) && ws.stop.iskey
		if found {
			it.node = ws.stop
		}
		it.finishSeek(found)
		return found, nil
	case ">=":
		ws := it.walk(key)
		ok := it.resolveSuccessor(ws, key, false)
		it.finishSeek(ok)
		return true, nil
	case ">":
		ws := it.walk(key)
		ok := it.resolveSuccessor(ws, key, true)
		it.finishSeek(ok)
		return true, nil
	case "<=":
		ws := it.walk(key)
		ok := it.resolvePredecessor(ws, key, false)
		it.finishSeek(ok)
		return true, nil
	case "<":
		ws := it.walk(key)
		ok := it.resolvePredecessor(ws, key, true)
		it.finishSeek(ok)
		return true, nil
	default:
		return false, fmt.Errorf("rax: invalid seek operator %q", op)
	}
}

// Next advances the iterator to the next key in ascending order. It
// returns false once no further key exists (at-end). The call
// immediately following a successful Seek returns the resolved position
// without moving (spec.md §4.E).
func (it *Iterator[V]) Next() (bool, error) {
	if it.justJumped {
		it.justJumped = false
		return it.node != nil, nil
	}
	if it.atEnd || it.node == nil {
		return false, nil
	}
	ok := it.advanceForward()
	if !ok {
		it.atEnd = true
		it.node = nil
	}
	return ok, nil
}

// Prev is the dual of Next, walking in descending order.
func (it *Iterator[V]) Prev() (bool, error) {
	if it.justJumped {
		it.justJumped = false
		return it.node != nil, nil
	}
	if it.atEnd || it.node == nil {
		return false, nil
	}
	ok := it.advanceBackward()
	if !ok {
		it.atEnd = true
		it.node = nil
	}
	return ok, nil
}

func (it *Iterator[V]) advanceForward() bool {
	h := it.node
	if h.size() > 0 {
		return it.descendPastBoundaryLeft(h)
	}
	return it.ascendForSuccessor()
}

func (it *Iterator[V]) advanceBackward() bool {
	// Any descendant of the current node extends its key and so sorts
	// after it; the predecessor can only be found by ascending.
	return it.ascendForPredecessor()
}

// RandomWalk performs a bounded random traversal from the current
// position (or the tree head, if the iterator has no position),
// choosing uniformly at each node among ascending to the parent or
// descending into one of its children, and terminates once an iskey
// node is reached. It makes no uniformity guarantee over which key is
// produced, only that it terminates within a bounded number of steps
// (spec.md §4.E/§4.F).
func (it *Iterator[V]) RandomWalk(steps int) (bool, error) {
	if it.node == nil {
		it.key = it.key[:0]
		it.path = it.path[:0]
		it.node = it.tree.head
	}
	cur := it.node
	// Safety bound: the tree has at most numNodes nodes, so any
	// simple path has bounded length; this caps the forced
	// continuation past `steps` if no key has been reached yet.
	maxSteps := steps + it.tree.NumNodes()*2 + 1
	for s := 0; s < maxSteps && (s < steps || !cur.iskey); s++ {
		hasParent := len(it.path) > 0
		options := len(cur.children)
		total := options
		if hasParent {
			total++
		}
		if total == 0 {
			break
		}
		choice := rand.IntN(total)
		if hasParent && choice == options {
			f := it.path[len(it.path)-1]
			it.path = it.path[:len(it.path)-1]
			it.key = it.key[:f.keyLenBefore]
			cur = f.n
			continue
		}
		if cur.iscompr {
			cur = it.pushCompressedFull(cur)
		} else {
			cur = it.pushBranchChild(cur, choice)
		}
	}
	it.node = cur
	it.atStart = false
	it.atEnd = false
	it.justJumped = true
	return cur.iskey, nil
}

package rax

// NodeMaxSize bounds the inline string length of a single compressed
// node. Longer shared prefixes are represented as chains of such nodes,
// each holding at most NodeMaxSize bytes.
const NodeMaxSize = 29

// node is the single packed-node representation used throughout the
// tree. Unlike the teacher's ART node5/node51/node256 family (fixed
// capacity classes chosen for cache-line alignment), a rax node is
// variable length by construction: a branching node holds exactly one
// edge byte per child and a compressed node holds an inline byte
// string with a single child. Go slices stand in for the C
// implementation's flexible array members plus realloc; the node's own
// address never moves (see addChild/compress), only the slices backing
// its edges/children do, which sidesteps most of rax.c's parent-link
// bookkeeping but not all of it: split, trim and removeChild on a
// compressed node still allocate a brand-new *node and the caller is
// responsible for wiring it into the one slot that references it
// (parentLink below).
type node[V any] struct {
	iskey   bool
	isnull  bool
	iscompr bool

	// data holds edge bytes (one per child, strictly ascending) for a
	// branching node, or the inline shared-prefix string for a
	// compressed node.
	data []byte

	// children holds one *node per edge byte for a branching node, or
	// exactly one *node (the tail of the compressed span) for a
	// compressed node.
	children []*node[V]

	val V // valid iff iskey && !isnull
}

// parentLink is the address of the single slot that references a given
// node: either a field inside another node's children slice, or a
// tree's head field. Every structural rewrite (split, trim, compress,
// prune) must publish its replacement node through the parentLink it
// was handed before any further step depends on the new pointer.
type parentLink[V any] = **node[V]

// newNode allocates an empty branching node (no children, not a key).
func newNode[V any]() *node[V] {
	return &node[V]{}
}

// size reports the node's "size" in the spec's sense: the edge count
// for a branching node, or the inline string length for a compressed
// node. Go slices track their own length, so there is no separate
// stored counter to keep in sync (rax.c stores one because C arrays
// carry no length).
func (n *node[V]) size() int {
	return len(n.data)
}

// isLeaf reports whether a branching node has no children, i.e. it can
// terminate a compressed span (invariant 2 in spec.md §3).
func (n *node[V]) isLeaf() bool {
	return !n.iscompr && len(n.children) == 0
}

// getValue returns the node's stored value and whether the node is a
// key at all. A null-valued key (isnull) still reports ok == true, with
// the zero value of V — Find's isnull flag disambiguates that case from
// outright absence, it does not suppress presence.
func (n *node[V]) getValue() (V, bool) {
	var zero V
	if !n.iskey {
		return zero, false
	}
	if n.isnull {
		return zero, true
	}
	return n.val, true
}

// setValue marks the node as a key holding v. isNull, when true,
// stores the distinguished null/unit value instead of v (mirroring
// rax.c's raxSetData(n, NULL), which frees the value slot via
// realloc-to-shrink; here it just clears val to its zero value).
func (n *node[V]) setValue(v V, isNull bool) {
	n.iskey = true
	if isNull {
		var zero V
		n.val = zero
		n.isnull = true
		return
	}
	n.val = v
	n.isnull = false
}

// clearKey removes iskey/value from the node, used by Remove.
func (n *node[V]) clearKey() {
	var zero V
	n.iskey = false
	n.isnull = false
	n.val = zero
}

// addChild inserts a new child reached by edge, keeping n.data sorted
// ascending, and returns the freshly allocated child plus the slot
// that references it inside n.children. n must not be compressed.
func (n *node[V]) addChild(edge byte) (child *node[V], slot parentLink[V]) {
	if n.iscompr {
		panic("rax: addChild called on a compressed node")
	}
	pos := 0
	for pos < len(n.data) && n.data[pos] < edge {
		pos++
	}
	n.data = append(n.data, 0)
	copy(n.data[pos+1:], n.data[pos:len(n.data)-1])
	n.data[pos] = edge

	child = newNode[V]()
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:len(n.children)-1])
	n.children[pos] = child

	return child, &n.children[pos]
}

// compress turns n, which must be an empty (size==0) branching node,
// into a compressed node holding the given bytes, allocating a fresh
// empty branching node as its single child. Mirrors raxCompressNode.
func (n *node[V]) compress(bytes []byte) (tail *node[V]) {
	if n.size() != 0 || n.iscompr {
		panic("rax: compress requires an empty branching node")
	}
	n.iscompr = true
	n.data = append([]byte(nil), bytes...)
	tail = newNode[V]()
	n.children = []*node[V]{tail}
	return tail
}

// firstChildSlot and lastChildSlot address the first/last entries of
// n.children. For a compressed node these coincide (exactly one
// child).
func (n *node[V]) firstChildSlot() parentLink[V] {
	return &n.children[0]
}

func (n *node[V]) lastChildSlot() parentLink[V] {
	return &n.children[len(n.children)-1]
}

// findEdge locates b among n's sorted edge bytes, for a branching node.
// It returns (idx, true) if b is present at data[idx], or (idx, false)
// with idx set to the position of the first edge strictly greater than
// b (len(data) if none), the insertion point used by iterator seek to
// find the nearest sibling in either direction.
func (n *node[V]) findEdge(b byte) (idx int, exact bool) {
	for i, d := range n.data {
		if d == b {
			return i, true
		}
		if d > b {
			return i, false
		}
	}
	return len(n.data), false
}

// findParentLink linearly scans parent's children for child and
// returns the address of the slot holding it. Mirrors
// raxFindParentLink; undefined (panics) if child is not actually a
// child of parent.
func findParentLink[V any](parent *node[V], child *node[V]) parentLink[V] {
	for i := range parent.children {
		if parent.children[i] == child {
			return &parent.children[i]
		}
	}
	panic("rax: findParentLink: child not found in parent")
}

// removeChild detaches child from parent and returns the (possibly
// new) node that should replace parent in its own parent slot. If
// parent is compressed, its unique child is removed by turning parent
// into an empty branching node that preserves iskey/value (mirrors
// raxRemoveChild's compressed-node case); otherwise the edge byte and
// child pointer are spliced out in place and the same *parent is
// returned.
func (parent *node[V]) removeChild(child *node[V]) *node[V] {
	if parent.iscompr {
		replacement := newNode[V]()
		if parent.iskey {
			replacement.setValue(parent.val, parent.isnull)
		}
		return replacement
	}

	idx := -1
	for i := range parent.children {
		if parent.children[i] == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("rax: removeChild: child not found in parent")
	}
	parent.data = append(parent.data[:idx], parent.data[idx+1:]...)
	parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	return parent
}

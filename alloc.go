package rax

// allocator is the single seam through which every node allocation in
// this package flows: newNode, addChild's grow, compress's split/trim/
// postfix nodes, and re-compression's merged node. Go's allocator does
// not expose a recoverable out-of-memory signal the way C's malloc
// does, so production code always uses defaultAllocator, which never
// fails. Tests exercise the OOM contract of spec.md §7 with
// faultyAllocator instead, grounded in
// _examples/original_source/rax-oom-test.c, which wraps malloc/realloc
// to inject a deterministic failure after a configured call count
// rather than relying on actually exhausting process memory.
type allocator interface {
	// alloc reports whether the next allocation should succeed. Every
	// node-creating operation in insert.go/remove.go/node.go that can
	// meaningfully fail calls this first and returns ErrOutOfMemory
	// without mutating the tree if it reports false.
	alloc() bool
}

// defaultAllocator never fails; it is what every production Tree uses.
type defaultAllocator struct{}

func (defaultAllocator) alloc() bool { return true }

// faultyAllocator fails the call at position failAt (0-based) and lets
// every other call, before and after it, succeed; it is used
// exclusively by tests to drive a specific operation into the
// out-of-memory path deterministically.
type faultyAllocator struct {
	calls  int
	failAt int
}

func newFaultyAllocator(failAt int) *faultyAllocator {
	return &faultyAllocator{failAt: failAt}
}

func (f *faultyAllocator) alloc() bool {
	ok := f.calls != f.failAt
	f.calls++
	return ok
}

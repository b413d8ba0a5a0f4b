package rax

import "errors"

// ErrOutOfMemory is returned by Insert and Remove when an internal
// allocation point reports failure. It is a distinct, return-coded
// outcome, never a panic (spec.md §7): the tree is left in a
// structurally valid state, and for Insert specifically the key is
// never reported as inserted unless it fully committed. Iterator
// operations do not go through the allocator and never return it.
var ErrOutOfMemory = errors.New("rax: out of memory")

// notFoundSentinel is a distinguished value, distinct from any
// legitimate stored value, mirroring rax.c's raxNotFound "special
// pointer" trick (spec.md §3, §6). Idiomatic Go callers should prefer
// the (V, bool) return of Find; FindRaw exists only to keep that literal
// sentinel contract available.
type notFoundSentinel struct{}

// NotFound is the sentinel returned by FindRaw when a key is absent.
var NotFound any = &notFoundSentinel{}

// Package rax implements a compressed (Patricia) radix tree keyed by
// arbitrary byte strings, mapping each key to an opaque value of type V.
//
// The tree is single-owner and performs no internal synchronization;
// see the package-level invariants documented alongside Tree for the
// shape guarantees maintained across Insert, Remove and iteration.
package rax

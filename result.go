package flexcore

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
)

// Layout is the computed box for a node: its size (its own padding and
// border included) and its location relative to its parent's content-box
// origin, plus its index in its parent's child list (display:none children
// instead get a sequential index among their display:none siblings).
type Layout struct {
	Order    uint32
	Size     geometry.Size[float32]
	Location geometry.Point[float32]
}

// ComputeResult is the value threaded back up the recursion; only Size
// escapes to the caller; the recursive call's side effect (writing Layout
// onto every descendant) is what the caller actually wants when
// performLayout is true.
type ComputeResult struct {
	Size geometry.Size[float32]
}

// cacheEntry memoizes one compute_internal call, keyed by the triple
// (nodeSize, parentSize, performLayout). Each node holds a single slot:
// every computed result replaces the previous entry, so a query that
// differs from the node's most recent one (a child is queried once to
// measure its flex basis and again to place it) misses unless its sizes
// are compatible with the cached result (see cacheLookup).
type cacheEntry struct {
	nodeSize      geometry.Size[number.Number]
	parentSize    geometry.Size[number.Number]
	performLayout bool
	result        ComputeResult
}

// MeasureFunc computes a leaf's intrinsic content size given the
// available constraint on each axis (Defined acts as a hard maximum,
// Undefined as unconstrained). Implementations must be pure with respect
// to their input and must not call back into the forest. A non-nil error
// aborts the whole compute_layout call; see MeasureError.
type MeasureFunc func(constraint geometry.Size[number.Number]) (geometry.Size[float32], error)

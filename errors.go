package flexcore

import "errors"

// Sentinel errors returned by Forest mutation and query methods. They are
// returned unwrapped; errors.Is works for testing them.
var (
	// ErrInvalidNode is returned when a NodeId is not known to the forest,
	// either because it was never allocated or its subtree was removed.
	ErrInvalidNode = errors.New("flexcore: invalid node")

	// ErrChildAlreadyAttached is returned when add_child/set_children is
	// given a node that already has a parent.
	ErrChildAlreadyAttached = errors.New("flexcore: child already attached to a parent")

	// ErrChildNotFound is returned when remove_child is given a node that
	// is not currently a child of the target.
	ErrChildNotFound = errors.New("flexcore: child not found")
)

// MeasureError wraps a failure raised by a leaf measure callback. It
// aborts the entire compute_layout call; no partial layout state from that
// call becomes visible to the caller.
type MeasureError struct {
	Node NodeId
	Err  error
}

func (e *MeasureError) Error() string {
	return "flexcore: measure failed on node: " + e.Err.Error()
}

func (e *MeasureError) Unwrap() error {
	return e.Err
}

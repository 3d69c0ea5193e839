package flexcore

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
)

// DiagEvent describes a single compute_internal invocation, for callers
// that attach a DiagRecorder to watch cache behavior or hunt a layout
// regression without instrumenting the algorithm itself.
type DiagEvent struct {
	Node          NodeId
	NodeSize      geometry.Size[number.Number]
	ParentSize    geometry.Size[number.Number]
	PerformLayout bool
	CacheHit      bool
	ResultSize    geometry.Size[float32]
	Err           error
}

// DiagRecorder receives one DiagEvent per compute_internal call. Record
// must not call back into the Forest that produced the event.
type DiagRecorder interface {
	Record(DiagEvent)
}

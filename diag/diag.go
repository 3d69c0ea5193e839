// Package diag implements flexcore.DiagRecorder, writing one
// newline-delimited JSON object per compute_internal call to an io.Writer.
// It is intended for spotting unexpected cache misses or runaway
// recursion while developing against the forest, not for production use.
package diag

import (
	"encoding/json"
	"io"
	"sync"

	flexcore "github.com/phoenix-tui/flexcore"
)

// Recorder writes DiagEvents as newline-delimited JSON. The zero value is
// not usable; construct with NewRecorder.
type Recorder struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewRecorder returns a Recorder that writes to w. w is not closed by the
// Recorder.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

type line struct {
	Node          flexcore.NodeId `json:"node"`
	NodeWidth     *float32        `json:"node_width,omitempty"`
	NodeHeight    *float32        `json:"node_height,omitempty"`
	ParentWidth   *float32        `json:"parent_width,omitempty"`
	ParentHeight  *float32        `json:"parent_height,omitempty"`
	PerformLayout bool            `json:"perform_layout"`
	CacheHit      bool            `json:"cache_hit"`
	ResultWidth   float32         `json:"result_width"`
	ResultHeight  float32         `json:"result_height"`
	Error         string          `json:"error,omitempty"`
}

func numPtr(v float32, ok bool) *float32 {
	if !ok {
		return nil
	}
	return &v
}

// Record implements flexcore.DiagRecorder.
func (r *Recorder) Record(ev flexcore.DiagEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nw, nwOK := ev.NodeSize.Width.Value()
	nh, nhOK := ev.NodeSize.Height.Value()
	pw, pwOK := ev.ParentSize.Width.Value()
	ph, phOK := ev.ParentSize.Height.Value()

	l := line{
		Node:          ev.Node,
		NodeWidth:     numPtr(nw, nwOK),
		NodeHeight:    numPtr(nh, nhOK),
		ParentWidth:   numPtr(pw, pwOK),
		ParentHeight:  numPtr(ph, phOK),
		PerformLayout: ev.PerformLayout,
		CacheHit:      ev.CacheHit,
		ResultWidth:   ev.ResultSize.Width,
		ResultHeight:  ev.ResultSize.Height,
	}
	if ev.Err != nil {
		l.Error = ev.Err.Error()
	}
	// Encoding errors here would mean a broken writer; the recorder has no
	// error-reporting path back into the layout call, so they're dropped
	// the same way a logger drop would be.
	_ = r.enc.Encode(l)
}

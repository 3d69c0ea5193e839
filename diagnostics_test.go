package flexcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flexcore "github.com/phoenix-tui/flexcore"
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/style"
)

type fakeRecorder struct {
	events []flexcore.DiagEvent
}

func (r *fakeRecorder) Record(ev flexcore.DiagEvent) {
	r.events = append(r.events, ev)
}

func TestDiagRecorderObservesComputeCalls(t *testing.T) {
	f := flexcore.NewForest()
	rec := &fakeRecorder{}
	f.SetDiagRecorder(rec)

	child, err := f.NewNode(style.New(), nil)
	require.NoError(t, err)
	root := style.New()
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{child})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))
	assert.NotEmpty(t, rec.events)

	before := len(rec.events)
	require.NoError(t, f.ComputeLayout(rootID, undef()))
	assert.Greater(t, len(rec.events), before)
	assert.True(t, rec.events[len(rec.events)-1].CacheHit)
}

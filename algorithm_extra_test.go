package flexcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flexcore "github.com/phoenix-tui/flexcore"
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/style"
)

func TestMarginExcludedFromMaxHeightClamp(t *testing.T) {
	f := flexcore.NewForest()

	child := style.New()
	child.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	child.MaxSize.Height = style.Points(100)
	child.Margin.Top = style.Points(20)
	childID, err := f.NewNode(child, nil)
	require.NoError(t, err)

	root := style.New()
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(250), Height: style.Points(250)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{childID})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	rl, _ := f.Layout(rootID)
	assert.Equal(t, geometry.Size[float32]{Width: 250, Height: 250}, rl.Size)

	cl, _ := f.Layout(childID)
	assert.Equal(t, geometry.Size[float32]{Width: 100, Height: 100}, cl.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 20}, cl.Location)
}

func TestPercentageMinWidthClampsPercentageBasis(t *testing.T) {
	f := flexcore.NewForest()

	s0 := style.New()
	s0.FlexGrow = 1
	s0.FlexBasis = style.Percent(0.15)
	s0.MinSize.Width = style.Percent(0.6)
	child0, err := f.NewNode(s0, nil)
	require.NoError(t, err)

	s1 := style.New()
	s1.FlexGrow = 4
	s1.FlexBasis = style.Percent(0.10)
	s1.MinSize.Width = style.Percent(0.2)
	child1, err := f.NewNode(s1, nil)
	require.NoError(t, err)

	root := style.New()
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(200), Height: style.Points(400)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{child0, child1})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	l0, _ := f.Layout(child0)
	assert.Equal(t, geometry.Size[float32]{Width: 120, Height: 400}, l0.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 0}, l0.Location)

	l1, _ := f.Layout(child1)
	assert.Equal(t, geometry.Size[float32]{Width: 80, Height: 400}, l1.Size)
	assert.Equal(t, geometry.Point[float32]{X: 120, Y: 0}, l1.Location)
}

func TestAlignContentFlexEndRespectsWrapReverse(t *testing.T) {
	f := flexcore.NewForest()

	s0 := style.New()
	s0.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(50)}
	child0, err := f.NewNode(s0, nil)
	require.NoError(t, err)

	s1 := style.New()
	s1.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(50)}
	child1, err := f.NewNode(s1, nil)
	require.NoError(t, err)

	root := style.New()
	root.FlexWrap = style.FlexWrapWrapReverse
	root.AlignContent = style.AlignContentFlexEnd
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(300)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{child0, child1})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	// wrap-reverse flips which physical edge "flex-end" packs against, so
	// the two lines stack from the cross-axis start instead of leaving
	// their unused free space there.
	l0, _ := f.Layout(child0)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 50}, l0.Location)

	l1, _ := f.Layout(child1)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 0}, l1.Location)
}

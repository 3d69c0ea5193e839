package flexcore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flexcore "github.com/phoenix-tui/flexcore"
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

func undef() geometry.Size[number.Number] {
	return geometry.Size[number.Number]{Width: number.Undefined(), Height: number.Undefined()}
}

func TestDisplayNoneWithPosition(t *testing.T) {
	f := flexcore.NewForest()

	s0 := style.New()
	s0.FlexGrow = 1
	child0, err := f.NewNode(s0, nil)
	require.NoError(t, err)

	s1 := style.New()
	s1.Display = style.DisplayNone
	s1.FlexGrow = 1
	s1.Position.Top = style.Points(10)
	child1, err := f.NewNode(s1, nil)
	require.NoError(t, err)

	root := style.New()
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{child0, child1})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	rl, _ := f.Layout(rootID)
	assert.Equal(t, geometry.Size[float32]{Width: 100, Height: 100}, rl.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 0}, rl.Location)

	l0, _ := f.Layout(child0)
	assert.Equal(t, geometry.Size[float32]{Width: 100, Height: 100}, l0.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 0}, l0.Location)

	l1, _ := f.Layout(child1)
	assert.Equal(t, geometry.Size[float32]{Width: 0, Height: 0}, l1.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 0}, l1.Location)
}

func TestFlexDirectionRowNoWidth(t *testing.T) {
	f := flexcore.NewForest()

	var kids []flexcore.NodeId
	for i := 0; i < 3; i++ {
		cs := style.New()
		cs.Size.Width = style.Points(10)
		id, err := f.NewNode(cs, nil)
		require.NoError(t, err)
		kids = append(kids, id)
	}

	root := style.New()
	root.Size.Height = style.Points(100)
	rootID, err := f.NewNode(root, kids)
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	rl, _ := f.Layout(rootID)
	assert.Equal(t, geometry.Size[float32]{Width: 30, Height: 100}, rl.Size)

	for i, k := range kids {
		l, _ := f.Layout(k)
		assert.Equal(t, geometry.Size[float32]{Width: 10, Height: 100}, l.Size)
		assert.Equal(t, float32(i*10), l.Location.X)
		assert.Equal(t, float32(0), l.Location.Y)
	}
}

func TestJustifyContentMinMax(t *testing.T) {
	f := flexcore.NewForest()

	child := style.New()
	child.Size = geometry.Size[style.Dimension]{Width: style.Points(60), Height: style.Points(60)}
	childID, err := f.NewNode(child, nil)
	require.NoError(t, err)

	root := style.New()
	root.FlexDirection = style.FlexDirectionColumn
	root.JustifyContent = style.JustifyContentCenter
	root.Size.Width = style.Points(100)
	root.MinSize.Height = style.Points(100)
	root.MaxSize.Height = style.Points(200)
	rootID, err := f.NewNode(root, []flexcore.NodeId{childID})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	rl, _ := f.Layout(rootID)
	assert.Equal(t, geometry.Size[float32]{Width: 100, Height: 100}, rl.Size)

	cl, _ := f.Layout(childID)
	assert.Equal(t, geometry.Size[float32]{Width: 60, Height: 60}, cl.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 20}, cl.Location)
}

func TestMarginBottom(t *testing.T) {
	f := flexcore.NewForest()

	child := style.New()
	child.Size.Height = style.Points(10)
	child.Margin.Bottom = style.Points(10)
	childID, err := f.NewNode(child, nil)
	require.NoError(t, err)

	root := style.New()
	root.FlexDirection = style.FlexDirectionColumn
	root.JustifyContent = style.JustifyContentFlexEnd
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{childID})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	cl, _ := f.Layout(childID)
	assert.Equal(t, geometry.Size[float32]{Width: 100, Height: 10}, cl.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 80}, cl.Location)
}

func TestPaddingAlignEndChild(t *testing.T) {
	f := flexcore.NewForest()

	child := style.New()
	child.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	child.Padding = geometry.Rect[style.Dimension]{
		Start: style.Points(20), End: style.Points(20), Top: style.Points(20), Bottom: style.Points(20),
	}
	childID, err := f.NewNode(child, nil)
	require.NoError(t, err)

	root := style.New()
	root.AlignItems = style.AlignItemsFlexEnd
	root.JustifyContent = style.JustifyContentFlexEnd
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(200), Height: style.Points(200)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{childID})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	cl, _ := f.Layout(childID)
	assert.Equal(t, geometry.Size[float32]{Width: 100, Height: 100}, cl.Size)
	assert.Equal(t, geometry.Point[float32]{X: 100, Y: 100}, cl.Location)
}

func TestPercentageFlexBasisCrossMinHeight(t *testing.T) {
	f := flexcore.NewForest()

	s0 := style.New()
	s0.FlexGrow = 1
	s0.MinSize.Height = style.Percent(0.6)
	child0, err := f.NewNode(s0, nil)
	require.NoError(t, err)

	s1 := style.New()
	s1.FlexGrow = 2
	s1.MinSize.Height = style.Percent(0.1)
	child1, err := f.NewNode(s1, nil)
	require.NoError(t, err)

	root := style.New()
	root.FlexDirection = style.FlexDirectionColumn
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(200), Height: style.Points(400)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{child0, child1})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))

	l0, _ := f.Layout(child0)
	assert.Equal(t, geometry.Size[float32]{Width: 200, Height: 280}, l0.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 0}, l0.Location)

	l1, _ := f.Layout(child1)
	assert.Equal(t, geometry.Size[float32]{Width: 200, Height: 120}, l1.Size)
	assert.Equal(t, geometry.Point[float32]{X: 0, Y: 280}, l1.Location)
}

func TestCacheCoherenceAcrossRepeatedCompute(t *testing.T) {
	f := flexcore.NewForest()

	calls := 0
	leaf := style.New()
	leafID, err := f.NewNode(leaf, nil)
	require.NoError(t, err)
	require.NoError(t, f.SetMeasure(leafID, func(constraint geometry.Size[number.Number]) (geometry.Size[float32], error) {
		calls++
		return geometry.Size[float32]{Width: 42, Height: 7}, nil
	}))

	root := style.New()
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{leafID})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(rootID, undef()))
	first, _ := f.Layout(leafID)
	callsAfterFirst := calls

	require.NoError(t, f.ComputeLayout(rootID, undef()))
	second, _ := f.Layout(leafID)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, calls)
}

func TestMeasureFailureAbortsComputeLayout(t *testing.T) {
	f := flexcore.NewForest()

	measureErr := errors.New("glyph atlas unavailable")
	leaf := style.New()
	leafID, err := f.NewNode(leaf, nil)
	require.NoError(t, err)
	require.NoError(t, f.SetMeasure(leafID, func(constraint geometry.Size[number.Number]) (geometry.Size[float32], error) {
		return geometry.Size[float32]{}, measureErr
	}))

	root := style.New()
	root.Size = geometry.Size[style.Dimension]{Width: style.Points(100), Height: style.Points(100)}
	rootID, err := f.NewNode(root, []flexcore.NodeId{leafID})
	require.NoError(t, err)

	err = f.ComputeLayout(rootID, undef())
	require.Error(t, err)

	var measureFailure *flexcore.MeasureError
	require.ErrorAs(t, err, &measureFailure)
	assert.Equal(t, leafID, measureFailure.Node)
	assert.ErrorIs(t, err, measureErr)

	_, layoutErr := f.Layout(rootID)
	assert.Error(t, layoutErr)
}

func TestDirtyPropagatesToAncestors(t *testing.T) {
	f := flexcore.NewForest()

	leaf, err := f.NewNode(style.New(), nil)
	require.NoError(t, err)
	mid, err := f.NewNode(style.New(), []flexcore.NodeId{leaf})
	require.NoError(t, err)
	root, err := f.NewNode(style.New(), []flexcore.NodeId{mid})
	require.NoError(t, err)

	require.NoError(t, f.ComputeLayout(root, undef()))
	assert.False(t, f.Dirty(root))

	s := style.New()
	s.FlexGrow = 1
	require.NoError(t, f.SetStyle(leaf, s))

	assert.True(t, f.Dirty(leaf))
	assert.True(t, f.Dirty(mid))
	assert.True(t, f.Dirty(root))
}

func TestRemoveChildDetaches(t *testing.T) {
	f := flexcore.NewForest()

	child, err := f.NewNode(style.New(), nil)
	require.NoError(t, err)
	root, err := f.NewNode(style.New(), []flexcore.NodeId{child})
	require.NoError(t, err)

	require.NoError(t, f.RemoveChild(root, child))
	kids, err := f.Children(root)
	require.NoError(t, err)
	assert.Empty(t, kids)

	require.NoError(t, f.AddChild(root, child))
	kids, err = f.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []flexcore.NodeId{child}, kids)
}

func TestAddChildAlreadyAttached(t *testing.T) {
	f := flexcore.NewForest()
	child, err := f.NewNode(style.New(), nil)
	require.NoError(t, err)
	root1, err := f.NewNode(style.New(), []flexcore.NodeId{child})
	require.NoError(t, err)
	root2, err := f.NewNode(style.New(), nil)
	require.NoError(t, err)

	err = f.AddChild(root2, child)
	assert.ErrorIs(t, err, flexcore.ErrChildAlreadyAttached)
	_ = root1
}

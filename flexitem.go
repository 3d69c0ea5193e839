package flexcore

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

// flexItem is the per-child working state built at the start of
// compute_internal and discarded at the end of it; nothing here survives
// across calls, only the Layout written onto the forest does.
type flexItem struct {
	node       NodeId
	order      int // index in the node's original, unfiltered child list
	style      style.Style

	size    geometry.Size[number.Number]
	minSize geometry.Size[number.Number]
	maxSize geometry.Size[number.Number]

	position geometry.Rect[number.Number]
	margin   geometry.Rect[float32]
	marginIsAuto geometry.Rect[bool]
	padding  geometry.Rect[float32]
	border   geometry.Rect[float32]

	flexBasis      float32
	innerFlexBasis float32
	violation      float32
	frozen         bool

	hypotheticalInnerSize geometry.Size[float32]
	hypotheticalOuterSize geometry.Size[float32]

	targetSize      geometry.Size[float32]
	outerTargetSize geometry.Size[float32]

	baseline float32

	offsetMain  float32
	offsetCross float32
}

type flexLine struct {
	items       []*flexItem
	crossSize   float32
	offsetCross float32
}

// resolveEdges resolves a Rect<Dimension> to a Rect<f32>, each edge
// against parentWidth (CSS Flexbox resolves all four edges of margin,
// padding, and border against the inline axis of the containing block;
// this engine follows that uniformly, including top/bottom).
func resolveEdges(r geometry.Rect[style.Dimension], parentWidth number.Number) geometry.Rect[float32] {
	return geometry.Rect[float32]{
		Start:  r.Start.Resolve(parentWidth).OrElse(0),
		End:    r.End.Resolve(parentWidth).OrElse(0),
		Top:    r.Top.Resolve(parentWidth).OrElse(0),
		Bottom: r.Bottom.Resolve(parentWidth).OrElse(0),
	}
}

func resolveEdgesAsNumber(r geometry.Rect[style.Dimension], parentWidth number.Number) geometry.Rect[number.Number] {
	return geometry.Rect[number.Number]{
		Start:  r.Start.Resolve(parentWidth),
		End:    r.End.Resolve(parentWidth),
		Top:    r.Top.Resolve(parentWidth),
		Bottom: r.Bottom.Resolve(parentWidth),
	}
}

func marginIsAutoEdges(r geometry.Rect[style.Dimension]) geometry.Rect[bool] {
	return geometry.Rect[bool]{
		Start:  r.Start.IsAuto(),
		End:    r.End.IsAuto(),
		Top:    r.Top.IsAuto(),
		Bottom: r.Bottom.IsAuto(),
	}
}

func resolveSize(s geometry.Size[style.Dimension], against geometry.Size[number.Number]) geometry.Size[number.Number] {
	return geometry.Size[number.Number]{
		Width:  s.Width.Resolve(against.Width),
		Height: s.Height.Resolve(against.Height),
	}
}

func paddingBorderRect(padding, border geometry.Rect[float32]) geometry.Rect[float32] {
	return geometry.Rect[float32]{
		Start:  padding.Start + border.Start,
		End:    padding.End + border.End,
		Top:    padding.Top + border.Top,
		Bottom: padding.Bottom + border.Bottom,
	}
}

// Package style defines the flex-relevant style properties a forest node
// carries, along with their CSS Flexbox Level 1 defaults.
//
// Design Philosophy:
//   - Pure data: Style carries no behavior beyond resolving its own
//     defaults and projecting align-self against a parent's align-items
//   - Exported fields rather than a fluent builder: callers construct a
//     Style once via New() and mutate fields directly before handing it to
//     the forest, matching the reference engine's plain-struct style type
package style

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
)

// Display controls whether a node participates in layout at all.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// PositionType selects whether a node flows with its siblings or is
// positioned relative to its containing block.
type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Direction carries inline-axis writing direction, inherited unless
// overridden. The core algorithm treats start/end edges uniformly and does
// not itself flip them for RTL; resolving the flip is left to the style
// authority that inherits Direction down the tree.
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the main axis and its flow order.
type FlexDirection int

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsColumn reports whether the main axis is vertical.
func (d FlexDirection) IsColumn() bool {
	return d == FlexDirectionColumn || d == FlexDirectionColumnReverse
}

// IsReverse reports whether items flow from the end of the main axis.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// FlexWrap controls whether a line overflows or wraps onto new lines.
type FlexWrap int

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
)

// Overflow is carried for completeness; the core layout algorithm does not
// clip content, it only measures and positions boxes.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// AlignItems is the container-level default for cross-axis alignment.
type AlignItems int

const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignSelf overrides a single item's cross-axis alignment. Auto defers to
// the parent's AlignItems.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// AlignContent controls how flex lines are packed along the cross axis.
type AlignContent int

const (
	AlignContentFlexStart AlignContent = iota
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

// JustifyContent controls how items are packed along the main axis.
type JustifyContent int

const (
	JustifyContentFlexStart JustifyContent = iota
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

// dimensionKind tags Dimension's variant. Undefined is the zero value so
// that a zero-value Rect[Dimension] (margin, padding, border, position)
// defaults to "unset" without an explicit constructor call.
type dimensionKind int8

const (
	dimensionUndefined dimensionKind = iota
	dimensionAuto
	dimensionPoints
	dimensionPercent
)

// Dimension is a length expressed as an absolute value, a percentage of
// the containing block, or one of the two "no concrete value" variants.
type Dimension struct {
	kind  dimensionKind
	value float32
}

// Points constructs an absolute-length Dimension.
func Points(v float32) Dimension {
	return Dimension{kind: dimensionPoints, value: v}
}

// Percent constructs a Dimension that resolves to a fraction of the
// parent's corresponding axis. v is a fraction, not a 0-100 percentage
// (0.5 means 50%).
func Percent(v float32) Dimension {
	return Dimension{kind: dimensionPercent, value: v}
}

// Auto constructs the Auto Dimension variant.
func Auto() Dimension {
	return Dimension{kind: dimensionAuto}
}

// UndefinedDimension constructs the Undefined Dimension variant (the zero
// value of Dimension already is one; this exists for readability at call
// sites that want to be explicit).
func UndefinedDimension() Dimension {
	return Dimension{kind: dimensionUndefined}
}

// IsAuto reports whether the Dimension is the Auto variant.
func (d Dimension) IsAuto() bool {
	return d.kind == dimensionAuto
}

// IsUndefined reports whether the Dimension is the Undefined variant.
func (d Dimension) IsUndefined() bool {
	return d.kind == dimensionUndefined
}

// Resolve projects the Dimension against a (possibly undefined) parent
// measurement: Points always resolves, Percent resolves only if the parent
// is defined, and Auto/Undefined always resolve to Undefined.
func (d Dimension) Resolve(parent number.Number) number.Number {
	switch d.kind {
	case dimensionPoints:
		return number.Of(d.value)
	case dimensionPercent:
		if v, ok := parent.Value(); ok {
			return number.Of(v * d.value)
		}
		return number.Undefined()
	default:
		return number.Undefined()
	}
}

// Style is the full set of flex-relevant properties attached to a node.
// Every field has a CSS Flexbox Level 1 default; use New to obtain a Style
// with those defaults populated, since several of them (AlignItems,
// AlignContent, FlexShrink) are not Go's zero value.
type Style struct {
	Display       Display
	PositionType  PositionType
	Direction     Direction
	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	Overflow      Overflow

	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	Position geometry.Rect[Dimension]
	Margin   geometry.Rect[Dimension]
	Padding  geometry.Rect[Dimension]
	Border   geometry.Rect[Dimension]

	Size    geometry.Size[Dimension]
	MinSize geometry.Size[Dimension]
	MaxSize geometry.Size[Dimension]

	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension

	AspectRatio number.Number
}

// New returns a Style populated with the CSS Flexbox Level 1 defaults:
// display=Flex, position=Relative, direction=Inherit, flex-direction=Row,
// no wrap, visible overflow, align-items=Stretch, align-self=Auto,
// align-content=Stretch, justify-content=FlexStart, every Rect<Dimension>
// edge Undefined, every Size<Dimension> axis Auto, flex-grow=0,
// flex-shrink=1, flex-basis=Auto, aspect-ratio=Undefined.
func New() Style {
	return Style{
		Display:        DisplayFlex,
		PositionType:   PositionRelative,
		Direction:      DirectionInherit,
		FlexDirection:  FlexDirectionRow,
		FlexWrap:       FlexWrapNoWrap,
		Overflow:       OverflowVisible,
		AlignItems:     AlignItemsStretch,
		AlignSelf:      AlignSelfAuto,
		AlignContent:   AlignContentStretch,
		JustifyContent: JustifyContentFlexStart,
		Size:           geometry.Size[Dimension]{Width: Auto(), Height: Auto()},
		MinSize:        geometry.Size[Dimension]{Width: Auto(), Height: Auto()},
		MaxSize:        geometry.Size[Dimension]{Width: Auto(), Height: Auto()},
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto(),
		AspectRatio:    number.Undefined(),
	}
}

// EffectiveAlignSelf resolves this node's align-self, deferring to the
// parent's align-items when align-self is Auto.
func (s Style) EffectiveAlignSelf(parent Style) AlignSelf {
	if s.AlignSelf != AlignSelfAuto {
		return s.AlignSelf
	}
	switch parent.AlignItems {
	case AlignItemsFlexStart:
		return AlignSelfFlexStart
	case AlignItemsFlexEnd:
		return AlignSelfFlexEnd
	case AlignItemsCenter:
		return AlignSelfCenter
	case AlignItemsBaseline:
		return AlignSelfBaseline
	default:
		return AlignSelfStretch
	}
}

// Package geometry provides the generic size/point/rect primitives shared by
// style and layout computation, with helpers that project a value onto the
// main or cross axis of a flex container.
//
// Design Philosophy:
//   - Plain data, generic over the element type (Dimension at the
//     style layer, Number mid-computation, float32 once resolved)
//   - Main/cross projection takes a simple isRow flag rather than depending
//     on the style package's FlexDirection, which keeps this package free
//     of a dependency cycle back to style
package geometry

import "github.com/phoenix-tui/flexcore/number"

// Size holds a width/height pair.
type Size[T any] struct {
	Width  T
	Height T
}

// Main returns Width when the container lays items out in a row, Height
// for a column.
func (s Size[T]) Main(isRow bool) T {
	if isRow {
		return s.Width
	}
	return s.Height
}

// Cross returns the dimension perpendicular to Main.
func (s Size[T]) Cross(isRow bool) T {
	if isRow {
		return s.Height
	}
	return s.Width
}

// SetMain writes the main-axis field in place.
func (s *Size[T]) SetMain(isRow bool, v T) {
	if isRow {
		s.Width = v
	} else {
		s.Height = v
	}
}

// SetCross writes the cross-axis field in place.
func (s *Size[T]) SetCross(isRow bool, v T) {
	if isRow {
		s.Height = v
	} else {
		s.Width = v
	}
}

// SizeMap applies f to both fields, producing a Size of a possibly different
// element type.
func SizeMap[T, R any](s Size[T], f func(T) R) Size[R] {
	return Size[R]{Width: f(s.Width), Height: f(s.Height)}
}

// UndefinedSize is a Size<Number> with both axes Undefined.
func UndefinedSize() Size[number.Number] {
	return Size[number.Number]{Width: number.Undefined(), Height: number.Undefined()}
}

// ZeroSize is a Size<float32> with both axes at zero.
func ZeroSize() Size[float32] {
	return Size[float32]{}
}

// ToNumberSize promotes a Size<float32> to Size<Number>, each axis Defined.
func ToNumberSize(s Size[float32]) Size[number.Number] {
	return Size[number.Number]{Width: number.Of(s.Width), Height: number.Of(s.Height)}
}

// Point holds an x/y pair, relative to a parent's content-box origin once
// produced by layout.
type Point[T any] struct {
	X T
	Y T
}

// ZeroPoint is the origin.
func ZeroPoint() Point[float32] {
	return Point[float32]{}
}

// Rect holds the four edges of a box: start/end (inline axis) and
// top/bottom (block axis). Layout treats Start as the left edge and End as
// the right edge; nothing in this module flips them for RTL (see
// style.Direction).
type Rect[T any] struct {
	Start  T
	End    T
	Top    T
	Bottom T
}

// MainStart returns the edge nearest the start of the main axis.
func (r Rect[T]) MainStart(isRow bool) T {
	if isRow {
		return r.Start
	}
	return r.Top
}

// MainEnd returns the edge nearest the end of the main axis.
func (r Rect[T]) MainEnd(isRow bool) T {
	if isRow {
		return r.End
	}
	return r.Bottom
}

// CrossStart returns the edge nearest the start of the cross axis.
func (r Rect[T]) CrossStart(isRow bool) T {
	if isRow {
		return r.Top
	}
	return r.Start
}

// CrossEnd returns the edge nearest the end of the cross axis.
func (r Rect[T]) CrossEnd(isRow bool) T {
	if isRow {
		return r.Bottom
	}
	return r.End
}

// RectMap applies f to all four edges.
func RectMap[T, R any](r Rect[T], f func(T) R) Rect[R] {
	return Rect[R]{Start: f(r.Start), End: f(r.End), Top: f(r.Top), Bottom: f(r.Bottom)}
}

// Horizontal sums the start and end edges of a resolved float32 rect.
func Horizontal(r Rect[float32]) float32 {
	return r.Start + r.End
}

// Vertical sums the top and bottom edges of a resolved float32 rect.
func Vertical(r Rect[float32]) float32 {
	return r.Top + r.Bottom
}

// Main sums the pair of edges along the main axis.
func Main(r Rect[float32], isRow bool) float32 {
	if isRow {
		return Horizontal(r)
	}
	return Vertical(r)
}

// Cross sums the pair of edges along the cross axis.
func Cross(r Rect[float32], isRow bool) float32 {
	if isRow {
		return Vertical(r)
	}
	return Horizontal(r)
}

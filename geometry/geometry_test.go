package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
)

func TestSizeMainCross(t *testing.T) {
	s := geometry.Size[float32]{Width: 10, Height: 20}
	assert.Equal(t, float32(10), s.Main(true))
	assert.Equal(t, float32(20), s.Main(false))
	assert.Equal(t, float32(20), s.Cross(true))
	assert.Equal(t, float32(10), s.Cross(false))

	s.SetMain(true, 100)
	assert.Equal(t, float32(100), s.Width)
	s.SetCross(true, 200)
	assert.Equal(t, float32(200), s.Height)
}

func TestRectProjections(t *testing.T) {
	r := geometry.Rect[float32]{Start: 1, End: 2, Top: 3, Bottom: 4}
	assert.Equal(t, float32(1), r.MainStart(true))
	assert.Equal(t, float32(3), r.MainStart(false))
	assert.Equal(t, float32(2), r.MainEnd(true))
	assert.Equal(t, float32(3), r.CrossStart(true))
	assert.Equal(t, float32(1), r.CrossStart(false))

	assert.Equal(t, float32(3), geometry.Horizontal(r))
	assert.Equal(t, float32(7), geometry.Vertical(r))
	assert.Equal(t, float32(3), geometry.Main(r, true))
	assert.Equal(t, float32(7), geometry.Main(r, false))
}

func TestToNumberSize(t *testing.T) {
	s := geometry.ToNumberSize(geometry.Size[float32]{Width: 1, Height: 2})
	w, ok := s.Width.Value()
	assert.True(t, ok)
	assert.Equal(t, float32(1), w)
	assert.True(t, geometry.UndefinedSize().Width.IsUndefined())
	_ = number.Undefined()
}

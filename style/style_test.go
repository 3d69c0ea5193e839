package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

func TestNewDefaults(t *testing.T) {
	s := style.New()
	assert.Equal(t, style.DisplayFlex, s.Display)
	assert.Equal(t, style.FlexDirectionRow, s.FlexDirection)
	assert.Equal(t, style.AlignItemsStretch, s.AlignItems)
	assert.Equal(t, style.AlignSelfAuto, s.AlignSelf)
	assert.Equal(t, style.AlignContentStretch, s.AlignContent)
	assert.Equal(t, style.JustifyContentFlexStart, s.JustifyContent)
	assert.True(t, s.Size.Width.IsAuto())
	assert.True(t, s.Size.Height.IsAuto())
	assert.True(t, s.Margin.Start.IsUndefined())
	assert.Equal(t, float32(0), s.FlexGrow)
	assert.Equal(t, float32(1), s.FlexShrink)
	assert.True(t, s.FlexBasis.IsAuto())
	assert.True(t, s.AspectRatio.IsUndefined())
}

func TestDimensionResolve(t *testing.T) {
	assert.Equal(t, float32(10), style.Points(10).Resolve(number.Undefined()).OrElse(0))
	assert.True(t, style.Percent(0.5).Resolve(number.Undefined()).IsUndefined())
	v, ok := style.Percent(0.5).Resolve(number.Defined(100)).Value()
	assert.True(t, ok)
	assert.Equal(t, float32(50), v)
	assert.True(t, style.Auto().Resolve(number.Defined(100)).IsUndefined())
}

func TestEffectiveAlignSelf(t *testing.T) {
	parent := style.New()
	parent.AlignItems = style.AlignItemsCenter

	child := style.New()
	assert.Equal(t, style.AlignSelfCenter, child.EffectiveAlignSelf(parent))

	child.AlignSelf = style.AlignSelfFlexEnd
	assert.Equal(t, style.AlignSelfFlexEnd, child.EffectiveAlignSelf(parent))
}

func TestFlexDirectionPredicates(t *testing.T) {
	assert.True(t, style.FlexDirectionRow.IsRow())
	assert.True(t, style.FlexDirectionRowReverse.IsRow())
	assert.True(t, style.FlexDirectionRowReverse.IsReverse())
	assert.True(t, style.FlexDirectionColumn.IsColumn())
	assert.False(t, style.FlexDirectionColumn.IsReverse())
}

package number_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phoenix-tui/flexcore/number"
)

func TestDefinedFoldsNaN(t *testing.T) {
	zero := float32(0)
	n := number.Defined(zero / zero)
	assert.True(t, n.IsUndefined())
}

func TestArithmeticAbsorbsUndefined(t *testing.T) {
	a := number.Defined(10)
	u := number.Undefined()

	assert.True(t, a.Add(u).IsUndefined())
	assert.True(t, u.Add(a).IsUndefined())
	assert.True(t, a.Sub(u).IsUndefined())
	assert.True(t, a.Mul(u).IsUndefined())
	assert.True(t, a.Div(u).IsUndefined())

	sum := a.Add(number.Defined(5))
	v, ok := sum.Value()
	assert.True(t, ok)
	assert.Equal(t, float32(15), v)
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, float32(10), number.Defined(10).OrElse(99))
	assert.Equal(t, float32(99), number.Undefined().OrElse(99))
}

func TestMaybeMinMax(t *testing.T) {
	a := number.Defined(10)
	assert.Equal(t, float32(5), a.MaybeMin(number.Defined(5)).OrElse(0))
	assert.Equal(t, float32(10), a.MaybeMin(number.Undefined()).OrElse(0))
	assert.Equal(t, float32(20), a.MaybeMax(number.Defined(20)).OrElse(0))
	assert.True(t, number.Undefined().MaybeMin(number.Defined(5)).IsUndefined())
}

func TestMaybeMinMaxOnF(t *testing.T) {
	assert.Equal(t, float32(5), number.MaybeMinOnF(10, number.Defined(5)))
	assert.Equal(t, float32(10), number.MaybeMinOnF(10, number.Undefined()))
	assert.Equal(t, float32(20), number.MaybeMaxOnF(10, number.Defined(20)))
}

func TestEqual(t *testing.T) {
	assert.True(t, number.Defined(1).Equal(number.Defined(1)))
	assert.False(t, number.Defined(1).Equal(number.Defined(2)))
	assert.True(t, number.Undefined().Equal(number.Undefined()))
	assert.False(t, number.Defined(1).Equal(number.Undefined()))
}

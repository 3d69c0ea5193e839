// Package number provides the tri-state scalar used throughout layout
// computation: a value that is either a concrete float or Undefined.
//
// Design Philosophy:
//   - Immutable value object
//   - Undefined is absorbing for arithmetic (mirrors an unconstrained CSS
//     dimension propagating through a calculation)
//   - NaN from a caller is folded into Undefined at construction time, never
//     silently propagated as a numeric oddity
package number

import "math"

// Number is either Defined(value) or Undefined.
//
// Example:
//
//	a := number.Defined(10)
//	b := number.Undefined()
//	a.Add(b) // Undefined
type Number struct {
	value   float32
	defined bool
}

// Defined returns a Number holding the given value.
// A NaN value is folded into Undefined, matching the reference engine's
// treatment of NaN at API boundaries.
func Defined(value float32) Number {
	if isNaN(value) {
		return Number{}
	}
	return Number{value: value, defined: true}
}

// Undefined returns the undefined Number.
func Undefined() Number {
	return Number{}
}

// Of promotes a plain float32 to a defined Number. Equivalent to Defined,
// provided for call sites that read more naturally as a conversion
// (mirrors the reference engine's ToNumber).
func Of(value float32) Number {
	return Defined(value)
}

func isNaN(f float32) bool {
	return f != f
}

// IsDefined reports whether the Number holds a concrete value.
func (n Number) IsDefined() bool {
	return n.defined
}

// IsUndefined reports whether the Number has no concrete value.
func (n Number) IsUndefined() bool {
	return !n.defined
}

// Value returns the underlying float and whether it is defined.
func (n Number) Value() (float32, bool) {
	return n.value, n.defined
}

// OrElse returns the underlying value if defined, else fallback.
func (n Number) OrElse(fallback float32) float32 {
	if n.defined {
		return n.value
	}
	return fallback
}

// OrElseNumber returns n if defined, else fallback.
func (n Number) OrElseNumber(fallback Number) Number {
	if n.defined {
		return n
	}
	return fallback
}

// Add propagates Undefined: Undefined is absorbing in either operand.
func (n Number) Add(rhs Number) Number {
	if !n.defined || !rhs.defined {
		return Undefined()
	}
	return Defined(n.value + rhs.value)
}

// AddF adds a plain float32, propagating Undefined.
func (n Number) AddF(rhs float32) Number {
	if !n.defined {
		return Undefined()
	}
	return Defined(n.value + rhs)
}

// Sub propagates Undefined: Undefined is absorbing in either operand.
func (n Number) Sub(rhs Number) Number {
	if !n.defined || !rhs.defined {
		return Undefined()
	}
	return Defined(n.value - rhs.value)
}

// SubF subtracts a plain float32, propagating Undefined.
func (n Number) SubF(rhs float32) Number {
	if !n.defined {
		return Undefined()
	}
	return Defined(n.value - rhs)
}

// Mul propagates Undefined: Undefined is absorbing in either operand.
func (n Number) Mul(rhs Number) Number {
	if !n.defined || !rhs.defined {
		return Undefined()
	}
	return Defined(n.value * rhs.value)
}

// MulF multiplies by a plain float32, propagating Undefined.
func (n Number) MulF(rhs float32) Number {
	if !n.defined {
		return Undefined()
	}
	return Defined(n.value * rhs)
}

// Div propagates Undefined: Undefined is absorbing in either operand.
func (n Number) Div(rhs Number) Number {
	if !n.defined || !rhs.defined {
		return Undefined()
	}
	return Defined(n.value / rhs.value)
}

// MaybeMin clamps n to at most rhs. If either side is Undefined, n is
// returned unchanged (Undefined imposes no bound).
func (n Number) MaybeMin(rhs Number) Number {
	if !n.defined || !rhs.defined {
		return n
	}
	return Defined(float32(math.Min(float64(n.value), float64(rhs.value))))
}

// MaybeMax clamps n to at least rhs. If either side is Undefined, n is
// returned unchanged.
func (n Number) MaybeMax(rhs Number) Number {
	if !n.defined || !rhs.defined {
		return n
	}
	return Defined(float32(math.Max(float64(n.value), float64(rhs.value))))
}

// MaybeMinF clamps n to at most rhs. Undefined n stays Undefined.
func (n Number) MaybeMinF(rhs float32) Number {
	if !n.defined {
		return n
	}
	return Defined(float32(math.Min(float64(n.value), float64(rhs))))
}

// MaybeMaxF clamps n to at least rhs. Undefined n stays Undefined.
func (n Number) MaybeMaxF(rhs float32) Number {
	if !n.defined {
		return n
	}
	return Defined(float32(math.Max(float64(n.value), float64(rhs))))
}

// MaybeMinOnF clamps a plain float32 against an optional Number upper bound.
// Mirrors the reference engine's MinMax<Number, f32> impl used when the
// caller already holds a concrete value but the bound may be absent.
func MaybeMinOnF(lhs float32, rhs Number) float32 {
	if v, ok := rhs.Value(); ok {
		return float32(math.Min(float64(lhs), float64(v)))
	}
	return lhs
}

// MaybeMaxOnF clamps a plain float32 against an optional Number lower bound.
func MaybeMaxOnF(lhs float32, rhs Number) float32 {
	if v, ok := rhs.Value(); ok {
		return float32(math.Max(float64(lhs), float64(v)))
	}
	return lhs
}

// Equal reports whether two Numbers hold the same defined-ness and value.
func (n Number) Equal(other Number) bool {
	if n.defined != other.defined {
		return false
	}
	if !n.defined {
		return true
	}
	return n.value == other.value
}

package tcolour

import "math"

// Chained arithmetic and repeated blending accumulate rounding drift, so
// exact == comparison of colours is usually too strict. The comparisons
// here tolerate drift three ways: a fixed absolute difference, a
// difference relative to the larger magnitude, and a distance in units
// in the last place. All four channels must pass for colours to compare
// equal, and NaN channels never compare equal.

// Default tolerances used by ApproxEqual.
const (
	DefaultEpsilon     = 1e-6
	DefaultMaxRelative = 1e-6
	DefaultMaxUlps     = 4
)

// EqualAbs reports whether every channel of the two colours differs by
// at most epsilon.
func (c Colour) EqualAbs(other Colour, epsilon float64) bool {
	return c.AllRGBAWith(other, func(a, b float64) bool {
		return absDiffEq(a, b, epsilon)
	})
}

// EqualRelative reports whether every channel pair passes the absolute
// test with epsilon or differs by at most maxRelative of the larger
// channel magnitude.
func (c Colour) EqualRelative(other Colour, epsilon, maxRelative float64) bool {
	return c.AllRGBAWith(other, func(a, b float64) bool {
		return relativeEq(a, b, epsilon, maxRelative)
	})
}

// EqualULP reports whether every channel pair passes the absolute test
// with epsilon or sits within maxUlps representable float64 values of
// each other. Channel pairs with differing signs only pass the absolute
// test.
func (c Colour) EqualULP(other Colour, epsilon float64, maxUlps uint32) bool {
	return c.AllRGBAWith(other, func(a, b float64) bool {
		return ulpsEq(a, b, epsilon, maxUlps)
	})
}

// ApproxEqual compares with the library default tolerances, using the
// relative mode.
func (c Colour) ApproxEqual(other Colour) bool {
	return c.EqualRelative(other, DefaultEpsilon, DefaultMaxRelative)
}

func absDiffEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func relativeEq(a, b, epsilon, maxRelative float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	if diff <= epsilon {
		return true
	}
	return diff <= math.Max(math.Abs(a), math.Abs(b))*maxRelative
}

func ulpsEq(a, b, epsilon float64, maxUlps uint32) bool {
	// The absolute test handles values straddling zero, where ULP
	// distance blows up
	if absDiffEq(a, b, epsilon) {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d <= int64(maxUlps)
}

// Package tcolour provides a float64 RGBA colour value type for terminal
// rendering pipelines: componentwise arithmetic that never touches alpha,
// explicit repair of NaN artifacts, blending with alpha compositing, and
// conversions to tcell, mgl64 and go-colorful representations.
//
// Channel values are intended to sit in [0, 1] but nothing enforces that:
// arithmetic is allowed to leave the range or produce NaN/Inf, and repair
// (Cleaned, Clamped, MapRGBA) only happens when asked for.
package tcolour

import "math"

// Colour is a colour with four independent float64 channels.
// It is a plain value: operations return new colours, only the
// Apply/Clean/Clamp/Invert/Normalise pointer-receiver forms mutate.
type Colour struct {
	R, G, B, A float64
}

// New returns a colour from explicit channel values. No validation.
func New(r, g, b, a float64) Colour {
	return Colour{R: r, G: g, B: b, A: a}
}

// Solid returns an opaque colour (alpha 1).
func Solid(r, g, b float64) Colour {
	return New(r, g, b, 1)
}

// Grey returns an opaque greyscale colour.
func Grey(v float64) Colour {
	return Solid(v, v, v)
}

// Red returns an opaque colour with only the red channel set.
func Red(v float64) Colour {
	return Solid(v, 0, 0)
}

// Green returns an opaque colour with only the green channel set.
func Green(v float64) Colour {
	return Solid(0, v, 0)
}

// Blue returns an opaque colour with only the blue channel set.
func Blue(v float64) Colour {
	return Solid(0, 0, v)
}

// Transparent returns RGBA(0, 0, 0, 0).
func Transparent() Colour {
	return Colour{}
}

// FromU8 normalises 8-bit channel values to [0, 1] with alpha 1.
func FromU8(r, g, b uint8) Colour {
	return Solid(float64(r)/255, float64(g)/255, float64(b)/255)
}

// FromU8RGBA normalises 8-bit channel values to [0, 1], alpha included.
func FromU8RGBA(r, g, b, a uint8) Colour {
	return FromU8(r, g, b).WithAlpha(float64(a) / 255)
}

// WithAlpha returns a copy with only alpha replaced.
func (c Colour) WithAlpha(a float64) Colour {
	c.A = a
	return c
}

// WithRed returns a copy with only red replaced.
func (c Colour) WithRed(r float64) Colour {
	c.R = r
	return c
}

// WithGreen returns a copy with only green replaced.
func (c Colour) WithGreen(g float64) Colour {
	c.G = g
	return c
}

// WithBlue returns a copy with only blue replaced.
func (c Colour) WithBlue(b float64) Colour {
	c.B = b
	return c
}

// Map transforms each colour channel, leaving alpha as-is.
func (c Colour) Map(f func(float64) float64) Colour {
	return New(f(c.R), f(c.G), f(c.B), c.A)
}

// MapRGBA transforms all four channels, alpha included. This is the
// escape hatch for caller-chosen repair policies (NaN to 0, custom
// clamps) that Cleaned and Clamped do not cover.
func (c Colour) MapRGBA(f func(float64) float64) Colour {
	return New(f(c.R), f(c.G), f(c.B), f(c.A))
}

// MapWith zips the colour channels of two colours, keeping the
// receiver's alpha.
func (c Colour) MapWith(other Colour, f func(a, b float64) float64) Colour {
	return New(f(c.R, other.R), f(c.G, other.G), f(c.B, other.B), c.A)
}

// MapRGBAWith zips all four channels of two colours.
func (c Colour) MapRGBAWith(other Colour, f func(a, b float64) float64) Colour {
	return New(f(c.R, other.R), f(c.G, other.G), f(c.B, other.B), f(c.A, other.A))
}

// Apply mutates each colour channel in place, leaving alpha as-is.
func (c *Colour) Apply(f func(*float64)) {
	f(&c.R)
	f(&c.G)
	f(&c.B)
}

// ApplyRGBA mutates all four channels in place.
func (c *Colour) ApplyRGBA(f func(*float64)) {
	c.Apply(f)
	f(&c.A)
}

// All reports whether the predicate holds for r, g and b.
func (c Colour) All(pred func(float64) bool) bool {
	return pred(c.R) && pred(c.G) && pred(c.B)
}

// AllRGBA reports whether the predicate holds for all four channels.
func (c Colour) AllRGBA(pred func(float64) bool) bool {
	return c.All(pred) && pred(c.A)
}

// AllWith reports whether the predicate holds pairwise over the colour
// channels of two colours.
func (c Colour) AllWith(other Colour, pred func(a, b float64) bool) bool {
	return pred(c.R, other.R) && pred(c.G, other.G) && pred(c.B, other.B)
}

// AllRGBAWith reports whether the predicate holds pairwise over all four
// channels of two colours.
func (c Colour) AllRGBAWith(other Colour, pred func(a, b float64) bool) bool {
	return c.AllWith(other, pred) && pred(c.A, other.A)
}

// Arithmetic is componentwise over r, g, b and invariant over alpha: the
// result always carries the receiver's alpha. Alpha compositing is a
// separate operation (Blend/Compose); summing alphas here would be wrong.
// Nothing is clamped or cleaned, division by zero follows IEEE-754.

// Add returns the componentwise sum. Alpha is the receiver's.
func (c Colour) Add(other Colour) Colour {
	return New(c.R+other.R, c.G+other.G, c.B+other.B, c.A)
}

// Sub returns the componentwise difference. Alpha is the receiver's.
func (c Colour) Sub(other Colour) Colour {
	return New(c.R-other.R, c.G-other.G, c.B-other.B, c.A)
}

// Mul returns the componentwise product. Alpha is the receiver's.
func (c Colour) Mul(other Colour) Colour {
	return New(c.R*other.R, c.G*other.G, c.B*other.B, c.A)
}

// Div returns the componentwise quotient. Alpha is the receiver's.
func (c Colour) Div(other Colour) Colour {
	return New(c.R/other.R, c.G/other.G, c.B/other.B, c.A)
}

// AddScalar adds s to each colour channel.
func (c Colour) AddScalar(s float64) Colour {
	return New(c.R+s, c.G+s, c.B+s, c.A)
}

// SubScalar subtracts s from each colour channel.
func (c Colour) SubScalar(s float64) Colour {
	return New(c.R-s, c.G-s, c.B-s, c.A)
}

// SubFrom subtracts each colour channel from s (the reversed operand
// order of SubScalar).
func (c Colour) SubFrom(s float64) Colour {
	return New(s-c.R, s-c.G, s-c.B, c.A)
}

// MulScalar multiplies each colour channel by s.
func (c Colour) MulScalar(s float64) Colour {
	return New(c.R*s, c.G*s, c.B*s, c.A)
}

// DivScalar divides each colour channel by s.
func (c Colour) DivScalar(s float64) Colour {
	return New(c.R/s, c.G/s, c.B/s, c.A)
}

// DivInto divides s by each colour channel (the reversed operand order
// of DivScalar).
func (c Colour) DivInto(s float64) Colour {
	return New(s/c.R, s/c.G, s/c.B, c.A)
}

// Inverted flips each colour channel by 1-v, leaving alpha untouched.
func (c Colour) Inverted() Colour {
	return c.SubFrom(1)
}

// Invert flips each colour channel by 1-v in place, leaving alpha
// untouched.
func (c *Colour) Invert() {
	*c = c.Inverted()
}

// HasNaN reports whether any of the four channels is NaN.
func (c Colour) HasNaN() bool {
	return !c.AllRGBA(func(v float64) bool { return !math.IsNaN(v) })
}

// IsFinite reports whether all four channels are finite (no NaN, no Inf).
func (c Colour) IsFinite() bool {
	return c.AllRGBA(func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) })
}

// Cleaned replaces every NaN channel, alpha included, with 1 (opaque
// white on a full 0/0 blend failure). Non-NaN channels pass through
// unchanged, Inf included; use Clamped or MapRGBA for those.
func (c Colour) Cleaned() Colour {
	return c.MapRGBA(func(v float64) float64 {
		if math.IsNaN(v) {
			return 1
		}
		return v
	})
}

// Clean replaces every NaN channel with 1 in place.
func (c *Colour) Clean() {
	*c = c.Cleaned()
}

// Clamped clamps all four channels to [0, 1]. NaN channels are not
// repaired here; Cleaned handles those.
func (c Colour) Clamped() Colour {
	return c.MapRGBA(clamp01)
}

// Clamp clamps all four channels to [0, 1] in place.
func (c *Colour) Clamp() {
	*c = c.Clamped()
}

// MaxChannel returns the highest of the four channels.
func (c Colour) MaxChannel() float64 {
	return math.Max(c.R, math.Max(c.G, math.Max(c.B, c.A)))
}

// MinChannel returns the lowest of the four channels.
func (c Colour) MinChannel() float64 {
	return math.Min(c.R, math.Min(c.G, math.Min(c.B, c.A)))
}

// Normalised rescales all four channels into [0, 1] using the colour's
// own extremes. The range never shrinks: a max below 1 is treated as 1
// and a min above 0 as 0, so an in-range colour comes back unchanged.
func (c Colour) Normalised() Colour {
	max := math.Max(c.MaxChannel(), 1)
	min := math.Min(c.MinChannel(), 0)
	if min >= 0 && max <= 1 {
		return c
	}
	return c.MapRGBA(func(v float64) float64 { return (v - min) / (max - min) })
}

// Normalise rescales all four channels into [0, 1] in place.
func (c *Colour) Normalise() {
	*c = c.Normalised()
}

// Lerp linearly interpolates between two colours, alpha included.
// t is not clamped: values outside [0, 1] extrapolate.
func (c Colour) Lerp(other Colour, t float64) Colour {
	return c.MapRGBAWith(other, func(a, b float64) float64 { return a + (b-a)*t })
}

func clamp01(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

package tcolour

import (
	"fmt"
	"image/color"
	"math"
)

// LengthError reports a from-slice conversion with the wrong number of
// elements.
type LengthError struct {
	Want, Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("colour conversion needs %d channel values, got %d", e.Want, e.Got)
}

// FromSlice converts a slice of exactly four channel values in r, g, b,
// a order. Any other length fails with a *LengthError.
func FromSlice(v []float64) (Colour, error) {
	if len(v) != 4 {
		return Colour{}, &LengthError{Want: 4, Got: len(v)}
	}
	return New(v[0], v[1], v[2], v[3]), nil
}

// FromU8Slice converts a slice of exactly four 8-bit channel values in
// r, g, b, a order. Any other length fails with a *LengthError.
func FromU8Slice(v []uint8) (Colour, error) {
	if len(v) != 4 {
		return Colour{}, &LengthError{Want: 4, Got: len(v)}
	}
	return FromU8RGBA(v[0], v[1], v[2], v[3]), nil
}

// FromArray converts a four-element channel array in r, g, b, a order.
func FromArray(v [4]float64) Colour {
	return New(v[0], v[1], v[2], v[3])
}

// FromArray3 converts a three-element channel array with alpha 1.
func FromArray3(v [3]float64) Colour {
	return Solid(v[0], v[1], v[2])
}

// FromU8Array converts a four-element 8-bit channel array.
func FromU8Array(v [4]uint8) Colour {
	return FromU8RGBA(v[0], v[1], v[2], v[3])
}

// FromU8Array3 converts a three-element 8-bit channel array with alpha 1.
func FromU8Array3(v [3]uint8) Colour {
	return FromU8(v[0], v[1], v[2])
}

// Slice returns the raw channel values as a new slice in r, g, b, a
// order.
func (c Colour) Slice() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// Array returns the raw channel values in r, g, b, a order.
func (c Colour) Array() [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

// U8 narrows the colour channels to 8 bits, dropping alpha. Unlike the
// arithmetic, narrowing clamps to [0, 1] first, because over/underflow
// has no 8-bit representation; rounding is half away from zero.
func (c Colour) U8() (r, g, b uint8) {
	return narrow8(c.R), narrow8(c.G), narrow8(c.B)
}

// U8RGBA narrows all four channels to 8 bits with the same clamp and
// rounding as U8.
func (c Colour) U8RGBA() [4]uint8 {
	return [4]uint8{narrow8(c.R), narrow8(c.G), narrow8(c.B), narrow8(c.A)}
}

// RGBA implements image/color.Color in the premultiplied 16-bit
// convention, clamping each channel.
func (c Colour) RGBA() (r, g, b, a uint32) {
	a = narrow16(c.A)
	r = narrow16(c.R) * a / 0xffff
	g = narrow16(c.G) * a / 0xffff
	b = narrow16(c.B) * a / 0xffff
	return r, g, b, a
}

// FromColor converts any stdlib image/color value. The stdlib reports
// premultiplied channels, so a translucent input arrives with its colour
// channels already scaled by alpha.
func FromColor(c color.Color) Colour {
	r, g, b, a := c.RGBA()
	return New(
		float64(r)/0xffff,
		float64(g)/0xffff,
		float64(b)/0xffff,
		float64(a)/0xffff,
	)
}

// narrow16 is narrow8's 16-bit counterpart for the image/color
// convention.
func narrow16(v float64) uint32 {
	if math.IsNaN(v) {
		return 0
	}
	return uint32(math.Round(clamp01(v) * 0xffff))
}

// narrow8 converts a channel to a byte with clamping and
// half-away-from-zero rounding, matching FromU8 exactly on round-trips.
// NaN narrows to 0: converting an unordered float to an integer is not
// defined, and an uncleaned channel should not come out white.
func narrow8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clamp01(v) * 255))
}

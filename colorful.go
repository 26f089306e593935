package tcolour

import "github.com/lucasb-eyer/go-colorful"

// FromColorful converts a go-colorful colour with alpha 1.
func FromColorful(cc colorful.Color) Colour {
	return Solid(cc.R, cc.G, cc.B)
}

// Colorful converts to a go-colorful colour with the raw channel values,
// dropping alpha. Nothing is clamped: go-colorful is float-typed like
// this package, so out-of-range channels survive the crossing.
func (c Colour) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

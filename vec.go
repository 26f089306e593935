package tcolour

import "github.com/go-gl/mathgl/mgl64"

// FromVec4 converts a 4-vector by direct field mapping, (x, y, z, w) to
// (r, g, b, a). No scaling, no validation.
func FromVec4(v mgl64.Vec4) Colour {
	return New(v.X(), v.Y(), v.Z(), v.W())
}

// Vec4 converts to a 4-vector by direct field mapping, (r, g, b, a) to
// (x, y, z, w). No scaling, no validation.
func (c Colour) Vec4() mgl64.Vec4 {
	return mgl64.Vec4{c.R, c.G, c.B, c.A}
}

package tcolour

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell colour. Named, indexed and RGB colours all
// convert through their true-colour channel values with alpha 1, since
// tcell carries no alpha. ColorDefault and any other colour without an
// RGB form map to Transparent, the one colour that styles nothing.
func FromTcell(tc tcell.Color) Colour {
	r, g, b := tc.TrueColor().RGB()
	if r < 0 {
		return Transparent()
	}
	return FromU8(uint8(r), uint8(g), uint8(b))
}

// Tcell converts to a tcell RGB colour, narrowing with the same clamp
// and rounding as U8. Alpha is not representable in tcell and is
// dropped; composite first if it matters.
func (c Colour) Tcell() tcell.Color {
	r, g, b := c.U8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

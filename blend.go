package tcolour

import "math"

// BlendMode selects the compositing operation used by Blend.
type BlendMode uint8

const (
	// BlendNormal skips blending and composes the layers directly.
	BlendNormal BlendMode = iota

	BlendMultiply
	BlendDivide
	BlendAddition
	BlendSubtract

	BlendScreen
	BlendOverlay
	BlendHardLight
	BlendSoftLight

	BlendDarken
	BlendLighten
)

// Blend blends the colour channels of the two layers with the given mode
// and then alpha-composites the blend layer over the receiver. The
// receiver is the base layer and other the blend layer; BlendOnto swaps
// that around.
//
// The blended intermediate is scrubbed before compositing: NaN and Inf
// channels become 1, so a degenerate mode such as BlendDivide against a
// zero channel yields white rather than poisoning the composite. The
// final result is not clamped: out-of-range inputs stay out of range.
func (c Colour) Blend(other Colour, mode BlendMode) Colour {
	var blended Colour
	switch mode {
	case BlendNormal:
		blended = other
	case BlendAddition:
		blended = c.Add(other)
	case BlendSubtract:
		blended = c.Sub(other)
	case BlendMultiply:
		blended = c.Mul(other)
	case BlendDivide:
		blended = c.Div(other)
	case BlendDarken:
		blended = c.MapWith(other, math.Min)
	case BlendLighten:
		blended = c.MapWith(other, math.Max)
	case BlendScreen:
		blended = c.Inverted().Mul(other.Inverted()).Inverted()
	case BlendOverlay:
		blended = c.MapWith(other, overlayChannel)
	case BlendHardLight:
		// Overlay with the layers swapped
		blended = other.Blend(c, BlendOverlay)
	case BlendSoftLight:
		blended = c.Mul(other.Inverted().Mul(other.Inverted()).Inverted()).
			Add(c.Inverted().Mul(other))
	default:
		blended = other
	}
	blended = blended.MapRGBA(func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 1
		}
		return v
	})

	// Source-over alpha compositing of the blended layer onto the base
	aOut := other.A + c.A*(1-other.A)
	return blended.MulScalar(other.A).
		Add(c.MulScalar(c.A * (1 - other.A))).
		DivScalar(aOut).
		WithAlpha(aOut)
}

// BlendOnto blends with the receiver as the blend layer and other as the
// base layer.
func (c Colour) BlendOnto(base Colour, mode BlendMode) Colour {
	return base.Blend(c, mode)
}

// Compose alpha-composites other over the receiver without blending.
// Equivalent to Blend with BlendNormal.
func (c Colour) Compose(other Colour) Colour {
	return c.Blend(other, BlendNormal)
}

// ComposeOnto alpha-composites the receiver over other without blending.
func (c Colour) ComposeOnto(other Colour) Colour {
	return c.BlendOnto(other, BlendNormal)
}

// overlayChannel multiplies in the shadows and screens in the highlights,
// pivoting on the base channel.
func overlayChannel(base, blend float64) float64 {
	if base < 0.5 {
		return 2 * blend * base
	}
	return 1 - 2*(1-base)*(1-blend)
}

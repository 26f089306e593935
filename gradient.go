package tcolour

import "math"

// Stop pins a colour to a position on a gradient axis.
type Stop struct {
	T      float64
	Colour Colour
}

// Gradient is a sequence of stops ordered by position. Build one with a
// sorted literal or through Insert, which keeps the order; the sampling
// methods assume it.
type Gradient []Stop

// Insert places a stop at t, replacing the colour if a stop already
// sits exactly there.
func (g *Gradient) Insert(t float64, colour Colour) {
	s := *g
	for i := range s {
		if s[i].T == t {
			s[i].Colour = colour
			return
		}
		if s[i].T > t {
			s = append(s, Stop{})
			copy(s[i+1:], s[i:])
			s[i] = Stop{T: t, Colour: colour}
			*g = s
			return
		}
	}
	*g = append(s, Stop{T: t, Colour: colour})
}

// Bracket returns the two stops surrounding t. Outside the covered
// range the nearest end stop is returned as both bounds, so
// interpolating over the bracket always stays on the gradient.
func (g Gradient) Bracket(t float64) (lo, hi Stop) {
	if len(g) == 0 {
		return Stop{}, Stop{}
	}
	prev := g[0]
	for _, curr := range g {
		if curr.T > t {
			return prev, curr
		}
		prev = curr
	}
	last := g[len(g)-1]
	return last, last
}

// Sample returns the linear interpolation between the stops bracketing
// t, alpha included. Outside the covered range the end stop's colour is
// returned. An empty gradient samples Transparent.
func (g Gradient) Sample(t float64) Colour {
	return g.Interpolate(t, func(from, to Colour, t float64) Colour {
		return from.Lerp(to, t)
	})
}

// Interpolate brackets t and hands the two colours to the given
// interpolator along with t normalised into the bracket. A degenerate
// bracket (zero width, from sampling outside the range) normalises to
// NaN or Inf; that resolves to 1 so the interpolator sees the upper
// stop, which equals the lower one there.
func (g Gradient) Interpolate(t float64, f func(from, to Colour, t float64) Colour) Colour {
	if len(g) == 0 {
		return Transparent()
	}
	lo, hi := g.Bracket(t)
	nt := (t - lo.T) / (hi.T - lo.T)
	if math.IsNaN(nt) || math.IsInf(nt, 0) {
		nt = 1
	}
	return f(lo.Colour, hi.Colour, nt)
}

// Select returns the lower bracket colour without interpolating.
func (g Gradient) Select(t float64) Colour {
	lo, _ := g.Bracket(t)
	return lo.Colour
}

// SelectUpper returns the upper bracket colour without interpolating.
func (g Gradient) SelectUpper(t float64) Colour {
	_, hi := g.Bracket(t)
	return hi.Colour
}

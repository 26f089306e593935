package tcolour

import (
	"math"
	"testing"
)

// drifted and exact differ by one ULP per channel: float64(0.1)+
// float64(0.2) is the representable float directly above 0.3. The sum
// has to happen in float64 variables; a constant expression would round
// once and land on 0.3 exactly.
var (
	tenth, fifth = 0.1, 0.2

	exact   = Grey(0.3)
	drifted = Grey(tenth + fifth)
)

func TestApproxToleratesUlpDrift(t *testing.T) {
	if exact == drifted {
		t.Fatal("Expected bit-exact inequality between 0.3 and 0.1+0.2")
	}

	tests := []struct {
		name string
		eq   func(a, b Colour) bool
	}{
		{"Abs", func(a, b Colour) bool { return a.EqualAbs(b, DefaultEpsilon) }},
		{"Relative", func(a, b Colour) bool { return a.EqualRelative(b, DefaultEpsilon, DefaultMaxRelative) }},
		{"ULP", func(a, b Colour) bool { return a.EqualULP(b, DefaultEpsilon, DefaultMaxUlps) }},
		{"Default", func(a, b Colour) bool { return a.ApproxEqual(b) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.eq(exact, drifted) {
				t.Error("Expected drifted colour to compare equal")
			}
			// Symmetry
			if !tt.eq(drifted, exact) {
				t.Error("Expected comparison to be symmetric")
			}
			// Reflexivity
			if !tt.eq(exact, exact) {
				t.Error("Expected comparison to be reflexive")
			}
		})
	}
}

func TestApproxChainedArithmetic(t *testing.T) {
	added := Solid(1, 1, 1).Add(Solid(0, 0, 0))
	multiplied := Solid(1, 1, 1).Mul(Solid(1, 1, 1))
	if !added.ApproxEqual(multiplied) {
		t.Errorf("Expected %v and %v to compare approximately equal", added, multiplied)
	}
}

func TestApproxRejects(t *testing.T) {
	tests := []struct {
		name string
		a, b Colour
	}{
		{"FarApart", Grey(0.3), Grey(0.4)},
		{"SingleChannel", Grey(0.3), Grey(0.3).WithRed(0.4)},
		{"AlphaDiffers", Grey(0.3), Grey(0.3).WithAlpha(0.5)},
		{"NaN", Grey(math.NaN()), Grey(math.NaN())},
		{"Inf", Grey(math.Inf(1)), Grey(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.EqualAbs(tt.b, DefaultEpsilon) {
				t.Error("Expected EqualAbs to reject")
			}
			if tt.a.EqualRelative(tt.b, DefaultEpsilon, DefaultMaxRelative) {
				t.Error("Expected EqualRelative to reject")
			}
			if tt.a.EqualULP(tt.b, DefaultEpsilon, DefaultMaxUlps) {
				t.Error("Expected EqualULP to reject")
			}
		})
	}
}

func TestEqualRelativeScales(t *testing.T) {
	// 0.1% apart: fails at the default tolerance, passes at 1%
	a, b := Grey(1000), Grey(1001)
	if a.EqualRelative(b, DefaultEpsilon, DefaultMaxRelative) {
		t.Error("Expected rejection at the default relative tolerance")
	}
	if !a.EqualRelative(b, DefaultEpsilon, 0.01) {
		t.Error("Expected acceptance at 1% relative tolerance")
	}
	if a.EqualAbs(b, DefaultEpsilon) {
		t.Error("Expected absolute comparison to reject large-magnitude drift")
	}
}

func TestEqualULPSignBoundary(t *testing.T) {
	// Tiny values straddling zero are ULP-distant but absolutely close
	a, b := Grey(1e-12), Grey(-1e-12)
	if !a.EqualULP(b, DefaultEpsilon, DefaultMaxUlps) {
		t.Error("Expected the epsilon fallback to accept values straddling zero")
	}
	if a.EqualULP(b, 0, DefaultMaxUlps) {
		t.Error("Expected differing signs to reject without the epsilon fallback")
	}
}

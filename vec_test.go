package tcolour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestVec4Mapping(t *testing.T) {
	c := FromVec4(mgl64.Vec4{0.1, 0.2, 0.3, 0.4})
	if c != (Colour{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("Expected direct field mapping, got %v", c)
	}

	// No scaling, no validation: out-of-range values pass through
	dirty := FromVec4(mgl64.Vec4{-1, 5, 0, 0.5})
	if dirty != (Colour{-1, 5, 0, 0.5}) {
		t.Errorf("Expected raw values, got %v", dirty)
	}

	if got := c.Vec4(); got != (mgl64.Vec4{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("Expected round trip, got %v", got)
	}
}

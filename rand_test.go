package tcolour

import (
	"math/rand"
	"testing"
)

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(0xbeef))

	for i := 0; i < 100; i++ {
		c := Random(rng)
		if c.A != 1 {
			t.Fatalf("Expected opaque alpha, got %v", c.A)
		}
		if !c.All(func(v float64) bool { return v >= 0 && v < 1 }) {
			t.Fatalf("Expected channels in [0, 1), got %v", c)
		}
	}

	for i := 0; i < 100; i++ {
		c := RandomRGBA(rng)
		if !c.AllRGBA(func(v float64) bool { return v >= 0 && v < 1 }) {
			t.Fatalf("Expected all four channels in [0, 1), got %v", c)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)))
	b := Random(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("Expected identical colours from identical seeds, got %v and %v", a, b)
	}
}

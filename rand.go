package tcolour

import "math/rand"

// Random draws r, g and b independently uniform from [0, 1) and forces
// alpha to 1. The caller owns the generator and its seeding.
func Random(rng *rand.Rand) Colour {
	return Solid(rng.Float64(), rng.Float64(), rng.Float64())
}

// RandomRGBA draws all four channels independently uniform from [0, 1).
func RandomRGBA(rng *rand.Rand) Colour {
	return New(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
}

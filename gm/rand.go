package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Float](min, max S) S {
	for {
		// rounding to S may still land on max
		value := S(rand.Float64()*(float64(max)-float64(min))) + min
		if value < max {
			return value
		}
	}
}

// RandomVec2 returns a vector uniformly sampled from within the unit circle.
func RandomVec2[S Float]() Vector2[S] {
	for {
		v := Vector2[S]{
			X: RandomIn[S](-1, 1),
			Y: RandomIn[S](-1, 1),
		}

		if v.LengthSq() <= 1 {
			return v
		}
	}
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3[S Float]() Vector3[S] {
	for {
		v := Vector3[S]{
			X: RandomIn[S](-1, 1),
			Y: RandomIn[S](-1, 1),
			Z: RandomIn[S](-1, 1),
		}

		if v.LengthSq() <= 1 {
			return v
		}
	}
}

// RandomUnitVec3 returns a random direction, uniformly distributed
// over the surface of the unit sphere.
func RandomUnitVec3[S Float]() Vector3[S] {
	for {
		// rejecting tiny vectors keeps the division well conditioned
		v := RandomVec3[S]()
		if v.LengthSq() < 1e-6 {
			continue
		}

		unit, _ := v.Unit()
		return unit
	}
}

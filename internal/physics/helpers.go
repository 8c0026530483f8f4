package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// horizontalDistance returns the XZ-plane distance between two points
func horizontalDistance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// rangesOverlap reports whether [aMin, aMax] and [bMin, bMax] overlap,
// touching included
func rangesOverlap(aMin, aMax, bMin, bMax float32) bool {
	return aMin <= bMax && aMax >= bMin
}

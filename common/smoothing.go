package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Snap is the decay rate that reaches the target in a single tick.
var Snap = float32(math.Inf(1))

// IsSnap reports whether rate means "no smoothing". Callers must branch on it
// instead of feeding an infinite rate into the exponential.
func IsSnap(rate float32) bool {
	return math.IsInf(float64(rate), 1)
}

// DecayFactor returns the fraction of the remaining distance covered in dt at
// the given rate. Applying it over two ticks of dt/2 is equivalent to one tick
// of dt.
//
// Parameters:
//   - rate: decay rate per second, must be >= 0
//   - dt: tick duration in seconds
//
// Returns:
//   - float32: 1 - exp(-rate*dt), in [0, 1]
func DecayFactor(rate, dt float32) float32 {
	if IsSnap(rate) {
		return 1
	}
	return float32(1 - math.Exp(-float64(rate)*float64(dt)))
}

// SmoothNudge moves current toward target by DecayFactor(rate, dt).
// It never overshoots for rate >= 0 and dt >= 0.
//
// Parameters:
//   - current: current value
//   - target: value being approached
//   - rate: decay rate per second
//   - dt: tick duration in seconds
//
// Returns:
//   - float32: the nudged value
func SmoothNudge(current, target, rate, dt float32) float32 {
	if IsSnap(rate) {
		return target
	}
	return Lerp(current, target, DecayFactor(rate, dt))
}

// SmoothNudgeVec2 is SmoothNudge for 2D vectors.
func SmoothNudgeVec2(current, target mgl32.Vec2, rate, dt float32) mgl32.Vec2 {
	if IsSnap(rate) {
		return target
	}
	t := DecayFactor(rate, dt)
	return current.Add(target.Sub(current).Mul(t))
}

// SmoothNudgeVec3 is SmoothNudge for 3D vectors.
func SmoothNudgeVec3(current, target mgl32.Vec3, rate, dt float32) mgl32.Vec3 {
	if IsSnap(rate) {
		return target
	}
	t := DecayFactor(rate, dt)
	return current.Add(target.Sub(current).Mul(t))
}

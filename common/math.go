package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// epsilon below which a vector length is treated as zero.
const epsilon = 1e-6

// Lerp linearly interpolates between a and b.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor, 0 returns a and 1 returns b
//
// Returns:
//   - float32: a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// NearZero reports whether v has (almost) zero length.
//
// Parameters:
//   - v: the vector to test
//
// Returns:
//   - bool: true if the length is below the zero threshold
func NearZero(v mgl32.Vec3) bool {
	return v.Len() < epsilon
}

// NormalizeOrZero returns v normalized, or the zero vector if v has no length.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: unit vector or zero
//   - bool: false if v could not be normalized
func NormalizeOrZero(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l < epsilon || !IsFinite(l) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// RejectFrom removes the component of v along axis. The axis does not have to
// be unit length.
//
// Parameters:
//   - v: the vector to project
//   - axis: the direction to remove
//
// Returns:
//   - mgl32.Vec3: v projected onto the plane orthogonal to axis
func RejectFrom(v, axis mgl32.Vec3) mgl32.Vec3 {
	denom := axis.Dot(axis)
	if denom < epsilon*epsilon {
		return v
	}
	return v.Sub(axis.Mul(v.Dot(axis) / denom))
}

// LookRotation builds the rotation whose forward (-Z) axis points along dir
// and whose up axis is as close to up as possible.
//
// Parameters:
//   - dir: direction to face
//   - up: preferred up direction
//
// Returns:
//   - mgl32.Quat: the rotation
//   - bool: false if dir is zero or parallel to up
func LookRotation(dir, up mgl32.Vec3) (mgl32.Quat, bool) {
	f, ok := NormalizeOrZero(dir)
	if !ok {
		return mgl32.QuatIdent(), false
	}
	r, ok := NormalizeOrZero(f.Cross(up))
	if !ok {
		return mgl32.QuatIdent(), false
	}
	u := r.Cross(f)
	basis := mgl32.Mat3FromCols(r, u, f.Mul(-1))
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Local axes of a Transform. Forward is -Z, matching the view convention of the
// host renderer.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Transform is the position and orientation of an entity in world space.
// It is a plain value; the host store owns the authoritative copy.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// NewTransform creates a Transform at the given translation with identity rotation.
//
// Parameters:
//   - translation: world-space position
//
// Returns:
//   - Transform: the new transform
func NewTransform(translation mgl32.Vec3) Transform {
	return Transform{Translation: translation, Rotation: mgl32.QuatIdent()}
}

// RotateAxis rotates the transform about a world-space axis.
//
// Parameters:
//   - axis: unit axis in world space
//   - angle: rotation in radians
func (t *Transform) RotateAxis(axis mgl32.Vec3, angle float32) {
	t.Rotation = mgl32.QuatRotate(angle, axis).Mul(t.Rotation).Normalize()
}

// RotateLocalX rotates the transform about its own X (right) axis.
//
// Parameters:
//   - angle: rotation in radians
func (t *Transform) RotateLocalX(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, AxisX)).Normalize()
}

// Forward returns the local -Z axis in world space.
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisZ.Mul(-1))
}

// Back returns the local +Z axis in world space.
func (t *Transform) Back() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisZ)
}

// Right returns the local +X axis in world space.
func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisX)
}

// Up returns the local +Y axis in world space.
func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisY)
}

// LookAt orients the transform so that Forward points at target.
// The rotation is left unchanged when the direction is degenerate.
//
// Parameters:
//   - target: world-space point to face
//   - up: preferred up direction
//
// Returns:
//   - bool: false if the rotation could not be computed
func (t *Transform) LookAt(target, up mgl32.Vec3) bool {
	rot, ok := LookRotation(target.Sub(t.Translation), up)
	if !ok {
		return false
	}
	t.Rotation = rot
	return true
}

// RotateLocalZ rotates the transform about its own Z (view) axis.
//
// Parameters:
//   - angle: rotation in radians
func (t *Transform) RotateLocalZ(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, AxisZ)).Normalize()
}

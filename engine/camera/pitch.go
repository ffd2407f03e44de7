package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// pitchEpsilon absorbs float error when the camera sits exactly on the limit.
const pitchEpsilon = 1e-6

// PitchRange is the maximum tilt of a camera away from horizontal. It stores
// the cosine of the half range so a check is a single dot product.
// The zero value is unlimited.
type PitchRange struct {
	cos     float32
	limited bool
}

// NewPitchRange creates a limit allowing range/2 radians of tilt on either side
// of horizontal.
//
// Parameters:
//   - rangeRad: total allowed pitch range in radians
//
// Returns:
//   - PitchRange: the limit
func NewPitchRange(rangeRad float32) PitchRange {
	return PitchRange{cos: float32(math.Cos(float64(rangeRad) / 2)), limited: true}
}

// Limited reports whether the range constrains pitch at all.
func (p PitchRange) Limited() bool {
	return p.limited
}

// Cos returns the stored cosine of the half range. Meaningless when unlimited.
func (p PitchRange) Cos() float32 {
	return p.cos
}

// Allows reports whether pitching rotation by pitch about its local X axis
// keeps the camera's up vector within the range. A rejected pitch must be
// dropped for the tick, not clamped.
//
// Parameters:
//   - pitch: pending pitch in radians
//   - rotation: current camera rotation
//   - yawAxis: the world up axis pitch is measured against
//
// Returns:
//   - bool: true if the pitch may be applied
func (p PitchRange) Allows(pitch float32, rotation mgl32.Quat, yawAxis mgl32.Vec3) bool {
	if !p.limited {
		return true
	}
	up := rotation.Mul(mgl32.QuatRotate(pitch, common.AxisX)).Rotate(common.AxisY)
	return up.Dot(yawAxis) >= p.cos-pitchEpsilon
}

// CanRotatePitch is the free-function form of PitchRange.Allows.
func CanRotatePitch(pitch float32, rotation mgl32.Quat, yawAxis mgl32.Vec3, limit PitchRange) bool {
	return limit.Allows(pitch, rotation, yawAxis)
}

// applyRotation yaws the camera about yawAxis by delta.x and pitches it about
// its local X axis by delta.y when the limit allows it.
func applyRotation(cam *common.Transform, delta mgl32.Vec2, yawAxis mgl32.Vec3, limit PitchRange) {
	if delta[0] != 0 {
		cam.RotateAxis(yawAxis, delta[0])
	}
	if delta[1] != 0 && limit.Allows(delta[1], cam.Rotation, yawAxis) {
		cam.RotateLocalX(delta[1])
	}
}

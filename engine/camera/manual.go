package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Manual handlers are for hosts driving a camera themselves while its
// controller is in a Manual view. They must run before the controller is
// resolved for the tick, because resolution drains the buffer.

// ManualPan moves the camera in its own view plane. Positive delta.y moves the
// camera down the screen, matching a grabbed-scene drag.
//
// Parameters:
//   - cam: the camera transform to modify
//   - delta: translation delta, usually from TranslationDelta
func ManualPan(cam *common.Transform, delta mgl32.Vec2) {
	cam.Translation = cam.Translation.Add(cam.Rotation.Rotate(mgl32.Vec3{delta[0], -delta[1], 0}))
}

// ManualRotate yaws and pitches the camera the same way the controllers do.
//
// Parameters:
//   - cam: the camera transform to modify
//   - delta: rotation delta, usually from RotationDelta
//   - yawAxis: world yaw axis
//   - limit: pitch limit
func ManualRotate(cam *common.Transform, delta mgl32.Vec2, yawAxis mgl32.Vec3, limit PitchRange) {
	applyRotation(cam, delta, yawAxis, limit)
}

// ManualRoll rolls a 2D camera about its view axis by delta.y.
//
// Parameters:
//   - cam: the camera transform to modify
//   - delta: input delta, only the y component is used
func ManualRoll(cam *common.Transform, delta mgl32.Vec2) {
	if delta[1] != 0 {
		cam.RotateLocalZ(delta[1])
	}
}

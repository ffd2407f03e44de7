package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MoveDirection builds a movement direction from four held keys. +Y is
// forward and +X is right.
func MoveDirection(forward, back, left, right bool) mgl32.Vec2 {
	var d mgl32.Vec2
	if forward {
		d[1]++
	}
	if back {
		d[1]--
	}
	if left {
		d[0]--
	}
	if right {
		d[0]++
	}
	return d
}

// PlanarMove turns a movement direction into a unit world direction relative
// to the camera, flattened onto the plane orthogonal to yawAxis.
//
// Parameters:
//   - camRotation: the camera rotation
//   - direction: movement direction from MoveDirection
//   - yawAxis: world up axis
//
// Returns:
//   - mgl32.Vec3: unit world direction
//   - bool: false if there is no movement this tick
func PlanarMove(camRotation mgl32.Quat, direction mgl32.Vec2, yawAxis mgl32.Vec3) (mgl32.Vec3, bool) {
	if direction == (mgl32.Vec2{}) {
		return mgl32.Vec3{}, false
	}
	world := camRotation.Rotate(mgl32.Vec3{direction[0], 0, -direction[1]})
	return common.NormalizeOrZero(common.RejectFrom(world, yawAxis))
}

// ScreenMove turns a movement direction into a world displacement in a 2D
// camera's view plane. It is not normalized.
//
// Parameters:
//   - camRotation: the camera rotation
//   - direction: movement direction from MoveDirection
//
// Returns:
//   - mgl32.Vec3: world displacement per second
func ScreenMove(camRotation mgl32.Quat, direction mgl32.Vec2) mgl32.Vec3 {
	return camRotation.Rotate(mgl32.Vec3{direction[0], direction[1], 0})
}

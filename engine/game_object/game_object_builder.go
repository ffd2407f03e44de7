package game_object

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject takes part in camera resolution.
//
// Parameters:
//   - enabled: false hides the object from controllers
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Translation = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial orientation of the GameObject.
//
// Parameters:
//   - q: world-space rotation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(q mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.Rotation = q
	}
}

// WithLookAt orients the GameObject so it faces target from its current
// position. Apply after WithPosition. A degenerate direction leaves the
// rotation unchanged.
//
// Parameters:
//   - target: world-space point to face
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithLookAt(target mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transform.LookAt(target, common.AxisY)
	}
}

// WithProjectionScale sets the initial orthographic projection scale.
//
// Parameters:
//   - scale: the projection scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the projection scale
func WithProjectionScale(scale float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.projectionScale = scale
	}
}

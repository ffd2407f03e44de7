package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Anchor is the geometric constraint deciding where a generalized controller's
// camera sits relative to its controlled entity. The set of anchors is closed:
// AnchorYaw, AnchorPlane, AnchorPoint and AnchorOrbit.
type Anchor interface {
	// translational reports whether the anchor is driven by translation input
	// instead of rotation input.
	translational() bool
}

// AnchorYaw rotates the camera in place about the yaw axis and its local
// lateral axis. The camera position is not touched.
type AnchorYaw struct{}

// AnchorPlane pans the camera inside the plane with the given normal.
// No rotation is applied.
type AnchorPlane struct {
	Normal mgl32.Vec3
}

// AnchorPoint glues the camera to the target at zero distance (first person).
type AnchorPoint struct{}

// AnchorOrbit holds the camera at a fixed radius around the target (third person).
type AnchorOrbit struct {
	Distance float32
}

func (AnchorYaw) translational() bool   { return false }
func (AnchorPlane) translational() bool { return true }
func (AnchorPoint) translational() bool { return false }
func (AnchorOrbit) translational() bool { return false }

// PlaneFacing returns a Plane anchor whose normal is the camera's current
// forward direction.
//
// Parameters:
//   - cam: the camera transform
//
// Returns:
//   - AnchorPlane: the anchor
func PlaneFacing(cam common.Transform) AnchorPlane {
	return AnchorPlane{Normal: cam.Forward()}
}

// OrbitAtCurrentDistance returns an Orbit anchor that keeps the camera at its
// present distance from the controlled entity.
//
// Parameters:
//   - controlled: transform of the controlled entity
//   - cam: the camera transform
//
// Returns:
//   - AnchorOrbit: the anchor
func OrbitAtCurrentDistance(controlled, cam common.Transform) AnchorOrbit {
	return AnchorOrbit{Distance: cam.Translation.Sub(controlled.Translation).Len()}
}

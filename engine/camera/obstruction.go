package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// RayCaster is an optional host capability used to keep follow cameras out of
// scene geometry.
type RayCaster interface {
	// CastRay finds the first hit along a ray.
	//
	// Parameters:
	//   - origin: ray start in world space
	//   - direction: unit ray direction
	//   - maxDistance: ray length
	//   - exclude: entity IDs to ignore
	//
	// Returns:
	//   - float32: distance from origin to the hit
	//   - bool: false if nothing was hit
	CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude []uint64) (float32, bool)
}

// RayCasterFunc adapts a function to the RayCaster interface.
type RayCasterFunc func(origin, direction mgl32.Vec3, maxDistance float32, exclude []uint64) (float32, bool)

func (f RayCasterFunc) CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude []uint64) (float32, bool) {
	return f(origin, direction, maxDistance, exclude)
}

// AdjustFollowDistance shortens a follow distance so the camera stays
// backDistance in front of the first obstruction between the target and the
// camera. A nil caster returns desired unchanged.
//
// Parameters:
//   - caster: the ray cast capability, may be nil
//   - origin: the target position
//   - back: the camera's back direction
//   - desired: the follow distance before obstruction
//   - backDistance: clearance kept from the obstruction
//   - exclude: entity IDs the ray ignores
//
// Returns:
//   - float32: the distance to place the camera at
func AdjustFollowDistance(caster RayCaster, origin, back mgl32.Vec3, desired, backDistance float32, exclude []uint64) float32 {
	if caster == nil {
		return desired
	}
	hit, ok := caster.CastRay(origin, back, desired+backDistance, exclude)
	if !ok {
		return desired
	}
	return common.Clamp(desired, 0, hit) - backDistance
}

package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Resolve2d runs one tick of a 2D controller attached to entity.
//
// Manual leaves the camera alone and drains buf. Follow smooths the projection
// scale toward the controller's scale, then pulls the camera toward the target
// only while it is further than the follow distance in XY. A camera already
// inside the distance is never pushed back out. Follow does not read pointer
// input, so buf is drained there as well.
//
// Parameters:
//   - entity: ID of the controlled entity
//   - ctrl: the controller attached to entity
//   - buf: the controller's input buffer
//   - store: the host transform and projection store
//   - dt: tick duration in seconds
//
// Returns:
//   - error: a *ResolveError wrapping ErrMissingEntity, or nil
func Resolve2d(entity uint64, ctrl Controller2d, buf input.DeltaBuffer, store ProjectionStore, dt float32) error {
	st := ctrl.snapshot2d()

	follow, ok := st.view.(View2dFollow)
	if !ok {
		buf.Reset()
		return nil
	}

	controlled, ok := store.Transform(entity)
	if !ok {
		return missing(entity, entity, RoleControlled)
	}
	cam, ok := store.Transform(st.camera)
	if !ok {
		return missing(entity, st.camera, RoleCamera)
	}
	scale, ok := store.ProjectionScale(st.camera)
	if !ok {
		return missing(entity, st.camera, RoleCamera)
	}
	buf.Reset()

	rate := st.cfg.translationRate
	scale = common.SmoothNudge(scale, st.cfg.scale, rate, dt)

	target := controlled.Translation.Add(st.cfg.offset)
	displacement := target.Sub(cam.Translation).Vec2()
	moved := false
	if current := displacement.Len(); current > 0 && current > follow.Distance {
		next := common.SmoothNudge(current, follow.Distance, rate, dt)
		step := displacement.Mul((current - next) / current)
		cam.Translation = cam.Translation.Add(mgl32.Vec3{step[0], step[1], 0})
		moved = true
	}

	if !store.SetProjectionScale(st.camera, scale) {
		return missing(entity, st.camera, RoleCamera)
	}
	if moved && !store.SetTransform(st.camera, cam) {
		return missing(entity, st.camera, RoleCamera)
	}
	return nil
}

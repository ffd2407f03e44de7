package camera

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
)

// Resolve3d runs one tick of a 3D controller attached to entity.
//
// Manual leaves the camera alone and drains buf. Perspective and Follow first
// apply the rotation input (yaw, then pitch if the limit allows it), then place
// the camera relative to the target: at it for Perspective, Distance behind it
// for Follow. Follow shortens the distance through caster when caster is not nil.
//
// Parameters:
//   - entity: ID of the controlled entity
//   - ctrl: the controller attached to entity
//   - buf: the controller's input buffer
//   - store: the host transform store
//   - caster: optional obstruction ray caster, may be nil
//   - dt: tick duration in seconds
//
// Returns:
//   - error: a *ResolveError wrapping ErrMissingEntity, or nil
func Resolve3d(entity uint64, ctrl Controller3d, buf input.DeltaBuffer, store TransformStore, caster RayCaster, dt float32) error {
	st := ctrl.snapshot3d()

	if _, manual := st.view.(View3dManual); manual {
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

	applyRotation(&cam, st.cfg.rotationDelta(buf, dt), st.cfg.yawAxis, st.cfg.pitch)
	target := anchorTarget(controlled, st.cfg.offset)
	rate := st.cfg.translationRate

	switch v := st.view.(type) {
	case View3dPerspective:
		if common.IsSnap(rate) {
			cam.Translation = target
		} else {
			placeAtDistance(&cam, target, 0, rate, dt)
		}
	case View3dFollow:
		current := cam.Translation.Sub(target).Len()
		d := common.SmoothNudge(current, v.Distance, rate, dt)
		exclude := append(slices.Clone(v.Exclude), entity)
		d = AdjustFollowDistance(caster, target, cam.Back(), d, v.BackDistance, exclude)
		place(&cam, target, d)
	}

	if !store.SetTransform(st.camera, cam) {
		return missing(entity, st.camera, RoleCamera)
	}
	return nil
}

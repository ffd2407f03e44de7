package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Resolve runs one tick of a generalized controller attached to entity.
// Every transform is read before anything is written; if a referenced entity
// is missing a *ResolveError is returned and the store is left untouched.
// Input is always released from buf for the tick, even when the resulting
// motion is degenerate and skipped.
//
// Parameters:
//   - entity: ID of the controlled entity
//   - ctrl: the controller attached to entity
//   - buf: the controller's input buffer
//   - store: the host transform store
//   - dt: tick duration in seconds
//
// Returns:
//   - error: a *ResolveError wrapping ErrMissingEntity, or nil
func Resolve(entity uint64, ctrl Controller, buf input.DeltaBuffer, store TransformStore, dt float32) error {
	st := ctrl.snapshot()
	if st.stale {
		buf.Reset()
	}

	controlled, ok := store.Transform(entity)
	if !ok {
		return missing(entity, entity, RoleControlled)
	}
	cam, ok := store.Transform(st.camera)
	if !ok {
		return missing(entity, st.camera, RoleCamera)
	}

	_, plane := st.anchor.(AnchorPlane)
	var lookTarget mgl32.Vec3
	target, lookAt := st.view.(ViewTarget)
	if lookAt && !plane {
		t, ok := store.Transform(target.Entity)
		if !ok {
			return missing(entity, target.Entity, RoleTarget)
		}
		lookTarget = t.Translation
	}

	next := cam
	switch a := st.anchor.(type) {
	case AnchorYaw:
		applyRotation(&next, st.cfg.rotationDelta(buf, dt), st.cfg.yawAxis, st.cfg.pitch)
	case AnchorPlane:
		panInPlane(&next, a.Normal, st.cfg.translationDelta(buf, dt), st.cfg.yawAxis)
	case AnchorPoint:
		applyRotation(&next, st.cfg.rotationDelta(buf, dt), st.cfg.yawAxis, st.cfg.pitch)
		placeAtDistance(&next, anchorTarget(controlled, st.cfg.offset), 0, st.cfg.translationRate, dt)
	case AnchorOrbit:
		applyRotation(&next, st.cfg.rotationDelta(buf, dt), st.cfg.yawAxis, st.cfg.pitch)
		placeAtDistance(&next, anchorTarget(controlled, st.cfg.offset), a.Distance, st.cfg.translationRate, dt)
	}

	if lookAt && !plane {
		// Degenerate look-at keeps the rotation from input.
		next.LookAt(lookTarget, st.cfg.yawAxis)
	}

	if !store.SetTransform(st.camera, next) {
		return missing(entity, st.camera, RoleCamera)
	}
	return nil
}

// anchorTarget is the point the camera is placed relative to: the controlled
// entity's translation plus its rotation applied to offset.
func anchorTarget(controlled common.Transform, offset mgl32.Vec3) mgl32.Vec3 {
	return controlled.Translation.Add(controlled.Rotation.Rotate(offset))
}

// placeAtDistance nudges the camera's distance to target toward desired and
// puts the camera that far along its own back axis.
func placeAtDistance(cam *common.Transform, target mgl32.Vec3, desired, rate, dt float32) {
	current := cam.Translation.Sub(target).Len()
	d := common.SmoothNudge(current, desired, rate, dt)
	place(cam, target, d)
}

func place(cam *common.Transform, target mgl32.Vec3, distance float32) {
	cam.Translation = cam.Rotation.Rotate(mgl32.Vec3{0, 0, distance}).Add(target)
}

// planeAxes returns two unit axes spanning the plane with the given normal.
// The x axis is yaw × normal and the y axis is the yaw axis with its normal
// component removed. When yaw is parallel to the normal the camera's right
// axis takes the place of yaw × normal.
func planeAxes(normal, yaw mgl32.Vec3, cam common.Transform) (x, y mgl32.Vec3, ok bool) {
	n, ok := common.NormalizeOrZero(normal)
	if !ok {
		return x, y, false
	}
	if x, ok = common.NormalizeOrZero(yaw.Cross(n)); ok {
		y, ok = common.NormalizeOrZero(common.RejectFrom(yaw, n))
		return x, y, ok
	}
	if x, ok = common.NormalizeOrZero(common.RejectFrom(cam.Right(), n)); !ok {
		return x, y, false
	}
	return x, n.Cross(x), true
}

func panInPlane(cam *common.Transform, normal mgl32.Vec3, delta mgl32.Vec2, yaw mgl32.Vec3) {
	x, y, ok := planeAxes(normal, yaw, *cam)
	if !ok {
		return
	}
	cam.Translation = cam.Translation.Add(x.Mul(delta[0])).Add(y.Mul(delta[1]))
}

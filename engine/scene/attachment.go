package scene

import (
	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
)

type controllerKind int

const (
	kindGeneral controllerKind = iota
	kind2d
	kind3d
)

// attachment binds one controller and its input buffer to a controlled entity.
type attachment struct {
	entity uint64
	kind   controllerKind
	buf    input.DeltaBuffer

	general camera.Controller
	ctrl2d  camera.Controller2d
	ctrl3d  camera.Controller3d
}

func (a *attachment) camera() uint64 {
	switch a.kind {
	case kind2d:
		return a.ctrl2d.Camera()
	case kind3d:
		return a.ctrl3d.Camera()
	default:
		return a.general.Camera()
	}
}

func (a *attachment) resolve(store camera.ProjectionStore, caster camera.RayCaster, dt float32) error {
	switch a.kind {
	case kind2d:
		return camera.Resolve2d(a.entity, a.ctrl2d, a.buf, store, dt)
	case kind3d:
		return camera.Resolve3d(a.entity, a.ctrl3d, a.buf, store, caster, dt)
	default:
		return camera.Resolve(a.entity, a.general, a.buf, store, dt)
	}
}

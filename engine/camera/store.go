package camera

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-control/common"
)

// ErrMissingEntity is returned when a referenced entity is not in the host store.
var ErrMissingEntity = errors.New("entity not found")

// Entity roles reported by ResolveError.
const (
	RoleControlled = "controlled"
	RoleCamera     = "camera"
	RoleTarget     = "target"
)

// TransformStore is the host's transform table, addressed by entity ID.
type TransformStore interface {
	// Transform returns the current transform of an entity.
	//
	// Parameters:
	//   - id: the entity ID
	//
	// Returns:
	//   - common.Transform: the transform
	//   - bool: false if the entity does not exist
	Transform(id uint64) (common.Transform, bool)

	// SetTransform replaces the transform of an entity.
	//
	// Parameters:
	//   - id: the entity ID
	//   - t: the new transform
	//
	// Returns:
	//   - bool: false if the entity does not exist
	SetTransform(id uint64, t common.Transform) bool
}

// ProjectionStore extends TransformStore with the orthographic projection scale
// of 2D cameras.
type ProjectionStore interface {
	TransformStore

	// ProjectionScale returns the projection scale of a camera entity.
	//
	// Parameters:
	//   - id: the entity ID
	//
	// Returns:
	//   - float32: the scale
	//   - bool: false if the entity does not exist
	ProjectionScale(id uint64) (float32, bool)

	// SetProjectionScale replaces the projection scale of a camera entity.
	//
	// Parameters:
	//   - id: the entity ID
	//   - scale: the new scale
	//
	// Returns:
	//   - bool: false if the entity does not exist
	SetProjectionScale(id uint64, scale float32) bool
}

// ResolveError reports a controller that could not be resolved for a tick.
// Nothing was written for that controller.
type ResolveError struct {
	Controller uint64
	Entity     uint64
	Role       string
	Err        error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("camera: controller %d: %s entity %d: %v", e.Controller, e.Role, e.Entity, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func missing(controller, entity uint64, role string) error {
	return &ResolveError{Controller: controller, Entity: entity, Role: role, Err: ErrMissingEntity}
}

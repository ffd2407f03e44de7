package scene

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is resolved by the engine each tick.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.add(obj)
		}
	}
}

// WithComputeWorkers sets the number of worker goroutines used to resolve
// controllers in parallel. Defaults to runtime.NumCPU()-1. A value of 1
// resolves controllers serially on the calling goroutine.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithRayCaster sets the obstruction ray caster used by 3D follow controllers.
//
// Parameters:
//   - caster: the ray caster, nil disables obstruction checks
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRayCaster(caster camera.RayCaster) SceneBuilderOption {
	return func(s *scene) {
		s.caster = caster
	}
}

// WithLogger sets the logger used to report skipped controllers.
// Defaults to slog.Default().
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

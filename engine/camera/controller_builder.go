package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ControllerOption is a functional option for configuring any controller kind.
// Options may be applied at construction or later through Configure.
type ControllerOption func(*settings)

// WithSensitivity sets the multiplier applied to every input delta.
//
// Parameters:
//   - sensitivity: multiplier, zero disables input
//
// Returns:
//   - ControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) ControllerOption {
	return func(s *settings) {
		s.sensitivity = sensitivity
	}
}

// WithOffset sets the offset from the controlled entity to the camera target.
// 3D controllers rotate the offset by the entity's rotation; 2D controllers
// add it unrotated.
//
// Parameters:
//   - offset: offset vector
//
// Returns:
//   - ControllerOption: functional option to set the offset
func WithOffset(offset mgl32.Vec3) ControllerOption {
	return func(s *settings) {
		s.offset = offset
	}
}

// WithSmoothing sets the smoothing time constant for both translation and
// rotation. Larger values give smoother movement; zero snaps.
//
// Parameters:
//   - smoothing: time constant in seconds
//
// Returns:
//   - ControllerOption: functional option to set both decay rates
func WithSmoothing(smoothing float32) ControllerOption {
	return func(s *settings) {
		s.translationRate = rateFromSmoothing(smoothing)
		s.rotationRate = s.translationRate
	}
}

// WithTranslationSmoothing sets the smoothing time constant for translation,
// distance and zoom.
//
// Parameters:
//   - smoothing: time constant in seconds
//
// Returns:
//   - ControllerOption: functional option to set the translation decay rate
func WithTranslationSmoothing(smoothing float32) ControllerOption {
	return func(s *settings) {
		s.translationRate = rateFromSmoothing(smoothing)
	}
}

// WithRotationSmoothing sets the smoothing time constant for rotation input.
//
// Parameters:
//   - smoothing: time constant in seconds
//
// Returns:
//   - ControllerOption: functional option to set the rotation decay rate
func WithRotationSmoothing(smoothing float32) ControllerOption {
	return func(s *settings) {
		s.rotationRate = rateFromSmoothing(smoothing)
	}
}

// WithYawAxis sets the world axis the camera yaws around. A zero axis is ignored.
//
// Parameters:
//   - axis: the yaw axis, normalized on assignment
//
// Returns:
//   - ControllerOption: functional option to set the yaw axis
func WithYawAxis(axis mgl32.Vec3) ControllerOption {
	return func(s *settings) {
		if n, ok := common.NormalizeOrZero(axis); ok {
			s.yawAxis = n
		}
	}
}

// WithPitchRange limits the camera tilt to rangeRad/2 on either side of horizontal.
//
// Parameters:
//   - rangeRad: total pitch range in radians
//
// Returns:
//   - ControllerOption: functional option to set the pitch range
func WithPitchRange(rangeRad float32) ControllerOption {
	return func(s *settings) {
		s.pitch = NewPitchRange(rangeRad)
	}
}

// WithUnlimitedPitch removes any pitch limit.
func WithUnlimitedPitch() ControllerOption {
	return func(s *settings) {
		s.pitch = PitchRange{}
	}
}

// WithZoom sets the target zoom of a 2D controller. The projection scale
// approaches 1/zoom. Ignored by 3D controllers.
//
// Parameters:
//   - zoom: zoom level, must be non-zero
//
// Returns:
//   - ControllerOption: functional option to set the zoom
func WithZoom(zoom float32) ControllerOption {
	return func(s *settings) {
		if zoom != 0 {
			s.scale = 1 / zoom
		}
	}
}

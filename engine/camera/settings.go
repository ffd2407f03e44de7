package camera

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// settings is the tuning shared by every controller kind.
type settings struct {
	sensitivity     float32
	offset          mgl32.Vec3
	translationRate float32
	rotationRate    float32
	yawAxis         mgl32.Vec3
	pitch           PitchRange

	// scale is the reciprocal zoom, only read by 2D controllers.
	scale float32
}

func defaultSettings() settings {
	return settings{
		sensitivity:     1,
		translationRate: common.Snap,
		rotationRate:    common.Snap,
		yawAxis:         common.AxisY,
		scale:           1,
	}
}

func (s settings) rotationDelta(buf input.DeltaBuffer, dt float32) mgl32.Vec2 {
	return releaseDelta(buf, s.rotationRate, dt).Mul(s.sensitivity)
}

func (s settings) translationDelta(buf input.DeltaBuffer, dt float32) mgl32.Vec2 {
	return releaseDelta(buf, s.translationRate, dt).Mul(s.sensitivity)
}

func releaseDelta(buf input.DeltaBuffer, rate, dt float32) mgl32.Vec2 {
	if common.IsSnap(rate) {
		return buf.Take()
	}
	return buf.Decay(rate, dt)
}

// rateFromSmoothing maps a smoothing time constant to a decay rate. Zero or
// negative smoothing disables smoothing.
func rateFromSmoothing(smoothing float32) float32 {
	if smoothing <= 0 {
		return common.Snap
	}
	return 1 / smoothing
}

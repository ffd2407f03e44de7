package window

import (
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Input is the tick-side view of window input. Fields left nil are not bound.
type Input struct {
	// Keys receives key and mouse button state. Mouse buttons are tracked
	// under common.MouseKey(button).
	Keys *input.KeyState

	// Pointer accumulates cursor motion.
	Pointer *input.PointerAccumulator

	// Scroll accumulates wheel motion on its Y component.
	Scroll *input.PointerAccumulator
}

// Bind routes an input source's events into in.
//
// Parameters:
//   - src: the event source, usually a Window
//   - in: the destination state
func Bind(src InputSource, in Input) {
	if in.Keys != nil {
		src.SetKeyDownCallback(in.Keys.Press)
		src.SetKeyUpCallback(in.Keys.Release)
		src.SetMouseButtonCallback(func(button int, pressed bool) {
			if pressed {
				in.Keys.Press(common.MouseKey(button))
			} else {
				in.Keys.Release(common.MouseKey(button))
			}
		})
	}
	if in.Pointer != nil {
		src.SetCursorCallback(in.Pointer.Move)
	}
	if in.Scroll != nil {
		src.SetScrollCallback(func(delta float32) {
			in.Scroll.Add(mgl32.Vec2{0, delta})
		})
	}
}

package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// The platform window needs a display; these tests drive the event plumbing
// of an unspawned window directly.

func TestBindRoutesEvents(t *testing.T) {
	w := newEngineWindow()
	in := Input{
		Keys:    input.NewKeyState(),
		Pointer: &input.PointerAccumulator{},
		Scroll:  &input.PointerAccumulator{},
	}
	Bind(w, in)

	w.emitKey(common.KeyW, true)
	w.emitMouseButton(common.MouseButtonRight, true)
	w.emitCursor(10, 10)
	w.emitCursor(14, 7)
	w.emitScroll(2)
	w.emitScroll(-0.5)

	if !in.Keys.Pressed(common.KeyW) {
		t.Error("Bind failed: expected W held")
	}
	if !in.Keys.Pressed(common.MouseKey(common.MouseButtonRight)) {
		t.Error("Bind failed: expected right mouse held")
	}
	if got := in.Pointer.Drain(); got != (mgl32.Vec2{4, -3}) {
		t.Errorf("Bind failed: expected pointer motion (4,-3), got %v", got)
	}
	if got := in.Scroll.Drain(); got != (mgl32.Vec2{0, 1.5}) {
		t.Errorf("Bind failed: expected scroll (0,1.5), got %v", got)
	}

	w.emitKey(common.KeyW, false)
	w.emitMouseButton(common.MouseButtonRight, false)
	if in.Keys.Pressed(common.KeyW) || in.Keys.Pressed(common.MouseKey(common.MouseButtonRight)) {
		t.Error("Bind failed: expected release to clear held state")
	}
}

func TestBindPartial(t *testing.T) {
	w := newEngineWindow()
	Bind(w, Input{Keys: input.NewKeyState()})
	// Unbound channels are no-ops.
	w.emitCursor(1, 1)
	w.emitScroll(1)
}

func TestResizeUpdatesSize(t *testing.T) {
	w := newEngineWindow(WithWidth(800), WithHeight(600))
	var gotW, gotH int
	w.SetResizeCallback(func(width, height int) { gotW, gotH = width, height })
	w.emitResize(1024, 768)
	if w.Width() != 1024 || w.Height() != 768 || gotW != 1024 || gotH != 768 {
		t.Errorf("resize failed: expected 1024x768, got %dx%d (callback %dx%d)", w.Width(), w.Height(), gotW, gotH)
	}
}

func TestPendingCapture(t *testing.T) {
	w := newEngineWindow()
	if _, changed := w.pendingCapture(); changed {
		t.Error("pendingCapture failed: expected no change initially")
	}
	w.SetCursorCaptured(true)
	if captured, changed := w.pendingCapture(); !captured || !changed {
		t.Errorf("pendingCapture failed: expected captured change, got %v %v", captured, changed)
	}
	if _, changed := w.pendingCapture(); changed {
		t.Error("pendingCapture failed: change reported twice")
	}
}

func TestUnspawnedWindow(t *testing.T) {
	w := newEngineWindow()
	if w.IsRunning() {
		t.Error("IsRunning failed: unspawned window reported running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("SurfaceDescriptor failed: expected nil for unspawned window")
	}
	if err := w.Close(); err == nil {
		t.Error("Close failed: expected error for unspawned window")
	}
}

package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// PointerAccumulator collects raw cursor motion reported by the window between
// ticks. At the start of a tick the motion is flushed into one or more
// DeltaBuffers.
type PointerAccumulator struct {
	mu      sync.Mutex
	sum     mgl32.Vec2
	last    mgl32.Vec2
	hasLast bool
}

// Move records an absolute cursor position and accumulates the motion since the
// previous position. The first call only establishes the reference point.
//
// Parameters:
//   - x, y: cursor position in window pixels
func (p *PointerAccumulator) Move(x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos := mgl32.Vec2{float32(x), float32(y)}
	if p.hasLast {
		p.sum = p.sum.Add(pos.Sub(p.last))
	}
	p.last = pos
	p.hasLast = true
}

// Add accumulates a relative motion directly.
//
// Parameters:
//   - delta: motion in pixels
func (p *PointerAccumulator) Add(delta mgl32.Vec2) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sum = p.sum.Add(delta)
}

// Flush pushes -motion*dt into every buffer and clears the accumulated motion.
// Dragging right therefore yaws left, as with a grabbed scene.
//
// Parameters:
//   - dt: tick duration in seconds
//   - buffers: the buffers to feed
//
// Returns:
//   - mgl32.Vec2: the delta pushed into each buffer
func (p *PointerAccumulator) Flush(dt float32, buffers ...DeltaBuffer) mgl32.Vec2 {
	p.mu.Lock()
	delta := p.sum.Mul(-dt)
	p.sum = mgl32.Vec2{}
	p.mu.Unlock()

	if delta == (mgl32.Vec2{}) {
		return delta
	}
	for _, buf := range buffers {
		buf.Update(delta)
	}
	return delta
}

// Drain returns the raw accumulated motion and clears it. Used by manual
// handlers and scroll input that bypass the controller buffers.
//
// Returns:
//   - mgl32.Vec2: the motion since the last Drain or Flush
func (p *PointerAccumulator) Drain() mgl32.Vec2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	sum := p.sum
	p.sum = mgl32.Vec2{}
	return sum
}

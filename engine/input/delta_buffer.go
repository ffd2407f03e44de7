package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

type deltaBuffer struct {
	mu    *sync.Mutex
	delta mgl32.Vec2
}

// DeltaBuffer accumulates 2D pointer input between ticks and releases it to a
// single consumer, either all at once or gradually.
// Producers (window callbacks) and the consumer (the tick) may run on
// different goroutines.
type DeltaBuffer interface {
	// Update adds an input delta to the buffer.
	//
	// Parameters:
	//   - delta: the input to accumulate
	Update(delta mgl32.Vec2)

	// Consume removes an amount from the buffer.
	//
	// Parameters:
	//   - delta: the amount to remove
	Consume(delta mgl32.Vec2)

	// Read returns the current buffer without modifying it.
	//
	// Returns:
	//   - mgl32.Vec2: the pending delta
	Read() mgl32.Vec2

	// Take returns the whole buffer and leaves it zero.
	//
	// Returns:
	//   - mgl32.Vec2: the pending delta
	Take() mgl32.Vec2

	// Reset discards any pending input.
	Reset()

	// Decay releases the exponentially decayed portion of the buffer for this
	// tick. The released portion is removed from the buffer and returned.
	// An infinite rate releases everything.
	//
	// Parameters:
	//   - rate: decay rate per second
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - mgl32.Vec2: the released delta
	Decay(rate, dt float32) mgl32.Vec2
}

var _ DeltaBuffer = &deltaBuffer{}

// NewDeltaBuffer creates an empty DeltaBuffer.
//
// Returns:
//   - DeltaBuffer: the new buffer
func NewDeltaBuffer() DeltaBuffer {
	return &deltaBuffer{mu: &sync.Mutex{}}
}

func (b *deltaBuffer) Update(delta mgl32.Vec2) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delta = b.delta.Add(delta)
}

func (b *deltaBuffer) Consume(delta mgl32.Vec2) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delta = b.delta.Sub(delta)
}

func (b *deltaBuffer) Read() mgl32.Vec2 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.delta
}

func (b *deltaBuffer) Take() mgl32.Vec2 {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.delta
	b.delta = mgl32.Vec2{}
	return d
}

func (b *deltaBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delta = mgl32.Vec2{}
}

func (b *deltaBuffer) Decay(rate, dt float32) mgl32.Vec2 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if common.IsSnap(rate) {
		d := b.delta
		b.delta = mgl32.Vec2{}
		return d
	}
	released := b.delta.Mul(common.DecayFactor(rate, dt))
	b.delta = b.delta.Sub(released)
	return released
}

package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// tuning defines the configuration shared by every controller kind.
// A controller references its camera by entity ID; the host owns the camera.
type tuning interface {
	// Camera returns the ID of the camera entity driven by this controller.
	//
	// Returns:
	//   - uint64: the camera entity ID
	Camera() uint64

	// SetCamera changes the camera entity driven by this controller.
	//
	// Parameters:
	//   - id: the camera entity ID
	SetCamera(id uint64)

	// Configure applies options to a live controller.
	//
	// Parameters:
	//   - options: functional options to apply
	Configure(options ...ControllerOption)

	// Sensitivity returns the input multiplier.
	//
	// Returns:
	//   - float32: the multiplier
	Sensitivity() float32

	// Offset returns the offset from the controlled entity to the camera target.
	//
	// Returns:
	//   - mgl32.Vec3: the offset
	Offset() mgl32.Vec3

	// TranslationRate returns the translation decay rate. +Inf means no smoothing.
	//
	// Returns:
	//   - float32: decay rate per second
	TranslationRate() float32

	// RotationRate returns the rotation decay rate. +Inf means no smoothing.
	//
	// Returns:
	//   - float32: decay rate per second
	RotationRate() float32

	// YawAxis returns the unit world axis used for yaw.
	//
	// Returns:
	//   - mgl32.Vec3: the yaw axis
	YawAxis() mgl32.Vec3

	// PitchRange returns the pitch limit.
	//
	// Returns:
	//   - PitchRange: the limit, zero value when unlimited
	PitchRange() PitchRange

	// RotationDelta releases this tick's rotation input from buf, scaled by sensitivity.
	//
	// Parameters:
	//   - buf: the controller's input buffer
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - mgl32.Vec2: yaw (x) and pitch (y) in radians
	RotationDelta(buf input.DeltaBuffer, dt float32) mgl32.Vec2

	// TranslationDelta releases this tick's translation input from buf, scaled by sensitivity.
	//
	// Parameters:
	//   - buf: the controller's input buffer
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - mgl32.Vec2: displacement along the two pan axes
	TranslationDelta(buf input.DeltaBuffer, dt float32) mgl32.Vec2
}

type base struct {
	mu     *sync.Mutex
	camera uint64
	cfg    settings
}

func newBase(camera uint64, options []ControllerOption) base {
	b := base{mu: &sync.Mutex{}, camera: camera, cfg: defaultSettings()}
	for _, option := range options {
		option(&b.cfg)
	}
	return b
}

func (b *base) Camera() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.camera
}

func (b *base) SetCamera(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.camera = id
}

func (b *base) Configure(options ...ControllerOption) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, option := range options {
		option(&b.cfg)
	}
}

func (b *base) Sensitivity() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.sensitivity
}

func (b *base) Offset() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.offset
}

func (b *base) TranslationRate() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.translationRate
}

func (b *base) RotationRate() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.rotationRate
}

func (b *base) YawAxis() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.yawAxis
}

func (b *base) PitchRange() PitchRange {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.pitch
}

func (b *base) RotationDelta(buf input.DeltaBuffer, dt float32) mgl32.Vec2 {
	b.mu.Lock()
	cfg := b.cfg
	b.mu.Unlock()
	return cfg.rotationDelta(buf, dt)
}

func (b *base) TranslationDelta(buf input.DeltaBuffer, dt float32) mgl32.Vec2 {
	b.mu.Lock()
	cfg := b.cfg
	b.mu.Unlock()
	return cfg.translationDelta(buf, dt)
}

// Controller is the generalized 3D controller combining an Anchor with a View.
type Controller interface {
	tuning

	// Anchor returns the active anchor.
	//
	// Returns:
	//   - Anchor: one of AnchorYaw, AnchorPlane, AnchorPoint, AnchorOrbit
	Anchor() Anchor

	// SetAnchor switches the anchor. Switching between a translation-driven
	// anchor (Plane) and a rotation-driven one discards pending input on the
	// next resolution, since the buffered delta no longer means the same thing.
	// A nil anchor is ignored.
	//
	// Parameters:
	//   - anchor: the new anchor
	SetAnchor(anchor Anchor)

	// View returns the active view.
	//
	// Returns:
	//   - View: ViewFree or ViewTarget
	View() View

	// SetView switches the view. A nil view is ignored.
	//
	// Parameters:
	//   - view: the new view
	SetView(view View)

	snapshot() controllerState
}

// controllerState is a consistent copy of a generalized controller taken at
// the start of a resolution pass.
type controllerState struct {
	camera uint64
	cfg    settings
	anchor Anchor
	view   View
	stale  bool
}

type controller struct {
	base
	anchor Anchor
	view   View
	stale  bool
}

var _ Controller = &controller{}

// NewController creates a generalized controller for the given camera entity.
// A nil anchor defaults to AnchorYaw and a nil view to ViewFree.
//
// Parameters:
//   - camera: ID of the camera entity to drive
//   - anchor: the initial anchor
//   - view: the initial view
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(camera uint64, anchor Anchor, view View, options ...ControllerOption) Controller {
	if anchor == nil {
		anchor = AnchorYaw{}
	}
	if view == nil {
		view = ViewFree{}
	}
	return &controller{
		base:   newBase(camera, options),
		anchor: anchor,
		view:   view,
	}
}

func (c *controller) Anchor() Anchor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anchor
}

func (c *controller) SetAnchor(anchor Anchor) {
	if anchor == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if anchor.translational() != c.anchor.translational() {
		c.stale = true
	}
	c.anchor = anchor
}

func (c *controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *controller) SetView(view View) {
	if view == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

func (c *controller) snapshot() controllerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := controllerState{
		camera: c.camera,
		cfg:    c.cfg,
		anchor: c.anchor,
		view:   c.view,
		stale:  c.stale,
	}
	c.stale = false
	return st
}

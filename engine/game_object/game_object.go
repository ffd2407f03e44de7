package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool

	mu              *sync.Mutex
	transform       common.Transform
	projectionScale float32
}

// GameObject defines the interface for a scene entity. A GameObject is a row in
// the host transform store: cameras, controlled bodies and look-at targets are
// all GameObjects.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the object's display name, used in logs and replay output.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// Enabled returns whether this object takes part in camera resolution.
	// Disabled objects are reported as missing to controllers.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object takes part in camera resolution.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Transform returns a copy of the object's transform.
	//
	// Returns:
	//   - common.Transform: translation and rotation
	Transform() common.Transform

	// SetTransform replaces the object's transform.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t common.Transform)

	// Position returns the object's translation.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition replaces the object's translation, keeping its rotation.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// Translate moves the object by an offset.
	//
	// Parameters:
	//   - d: world-space offset
	Translate(d mgl32.Vec3)

	// Rotation returns the object's orientation.
	//
	// Returns:
	//   - mgl32.Quat: world-space rotation
	Rotation() mgl32.Quat

	// SetRotation replaces the object's orientation, keeping its translation.
	//
	// Parameters:
	//   - q: world-space rotation
	SetRotation(q mgl32.Quat)

	// ProjectionScale returns the orthographic projection scale. Only meaningful
	// for 2D cameras; defaults to 1.
	//
	// Returns:
	//   - float32: the scale
	ProjectionScale() float32

	// SetProjectionScale sets the orthographic projection scale.
	//
	// Parameters:
	//   - scale: the new scale
	SetProjectionScale(scale float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject at the origin configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:              &sync.Mutex{},
		transform:       common.NewTransform(mgl32.Vec3{}),
		projectionScale: 1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Transform() common.Transform {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform
}

func (g *gameObject) SetTransform(t common.Transform) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform = t
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Translation
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Translation = p
}

func (g *gameObject) Translate(d mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Translation = g.transform.Translation.Add(d)
}

func (g *gameObject) Rotation() mgl32.Quat {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Rotation
}

func (g *gameObject) SetRotation(q mgl32.Quat) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Rotation = q
}

func (g *gameObject) ProjectionScale() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.projectionScale
}

func (g *gameObject) SetProjectionScale(scale float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.projectionScale = scale
}

package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/game_object"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/Carmen-Shannon/oxy-control/engine/physics"
	"github.com/Carmen-Shannon/oxy-control/engine/preset"
	"github.com/Carmen-Shannon/oxy-control/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// obstacleBase is the first entity ID handed to obstacles without one.
const obstacleBase = 1 << 32

// Frame is the observable state after one tick.
type Frame struct {
	Tick       int        `yaml:"tick" json:"tick"`
	Camera     [3]float32 `yaml:"camera" json:"camera"`
	Rotation   [4]float32 `yaml:"rotation" json:"rotation"`
	Scale      float32    `yaml:"scale" json:"scale"`
	Controlled [3]float32 `yaml:"controlled" json:"controlled"`
	Error      string     `yaml:"error,omitempty" json:"error,omitempty"`
}

// Sink receives each frame. A non-nil error stops the run.
type Sink func(Frame) error

// RunOption configures Run.
type RunOption func(r *runner)

// WithPresets sets the presets that scenario preset names resolve against.
// Defaults to preset.Defaults().
//
// Parameters:
//   - set: the presets
//
// Returns:
//   - RunOption: option function to apply
func WithPresets(set *preset.Set) RunOption {
	return func(r *runner) {
		if set != nil {
			r.presets = set
		}
	}
}

// WithLogger sets the logger passed to the scene.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - RunOption: option function to apply
func WithLogger(logger *slog.Logger) RunOption {
	return func(r *runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// tuned is the configuration surface shared by every controller kind.
type tuned interface {
	preset.Configurable
	YawAxis() mgl32.Vec3
	PitchRange() camera.PitchRange
}

type runner struct {
	sc      *Scenario
	presets *preset.Set
	logger  *slog.Logger

	scene  scene.Scene
	buf    input.DeltaBuffer
	ctrl   tuned
	ctrl1  camera.Controller
	ctrl2d camera.Controller2d
	ctrl3d camera.Controller3d
	events map[int][]Event
}

// Run executes the scenario tick by tick. Every tick first applies that
// tick's events (manual handlers included), then resolves the controller, then
// emits a Frame. Resolution failures are recorded on the frame and do not stop
// the run.
//
// Parameters:
//   - ctx: cancels the run between ticks
//   - sc: a validated scenario
//   - sink: receives every frame
//   - options: functional options
//
// Returns:
//   - error: setup, event or sink error, or ctx.Err()
func Run(ctx context.Context, sc *Scenario, sink Sink, options ...RunOption) error {
	r := &runner{
		sc:      sc,
		presets: preset.Defaults(),
		logger:  slog.Default(),
		events:  make(map[int][]Event),
	}
	for _, option := range options {
		option(r)
	}
	if err := r.setup(); err != nil {
		return err
	}
	for _, ev := range sc.Events {
		r.events[ev.Tick] = append(r.events[ev.Tick], ev)
	}

	for tick := 0; tick < sc.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, ev := range r.events[tick] {
			if err := r.apply(ev); err != nil {
				return fmt.Errorf("replay: tick %d: %w", tick, err)
			}
		}
		frame := Frame{Tick: tick}
		if err := r.scene.Update(sc.Dt); err != nil {
			frame.Error = err.Error()
		}
		r.fill(&frame)
		if err := sink(frame); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) setup() error {
	sc := r.sc
	r.scene = scene.NewScene(sc.Name,
		scene.WithActive(true),
		scene.WithComputeWorkers(1),
		scene.WithLogger(r.logger),
	)
	for _, e := range sc.Entities {
		opts := []game_object.GameObjectBuilderOption{
			game_object.WithID(e.ID),
			game_object.WithName(e.Name),
			game_object.WithEnabled(!e.Disabled),
			game_object.WithPosition(e.Position[0], e.Position[1], e.Position[2]),
		}
		if e.LookAt != nil {
			opts = append(opts, game_object.WithLookAt(mgl32.Vec3(*e.LookAt)))
		}
		if e.Scale != nil {
			opts = append(opts, game_object.WithProjectionScale(*e.Scale))
		}
		r.scene.Add(game_object.NewGameObject(opts...))
	}

	if len(sc.Obstacles) > 0 {
		plane, err := parsePlane(sc.Plane)
		if err != nil {
			return err
		}
		space := physics.NewSpace(physics.WithPlane(plane))
		for i, o := range sc.Obstacles {
			id := o.Entity
			if id == 0 {
				id = obstacleBase + uint64(i)
			}
			switch {
			case o.Box != nil:
				space.AddBox(id, mgl32.Vec3(o.Box.Min), mgl32.Vec3(o.Box.Max))
			case o.Cylinder != nil:
				space.AddCylinder(id, mgl32.Vec3(o.Cylinder.Base), o.Cylinder.Radius, o.Cylinder.Height)
			case o.Wall != nil:
				space.AddWall(id, mgl32.Vec3(o.Wall.A), mgl32.Vec3(o.Wall.B), o.Wall.Thickness, o.Wall.Height)
			}
		}
		r.scene.SetRayCaster(space)
	}

	var opts []camera.ControllerOption
	c := sc.Controller
	if c.Preset != "" {
		p, err := r.presets.Get(c.Preset)
		if err != nil {
			return err
		}
		opts = p.Options()
	}

	var err error
	switch c.Kind {
	case KindAnchor:
		var anchor camera.Anchor
		if c.Anchor != nil {
			if anchor, err = c.Anchor.anchor(r.transform(c.Entity), r.transform(c.Camera)); err != nil {
				return err
			}
		}
		var view camera.View
		if c.View != nil {
			view = c.View.view(c.Entity)
		}
		r.ctrl1 = camera.NewController(c.Camera, anchor, view, opts...)
		r.ctrl = r.ctrl1
		r.buf, err = r.scene.Attach(c.Entity, r.ctrl1)
	case Kind2d:
		var view camera.View2d
		if c.View != nil {
			view = c.View.view2d()
		}
		r.ctrl2d = camera.NewController2d(c.Camera, view, opts...)
		r.ctrl = r.ctrl2d
		r.buf, err = r.scene.Attach2d(c.Entity, r.ctrl2d)
	case Kind3d:
		var view camera.View3d
		if c.View != nil {
			view = c.View.view3d()
		}
		r.ctrl3d = camera.NewController3d(c.Camera, view, opts...)
		r.ctrl = r.ctrl3d
		r.buf, err = r.scene.Attach3d(c.Entity, r.ctrl3d)
	default:
		err = invalid("controller: unknown kind %q", c.Kind)
	}
	return err
}

// transform returns a lazy reader for an entity's transform.
func (r *runner) transform(id uint64) func() (common.Transform, bool) {
	return func() (common.Transform, bool) {
		return r.scene.Transform(id)
	}
}

func (r *runner) apply(ev Event) error {
	c := r.sc.Controller
	if ev.Preset != "" {
		p, err := r.presets.Get(ev.Preset)
		if err != nil {
			return err
		}
		r.ctrl.Configure(p.Options()...)
	}
	if ev.Anchor != nil {
		anchor, err := ev.Anchor.anchor(r.transform(c.Entity), r.transform(c.Camera))
		if err != nil {
			return fmt.Errorf("anchor %s: %w", ev.Anchor.Type, err)
		}
		r.ctrl1.SetAnchor(anchor)
	}
	if ev.View != nil {
		switch c.Kind {
		case KindAnchor:
			r.ctrl1.SetView(ev.View.view(c.Entity))
		case Kind2d:
			r.ctrl2d.SetView(ev.View.view2d())
		case Kind3d:
			r.ctrl3d.SetView(ev.View.view3d())
		}
	}
	if ev.Zoom != nil {
		if r.ctrl2d == nil {
			return errors.New("zoom requires a 2d controller")
		}
		r.ctrl2d.ZoomBy(*ev.Zoom)
	}
	if ev.Pointer != nil {
		r.buf.Update(mgl32.Vec2(*ev.Pointer))
	}
	if ev.Move != nil {
		r.move(ev)
	}
	if ev.Pan != nil || ev.Rotate != nil {
		r.manual(ev)
	}
	if ev.Remove != 0 {
		r.scene.Remove(ev.Remove)
	}
	return nil
}

func (r *runner) move(ev Event) {
	c := r.sc.Controller
	obj := r.scene.Get(c.Entity)
	cam, ok := r.scene.Transform(c.Camera)
	if obj == nil || !ok {
		return
	}
	speed := common.Coalesce(ev.Speed, 1)
	dir := mgl32.Vec2(*ev.Move)

	var step mgl32.Vec3
	if ev.Screen || c.Kind == Kind2d {
		step = camera.ScreenMove(cam.Rotation, dir)
	} else {
		var moved bool
		if step, moved = camera.PlanarMove(cam.Rotation, dir, r.ctrl.YawAxis()); !moved {
			return
		}
	}
	obj.Translate(step.Mul(speed * r.sc.Dt))
}

// manual applies pan and rotate directly to the camera. Draining the buffer is
// left to the controller, which discards input in Manual views.
func (r *runner) manual(ev Event) {
	id := r.sc.Controller.Camera
	cam, ok := r.scene.Transform(id)
	if !ok {
		return
	}
	if ev.Pan != nil {
		camera.ManualPan(&cam, mgl32.Vec2(*ev.Pan))
	}
	if ev.Rotate != nil {
		camera.ManualRotate(&cam, mgl32.Vec2(*ev.Rotate), r.ctrl.YawAxis(), r.ctrl.PitchRange())
	}
	r.scene.SetTransform(id, cam)
}

func (r *runner) fill(f *Frame) {
	c := r.sc.Controller
	if cam, ok := r.scene.Transform(c.Camera); ok {
		f.Camera = cam.Translation
		q := cam.Rotation
		f.Rotation = [4]float32{q.V[0], q.V[1], q.V[2], q.W}
	}
	if s, ok := r.scene.ProjectionScale(c.Camera); ok {
		f.Scale = s
	}
	if t, ok := r.scene.Transform(c.Entity); ok {
		f.Controlled = t.Translation
	}
}

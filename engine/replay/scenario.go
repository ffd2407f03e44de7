package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Controller kinds.
const (
	KindAnchor = "anchor"
	Kind2d     = "2d"
	Kind3d     = "3d"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("replay: invalid scenario")

// Scenario is a scripted, deterministic run of one camera controller.
type Scenario struct {
	Name       string         `yaml:"name"`
	Dt         float32        `yaml:"dt"`
	Ticks      int            `yaml:"ticks"`
	Plane      string         `yaml:"plane,omitempty"`
	Entities   []Entity       `yaml:"entities"`
	Controller ControllerSpec `yaml:"controller"`
	Obstacles  []Obstacle     `yaml:"obstacles,omitempty"`
	Events     []Event        `yaml:"events,omitempty"`
}

// Entity is an object placed in the scene before the first tick.
type Entity struct {
	ID       uint64      `yaml:"id"`
	Name     string      `yaml:"name,omitempty"`
	Position [3]float32  `yaml:"position"`
	LookAt   *[3]float32 `yaml:"look_at,omitempty"`
	Scale    *float32    `yaml:"scale,omitempty"`
	Disabled bool        `yaml:"disabled,omitempty"`
}

// ControllerSpec describes the controller driving the camera.
type ControllerSpec struct {
	Kind   string    `yaml:"kind"`
	Entity uint64    `yaml:"entity"`
	Camera uint64    `yaml:"camera"`
	Anchor *ModeSpec `yaml:"anchor,omitempty"`
	View   *ModeSpec `yaml:"view,omitempty"`
	Preset string    `yaml:"preset,omitempty"`
}

// ModeSpec selects an anchor or view by type name. Only the fields relevant to
// the type are read.
//
// Anchor types: yaw, plane, plane_facing, point, orbit, orbit_current.
// View types: free, target (anchor kind); manual, follow (2d); manual,
// perspective, follow (3d).
type ModeSpec struct {
	Type         string     `yaml:"type"`
	Distance     float32    `yaml:"distance,omitempty"`
	BackDistance float32    `yaml:"back_distance,omitempty"`
	Normal       [3]float32 `yaml:"normal,omitempty"`
	Entity       uint64     `yaml:"entity,omitempty"`
	Exclude      []uint64   `yaml:"exclude,omitempty"`
}

// Obstacle is static geometry used by 3D follow obstruction checks. Exactly
// one shape must be set.
type Obstacle struct {
	Entity   uint64     `yaml:"entity,omitempty"`
	Box      *BoxShape  `yaml:"box,omitempty"`
	Cylinder *CylShape  `yaml:"cylinder,omitempty"`
	Wall     *WallShape `yaml:"wall,omitempty"`
}

type BoxShape struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type CylShape struct {
	Base   [3]float32 `yaml:"base"`
	Radius float32    `yaml:"radius"`
	Height float32    `yaml:"height"`
}

type WallShape struct {
	A         [3]float32 `yaml:"a"`
	B         [3]float32 `yaml:"b"`
	Thickness float32    `yaml:"thickness"`
	Height    float32    `yaml:"height"`
}

// Event is applied at the start of its tick, before the controller resolves.
// Several fields may be set on one event; they apply in declaration order.
type Event struct {
	Tick    int         `yaml:"tick"`
	Preset  string      `yaml:"preset,omitempty"`
	Anchor  *ModeSpec   `yaml:"anchor,omitempty"`
	View    *ModeSpec   `yaml:"view,omitempty"`
	Zoom    *float32    `yaml:"zoom,omitempty"`
	Pointer *[2]float32 `yaml:"pointer,omitempty"`
	Move    *[2]float32 `yaml:"move,omitempty"`
	Speed   float32     `yaml:"speed,omitempty"`
	Screen  bool        `yaml:"screen,omitempty"`
	Pan     *[2]float32 `yaml:"pan,omitempty"`
	Rotate  *[2]float32 `yaml:"rotate,omitempty"`
	Remove  uint64      `yaml:"remove,omitempty"`
}

// Parse decodes and validates a scenario document.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Scenario: the scenario
//   - error: decode error or an error wrapping ErrInvalidScenario
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Parse(data)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}

// Validate checks the scenario for structural errors. Entities referenced by
// the controller must exist; runtime failures such as removed entities are
// reported per frame instead.
func (sc *Scenario) Validate() error {
	if sc.Dt <= 0 {
		return invalid("dt must be > 0")
	}
	if sc.Ticks <= 0 {
		return invalid("ticks must be > 0")
	}
	if _, err := parsePlane(sc.Plane); err != nil {
		return err
	}

	ids := make(map[uint64]bool, len(sc.Entities))
	for i, e := range sc.Entities {
		if e.ID == 0 {
			return invalid("entity %d: id must be > 0", i)
		}
		if ids[e.ID] {
			return invalid("entity %d: duplicate id", e.ID)
		}
		ids[e.ID] = true
	}

	c := sc.Controller
	if !ids[c.Entity] {
		return invalid("controller: unknown entity %d", c.Entity)
	}
	if !ids[c.Camera] {
		return invalid("controller: unknown camera %d", c.Camera)
	}
	if c.Entity == c.Camera && c.Kind != KindAnchor {
		return invalid("controller: %s controllers need a camera separate from the entity", c.Kind)
	}
	switch c.Kind {
	case KindAnchor, Kind2d, Kind3d:
	default:
		return invalid("controller: unknown kind %q", c.Kind)
	}
	if err := sc.checkModes(c.Anchor, c.View); err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	for i, o := range sc.Obstacles {
		n := 0
		for _, set := range []bool{o.Box != nil, o.Cylinder != nil, o.Wall != nil} {
			if set {
				n++
			}
		}
		if n != 1 {
			return invalid("obstacle %d: exactly one shape required", i)
		}
	}

	for i, ev := range sc.Events {
		if ev.Tick < 0 || ev.Tick >= sc.Ticks {
			return invalid("event %d: tick %d outside [0, %d)", i, ev.Tick, sc.Ticks)
		}
		if err := sc.checkModes(ev.Anchor, ev.View); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if ev.Zoom != nil && *ev.Zoom == 0 {
			return invalid("event %d: zoom must be non-zero", i)
		}
	}
	return nil
}

func (sc *Scenario) checkModes(anchor, view *ModeSpec) error {
	kind := sc.Controller.Kind
	if anchor != nil {
		if kind != KindAnchor {
			return invalid("anchor set on a %s controller", kind)
		}
		switch anchor.Type {
		case "yaw", "plane_facing", "point", "orbit", "orbit_current":
		case "plane":
			if mgl32.Vec3(anchor.Normal).Len() == 0 {
				return invalid("plane anchor needs a non-zero normal")
			}
		default:
			return invalid("unknown anchor %q", anchor.Type)
		}
	}
	if view != nil {
		valid := map[string][]string{
			KindAnchor: {"free", "target"},
			Kind2d:     {"manual", "follow"},
			Kind3d:     {"manual", "perspective", "follow"},
		}[kind]
		ok := false
		for _, v := range valid {
			ok = ok || v == view.Type
		}
		if !ok {
			return invalid("unknown %s view %q", kind, view.Type)
		}
	}
	return nil
}

func parsePlane(name string) (physics.Plane, error) {
	switch name {
	case "", "xz":
		return physics.PlaneXZ, nil
	case "xy":
		return physics.PlaneXY, nil
	}
	return 0, invalid("unknown plane %q", name)
}

func (m *ModeSpec) anchor(controlled, cam func() (common.Transform, bool)) (camera.Anchor, error) {
	switch m.Type {
	case "yaw":
		return camera.AnchorYaw{}, nil
	case "plane":
		return camera.AnchorPlane{Normal: mgl32.Vec3(m.Normal).Normalize()}, nil
	case "point":
		return camera.AnchorPoint{}, nil
	case "orbit":
		return camera.AnchorOrbit{Distance: m.Distance}, nil
	case "plane_facing":
		c, ok := cam()
		if !ok {
			return nil, camera.ErrMissingEntity
		}
		return camera.PlaneFacing(c), nil
	case "orbit_current":
		t, ok := controlled()
		if !ok {
			return nil, camera.ErrMissingEntity
		}
		c, ok := cam()
		if !ok {
			return nil, camera.ErrMissingEntity
		}
		return camera.OrbitAtCurrentDistance(t, c), nil
	}
	return nil, invalid("unknown anchor %q", m.Type)
}

// view builds a general view. A target view without an entity looks at the
// controlled entity.
func (m *ModeSpec) view(controlled uint64) camera.View {
	if m.Type == "target" {
		if m.Entity == 0 {
			return camera.ViewTarget{Entity: controlled}
		}
		return camera.ViewTarget{Entity: m.Entity}
	}
	return camera.ViewFree{}
}

func (m *ModeSpec) view2d() camera.View2d {
	if m.Type == "follow" {
		return camera.View2dFollow{Distance: m.Distance}
	}
	return camera.View2dManual{}
}

func (m *ModeSpec) view3d() camera.View3d {
	switch m.Type {
	case "perspective":
		return camera.View3dPerspective{}
	case "follow":
		return camera.View3dFollow{Distance: m.Distance, BackDistance: m.BackDistance, Exclude: m.Exclude}
	}
	return camera.View3dManual{}
}

package physics

import (
	"math"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// Plane selects which two world axes are handed to the 2D physics space. The
// remaining axis is the extrusion (height) axis.
type Plane int

const (
	// PlaneXZ maps world X/Z to the space and extrudes shapes along Y. This is
	// the usual choice for a Y-up world with walls and pillars.
	PlaneXZ Plane = iota
	// PlaneXY maps world X/Y to the space and extrudes shapes along Z, for
	// side-on worlds.
	PlaneXY
)

// extent is the height range a shape occupies along the extrusion axis.
type extent struct {
	entity uint64
	lo, hi float32
}

// Space is a static obstruction world built on a cp.Space. Geometry is
// described as 2D shapes extruded over a height range, which covers the walls,
// pillars and crates a follow camera has to stay out of.
type Space interface {
	camera.RayCaster

	// AddBox adds an axis-aligned box owned by entity.
	//
	// Parameters:
	//   - entity: the owning entity, used for ray exclusion
	//   - min: minimum world corner
	//   - max: maximum world corner
	AddBox(entity uint64, min, max mgl32.Vec3)

	// AddCylinder adds an upright cylinder owned by entity.
	//
	// Parameters:
	//   - entity: the owning entity
	//   - base: world position of the bottom center
	//   - radius: cylinder radius
	//   - height: cylinder height along the extrusion axis
	AddCylinder(entity uint64, base mgl32.Vec3, radius, height float32)

	// AddWall adds a thin wall between two base points owned by entity.
	//
	// Parameters:
	//   - entity: the owning entity
	//   - a, b: world positions of the wall ends at its base
	//   - thickness: wall thickness
	//   - height: wall height along the extrusion axis
	AddWall(entity uint64, a, b mgl32.Vec3, thickness, height float32)

	// RemoveEntity removes every shape owned by entity.
	//
	// Parameters:
	//   - entity: the owning entity
	RemoveEntity(entity uint64)

	// Count returns the number of shapes in the space.
	//
	// Returns:
	//   - int: shape count
	Count() int
}

type space struct {
	mu       *sync.Mutex
	space    *cp.Space
	plane    Plane
	shapes   map[*cp.Shape]extent
	byEntity map[uint64][]*cp.Shape
}

var _ Space = &space{}

// NewSpace creates an empty obstruction space.
//
// Parameters:
//   - options: functional options to configure the space
//
// Returns:
//   - Space: the newly created space
func NewSpace(options ...SpaceBuilderOption) Space {
	s := &space{
		mu:       &sync.Mutex{},
		space:    cp.NewSpace(),
		plane:    PlaneXZ,
		shapes:   make(map[*cp.Shape]extent),
		byEntity: make(map[uint64][]*cp.Shape),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// flat returns the 2D coordinates of v in the physics space.
func (s *space) flat(v mgl32.Vec3) cp.Vector {
	if s.plane == PlaneXY {
		return cp.Vector{X: float64(v[0]), Y: float64(v[1])}
	}
	return cp.Vector{X: float64(v[0]), Y: float64(v[2])}
}

// height returns the extrusion coordinate of v.
func (s *space) height(v mgl32.Vec3) float32 {
	if s.plane == PlaneXY {
		return v[2]
	}
	return v[1]
}

// add registers shape with the space. Caller must hold s.mu.
func (s *space) add(entity uint64, shape *cp.Shape, lo, hi float32) {
	s.space.AddShape(shape)
	s.shapes[shape] = extent{entity: entity, lo: min(lo, hi), hi: max(lo, hi)}
	s.byEntity[entity] = append(s.byEntity[entity], shape)
}

func (s *space) AddBox(entity uint64, lo, hi mgl32.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, b := s.flat(lo), s.flat(hi)
	bb := cp.BB{L: math.Min(a.X, b.X), B: math.Min(a.Y, b.Y), R: math.Max(a.X, b.X), T: math.Max(a.Y, b.Y)}
	s.add(entity, cp.NewBox2(s.space.StaticBody, bb, 0), s.height(lo), s.height(hi))
}

func (s *space) AddCylinder(entity uint64, base mgl32.Vec3, radius, height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.height(base)
	s.add(entity, cp.NewCircle(s.space.StaticBody, float64(radius), s.flat(base)), h, h+height)
}

func (s *space) AddWall(entity uint64, a, b mgl32.Vec3, thickness, height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.height(a)
	s.add(entity, cp.NewSegment(s.space.StaticBody, s.flat(a), s.flat(b), float64(thickness)/2), h, h+height)
}

func (s *space) RemoveEntity(entity uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shape := range s.byEntity[entity] {
		s.space.RemoveShape(shape)
		delete(s.shapes, shape)
	}
	delete(s.byEntity, entity)
}

func (s *space) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shapes)
}

// CastRay projects the ray into the physics plane and reports the nearest
// shape whose height range contains the ray at the entry point. A ray running
// along the extrusion axis never hits.
func (s *space) CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude []uint64) (float32, bool) {
	if maxDistance <= 0 {
		return 0, false
	}
	end := origin.Add(direction.Mul(maxDistance))
	start, stop := s.flat(origin), s.flat(end)
	if math.Hypot(stop.X-start.X, stop.Y-start.Y) < 1e-9 {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	best := math.Inf(1)
	s.space.SegmentQuery(start, stop, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		ext, ok := s.shapes[shape]
		if !ok || slices.Contains(exclude, ext.entity) || alpha >= best {
			return
		}
		h := s.height(origin) + (s.height(end)-s.height(origin))*float32(alpha)
		if h < ext.lo || h > ext.hi {
			return
		}
		best = alpha
	}, nil)

	if math.IsInf(best, 1) {
		return 0, false
	}
	return float32(best) * maxDistance, true
}

package camera

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

type memStore struct {
	transforms map[uint64]common.Transform
	scales     map[uint64]float32
	writes     int
}

var _ ProjectionStore = &memStore{}

func newMemStore() *memStore {
	return &memStore{
		transforms: make(map[uint64]common.Transform),
		scales:     make(map[uint64]float32),
	}
}

func (m *memStore) put(id uint64, t common.Transform) {
	m.transforms[id] = t
	m.scales[id] = 1
}

func (m *memStore) Transform(id uint64) (common.Transform, bool) {
	t, ok := m.transforms[id]
	return t, ok
}

func (m *memStore) SetTransform(id uint64, t common.Transform) bool {
	if _, ok := m.transforms[id]; !ok {
		return false
	}
	m.writes++
	m.transforms[id] = t
	return true
}

func (m *memStore) ProjectionScale(id uint64) (float32, bool) {
	s, ok := m.scales[id]
	return s, ok
}

func (m *memStore) SetProjectionScale(id uint64, scale float32) bool {
	if _, ok := m.scales[id]; !ok {
		return false
	}
	m.writes++
	m.scales[id] = scale
	return true
}

func at(x, y, z float32) common.Transform {
	return common.NewTransform(mgl32.Vec3{x, y, z})
}

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < tolerance
}

func near(a, b float32) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}

func TestResolveErrorUnwrap(t *testing.T) {
	err := missing(1, 2, RoleCamera)
	if !errors.Is(err, ErrMissingEntity) {
		t.Errorf("expected errors.Is(err, ErrMissingEntity), got %v", err)
	}
	var re *ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if re.Controller != 1 || re.Entity != 2 || re.Role != RoleCamera {
		t.Errorf("unexpected fields: %+v", re)
	}
	if got, want := err.Error(), "camera: controller 1: camera entity 2: entity not found"; got != want {
		t.Errorf("Error failed: expected %q, got %q", want, got)
	}
}

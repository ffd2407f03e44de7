package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	player uint64 = 1
	cam    uint64 = 2
	other  uint64 = 3
)

func orbitScene(camStart mgl32.Vec3) *memStore {
	store := newMemStore()
	store.put(player, at(0, 0, 0))
	store.put(cam, common.NewTransform(camStart))
	return store
}

func TestResolveOrbitSnapsToDistance(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 10})
	ctrl := NewController(cam, AnchorOrbit{Distance: 5}, ViewFree{})

	if err := Resolve(player, ctrl, input.NewDeltaBuffer(), store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	got := store.transforms[cam].Translation
	if !vecNear(got, mgl32.Vec3{0, 0, 5}) {
		t.Errorf("expected camera at (0,0,5), got %v", got)
	}
}

func TestResolveOrbitConverges(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 10})
	ctrl := NewController(cam, AnchorOrbit{Distance: 5}, ViewFree{}, WithSmoothing(0.1))
	buf := input.NewDeltaBuffer()

	prev := float32(10)
	for i := 0; i < 300; i++ {
		if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		d := store.transforms[cam].Translation.Len()
		if d > prev+tolerance || d < 5-tolerance {
			t.Fatalf("tick %d: distance %v not monotonic toward 5 (prev %v)", i, d, prev)
		}
		prev = d
	}
	if math.Abs(float64(prev-5)) > 1e-3 {
		t.Errorf("expected distance 5, got %v", prev)
	}
}

func TestResolveOrbitFollowsRotationInput(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 5})
	ctrl := NewController(cam, AnchorOrbit{Distance: 5}, ViewFree{})
	buf := input.NewDeltaBuffer()
	buf.Update(mgl32.Vec2{math.Pi / 2, 0})

	if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	got := store.transforms[cam]
	if !vecNear(got.Translation, mgl32.Vec3{5, 0, 0}) {
		t.Errorf("expected camera at (5,0,0), got %v", got.Translation)
	}
	if !vecNear(got.Forward(), mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("expected camera facing target, got forward %v", got.Forward())
	}
	if buf.Read() != (mgl32.Vec2{}) {
		t.Errorf("expected buffer taken, got %v", buf.Read())
	}
}

func TestResolvePointUsesRotatedOffset(t *testing.T) {
	store := orbitScene(mgl32.Vec3{4, 4, 4})
	body := at(1, 0, 0)
	body.RotateAxis(common.AxisY, math.Pi/2)
	store.put(player, body)

	ctrl := NewController(cam, AnchorPoint{}, ViewFree{}, WithOffset(mgl32.Vec3{0, 1, -2}))
	if err := Resolve(player, ctrl, input.NewDeltaBuffer(), store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := mgl32.Vec3{-1, 1, 0}
	if got := store.transforms[cam].Translation; !vecNear(got, want) {
		t.Errorf("expected camera at %v, got %v", want, got)
	}
}

func TestResolveYawKeepsPosition(t *testing.T) {
	store := orbitScene(mgl32.Vec3{3, 2, 1})
	ctrl := NewController(cam, AnchorYaw{}, ViewFree{}, WithPitchRange(0))
	buf := input.NewDeltaBuffer()
	buf.Update(mgl32.Vec2{math.Pi / 2, 0.4})

	if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	got := store.transforms[cam]
	if !vecNear(got.Translation, mgl32.Vec3{3, 2, 1}) {
		t.Errorf("yaw anchor moved the camera: %v", got.Translation)
	}
	if !vecNear(got.Forward(), mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("expected level yawed forward, got %v", got.Forward())
	}
}

func TestResolvePlaneDisplacementOrthogonal(t *testing.T) {
	normals := []mgl32.Vec3{
		{0, 0, 1},
		{0, 0, -1},
		{0, 1, 0},
		{1, 1, 0},
		{0.3, -0.2, 0.9},
	}
	deltas := []mgl32.Vec2{{1, 0}, {0, 1}, {-2.5, 3}, {0.01, -0.02}}

	for _, n := range normals {
		for _, d := range deltas {
			store := orbitScene(mgl32.Vec3{1, 2, 3})
			ctrl := NewController(cam, AnchorPlane{Normal: n}, ViewFree{})
			buf := input.NewDeltaBuffer()
			buf.Update(d)

			if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			got := store.transforms[cam]
			disp := got.Translation.Sub(mgl32.Vec3{1, 2, 3})
			if dot := disp.Dot(n.Normalize()); math.Abs(float64(dot)) > tolerance {
				t.Errorf("normal %v delta %v: displacement %v not orthogonal (dot %v)", n, d, disp, dot)
			}
			if !near(disp.Len(), d.Len()) {
				t.Errorf("normal %v delta %v: expected displacement length %v, got %v", n, d, d.Len(), disp.Len())
			}
			if got.Rotation != mgl32.QuatIdent() {
				t.Errorf("plane anchor rotated the camera: %v", got.Rotation)
			}
		}
	}
}

func TestResolvePlaneAxes(t *testing.T) {
	// Screen plane facing +Z: right is +X and up is +Y.
	store := orbitScene(mgl32.Vec3{0, 0, 0})
	ctrl := NewController(cam, AnchorPlane{Normal: common.AxisZ}, ViewFree{})
	buf := input.NewDeltaBuffer()
	buf.Update(mgl32.Vec2{2, 3})

	if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got := store.transforms[cam].Translation; !vecNear(got, mgl32.Vec3{2, 3, 0}) {
		t.Errorf("expected (2,3,0), got %v", got)
	}
}

func TestResolveTargetViewLooksAtEntity(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 5})
	store.put(other, at(5, 0, 0))
	ctrl := NewController(cam, AnchorOrbit{Distance: 5}, ViewTarget{Entity: other})

	if err := Resolve(player, ctrl, input.NewDeltaBuffer(), store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	got := store.transforms[cam]
	want := mgl32.Vec3{5, 0, -5}.Normalize()
	if !vecNear(got.Forward(), want) {
		t.Errorf("expected forward %v, got %v", want, got.Forward())
	}
	if !vecNear(got.Translation, mgl32.Vec3{0, 0, 5}) {
		t.Errorf("expected camera to stay at (0,0,5), got %v", got.Translation)
	}
}

func TestResolveMissingEntities(t *testing.T) {
	tests := []struct {
		name   string
		remove uint64
		view   View
		role   string
	}{
		{"missing camera", cam, ViewFree{}, RoleCamera},
		{"missing controlled", player, ViewFree{}, RoleControlled},
		{"missing target", other, ViewTarget{Entity: other}, RoleTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := orbitScene(mgl32.Vec3{0, 0, 10})
			store.put(other, at(5, 0, 0))
			delete(store.transforms, tt.remove)

			ctrl := NewController(cam, AnchorOrbit{Distance: 5}, tt.view)
			err := Resolve(player, ctrl, input.NewDeltaBuffer(), store, 1.0/60)
			if !errors.Is(err, ErrMissingEntity) {
				t.Fatalf("expected ErrMissingEntity, got %v", err)
			}
			var re *ResolveError
			if !errors.As(err, &re) || re.Role != tt.role || re.Controller != player {
				t.Errorf("unexpected error detail: %v", err)
			}
			if store.writes != 0 {
				t.Errorf("expected no writes, got %d", store.writes)
			}
		})
	}
}

func TestResolveDiscardsStaleInputOnAnchorSwitch(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 5})
	ctrl := NewController(cam, AnchorPlane{Normal: common.AxisZ}, ViewFree{}, WithSmoothing(1))
	buf := input.NewDeltaBuffer()
	buf.Update(mgl32.Vec2{3, 3})

	ctrl.SetAnchor(AnchorOrbit{Distance: 5})
	if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if buf.Read() != (mgl32.Vec2{}) {
		t.Errorf("expected stale buffer reset, got %v", buf.Read())
	}
	if got := store.transforms[cam].Rotation; got != mgl32.QuatIdent() {
		t.Errorf("stale translation input rotated the camera: %v", got)
	}

	// Same input kind keeps the buffer.
	buf.Update(mgl32.Vec2{1, 0})
	ctrl.SetAnchor(AnchorPoint{})
	if err := Resolve(player, ctrl, buf, store, 1.0/60); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if buf.Read() == (mgl32.Vec2{}) {
		t.Error("expected smoothed input to remain buffered after orbit -> point switch")
	}
}

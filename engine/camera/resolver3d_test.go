package camera

import (
	"math"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestResolve3dManualDrainsWithoutMoving(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 10})
	ctrl := NewController3d(cam, View3dFollow{Distance: 5})
	buf := input.NewDeltaBuffer()
	buf.Update(mgl32.Vec2{3, 3})

	ctrl.SetView(View3dManual{})
	if err := Resolve3d(player, ctrl, buf, store, nil, 1.0/60); err != nil {
		t.Fatalf("Resolve3d failed: %v", err)
	}
	if buf.Read() != (mgl32.Vec2{}) {
		t.Errorf("expected drained buffer, got %v", buf.Read())
	}
	if got := store.transforms[cam].Translation; got != (mgl32.Vec3{0, 0, 10}) {
		t.Errorf("manual view moved the camera to %v", got)
	}
}

func TestResolve3dPerspective(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 10})
	ctrl := NewController3d(cam, View3dPerspective{}, WithOffset(mgl32.Vec3{0, 1.5, 0}))
	if err := Resolve3d(player, ctrl, input.NewDeltaBuffer(), store, nil, 1.0/60); err != nil {
		t.Fatalf("Resolve3d failed: %v", err)
	}
	if got := store.transforms[cam].Translation; !vecNear(got, mgl32.Vec3{0, 1.5, 0}) {
		t.Errorf("expected snap to eye (0,1.5,0), got %v", got)
	}

	store = orbitScene(mgl32.Vec3{0, 0, 10})
	ctrl.Configure(WithTranslationSmoothing(0.5), WithOffset(mgl32.Vec3{}))
	if err := Resolve3d(player, ctrl, input.NewDeltaBuffer(), store, nil, 1.0/60); err != nil {
		t.Fatalf("Resolve3d failed: %v", err)
	}
	d := store.transforms[cam].Translation.Len()
	if d <= 0 || d >= 10 {
		t.Errorf("expected smoothed distance in (0,10), got %v", d)
	}
}

func TestResolve3dFollowObstruction(t *testing.T) {
	tests := []struct {
		name string
		hit  float32
		ok   bool
		want float32
	}{
		{"no caster hit", 0, false, 5},
		{"hit shortens", 3, true, 2.5},
		{"hit past target distance", 5.3, true, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := orbitScene(mgl32.Vec3{0, 0, 10})
			var gotMax float32
			var gotDir mgl32.Vec3
			var gotExclude []uint64
			caster := RayCasterFunc(func(origin, dir mgl32.Vec3, maxDistance float32, exclude []uint64) (float32, bool) {
				gotDir, gotMax, gotExclude = dir, maxDistance, exclude
				return tt.hit, tt.ok
			})
			ctrl := NewController3d(cam, View3dFollow{Distance: 5, BackDistance: 0.5, Exclude: []uint64{other}})

			if err := Resolve3d(player, ctrl, input.NewDeltaBuffer(), store, caster, 1.0/60); err != nil {
				t.Fatalf("Resolve3d failed: %v", err)
			}
			if d := store.transforms[cam].Translation.Len(); !near(d, tt.want) {
				t.Errorf("expected distance %v, got %v", tt.want, d)
			}
			if !near(gotMax, 5.5) {
				t.Errorf("expected ray length 5.5, got %v", gotMax)
			}
			if !vecNear(gotDir, common.AxisZ) {
				t.Errorf("expected ray along camera back, got %v", gotDir)
			}
			if !slices.Contains(gotExclude, player) || !slices.Contains(gotExclude, other) {
				t.Errorf("expected controlled and extra entities excluded, got %v", gotExclude)
			}
		})
	}
}

func TestResolve3dFollowRotatesFirst(t *testing.T) {
	store := orbitScene(mgl32.Vec3{0, 0, 5})
	ctrl := NewController3d(cam, View3dFollow{Distance: 5}, WithPitchRange(math.Pi))
	buf := input.NewDeltaBuffer()
	buf.Update(mgl32.Vec2{0, -0.5})

	if err := Resolve3d(player, ctrl, buf, store, nil, 1.0/60); err != nil {
		t.Fatalf("Resolve3d failed: %v", err)
	}
	got := store.transforms[cam].Translation
	want := mgl32.Vec3{0, float32(5 * math.Sin(0.5)), float32(5 * math.Cos(0.5))}
	if !vecNear(got, want) {
		t.Errorf("expected camera raised behind target at %v, got %v", want, got)
	}
}

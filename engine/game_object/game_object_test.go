package game_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	if !obj.Enabled() {
		t.Error("expected enabled by default")
	}
	if obj.Rotation() != mgl32.QuatIdent() {
		t.Errorf("expected identity rotation, got %v", obj.Rotation())
	}
	if obj.ProjectionScale() != 1 {
		t.Errorf("expected projection scale 1, got %v", obj.ProjectionScale())
	}
}

func TestGameObjectOptions(t *testing.T) {
	obj := NewGameObject(
		WithID(7),
		WithName("camera"),
		WithPosition(0, 0, 5),
		WithLookAt(mgl32.Vec3{}),
		WithProjectionScale(0.5),
		WithEnabled(false),
	)
	if obj.ID() != 7 || obj.Name() != "camera" || obj.Enabled() {
		t.Errorf("unexpected identity: id=%d name=%q enabled=%v", obj.ID(), obj.Name(), obj.Enabled())
	}
	tr := obj.Transform()
	if tr.Forward().Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-4 {
		t.Errorf("WithLookAt failed: forward %v", tr.Forward())
	}
	if obj.ProjectionScale() != 0.5 {
		t.Errorf("expected projection scale 0.5, got %v", obj.ProjectionScale())
	}

	obj.Translate(mgl32.Vec3{1, 0, 0})
	if obj.Position() != (mgl32.Vec3{1, 0, 5}) {
		t.Errorf("Translate failed: got %v", obj.Position())
	}
}

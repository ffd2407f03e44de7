package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < tolerance
}

func TestRejectFrom(t *testing.T) {
	tests := []struct {
		name string
		v    mgl32.Vec3
		axis mgl32.Vec3
		want mgl32.Vec3
	}{
		{"removes axis component", mgl32.Vec3{1, 2, 3}, AxisY, mgl32.Vec3{1, 0, 3}},
		{"non-unit axis", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 2, 0}},
		{"parallel vector", mgl32.Vec3{0, 4, 0}, AxisY, mgl32.Vec3{}},
		{"zero axis", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RejectFrom(tt.v, tt.axis)
			if !vecNear(got, tt.want) {
				t.Errorf("RejectFrom failed: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLookRotation(t *testing.T) {
	dirs := []mgl32.Vec3{
		{0, 0, -1},
		{1, 0, 0},
		{0, -1, -1},
		{3, 2, 1},
	}
	for _, dir := range dirs {
		rot, ok := LookRotation(dir, AxisY)
		if !ok {
			t.Fatalf("LookRotation(%v) reported degenerate", dir)
		}
		tr := Transform{Rotation: rot}
		if !vecNear(tr.Forward(), dir.Normalize()) {
			t.Errorf("LookRotation(%v) forward: expected %v, got %v", dir, dir.Normalize(), tr.Forward())
		}
		if tr.Right().Dot(AxisY) > tolerance {
			t.Errorf("LookRotation(%v) right axis tilted: %v", dir, tr.Right())
		}
	}

	if _, ok := LookRotation(mgl32.Vec3{}, AxisY); ok {
		t.Error("LookRotation with zero direction should be degenerate")
	}
	if _, ok := LookRotation(mgl32.Vec3{0, 2, 0}, AxisY); ok {
		t.Error("LookRotation parallel to up should be degenerate")
	}
}

func TestTransformRotations(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{})
	tr.RotateAxis(AxisY, math.Pi/2)
	if !vecNear(tr.Forward(), mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("yaw 90 forward: expected (-1,0,0), got %v", tr.Forward())
	}

	tr = NewTransform(mgl32.Vec3{})
	tr.RotateLocalX(math.Pi / 2)
	if !vecNear(tr.Forward(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("pitch 90 forward: expected (0,1,0), got %v", tr.Forward())
	}

	// Local pitch after yaw stays about the yawed right axis.
	tr = NewTransform(mgl32.Vec3{})
	tr.RotateAxis(AxisY, math.Pi/2)
	tr.RotateLocalX(0.3)
	if math.Abs(float64(tr.Right().Dot(AxisY))) > tolerance {
		t.Errorf("right axis should stay horizontal, got %v", tr.Right())
	}
}

func TestTransformLookAtDegenerate(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 1, 1})
	tr.RotateAxis(AxisY, 0.5)
	before := tr.Rotation
	if tr.LookAt(mgl32.Vec3{1, 1, 1}, AxisY) {
		t.Fatal("LookAt at own position should fail")
	}
	if tr.Rotation != before {
		t.Errorf("rotation changed on degenerate LookAt: %v -> %v", before, tr.Rotation)
	}
}

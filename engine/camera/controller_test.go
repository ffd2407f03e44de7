package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestControllerDefaults(t *testing.T) {
	ctrl := NewController(cam, nil, nil)
	if _, ok := ctrl.Anchor().(AnchorYaw); !ok {
		t.Errorf("expected default AnchorYaw, got %T", ctrl.Anchor())
	}
	if _, ok := ctrl.View().(ViewFree); !ok {
		t.Errorf("expected default ViewFree, got %T", ctrl.View())
	}
	if ctrl.Sensitivity() != 1 {
		t.Errorf("expected sensitivity 1, got %v", ctrl.Sensitivity())
	}
	if !common.IsSnap(ctrl.TranslationRate()) || !common.IsSnap(ctrl.RotationRate()) {
		t.Error("expected snapping decay rates by default")
	}
	if ctrl.YawAxis() != common.AxisY {
		t.Errorf("expected +Y yaw axis, got %v", ctrl.YawAxis())
	}
	if ctrl.PitchRange().Limited() {
		t.Error("expected unlimited pitch by default")
	}
}

func TestControllerOptions(t *testing.T) {
	tests := []struct {
		name        string
		options     []ControllerOption
		translation float32
		rotation    float32
	}{
		{"smoothing sets both rates", []ControllerOption{WithSmoothing(0.05)}, 20, 20},
		{"zero smoothing snaps", []ControllerOption{WithSmoothing(0)}, common.Snap, common.Snap},
		{"separate rates", []ControllerOption{WithTranslationSmoothing(0.5), WithRotationSmoothing(0.25)}, 2, 4},
		{"later option wins", []ControllerOption{WithTranslationSmoothing(0.5), WithSmoothing(1)}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewController3d(cam, View3dFollow{Distance: 1}, tt.options...)
			if got := ctrl.TranslationRate(); !near(got, tt.translation) && got != tt.translation {
				t.Errorf("translation rate: expected %v, got %v", tt.translation, got)
			}
			if got := ctrl.RotationRate(); !near(got, tt.rotation) && got != tt.rotation {
				t.Errorf("rotation rate: expected %v, got %v", tt.rotation, got)
			}
		})
	}
}

func TestControllerYawAxisNormalized(t *testing.T) {
	ctrl := NewController(cam, AnchorYaw{}, ViewFree{}, WithYawAxis(mgl32.Vec3{0, 0, 3}))
	if !vecNear(ctrl.YawAxis(), common.AxisZ) {
		t.Errorf("expected +Z, got %v", ctrl.YawAxis())
	}
	ctrl.Configure(WithYawAxis(mgl32.Vec3{}))
	if !vecNear(ctrl.YawAxis(), common.AxisZ) {
		t.Errorf("zero axis should be ignored, got %v", ctrl.YawAxis())
	}
}

func TestControllerDeltas(t *testing.T) {
	ctrl := NewController3d(cam, View3dManual{}, WithSensitivity(2), WithRotationSmoothing(1/float32(math.Ln2)))
	buf := input.NewDeltaBuffer()

	buf.Update(mgl32.Vec2{4, 0})
	if got := ctrl.RotationDelta(buf, 1); !near(got[0], 4) {
		t.Errorf("decayed rotation delta: expected 4 (2 released * 2), got %v", got)
	}
	if got := buf.Read(); !near(got[0], 2) {
		t.Errorf("expected 2 left in buffer, got %v", got)
	}

	if got := ctrl.TranslationDelta(buf, 1); !near(got[0], 4) {
		t.Errorf("snapped translation delta: expected 4, got %v", got)
	}
	if got := buf.Read(); got != (mgl32.Vec2{}) {
		t.Errorf("expected empty buffer, got %v", got)
	}
}

func TestController2dZoom(t *testing.T) {
	ctrl := NewController2d(cam, nil, WithZoom(4))
	if _, ok := ctrl.View().(View2dManual); !ok {
		t.Errorf("expected default View2dManual, got %T", ctrl.View())
	}
	if !near(ctrl.Scale(), 0.25) {
		t.Errorf("expected scale 0.25, got %v", ctrl.Scale())
	}
	ctrl.ZoomBy(2)
	if !near(ctrl.Scale(), 0.125) {
		t.Errorf("expected scale 0.125, got %v", ctrl.Scale())
	}
	ctrl.ZoomBy(0)
	ctrl.SetZoom(0)
	if !near(ctrl.Scale(), 0.125) {
		t.Errorf("zero zoom should be ignored, got %v", ctrl.Scale())
	}
	ctrl.SetZoom(2)
	if !near(ctrl.Scale(), 0.5) {
		t.Errorf("expected scale 0.5, got %v", ctrl.Scale())
	}
}

func TestControllerSetters(t *testing.T) {
	ctrl := NewController(cam, AnchorOrbit{Distance: 3}, ViewFree{})
	ctrl.SetAnchor(nil)
	ctrl.SetView(nil)
	if a, ok := ctrl.Anchor().(AnchorOrbit); !ok || a.Distance != 3 {
		t.Errorf("nil anchor should be ignored, got %#v", ctrl.Anchor())
	}
	ctrl.SetView(ViewTarget{Entity: other})
	if v, ok := ctrl.View().(ViewTarget); !ok || v.Entity != other {
		t.Errorf("expected ViewTarget(%d), got %#v", other, ctrl.View())
	}
	ctrl.SetCamera(99)
	if ctrl.Camera() != 99 {
		t.Errorf("expected camera 99, got %d", ctrl.Camera())
	}
}

func TestAnchorHelpers(t *testing.T) {
	body := at(0, 0, 0)
	view := at(3, 4, 0)
	if got := OrbitAtCurrentDistance(body, view); !near(got.Distance, 5) {
		t.Errorf("expected orbit distance 5, got %v", got.Distance)
	}
	if got := PlaneFacing(view); !vecNear(got.Normal, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("expected plane normal (0,0,-1), got %v", got.Normal)
	}
}

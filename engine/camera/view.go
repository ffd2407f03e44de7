package camera

// View decides how a generalized controller orients its camera.
// Implemented by ViewFree and ViewTarget.
type View interface {
	isView()
}

// ViewFree orients the camera from the accumulated rotation input.
type ViewFree struct{}

// ViewTarget points the camera at another entity.
type ViewTarget struct {
	Entity uint64
}

func (ViewFree) isView()   {}
func (ViewTarget) isView() {}

// View2d is the mode of a 2D controller: View2dManual or View2dFollow.
type View2d interface {
	isView2d()
}

// View2dManual leaves the camera to another system.
type View2dManual struct{}

// View2dFollow pulls the camera toward the target whenever it drifts further
// than Distance away in the XY plane.
type View2dFollow struct {
	Distance float32
}

func (View2dManual) isView2d() {}
func (View2dFollow) isView2d() {}

// View3d is the mode of a 3D controller: View3dManual, View3dPerspective or
// View3dFollow.
type View3d interface {
	isView3d()
}

// View3dManual leaves the camera to another system.
type View3dManual struct{}

// View3dPerspective places the camera at the target (first person).
type View3dPerspective struct{}

// View3dFollow keeps the camera Distance behind the target. When a RayCaster
// is available the distance is shortened so the camera stays BackDistance in
// front of any obstruction. Exclude lists extra entities the ray ignores; the
// controlled entity is always ignored.
type View3dFollow struct {
	Distance     float32
	BackDistance float32
	Exclude      []uint64
}

func (View3dManual) isView3d()      {}
func (View3dPerspective) isView3d() {}
func (View3dFollow) isView3d()      {}

package camera

// Controller3d is the specialized 3D controller: the camera always rotates
// from input and is placed either at the target or a fixed distance behind it.
type Controller3d interface {
	tuning

	// View returns the active view.
	//
	// Returns:
	//   - View3d: View3dManual, View3dPerspective or View3dFollow
	View() View3d

	// SetView switches the view. A nil view is ignored.
	//
	// Parameters:
	//   - view: the new view
	SetView(view View3d)

	snapshot3d() controller3dState
}

type controller3dState struct {
	camera uint64
	cfg    settings
	view   View3d
}

type controller3d struct {
	base
	view View3d
}

var _ Controller3d = &controller3d{}

// NewController3d creates a 3D controller for the given camera entity.
// A nil view defaults to View3dManual.
//
// Parameters:
//   - camera: ID of the camera entity to drive
//   - view: the initial view
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller3d: the newly created controller
func NewController3d(camera uint64, view View3d, options ...ControllerOption) Controller3d {
	if view == nil {
		view = View3dManual{}
	}
	return &controller3d{base: newBase(camera, options), view: view}
}

func (c *controller3d) View() View3d {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *controller3d) SetView(view View3d) {
	if view == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

func (c *controller3d) snapshot3d() controller3dState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return controller3dState{camera: c.camera, cfg: c.cfg, view: c.view}
}

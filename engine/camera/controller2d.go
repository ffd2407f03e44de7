package camera

// Controller2d drives an orthographic camera that follows its controlled
// entity in the XY plane and smooths the projection scale toward a zoom level.
type Controller2d interface {
	tuning

	// View returns the active view.
	//
	// Returns:
	//   - View2d: View2dManual or View2dFollow
	View() View2d

	// SetView switches the view. A nil view is ignored.
	//
	// Parameters:
	//   - view: the new view
	SetView(view View2d)

	// Scale returns the projection scale the camera approaches, i.e. 1/zoom.
	//
	// Returns:
	//   - float32: the target projection scale
	Scale() float32

	// SetZoom sets the zoom level. Zero is ignored.
	//
	// Parameters:
	//   - zoom: zoom level, the projection scale approaches 1/zoom
	SetZoom(zoom float32)

	// ZoomBy multiplies the current zoom level by factor. Zero is ignored.
	//
	// Parameters:
	//   - factor: zoom multiplier, > 1 zooms in
	ZoomBy(factor float32)

	snapshot2d() controller2dState
}

type controller2dState struct {
	camera uint64
	cfg    settings
	view   View2d
}

type controller2d struct {
	base
	view View2d
}

var _ Controller2d = &controller2d{}

// NewController2d creates a 2D controller for the given camera entity.
// A nil view defaults to View2dManual.
//
// Parameters:
//   - camera: ID of the camera entity to drive
//   - view: the initial view
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller2d: the newly created controller
func NewController2d(camera uint64, view View2d, options ...ControllerOption) Controller2d {
	if view == nil {
		view = View2dManual{}
	}
	return &controller2d{base: newBase(camera, options), view: view}
}

func (c *controller2d) View() View2d {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *controller2d) SetView(view View2d) {
	if view == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

func (c *controller2d) Scale() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.scale
}

func (c *controller2d) SetZoom(zoom float32) {
	if zoom == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.scale = 1 / zoom
}

func (c *controller2d) ZoomBy(factor float32) {
	if factor == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.scale /= factor
}

func (c *controller2d) snapshot2d() controller2dState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return controller2dState{camera: c.camera, cfg: c.cfg, view: c.view}
}

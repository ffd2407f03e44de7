package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// InputSource reports raw keyboard and pointer events. Callbacks run on the
// window thread and must not block.
type InputSource interface {
	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up, negative = down)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common key codes)
	SetKeyDownCallback(callback func(key int))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common key codes)
	SetKeyUpCallback(callback func(key int))

	// SetMouseButtonCallback sets the callback for mouse button events.
	//
	// Parameters:
	//   - callback: function receiving the button index and whether it was pressed
	SetMouseButtonCallback(callback func(button int, pressed bool))

	// SetCursorCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in window coordinates
	SetCursorCallback(callback func(x, y float64))
}

// Window provides platform windowing and input event handling for a camera host.
type Window interface {
	InputSource

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetCursorCaptured hides and locks the cursor for mouse look, or restores it.
	// May be called from any goroutine; applied on the next loop iteration.
	//
	// Parameters:
	//   - captured: true to capture the cursor
	SetCursorCaptured(captured bool)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a
	// WebGPU surface, so a host renderer can draw into the window the camera
	// core drives. Created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	mu *sync.Mutex

	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the framebuffer size in pixels.
	width  int
	height int

	// captured is the requested cursor mode; applied is what GLFW last got.
	captured bool
	applied  bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(delta float32)
	onKeyDown     func(key int)
	onKeyUp       func(key int)
	onMouseButton func(button int, pressed bool)
	onCursor      func(x, y float64)
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns a Window with the specified options.
// Must be called from the main goroutine, which then has to run ProcessMessages.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		mu:        &sync.Mutex{},
		title:     "oxy-cam",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(key int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(key int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button int, pressed bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseButton = callback
}

func (w *engineWindow) SetCursorCallback(callback func(x, y float64)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCursor = callback
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.captured = captured
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		w.mu.Lock()
		update := w.onUpdate
		w.mu.Unlock()
		if update != nil {
			update()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// The emit helpers read callbacks under the lock and call them outside it.

func (w *engineWindow) emitKey(key int, down bool) {
	w.mu.Lock()
	cb := w.onKeyUp
	if down {
		cb = w.onKeyDown
	}
	w.mu.Unlock()
	if cb != nil {
		cb(key)
	}
}

func (w *engineWindow) emitScroll(delta float32) {
	w.mu.Lock()
	cb := w.onScroll
	w.mu.Unlock()
	if cb != nil {
		cb(delta)
	}
}

func (w *engineWindow) emitMouseButton(button int, pressed bool) {
	w.mu.Lock()
	cb := w.onMouseButton
	w.mu.Unlock()
	if cb != nil {
		cb(button, pressed)
	}
}

func (w *engineWindow) emitCursor(x, y float64) {
	w.mu.Lock()
	cb := w.onCursor
	w.mu.Unlock()
	if cb != nil {
		cb(x, y)
	}
}

func (w *engineWindow) emitResize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	cb := w.onResize
	w.mu.Unlock()
	if cb != nil {
		cb(width, height)
	}
}

// pendingCapture reports a cursor mode change not yet applied to the platform
// window and marks it applied.
func (w *engineWindow) pendingCapture() (captured, changed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.captured == w.applied {
		return w.captured, false
	}
	w.applied = w.captured
	return w.captured, true
}

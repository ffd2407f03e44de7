package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errNotSpawned = errors.New("window: not spawned")

// glfwWindow is the GLFW backing of an engineWindow.
type glfwWindow struct {
	handle *glfw.Window
	closed bool
}

// newPlatformWindow opens a GLFW window without a client API (the surface is
// handed to WebGPU) and routes its input through the parent's emit helpers.
// The calling goroutine stays locked to its OS thread for the window's life.
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create glfw window %q: %w", w.title, err)
	}
	handle.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{handle: handle}
	gw.route(w)
	w.internalWindow = gw

	// The framebuffer is in pixels and can be larger than the requested size on high-DPI screens.
	fbWidth, fbHeight := handle.GetFramebufferSize()
	w.mu.Lock()
	w.width, w.height = fbWidth, fbHeight
	w.mu.Unlock()
	return nil
}

// route installs the GLFW callbacks. Escape closes the window instead of
// being delivered as a key.
func (gw *glfwWindow) route(w *engineWindow) {
	gw.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.closed = true
			gw.handle.SetShouldClose(true)
			return
		}
		if action == glfw.Repeat {
			return
		}
		w.emitKey(int(key), action == glfw.Press)
	})
	gw.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.emitMouseButton(int(button), action == glfw.Press)
	})
	gw.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.emitCursor(x, y)
	})
	gw.handle.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		w.emitScroll(float32(dy))
	})
	gw.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.emitResize(width, height)
	})
}

func (gw *glfwWindow) running() bool {
	return !gw.closed && !gw.handle.ShouldClose()
}

// applyCursor switches between a captured (hidden, unbounded) cursor for
// mouse-look and the normal desktop cursor.
func (gw *glfwWindow) applyCursor(captured bool) {
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}
	gw.handle.SetInputMode(glfw.CursorMode, mode)
}

func backing(w *engineWindow) (*glfwWindow, bool) {
	gw, ok := w.internalWindow.(*glfwWindow)
	return gw, ok && gw != nil
}

// platformGetSurfaceDescriptor returns the WebGPU surface descriptor for the
// window, or nil before it is spawned.
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := backing(w)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.handle)
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := backing(w)
	return ok && gw.running()
}

// platformCloseWindow destroys the window and terminates GLFW.
func platformCloseWindow(w *engineWindow) error {
	gw, ok := backing(w)
	if !ok {
		return errNotSpawned
	}
	gw.closed = true
	gw.handle.SetShouldClose(true)
	gw.handle.Destroy()
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls pending events without blocking and applies
// any cursor capture change requested since the last poll.
//
// Returns:
//   - bool: false once the window should stop
func platformProcessMessages(w *engineWindow) bool {
	gw, ok := backing(w)
	if !ok {
		return false
	}
	glfw.PollEvents()
	if captured, changed := w.pendingCapture(); changed {
		gw.applyCursor(captured)
	}
	return gw.running()
}

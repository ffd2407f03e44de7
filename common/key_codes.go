package common

// Key codes used by the controller bindings. The values match GLFW key codes,
// which use ASCII for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)
	KeyEsc   = 256

	Key0 = 48 // manual control
	Key1 = 49 // first anchor / mode
	Key2 = 50
	Key3 = 51
	Key4 = 52
	Key5 = 53
	Key6 = 54
	Key8 = 56 // manual pan while held
	Key9 = 57 // manual rotate while held

	KeyLeftShift = 340
)

// Mouse buttons, matching GLFW mouse button indices.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// mouseKeyBase offsets mouse buttons past the GLFW key range so both can share
// one key state.
const mouseKeyBase = 1000

// MouseKey returns the key code a mouse button is tracked under.
func MouseKey(button int) int {
	return mouseKeyBase + button
}

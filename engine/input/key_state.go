package input

import "sync"

// KeyState tracks which keys are held and which went down during the current
// tick. Key events arrive from the window goroutine; queries and EndTick happen
// on the tick goroutine.
type KeyState struct {
	mu          sync.Mutex
	held        map[int]bool
	justPressed map[int]bool
}

// NewKeyState creates an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{
		held:        make(map[int]bool),
		justPressed: make(map[int]bool),
	}
}

// Press records a key down event. Repeated presses of a held key are ignored.
func (k *KeyState) Press(key int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.held[key] {
		k.justPressed[key] = true
	}
	k.held[key] = true
}

// Release records a key up event.
func (k *KeyState) Release(key int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}

// Pressed reports whether key is currently held.
func (k *KeyState) Pressed(key int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[key]
}

// JustPressed reports whether key went down since the last EndTick.
func (k *KeyState) JustPressed(key int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.justPressed[key]
}

// EndTick clears the per-tick press edges.
func (k *KeyState) EndTick() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.justPressed)
}

package hal

import "sync"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	// X, Y is the initial top-left corner on screen.
	X, Y int
	// Alpha is the window opacity in (0, 1].
	Alpha    float64
	Floating bool
	// Click enables a short tone on every button activation.
	Click bool
}

// VirtualWindow is a Window that only records its position.
//
// It backs headless runs and tests.
type VirtualWindow struct {
	mu     sync.Mutex
	x, y   int
	moves  int
	closed bool
}

func NewVirtualWindow(x, y int) *VirtualWindow {
	return &VirtualWindow{x: x, y: y}
}

func (w *VirtualWindow) Position() (x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y
}

func (w *VirtualWindow) SetPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x, w.y = x, y
	w.moves++
}

// Moves returns how many times SetPosition was called.
func (w *VirtualWindow) Moves() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.moves
}

func (w *VirtualWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

func (w *VirtualWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an app step to end the run cleanly.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Default framebuffer (and window) size in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 480
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
)

// Control runes delivered in KeyEvent.Rune for Ctrl+letter chords.
const (
	RuneCopy  rune = 0x03 // Ctrl+C
	RuneEOF   rune = 0x04 // Ctrl+D
	RunePaste rune = 0x16 // Ctrl+V
)

// KeyEvent is a keyboard event.
//
// Text input arrives with Code == KeyUnknown and a non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind distinguishes primary-button pointer transitions.
type PointerKind uint8

const (
	PointerPress PointerKind = iota + 1
	PointerMove
	PointerRelease
)

// PointerEvent reports the primary button in window-local pixels.
//
// Move events are only delivered while the button is held.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Pointer provides primary-button pointer events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Window is the host window. Positions are screen coordinates of the
// window's top-left corner.
type Window interface {
	Position() (x, y int)
	SetPosition(x, y int)
	Close()
	Closed() bool
}

// Clipboard exchanges plain text with the system clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Audio plays short UI feedback sounds.
type Audio interface {
	Click()
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// The host tick is one millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Window() Window
	Clipboard() Clipboard
	Audio() Audio
	Time() Time
}

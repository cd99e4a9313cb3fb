package calc

import (
	"errors"
	"strings"

	"pocketcalc/hal"
)

type fakeHAL struct {
	log   *lineLogger
	fb    hal.Framebuffer
	keys  chan hal.KeyEvent
	ptr   chan hal.PointerEvent
	ticks chan uint64
	win   *hal.VirtualWindow
	clip  *memClipboard
	aud   *countingAudio
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:   &lineLogger{},
		fb:    hal.NewFramebuffer(hal.ScreenWidth, hal.ScreenHeight),
		keys:  make(chan hal.KeyEvent, 64),
		ptr:   make(chan hal.PointerEvent, 64),
		ticks: make(chan uint64, 1),
		win:   hal.NewVirtualWindow(400, 200),
		clip:  &memClipboard{},
		aud:   &countingAudio{},
	}
}

func (h *fakeHAL) Logger() hal.Logger       { return h.log }
func (h *fakeHAL) Display() hal.Display     { return h }
func (h *fakeHAL) Input() hal.Input         { return h }
func (h *fakeHAL) Window() hal.Window       { return h.win }
func (h *fakeHAL) Clipboard() hal.Clipboard { return h.clip }
func (h *fakeHAL) Audio() hal.Audio         { return h.aud }
func (h *fakeHAL) Time() hal.Time           { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return fakeKeyboard(h.keys) }
func (h *fakeHAL) Pointer() hal.Pointer         { return fakePointer(h.ptr) }
func (h *fakeHAL) Ticks() <-chan uint64         { return h.ticks }

func (h *fakeHAL) typeText(s string) {
	for _, r := range s {
		h.keys <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func (h *fakeHAL) key(code hal.KeyCode) {
	h.keys <- hal.KeyEvent{Code: code, Press: true}
}

func (h *fakeHAL) tick(now uint64) {
	select {
	case <-h.ticks:
	default:
	}
	h.ticks <- now
}

type fakeKeyboard chan hal.KeyEvent

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k }

type fakePointer chan hal.PointerEvent

func (p fakePointer) Events() <-chan hal.PointerEvent { return p }

type lineLogger struct {
	lines []string
}

func (l *lineLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *lineLogger) String() string { return strings.Join(l.lines, "\n") }

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) ReadText() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

var errNoClipboard = errors.New("no clipboard")

type countingAudio struct {
	clicks int
}

func (a *countingAudio) Click() { a.clicks++ }

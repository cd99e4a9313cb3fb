package calc

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"pocketcalc/arith"
	"pocketcalc/hal"
)

type Config struct {
	// Verbose logs every evaluation, clipboard action and window drag.
	Verbose bool
	// Echo logs the result label after each evaluation.
	Echo bool
}

// Task is the calculator: an expression buffer fed by keys and buttons, a
// result label, and a borderless window the pointer can drag.
type Task struct {
	cfg Config

	logger hal.Logger
	fb     hal.Framebuffer
	keys   <-chan hal.KeyEvent
	ptr    <-chan hal.PointerEvent
	ticks  <-chan uint64
	win    hal.Window
	clip   hal.Clipboard
	aud    hal.Audio

	lay layout

	buf    string
	result string
	entry  string

	// pressed is the button under the active press, or -1.
	pressed int
	// flash is the key-activated button shown in its active color until
	// flashUntil, or -1.
	flash      int
	flashUntil uint64
	now        uint64

	drag Drag

	dirty  bool
	closed bool
}

func New(h hal.HAL, cfg Config) *Task {
	t := &Task{
		cfg:     cfg,
		pressed: -1,
		flash:   -1,
		dirty:   true,
	}
	if h == nil {
		return t
	}

	t.logger = h.Logger()
	if d := h.Display(); d != nil {
		t.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			t.keys = kbd.Events()
		}
		if p := in.Pointer(); p != nil {
			t.ptr = p.Events()
		}
	}
	if ht := h.Time(); ht != nil {
		t.ticks = ht.Ticks()
	}
	t.win = h.Window()
	t.clip = h.Clipboard()
	t.aud = h.Audio()

	w, ht := hal.ScreenWidth, hal.ScreenHeight
	if t.fb != nil {
		w, ht = t.fb.Width(), t.fb.Height()
	}
	t.lay = newLayout(w, ht)
	return t
}

// Step drains pending ticks, keys and pointer events, then redraws when the
// display changed. It returns hal.ErrQuit once the close button fired.
func (t *Task) Step() error {
	if t.closed {
		return hal.ErrQuit
	}

	t.drainTicks()

keys:
	for t.keys != nil {
		select {
		case ev := <-t.keys:
			t.handleKey(ev)
		default:
			break keys
		}
	}

pointer:
	for t.ptr != nil && !t.closed {
		select {
		case ev := <-t.ptr:
			t.handlePointer(ev)
		default:
			break pointer
		}
	}

	if t.flash >= 0 && t.now >= t.flashUntil {
		t.flash = -1
		t.dirty = true
	}
	if t.dirty {
		t.render()
	}
	if t.closed {
		return hal.ErrQuit
	}
	return nil
}

func (t *Task) drainTicks() {
	for t.ticks != nil {
		select {
		case now := <-t.ticks:
			t.now = now
		default:
			return
		}
	}
}

// Buffer returns the expression being built.
func (t *Task) Buffer() string { return t.buf }

// Result returns the result label text.
func (t *Task) Result() string { return t.result }

// Entry returns the entry label text.
func (t *Task) Entry() string { return t.entry }

// Closed reports whether the close button fired.
func (t *Task) Closed() bool { return t.closed }

func (t *Task) Append(s string) {
	if s == "" {
		return
	}
	t.buf += s
	t.entry = t.buf
	t.dirty = true
}

func (t *Task) Clear() {
	t.buf = ""
	t.entry = ""
	t.result = ""
	t.dirty = true
}

// Backspace drops the last rune of the buffer.
func (t *Task) Backspace() {
	if t.buf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.buf)
	t.buf = t.buf[:len(t.buf)-size]
	t.entry = t.buf
	t.dirty = true
}

// Evaluate computes the buffer. A successful result replaces the buffer so
// the next input continues from it. Errors clear the buffer. An expression
// with nothing left after sanitizing is ignored.
func (t *Task) Evaluate() {
	expr := t.buf
	n, err := arith.Eval(expr)
	switch {
	case errors.Is(err, arith.ErrEmpty):
		return
	case errors.Is(err, arith.ErrDivByZero):
		t.result = labelMathError
		t.buf = ""
	case err != nil:
		t.result = labelSyntaxError
		t.buf = ""
	default:
		t.result = n.String()
		t.buf = t.result
	}
	t.dirty = true

	if t.cfg.Verbose {
		if err != nil {
			t.logf("eval %q: %v", expr, err)
		} else {
			t.logf("eval %q = %s", expr, t.result)
		}
	}
	if t.cfg.Echo && t.logger != nil {
		t.logger.WriteLineString(t.result)
	}
}

// Copy writes the result to the clipboard, falling back to the buffer when
// there is no result to copy.
func (t *Task) Copy() error {
	s := t.result
	if s == "" || isErrorLabel(s) {
		s = t.buf
	}
	if s == "" {
		return nil
	}
	if t.clip == nil {
		return hal.ErrNotImplemented
	}
	if err := t.clip.WriteText(s); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if t.cfg.Verbose {
		t.logf("copied %q", s)
	}
	return nil
}

// Paste appends the clipboard text with everything but digits, operators
// and the decimal point removed.
func (t *Task) Paste() error {
	if t.clip == nil {
		return hal.ErrNotImplemented
	}
	s, err := t.clip.ReadText()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	s = arith.Sanitize(s)
	t.Append(s)
	if t.cfg.Verbose && s != "" {
		t.logf("pasted %q", s)
	}
	return nil
}

func (t *Task) close() {
	if t.closed {
		return
	}
	t.closed = true
	if t.win != nil {
		t.win.Close()
	}
	if t.cfg.Verbose {
		t.logf("closed")
	}
}

func (t *Task) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyEnter:
		t.activateLabel("=")
		return
	case hal.KeyEscape:
		t.activateLabel("C")
		return
	case hal.KeyBackspace, hal.KeyDelete:
		t.Backspace()
		return
	case hal.KeyUnknown:
	default:
		return
	}

	switch r := ev.Rune; {
	case r == hal.RuneCopy:
		if err := t.Copy(); err != nil {
			t.logf("%v", err)
		}
	case r == hal.RunePaste:
		if err := t.Paste(); err != nil {
			t.logf("%v", err)
		}
	case r == '=':
		t.activateLabel("=")
	case r == 'c' || r == 'C':
		t.activateLabel("C")
	case arith.IsAllowed(r):
		t.activateLabel(string(r))
	}
}

// activateLabel runs the button with the given label as if it had been
// clicked, flashing it briefly.
func (t *Task) activateLabel(label string) {
	i := t.lay.find(label)
	if i < 0 {
		return
	}
	t.flash = i
	t.flashUntil = t.now + flashMillis
	t.activate(i)
}

func (t *Task) activate(i int) {
	if i < 0 || i >= len(t.lay.buttons) {
		return
	}
	if t.aud != nil {
		t.aud.Click()
	}
	b := &t.lay.buttons[i]
	switch b.act {
	case actAppend:
		t.Append(b.label)
	case actClear:
		t.Clear()
	case actEvaluate:
		t.Evaluate()
	case actClose:
		t.close()
	}
	t.dirty = true
}

func (t *Task) handlePointer(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerPress:
		t.drag.Start(ev.X, ev.Y)
		t.pressed = t.lay.hit(ev.X, ev.Y)
		t.dirty = true

	case hal.PointerMove:
		if t.win == nil || !t.drag.Active() {
			return
		}
		wx, wy := t.win.Position()
		if nx, ny, ok := t.drag.Move(ev.X, ev.Y, wx, wy); ok {
			t.win.SetPosition(nx, ny)
		}
		if t.pressed >= 0 && t.drag.Dragged() {
			t.pressed = -1
			t.dirty = true
		}

	case hal.PointerRelease:
		i := t.pressed
		dragged := t.drag.Dragged()
		t.pressed = -1
		t.drag.Stop()
		t.dirty = true

		if dragged {
			if t.cfg.Verbose && t.win != nil {
				x, y := t.win.Position()
				t.logf("moved to %d,%d", x, y)
			}
			return
		}
		if i >= 0 && t.lay.hit(ev.X, ev.Y) == i {
			t.activate(i)
		}
	}
}

func isErrorLabel(s string) bool {
	return s == labelMathError || s == labelSyntaxError
}

func (t *Task) logf(format string, args ...any) {
	if t.logger == nil {
		return
	}
	t.logger.WriteLineString("calc: " + fmt.Sprintf(format, args...))
}

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	win    Window
	clip   Clipboard
	aud    Audio
	t      *hostTime
	serial *hostSerial
}

// newHost builds the host HAL with a virtual window at the origin and no
// audio. RunWindow replaces both with the ebiten-backed ones.
func newHost() *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(ScreenWidth, ScreenHeight),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		win:    NewVirtualWindow(0, 0),
		clip:   newHostClipboard(logger),
		aud:    nullAudio{},
		t:      newHostTime(),
		serial: &hostSerial{r: os.Stdin},
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Window() Window       { return h.win }
func (h *hostHAL) Clipboard() Clipboard { return h.clip }
func (h *hostHAL) Audio() Audio         { return h.aud }
func (h *hostHAL) Time() Time           { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
	// crlf is set while stdin is in raw mode, where a bare '\n' does not return the carriage.
	crlf bool
}

func (l *hostLogger) setCRLF(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.crlf = on
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.crlf {
		fmt.Fprint(l.w, s, "\r\n")
		return
	}
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	if l.crlf {
		l.w.Write([]byte{'\r', '\n'})
		return
	}
	l.w.Write([]byte{'\n'})
}

type nullAudio struct{}

func (nullAudio) Click() {}

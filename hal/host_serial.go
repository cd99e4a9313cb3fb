package hal

import (
	"context"
	"errors"
	"io"
)

// hostSerial is the byte stream headless mode reads keystrokes from.
type hostSerial struct {
	r io.Reader
}

// pump decodes keystrokes from the stream until EOF, a read error, Ctrl+D,
// or ctx cancellation. Ctrl+C is reported as context.Canceled, since raw
// mode swallows SIGINT.
func (s *hostSerial) pump(ctx context.Context, push func(KeyEvent)) error {
	if s.r == nil {
		return ErrNotImplemented
	}
	var d serialDecoder
	buf := make([]byte, 64)
	for {
		n, err := s.r.Read(buf)
		for _, ev := range d.decode(buf[:n]) {
			switch ev.Rune {
			case RuneCopy:
				return context.Canceled
			case RuneEOF:
				return nil
			}
			push(ev)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// serialDecoder turns terminal bytes into key events. CSI sequences (arrow
// keys and friends) are dropped so their leading ESC does not clear the
// calculator.
type serialDecoder struct {
	inCSI  bool
	escape bool
}

func (d *serialDecoder) decode(b []byte) []KeyEvent {
	var out []KeyEvent
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case d.inCSI:
			if c >= 0x40 && c <= 0x7e {
				d.inCSI = false
			}
			continue
		case d.escape:
			d.escape = false
			if c == '[' || c == 'O' {
				d.inCSI = true
				continue
			}
			out = append(out, KeyEvent{Code: KeyEscape, Press: true})
		}

		switch c {
		case 0x1b:
			d.escape = true
		case '\r', '\n':
			out = append(out, KeyEvent{Code: KeyEnter, Press: true})
		case 0x7f, 0x08:
			out = append(out, KeyEvent{Code: KeyBackspace, Press: true})
		default:
			out = append(out, KeyEvent{Press: true, Rune: rune(c)})
		}
	}
	// A lone trailing ESC is the Escape key.
	if d.escape {
		d.escape = false
		out = append(out, KeyEvent{Code: KeyEscape, Press: true})
	}
	return out
}

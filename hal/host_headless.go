package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after N steps (0 = until input ends).
	Ticks uint64
	// X, Y is the initial position of the virtual window.
	X, Y int
	// Input overrides stdin as the keystroke source.
	Input io.Reader
	// Output overrides stdout for log lines.
	Output io.Writer
}

// RunHeadless runs the app without opening a window. Keystrokes are read
// from stdin (switched to raw mode when it is a terminal) and the run ends
// once input is exhausted and every queued key has been stepped.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost()
	h.win = NewVirtualWindow(cfg.X, cfg.Y)
	if cfg.Output != nil {
		h.logger.w = cfg.Output
	}
	if cfg.Input != nil {
		h.serial = &hostSerial{r: cfg.Input}
	} else if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("headless raw mode: %w", err)
		}
		defer term.Restore(fd, old)
		h.logger.setCRLF(true)
		defer h.logger.setCRLF(false)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputDone := make(chan error, 1)
	go func() {
		inputDone <- h.serial.pump(ctx, func(ev KeyEvent) {
			select {
			case h.kbd.ch <- ev:
			case <-ctx.Done():
			}
		})
	}()

	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var (
		tick    uint64
		drained bool
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-inputDone:
			if err != nil && !errors.Is(err, ErrNotImplemented) {
				return err
			}
			drained = true
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
			if h.win.Closed() {
				return nil
			}
			if drained && len(h.kbd.ch) == 0 {
				return nil
			}
		}
	}
}

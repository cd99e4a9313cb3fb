package app

import (
	"fmt"

	"pocketcalc/hal"
	"pocketcalc/internal/buildinfo"
	"pocketcalc/tasks/calc"
)

type Config struct {
	Verbose bool
	Echo    bool
}

type system struct {
	h    hal.HAL
	task *calc.Task

	panicked bool
}

// New starts the calculator with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

func newSystem(h hal.HAL, cfg Config) *system {
	if cfg.Verbose {
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("pocketcalc %s (commit %s, built %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date))
		}
	}
	return &system{
		h:    h,
		task: calc.New(h, calc.Config{Verbose: cfg.Verbose, Echo: cfg.Echo}),
	}
}

func (s *system) step() (err error) {
	if s.panicked {
		return s.waitDismiss()
	}
	defer func() {
		if v := recover(); v != nil {
			s.panicked = true
			showPanic(s.h, v)
			err = nil
		}
	}()
	return s.task.Step()
}

// waitDismiss ends the run on the first key or pointer press after a panic.
func (s *system) waitDismiss() error {
	in := s.h.Input()
	if in == nil {
		return nil
	}
	if kbd := in.Keyboard(); kbd != nil {
	keys:
		for {
			select {
			case ev := <-kbd.Events():
				if ev.Press {
					return hal.ErrQuit
				}
			default:
				break keys
			}
		}
	}
	if p := in.Pointer(); p != nil {
		for {
			select {
			case ev := <-p.Events():
				if ev.Kind == hal.PointerPress {
					return hal.ErrQuit
				}
			default:
				return nil
			}
		}
	}
	return nil
}

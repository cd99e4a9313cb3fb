package hal

import "time"

// hostTime publishes a millisecond tick. Only the newest value is kept in
// the channel, so readers never fall behind.
type hostTime struct {
	ch    chan uint64
	start time.Time
	now   func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the milliseconds elapsed since the first step.
func (t *hostTime) step() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	seq := uint64(now.Sub(t.start) / time.Millisecond)

	select {
	case <-t.ch:
	default:
	}
	select {
	case t.ch <- seq:
	default:
	}
}

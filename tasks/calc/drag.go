package calc

// dragThreshold is the pointer travel, in screen pixels, that turns a press
// into a window drag instead of a button click.
const dragThreshold = 4

// Drag moves a borderless window by the pointer.
//
// Pointer coordinates are window-local. Once the window follows the pointer,
// the local position returns to the grab offset, so each Move only sees the
// delta since the last reposition.
type Drag struct {
	active bool
	x, y   int
	travel int
}

// Start records the grab offset inside the window.
func (d *Drag) Start(px, py int) {
	d.active = true
	d.x, d.y = px, py
	d.travel = 0
}

// Move returns the new window origin for a pointer at px,py with the window
// currently at wx,wy. moved is false when no drag is active or the pointer
// has not left the grab offset.
func (d *Drag) Move(px, py, wx, wy int) (nx, ny int, moved bool) {
	if !d.active {
		return wx, wy, false
	}
	dx, dy := px-d.x, py-d.y
	if dx == 0 && dy == 0 {
		return wx, wy, false
	}
	d.travel += abs(dx) + abs(dy)
	return wx + dx, wy + dy, true
}

// Stop ends the drag and clears the grab offset.
func (d *Drag) Stop() {
	d.active = false
	d.x, d.y = 0, 0
	d.travel = 0
}

// Active reports whether a press started a drag that has not stopped.
func (d *Drag) Active() bool { return d.active }

// Dragged reports whether the current press travelled far enough to count
// as a drag.
func (d *Drag) Dragged() bool { return d.travel >= dragThreshold }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch chan PointerEvent

	down  bool
	lastX int
	lastY int
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) push(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.down = true
		p.push(PointerEvent{Kind: PointerPress, X: x, Y: y})
	} else if p.down && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (x != p.lastX || y != p.lastY) {
		p.push(PointerEvent{Kind: PointerMove, X: x, Y: y})
	}

	if p.down && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.down = false
		p.push(PointerEvent{Kind: PointerRelease, X: x, Y: y})
	}

	p.lastX, p.lastY = x, y
}

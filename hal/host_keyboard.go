//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

var polledKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyDelete, KeyDelete},
}

func (k *hostKeyboard) poll() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		emitCtrl := func(key ebiten.Key, r rune) {
			if inpututil.IsKeyJustPressed(key) {
				k.push(KeyEvent{Press: true, Rune: r})
			}
		}
		emitCtrl(ebiten.KeyC, RuneCopy)
		emitCtrl(ebiten.KeyV, RunePaste)
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			k.push(KeyEvent{Press: true, Rune: r})
		}
	}

	for _, pk := range polledKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			k.push(KeyEvent{Code: pk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(pk.key) {
			k.push(KeyEvent{Code: pk.code, Press: false})
		}
	}
}

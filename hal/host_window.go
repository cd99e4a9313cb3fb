//go:build cgo

package hal

import (
	"errors"
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"pocketcalc/internal/buildinfo"
)

// RunWindow starts a borderless desktop window that displays the framebuffer and
// forwards keyboard and pointer input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		cfg.Alpha = 1
	}
	if cfg.Title == "" {
		cfg.Title = "Calculator (" + buildinfo.Short() + ")"
	}

	h := newHost()
	h.win = &ebitenWindow{}
	if cfg.Click {
		h.aud = newHostAudio()
	}
	step := newApp(h)

	g := &hostGame{h: h, step: step, alpha: float32(cfg.Alpha)}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(cfg.Floating)
	ebiten.SetWindowPosition(cfg.X, cfg.Y)
	ebiten.SetTPS(60)
	return ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Alpha < 1,
	})
}

// ebitenWindow moves the real window. There are no decorations, so the
// app drags it itself.
type ebitenWindow struct {
	closed atomic.Bool
}

func (w *ebitenWindow) Position() (x, y int) { return ebiten.WindowPosition() }

func (w *ebitenWindow) SetPosition(x, y int) { ebiten.SetWindowPosition(x, y) }

func (w *ebitenWindow) Close() { w.closed.Store(true) }

func (w *ebitenWindow) Closed() bool { return w.closed.Load() }

type hostGame struct {
	h     *hostHAL
	step  func() error
	alpha float32

	img   *image.RGBA
	fbImg *ebiten.Image
	seen  uint64
}

func (g *hostGame) Update() error {
	if g.h.win.Closed() {
		return ebiten.Termination
	}
	g.h.kbd.poll()
	g.h.ptr.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	if g.h.win.Closed() {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.seen = 0
	}

	if fb.snapshotRGBA(g.img.Pix, &g.seen) {
		g.fbImg.WritePixels(g.img.Pix)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(g.alpha)
	screen.DrawImage(g.fbImg, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}

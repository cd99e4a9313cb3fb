package calc

import (
	"image/color"
	"unicode/utf8"

	"pocketcalc/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (t *Task) render() {
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	d := &fbDisplayer{fb: t.fb}

	bg := colorBackground
	t.fb.ClearRGB(bg.R, bg.G, bg.B)

	drawLabel(d, t.lay.result, fontLarge, t.result, colorDisplayFG)
	drawLabel(d, t.lay.entry, fontSmall, t.entry, colorEntryFG)

	for i := range t.lay.buttons {
		b := &t.lay.buttons[i]
		c := b.style.bg
		if i == t.pressed || i == t.flash {
			c = b.style.active
		}
		d.clip = nil
		_ = d.FillRectangle(int16(b.rect.x), int16(b.rect.y), int16(b.rect.w), int16(b.rect.h), c)

		w := textWidth(fontSmall, b.label)
		x := b.rect.x + (b.rect.w-w)/2
		d.clip = &b.rect
		tinyfont.WriteLine(d, fontSmall, int16(x), int16(baseline(fontSmall, b.rect)), b.label, colorButtonFG)
	}

	_ = t.fb.Present()
	t.dirty = false
}

// drawLabel draws s right-aligned inside r with the label padding. Text
// wider than the label is clipped on the left, so the newest input stays
// visible. Only the glyphs that can reach the label are drawn.
func drawLabel(d *fbDisplayer, r rect, f tinyfont.Fonter, s string, c color.RGBA) {
	if s == "" {
		return
	}
	s, x := fitRight(f, s, r.x+r.w-labelPadX, r.x)
	d.clip = &r
	tinyfont.WriteLine(d, f, int16(x), int16(baseline(f, r)), s, c)
	d.clip = nil
}

// fitRight returns the tail of s that is visible when the ink of its last
// glyph ends at right, and the pen x to draw that tail from. The first
// glyph of the tail may start left of minX and get clipped.
func fitRight(f tinyfont.Fonter, s string, right, minX int) (string, int) {
	last, size := utf8.DecodeLastRuneInString(s)
	info := f.GetGlyph(last).Info()
	pen := right - int(info.XOffset) - int(info.Width)

	i := len(s) - size
	for i > 0 && pen > minX {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		pen -= int(f.GetGlyph(r).Info().XAdvance)
		i -= n
	}
	return s[i:], pen
}

// baseline centers digits vertically in r.
func baseline(f tinyfont.Fonter, r rect) int {
	ascent := -int(f.GetGlyph('0').Info().YOffset)
	if ascent <= 0 {
		ascent = int(f.GetYAdvance()) / 2
	}
	return r.y + (r.h+ascent)/2
}

func textWidth(f tinyfont.Fonter, s string) int {
	w, _ := tinyfont.LineWidth(f, s)
	return int(w)
}

type fbDisplayer struct {
	fb   hal.Framebuffer
	clip *rect
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	if d.clip != nil && !d.clip.contains(ix, iy) {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

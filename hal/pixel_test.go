package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0},
		{0, 0xFF, 0},
		{0, 0, 0xFF},
	}
	for _, tt := range tests {
		r, g, b := RGB888From565(RGB565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("round trip %v -> %d,%d,%d", tt, r, g, b)
		}
	}
}

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0, 0)
	_ = fb.Present()

	dst := make([]byte, 4*2*4)
	var seen uint64
	if !fb.snapshotRGBA(dst, &seen) {
		t.Fatal("expected first snapshot")
	}
	if dst[0] != 0xFF || dst[1] != 0 || dst[2] != 0 || dst[3] != 0xFF {
		t.Fatalf("pixel 0 = %v", dst[:4])
	}
	if fb.snapshotRGBA(dst, &seen) {
		t.Fatal("snapshot without Present should be skipped")
	}
}

func TestVirtualWindow(t *testing.T) {
	w := NewVirtualWindow(400, 200)
	w.SetPosition(410, 190)
	if x, y := w.Position(); x != 410 || y != 190 {
		t.Fatalf("position %d,%d", x, y)
	}
	if w.Moves() != 1 {
		t.Fatalf("moves=%d", w.Moves())
	}
	w.Close()
	if !w.Closed() {
		t.Fatal("expected closed")
	}
}

package render

import "testing"

func TestBeginClearsToOpaqueBlack(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	if err := fb.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	fb.Set(2, 1, 0xFFABCDEF)
	fb.End()

	if err := fb.Begin(); err != nil {
		t.Fatalf("Second Begin failed: %v", err)
	}
	defer fb.End()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != ClearColor {
				t.Fatalf("Pixel (%d, %d) = %#08x after clear, want %#08x", x, y, got, ClearColor)
			}
		}
	}
}

func TestBeginFailsWhenFrameAlreadyOpen(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	if err := fb.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := fb.Begin(); err == nil {
		t.Errorf("Expected Begin on an open frame to fail")
	}
	fb.End()

	if err := fb.Begin(); err != nil {
		t.Errorf("Expected Begin after End to succeed, got %v", err)
	}
	fb.End()
}

func TestBeginFailsWithoutPixelMemory(t *testing.T) {
	fb := NewFrameBuffer(0, 10)
	if err := fb.Begin(); err == nil {
		t.Errorf("Expected Begin on a zero-width buffer to fail")
	}
}

func TestSetAndAt(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	if err := fb.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	fb.Set(5, 3, 0x80FFFF66)
	if got := fb.At(5, 3); got != 0x80FFFF66 {
		t.Errorf("At(5, 3) = %#08x, want 0x80FFFF66", got)
	}
	if got := fb.At(3, 5); got != ClearColor {
		t.Errorf("Neighbor pixel changed: %#08x", got)
	}

	pix := fb.End()
	if pix[3*8+5] != 0x80FFFF66 {
		t.Errorf("End returned pixels that don't match Set")
	}
}

func TestInBounds(t *testing.T) {
	fb := NewFrameBuffer(10, 6)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 5, true},
		{10, 5, false},
		{9, 6, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range cases {
		if got := fb.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPackARGB(t *testing.T) {
	if got := PackARGB(0xFF, 255, 255, 102); got != 0xFFFFFF66 {
		t.Errorf("PackARGB = %#08x, want 0xFFFFFF66", got)
	}
	if got := WithAlpha(0xFFFFFF66, 0x20); got != 0x20FFFF66 {
		t.Errorf("WithAlpha = %#08x, want 0x20FFFF66", got)
	}
}

func TestAppendRGBAPremultiplies(t *testing.T) {
	pix := []uint32{
		0xFF000000, // opaque black clear
		0xFFFFFF66, // full-opacity beam pixel
		0x80FFFF66, // half-faded beam pixel
	}

	out := AppendRGBA(nil, pix)
	if len(out) != 12 {
		t.Fatalf("Expected 12 bytes, got %d", len(out))
	}

	// Opaque black stays black
	if out[0] != 0 || out[1] != 0 || out[2] != 0 || out[3] != 0xFF {
		t.Errorf("Clear pixel converted wrong: %v", out[0:4])
	}
	// Full alpha keeps the base color
	if out[4] != 255 || out[5] != 255 || out[6] != 102 || out[7] != 0xFF {
		t.Errorf("Opaque beam pixel converted wrong: %v", out[4:8])
	}
	// Half alpha halves each channel
	if out[8] != 128 || out[9] != 128 || out[10] != 51 || out[11] != 0xFF {
		t.Errorf("Faded beam pixel converted wrong: %v", out[8:12])
	}
}

func TestAppendRGBAReusesScratch(t *testing.T) {
	scratch := make([]byte, 0, 16)
	out := AppendRGBA(scratch, []uint32{0xFF000000, 0xFF000000})
	if &out[0] != &scratch[:1][0] {
		t.Errorf("Expected the scratch buffer to be reused")
	}
}

package render

import "fmt"

// ClearColor is the opaque black every frame starts from.
const ClearColor uint32 = 0xFF000000

// FrameBuffer is a fixed-size grid of packed 32-bit ARGB pixels
// (alpha in the highest byte, then R, G, B). Pixel writes are only
// valid between Begin and End; Begin clears every pixel to opaque
// black so blending always sees defined memory.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint32
	open   bool
}

// NewFrameBuffer creates a frame buffer with the given dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Size returns the buffer dimensions in pixels
func (f *FrameBuffer) Size() (width, height int) {
	return f.width, f.height
}

// Begin opens the frame for pixel writes and clears the buffer to
// opaque black. It fails when the buffer has no pixel memory or a
// previous frame was never ended; the caller must skip that frame's
// draw and presentation.
func (f *FrameBuffer) Begin() error {
	if f.width <= 0 || f.height <= 0 || len(f.pix) == 0 {
		return fmt.Errorf("frame buffer has no pixel memory (%dx%d)", f.width, f.height)
	}
	if f.open {
		return fmt.Errorf("frame buffer already open")
	}
	f.open = true

	for i := range f.pix {
		f.pix[i] = ClearColor
	}
	return nil
}

// End closes the frame and returns the pixels for presentation.
// The returned slice is owned by the buffer and is only valid until
// the next Begin.
func (f *FrameBuffer) End() []uint32 {
	f.open = false
	return f.pix
}

// Set writes a packed ARGB value. The coordinates must be inside the
// buffer and the frame must be open; the rasterizers do the bounds
// checking before calling.
func (f *FrameBuffer) Set(x, y int, argb uint32) {
	f.pix[y*f.width+x] = argb
}

// At returns the packed ARGB value at the given coordinates
func (f *FrameBuffer) At(x, y int) uint32 {
	return f.pix[y*f.width+x]
}

// InBounds reports whether the pixel coordinates are inside the buffer
func (f *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// PackARGB packs the four channels into one pixel word
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// WithAlpha replaces the alpha channel of a packed pixel
func WithAlpha(argb uint32, a uint8) uint32 {
	return uint32(a)<<24 | argb&0x00FFFFFF
}

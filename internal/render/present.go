package render

// AppendRGBA converts packed ARGB pixels to the premultiplied RGBA byte
// layout WritePixels expects, reusing dst when it has the capacity. The
// buffer's alpha encodes coverage over the opaque black clear, so each
// channel is scaled by alpha and the output pixel is opaque -- the same
// result as blending the frame onto a black screen. The scratch slice
// lets the frame loop present without a per-frame allocation.
func AppendRGBA(dst []byte, pix []uint32) []byte {
	need := len(pix) * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]

	for i, p := range pix {
		a := (p >> 24) & 0xFF
		dst[i*4+0] = uint8((p >> 16 & 0xFF) * a / 255)
		dst[i*4+1] = uint8((p >> 8 & 0xFF) * a / 255)
		dst[i*4+2] = uint8((p & 0xFF) * a / 255)
		dst[i*4+3] = 0xFF
	}
	return dst
}

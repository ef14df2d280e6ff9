package raycast

import (
	"math"

	"chosenoffset.com/lightbox/internal/geom"
	"chosenoffset.com/lightbox/internal/render"
)

// Opacity returns the beam opacity after traveling distance d with decay
// constant k, clamped to [0,1]. For k > 0 the 8-bit quantization reaches
// exactly zero at finite distance, which bounds every beam even without a
// wall hit.
func Opacity(d, k float64) float64 {
	a := math.Exp(-k * d)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// drawBeam marches from origin along angle, writing one attenuated pixel
// per step until the distance is spent, the opacity quantizes to zero, or
// the next pixel falls outside the buffer -- whichever comes first.
//
// Each write is a flat overwrite of the packed ARGB value rather than a
// read-modify-write blend: beams draw onto the fresh frame clear, and
// overlapping rays at the same pixel carry the same color anyway. This
// matches the reference look where overlap does not accumulate brightness.
func drawBeam(fb *render.FrameBuffer, origin geom.Point, angle, distance float64, cfg Config) {
	stepX := math.Cos(angle) * cfg.StepSize
	stepY := math.Sin(angle) * cfg.StepSize
	curX := origin.X
	curY := origin.Y

	for d := 0.0; d <= distance; d += cfg.StepSize {
		alpha := uint8(Opacity(d, cfg.Decay) * 255.0)
		if alpha == 0 {
			break
		}

		drawX := int(curX)
		drawY := int(curY)
		if !fb.InBounds(drawX, drawY) {
			break
		}

		fb.Set(drawX, drawY, render.WithAlpha(cfg.BeamColor, alpha))
		curX += stepX
		curY += stepY
	}
}

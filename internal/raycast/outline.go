package raycast

import (
	"chosenoffset.com/lightbox/internal/render"
	"chosenoffset.com/lightbox/internal/scene"
)

// WallColor is the opaque white the outlines are drawn in
const WallColor uint32 = 0xFFFFFFFF

// DrawWalls draws every wall as an opaque line on top of the beams, in the
// scene's configured order.
func DrawWalls(fb *render.FrameBuffer, sc *scene.Scene) {
	for _, wall := range sc.Walls() {
		drawLine(fb,
			int(wall.A.X), int(wall.A.Y),
			int(wall.B.X), int(wall.B.Y),
			WallColor)
	}
}

// drawLine plots a segment with Bresenham's algorithm. Pixels outside the
// buffer are skipped but the walk continues, so a wall reaching past the
// screen still draws its visible part.
func drawLine(fb *render.FrameBuffer, x1, y1, x2, y2 int, color uint32) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	for {
		if fb.InBounds(x1, y1) {
			fb.Set(x1, y1, color)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

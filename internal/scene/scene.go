package scene

import "chosenoffset.com/lightbox/internal/geom"

// Scene owns the fixed set of wall segments the rays are cast against.
// It is built once at startup and never mutated afterwards.
type Scene struct {
	walls []geom.Segment
}

// New creates a scene from the given walls. The slice is copied so the
// caller can't mutate the scene afterwards.
func New(walls []geom.Segment) *Scene {
	s := &Scene{walls: make([]geom.Segment, len(walls))}
	copy(s.walls, walls)
	return s
}

// Walls returns the scene's wall segments in their configured order.
// Callers must not modify the returned slice.
func (s *Scene) Walls() []geom.Segment {
	return s.walls
}

// Contains reports whether the point lies exactly on any wall
func (s *Scene) Contains(p geom.Point) bool {
	for _, wall := range s.walls {
		if geom.OnSegment(p, wall) {
			return true
		}
	}
	return false
}

// Default returns the built-in room: a handful of diagonal and vertical
// walls sized for an 800x600 surface.
func Default() *Scene {
	return New([]geom.Segment{
		{A: geom.Point{X: 400, Y: 400}, B: geom.Point{X: 500, Y: 500}},
		{A: geom.Point{X: 300, Y: 100}, B: geom.Point{X: 300, Y: 300}},
		{A: geom.Point{X: 500, Y: 600}, B: geom.Point{X: 400, Y: 500}},
		{A: geom.Point{X: 300, Y: 300}, B: geom.Point{X: 100, Y: 300}},
		{A: geom.Point{X: 100, Y: 300}, B: geom.Point{X: 100, Y: 100}},
		{A: geom.Point{X: 600, Y: 150}, B: geom.Point{X: 600, Y: 450}},
		{A: geom.Point{X: 200, Y: 450}, B: geom.Point{X: 200, Y: 150}},
	})
}

package geom

import "math"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// NoHit is the sentinel returned when a ray does not intersect a segment.
// Its distance from any finite point is +Inf, so it loses every
// closest-hit comparison.
var NoHit = Point{math.Inf(1), math.Inf(1)}

// IsNoHit reports whether the point is the no-intersection sentinel
func (p Point) IsNoHit() bool {
	return math.IsInf(p.X, 1) && math.IsInf(p.Y, 1)
}

// Segment represents a wall defined by its two endpoints
type Segment struct {
	A, B Point
}

// Ray is a half-line cast from Pos in the unit direction Dir.
// Rays are transient values, rebuilt from an angle every cast.
type Ray struct {
	Pos Point
	Dir Point
}

// NewRay creates a ray at the given origin pointing along angle (radians)
func NewRay(x, y, angle float64) Ray {
	return Ray{
		Pos: Point{x, y},
		Dir: Point{math.Cos(angle), math.Sin(angle)},
	}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// OnSegment reports whether p lies exactly on the segment.
// Collinearity is tested with a cross product, containment with the
// segment's bounding box.
func OnSegment(p Point, s Segment) bool {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	cross := (p.X-s.A.X)*dy - (p.Y-s.A.Y)*dx
	if math.Abs(cross) > 0 {
		return false
	}

	minX := math.Min(s.A.X, s.B.X)
	maxX := math.Max(s.A.X, s.B.X)
	minY := math.Min(s.A.Y, s.B.Y)
	maxY := math.Max(s.A.Y, s.B.Y)

	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

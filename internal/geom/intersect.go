package geom

// Cast intersects the ray with a wall segment and returns the hit point,
// or NoHit when there is none.
//
// The ray is treated as the infinite line through Pos and Pos+Dir and the
// two parametric equations are solved as a 2x2 linear system:
//
//	wall.A + t*(wall.B - wall.A) = Pos + u*Dir
//
// A zero determinant means the ray and the wall are parallel or collinear.
// A valid hit needs t in [0,1] -- inclusive bounds, so rays aimed exactly
// at a wall endpoint still hit and adjacent walls don't flicker -- and
// u >= 0, so intersections behind the origin are rejected.
func (r Ray) Cast(wall Segment) Point {
	x1, y1 := wall.A.X, wall.A.Y
	x2, y2 := wall.B.X, wall.B.Y
	x3, y3 := r.Pos.X, r.Pos.Y
	x4, y4 := r.Pos.X+r.Dir.X, r.Pos.Y+r.Dir.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return NoHit
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if t >= 0 && t <= 1 && u >= 0 {
		return Point{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		}
	}

	return NoHit
}

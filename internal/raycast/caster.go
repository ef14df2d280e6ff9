package raycast

import (
	"math"

	"chosenoffset.com/lightbox/internal/geom"
	"chosenoffset.com/lightbox/internal/render"
	"chosenoffset.com/lightbox/internal/scene"
)

// Config holds the sweep and beam tunables. Angle step trades smoothness
// for work (the sweep is O(rays x walls) per frame); the decay constant
// sets how quickly beams fade with distance.
type Config struct {
	// AngleStepDeg is the angular resolution of the sweep in degrees.
	AngleStepDeg float64

	// Decay is the exponential attenuation constant k in exp(-k*d).
	Decay float64

	// StepSize is the marching distance between beam pixels.
	StepSize float64

	// BeamColor is the packed ARGB base color of a beam at full opacity.
	BeamColor uint32
}

// DefaultConfig returns the tuning the renderer ships with: a 0.05 degree
// step and a warm near-white beam.
func DefaultConfig() Config {
	return Config{
		AngleStepDeg: 0.05,
		Decay:        0.005,
		StepSize:     1.0,
		BeamColor:    render.PackARGB(0xFF, 255, 255, 102),
	}
}

// RayCount returns the number of rays a full sweep casts
func (c Config) RayCount() int {
	return int(360.0 / c.AngleStepDeg)
}

// Caster performs the per-frame visibility sweep: a full rotation of rays
// from the origin, each resolved to its nearest wall hit and handed to the
// beam rasterizer.
type Caster struct {
	cfg   Config
	scene *scene.Scene
}

// NewCaster creates a caster for the given scene
func NewCaster(cfg Config, sc *scene.Scene) *Caster {
	return &Caster{cfg: cfg, scene: sc}
}

// Config returns the caster's tuning
func (c *Caster) Config() Config {
	return c.cfg
}

// Sweep casts a full rotation of rays from origin and draws each one as an
// attenuated beam into the frame buffer. It returns the number of rays
// drawn.
//
// An origin lying exactly on a wall is checked once up front (the test does
// not depend on the ray, so there is no point repeating it per ray); such a
// frame draws no beams and Sweep returns 0.
func (c *Caster) Sweep(fb *render.FrameBuffer, origin geom.Point) int {
	if c.scene.Contains(origin) {
		return 0
	}

	stepRad := c.cfg.AngleStepDeg * math.Pi / 180.0
	numRays := c.cfg.RayCount()

	for i := 0; i < numRays; i++ {
		angle := float64(i) * stepRad

		// No hit leaves the distance at +Inf; the rasterizer caps
		// the beam at the buffer edge.
		_, dist := c.Nearest(origin, angle)
		drawBeam(fb, origin, angle, dist, c.cfg)
	}

	return numRays
}

// Nearest casts one ray from origin at the given angle (radians) against
// every wall and returns the minimum-distance valid hit. When nothing is
// hit it returns (geom.NoHit, +Inf). Ties between walls at equal distance
// resolve to whichever the scan keeps first; callers must not depend on
// wall order.
func (c *Caster) Nearest(origin geom.Point, angle float64) (geom.Point, float64) {
	ray := geom.NewRay(origin.X, origin.Y, angle)

	closest := geom.NoHit
	closestDist := math.Inf(1)
	for _, wall := range c.scene.Walls() {
		hit := ray.Cast(wall)
		if d := geom.Distance(origin, hit); d < closestDist {
			closest = hit
			closestDist = d
		}
	}

	return closest, closestDist
}

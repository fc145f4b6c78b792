package geometry

import (
	"fmt"
	"math"

	"whitted-raytracer/internal/mathutil"
)

// Cone is an upright cone with its base disk centered on Center and its
// apex Height above it. The base is open.
type Cone struct {
	Center mathutil.Vec3
	Radius float64
	Height float64

	theta float64 // half-angle, atan(r/h)
}

func NewCone(center mathutil.Vec3, radius, height float64) (*Cone, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("geometry: cone radius must be positive, got %g", radius)
	}
	if !(height > 0) {
		return nil, fmt.Errorf("geometry: cone height must be positive, got %g", height)
	}
	return &Cone{
		Center: center,
		Radius: radius,
		Height: height,
		theta:  math.Atan(radius / height),
	}, nil
}

// Intersect solves (x-cx)² + (z-cz)² = (r/h)²·(h - y + cy)² and keeps the
// nearest root lying between the base and apex planes.
func (c *Cone) Intersect(origin, dir mathutil.Vec3) (float64, bool) {
	apex := c.Center[1] + c.Height

	dx := origin[0] - c.Center[0]
	dz := origin[2] - c.Center[2]
	dy := apex - origin[1]
	k := (c.Radius / c.Height) * (c.Radius / c.Height)

	a := dir[0]*dir[0] + dir[2]*dir[2] - k*dir[1]*dir[1]
	b := 2 * (dir[0]*dx + dir[2]*dz + k*dir[1]*dy)
	cc := dx*dx + dz*dz - k*dy*dy

	t1, t2, ok := solveQuadratic(a, b, cc)
	if !ok {
		return 0, false
	}
	for _, t := range [2]float64{t1, t2} {
		if !(t > MinDistance) {
			continue
		}
		y := origin[1] + t*dir[1]
		if y > apex || y < c.Center[1] {
			continue
		}
		return t, true
	}
	return 0, false
}

// Normal tilts the radial direction up by the half-angle. The azimuth uses
// atan2 so every quadrant around the axis is handled.
func (c *Cone) Normal(p mathutil.Vec3) mathutil.Vec3 {
	alpha := math.Atan2(p[0]-c.Center[0], p[2]-c.Center[2])
	st, ct := math.Sin(c.theta), math.Cos(c.theta)
	return mathutil.Vec3{math.Sin(alpha) * ct, st, math.Cos(alpha) * ct}
}

func (c *Cone) Kind() string { return "cone" }
func (c *Cone) shape()       {}

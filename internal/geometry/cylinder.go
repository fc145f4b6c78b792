package geometry

import (
	"fmt"
	"math"

	"whitted-raytracer/internal/mathutil"
)

// Cylinder is a vertical (+Y axis) cylinder standing on Center. With HasCap
// the top and bottom disks are solid; otherwise the tube is open.
type Cylinder struct {
	Center mathutil.Vec3
	Radius float64
	Height float64
	HasCap bool
}

func NewCylinder(center mathutil.Vec3, radius, height float64, hasCap bool) (*Cylinder, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("geometry: cylinder radius must be positive, got %g", radius)
	}
	if !(height > 0) {
		return nil, fmt.Errorf("geometry: cylinder height must be positive, got %g", height)
	}
	return &Cylinder{Center: center, Radius: radius, Height: height, HasCap: hasCap}, nil
}

func (c *Cylinder) top() float64 { return c.Center[1] + c.Height }

func (c *Cylinder) inBand(y float64) bool {
	return y >= c.Center[1] && y <= c.top()
}

func (c *Cylinder) Intersect(origin, dir mathutil.Vec3) (float64, bool) {
	best, found := c.intersectSide(origin, dir)
	if !c.HasCap {
		return best, found
	}
	for _, y := range [2]float64{c.top(), c.Center[1]} {
		if t, ok := c.intersectCap(origin, dir, y); ok && (!found || t < best) {
			best, found = t, true
		}
	}
	return best, found
}

// intersectSide ignores y for the quadratic, then clips both roots to the
// height band, nearer first.
func (c *Cylinder) intersectSide(origin, dir mathutil.Vec3) (float64, bool) {
	dx := origin[0] - c.Center[0]
	dz := origin[2] - c.Center[2]

	a := dir[0]*dir[0] + dir[2]*dir[2]
	b := 2 * (dir[0]*dx + dir[2]*dz)
	cc := dx*dx + dz*dz - c.Radius*c.Radius

	t1, t2, ok := solveQuadratic(a, b, cc)
	if !ok {
		return 0, false
	}
	for _, t := range [2]float64{t1, t2} {
		if t > MinDistance && c.inBand(origin[1]+t*dir[1]) {
			return t, true
		}
	}
	return 0, false
}

func (c *Cylinder) intersectCap(origin, dir mathutil.Vec3, y float64) (float64, bool) {
	if math.Abs(dir[1]) < Epsilon {
		return 0, false
	}
	t := (y - origin[1]) / dir[1]
	if !(t > MinDistance) {
		return 0, false
	}
	px := origin[0] + t*dir[0] - c.Center[0]
	pz := origin[2] + t*dir[2] - c.Center[2]
	if px*px+pz*pz > c.Radius*c.Radius {
		return 0, false
	}
	return t, true
}

// capTolerance decides whether a point lies on a cap plane.
const capTolerance = 1e-6

func (c *Cylinder) Normal(p mathutil.Vec3) mathutil.Vec3 {
	if c.HasCap {
		scale := math.Max(1, c.Height)
		if math.Abs(p[1]-c.top()) < capTolerance*scale {
			return mathutil.Vec3{0, 1, 0}
		}
		if math.Abs(p[1]-c.Center[1]) < capTolerance*scale {
			return mathutil.Vec3{0, -1, 0}
		}
	}
	return mathutil.Vec3{p[0] - c.Center[0], 0, p[2] - c.Center[2]}.Normalize()
}

func (c *Cylinder) Kind() string { return "cylinder" }
func (c *Cylinder) shape()       {}

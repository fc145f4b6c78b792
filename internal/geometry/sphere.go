package geometry

import (
	"fmt"

	"whitted-raytracer/internal/mathutil"
)

type Sphere struct {
	Center mathutil.Vec3
	Radius float64
}

func NewSphere(center mathutil.Vec3, radius float64) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("geometry: sphere radius must be positive, got %g", radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Intersect solves |O + tD - C|² = r².
func (s *Sphere) Intersect(origin, dir mathutil.Vec3) (float64, bool) {
	oc := origin.Sub(s.Center)
	t1, t2, ok := solveQuadratic(dir.Dot(dir), 2*oc.Dot(dir), oc.Dot(oc)-s.Radius*s.Radius)
	if !ok {
		return 0, false
	}
	return nearestRoot(t1, t2)
}

func (s *Sphere) Normal(p mathutil.Vec3) mathutil.Vec3 {
	return p.Sub(s.Center).Normalize()
}

func (s *Sphere) Kind() string { return "sphere" }
func (s *Sphere) shape()       {}

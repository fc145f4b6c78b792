package mathutil

import "errors"

// ErrDegenerateRay is returned when a ray is built with a zero-length direction.
var ErrDegenerateRay = errors.New("mathutil: degenerate ray direction")

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay normalizes dir. A (near-)zero direction is a caller bug and is
// reported here rather than surfacing as NaN deep inside shading.
func NewRay(origin, dir Vec3) (Ray, error) {
	if dir.Len() < 1e-12 {
		return Ray{}, ErrDegenerateRay
	}
	return Ray{Origin: origin, Dir: dir.Normalize()}, nil
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

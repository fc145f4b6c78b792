// Package geometry holds the primitive shapes and their closed-form ray
// intersection math.
package geometry

import (
	"math"

	"whitted-raytracer/internal/mathutil"
)

const (
	// Epsilon is the threshold below which a discriminant, denominator or
	// quadratic coefficient counts as zero (tangent or parallel ray).
	Epsilon = 1e-3

	// MinDistance is the smallest ray parameter accepted as a hit. Rays
	// spawned on a surface would otherwise re-hit it at t≈0.
	MinDistance = 1e-3
)

// Shape is the closed set of primitive kinds: *Sphere, *Polygon, *Cylinder
// and *Cone. dir must be unit length.
type Shape interface {
	// Intersect returns the distance along dir to the nearest valid hit.
	Intersect(origin, dir mathutil.Vec3) (float64, bool)
	// Normal returns the outward unit normal at a point on the surface.
	Normal(p mathutil.Vec3) mathutil.Vec3
	// Kind names the variant ("sphere", "polygon", ...).
	Kind() string

	shape()
}

// nearestRoot picks the smaller valid root of a quadratic, else the larger.
// Roots at or below MinDistance (and NaN) are rejected.
func nearestRoot(t1, t2 float64) (float64, bool) {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > MinDistance {
		return t1, true
	}
	if t2 > MinDistance {
		return t2, true
	}
	return 0, false
}

// solveQuadratic returns both roots of a·t² + b·t + c, or false when the
// ray is tangent, misses, or a is too small to divide by.
func solveQuadratic(a, b, c float64) (float64, float64, bool) {
	if a > -Epsilon && a < Epsilon {
		return 0, 0, false
	}
	delta := b*b - 4*a*c
	if delta < Epsilon {
		return 0, 0, false
	}
	sq := math.Sqrt(delta)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

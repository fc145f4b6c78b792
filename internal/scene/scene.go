// Package scene holds the ordered primitive list and the closest-hit query
// shared by primary, shadow and secondary rays.
package scene

import (
	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
)

// Scene is read-only once built; it is safe for concurrent queries.
type Scene struct {
	Name       string
	Primitives []Primitive
}

// Hit is the result of a closest-hit query.
type Hit struct {
	Index    int // into Scene.Primitives
	Point    mathutil.Vec3
	Distance float64
}

// New validates and collects primitives in order.
func New(name string, prims ...Primitive) (*Scene, error) {
	for _, p := range prims {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &Scene{Name: name, Primitives: prims}, nil
}

// ClosestHit scans every primitive and returns the nearest hit farther than
// geometry.MinDistance. The first primitive in scan order wins ties.
func (s *Scene) ClosestHit(r mathutil.Ray) (Hit, bool) {
	best := Hit{Index: -1}
	for i := range s.Primitives {
		t, ok := s.Primitives[i].Shape.Intersect(r.Origin, r.Dir)
		if !ok || !(t > geometry.MinDistance) {
			continue
		}
		if best.Index < 0 || t < best.Distance {
			best.Index = i
			best.Distance = t
		}
	}
	if best.Index < 0 {
		return Hit{Index: -1}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}

// Primitive returns the primitive a hit refers to.
func (s *Scene) Primitive(h Hit) *Primitive {
	return &s.Primitives[h.Index]
}

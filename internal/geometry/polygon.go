package geometry

import (
	"fmt"
	"math"

	"whitted-raytracer/internal/mathutil"
)

// Polygon is a planar triangle or quad given as an ordered vertex loop.
// The winding fixes the front side: normal = (v1-v0) × (vLast-v0).
type Polygon struct {
	Vertices []mathutil.Vec3
	normal   mathutil.Vec3
}

func NewPolygon(vertices ...mathutil.Vec3) (*Polygon, error) {
	if len(vertices) != 3 && len(vertices) != 4 {
		return nil, fmt.Errorf("geometry: polygon needs 3 or 4 vertices, got %d", len(vertices))
	}
	a, b, d := vertices[0], vertices[1], vertices[len(vertices)-1]
	n := b.Sub(a).Cross(d.Sub(a))
	if n.Len() < 1e-12 {
		return nil, fmt.Errorf("geometry: degenerate polygon %v", vertices)
	}
	vs := make([]mathutil.Vec3, len(vertices))
	copy(vs, vertices)
	return &Polygon{Vertices: vs, normal: n.Normalize()}, nil
}

func (p *Polygon) Intersect(origin, dir mathutil.Vec3) (float64, bool) {
	vdotn := dir.Dot(p.normal)
	if math.Abs(vdotn) < Epsilon {
		return 0, false
	}
	t := p.Vertices[0].Sub(origin).Dot(p.normal) / vdotn
	if !(t > MinDistance) {
		return 0, false
	}
	if !p.contains(origin.Add(dir.Scale(t))) {
		return 0, false
	}
	return t, true
}

// contains runs the edge half-plane test for a point already on the plane.
func (p *Polygon) contains(q mathutil.Vec3) bool {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		if b.Sub(a).Cross(q.Sub(a)).Dot(p.normal) < 0 {
			return false
		}
	}
	return true
}

func (p *Polygon) Normal(mathutil.Vec3) mathutil.Vec3 {
	return p.normal
}

func (p *Polygon) Kind() string { return "polygon" }
func (p *Polygon) shape()       {}

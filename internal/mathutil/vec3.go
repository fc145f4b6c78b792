package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Used for points, directions and RGB colors alike.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Lerp returns (1-t)*a + t*b.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Reflect mirrors the incident direction v about the unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends the unit incident direction v through a surface with unit
// normal n (facing against v) using eta = n1/n2. Returns false on total
// internal reflection.
func (v Vec3) Refract(n Vec3, eta float64) (Vec3, bool) {
	cosi := v.Dot(n)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Vec3{}, false
	}
	return v.Scale(eta).Sub(n.Scale(eta*cosi + math.Sqrt(k))), true
}

// Average returns the mean of the given vectors.
func Average(vs ...Vec3) Vec3 {
	var sum Vec3
	for _, v := range vs {
		sum = sum.Add(v)
	}
	if len(vs) == 0 {
		return sum
	}
	return sum.Scale(1 / float64(len(vs)))
}

package trace

import (
	"math"

	"whitted-raytracer/internal/mathutil"
)

// phong returns ambient + diffuse + specular for a surface of color c at a
// point with unit normal n, unit light direction l and unit view direction v.
func (lt *Light) phong(c, n, l, v mathutil.Vec3, shininess float64, specular bool) mathutil.Vec3 {
	out := c.Scale(lt.Ambient)

	ndl := l.Dot(n)
	if ndl > 0 {
		out = out.Add(c.Scale(ndl))
	}

	if specular {
		rdv := l.Neg().Reflect(n).Dot(v)
		if rdv > 0 {
			out = out.Add(lt.SpecularColor.Scale(math.Pow(rdv, shininess)))
		}
	}
	return out
}

// factor maps z linearly onto [0,1] between the near and far planes.
func (f *Fog) factor(z float64) float64 {
	t := (z - f.Near) / (f.Far - f.Near)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

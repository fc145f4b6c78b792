package trace

import (
	"math"

	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/scene"
)

// surfaceColor resolves the effective color of p at point pt with outward
// normal n.
func surfaceColor(p *scene.Primitive, pt, n mathutil.Vec3) mathutil.Vec3 {
	switch p.Shading {
	case scene.Checker:
		return checkerColor(p.Checker, pt)
	case scene.Textured:
		if p.Texture == nil {
			return p.Material.Color
		}
		u, v := sphericalUV(n)
		return p.Texture.SampleColor(u, v)
	}
	return p.Material.Color
}

// checkerColor tiles the XZ plane. floor keeps tiles the same size on both
// sides of the axes.
func checkerColor(c scene.CheckerPattern, pt mathutil.Vec3) mathutil.Vec3 {
	ix := int64(math.Floor(pt[0] / c.Size))
	iz := int64(math.Floor(pt[2] / c.Size))
	if (ix+iz)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// sphericalUV maps a unit normal to longitude/latitude texture coordinates,
// v=0 at the north pole.
func sphericalUV(n mathutil.Vec3) (float64, float64) {
	y := math.Max(-1, math.Min(1, n[1]))
	u := 0.5 + math.Atan2(n[0], n[2])/(2*math.Pi)
	v := 0.5 - math.Asin(y)/math.Pi
	return u, v
}

// Package trace implements the recursive Whitted shading function: local
// Phong lighting with hard shadows plus reflected, refracted and
// transparent secondary rays, optionally fogged by depth.
package trace

import (
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/scene"
)

// Tracer evaluates rays against an immutable scene. A Tracer is safe for
// concurrent use.
type Tracer struct {
	scene *scene.Scene
	opts  Options
	stats *Stats
}

// New creates a tracer over sc.
func New(sc *scene.Scene, opts Options) *Tracer {
	return &Tracer{scene: sc, opts: opts, stats: &Stats{}}
}

// Options returns the tracer's settings.
func (t *Tracer) Options() Options { return t.opts }

// Stats returns the tracer's ray counters.
func (t *Tracer) Stats() *Stats { return t.stats }

// Trace returns the color seen along r. depth is 1 for primary rays; no
// secondary ray is spawned once depth reaches MaxDepth.
func (t *Tracer) Trace(r mathutil.Ray, depth int) mathutil.Vec3 {
	t.stats.trace(depth)

	hit, ok := t.scene.ClosestHit(r)
	if !ok {
		return t.opts.Background
	}
	prim := t.scene.Primitive(hit)
	n := prim.Shape.Normal(hit.Point)
	m := &prim.Material

	base := surfaceColor(prim, hit.Point, n)
	color := t.shade(prim, base, hit.Point, n, r.Dir)

	if depth < t.opts.MaxDepth {
		if m.Reflective {
			if sec, ok := t.reflect(r, hit, n, depth); ok {
				color = color.Lerp(sec, m.ReflectionCoeff)
			}
		}
		if m.Refractive {
			if sec, ok := t.refract(r, hit, prim, n, depth); ok {
				color = color.Lerp(sec, m.RefractionCoeff)
			}
		}
		if m.Transparent {
			color = color.Lerp(t.transmit(r, hit, depth), m.TransparencyCoeff)
		}
	}

	if t.opts.Fog.Enabled {
		color = color.Lerp(t.opts.Fog.Color, t.opts.Fog.factor(hit.Point[2]))
	}
	return color
}

// shade computes the Phong color at pt and darkens it when something sits
// between pt and the light.
func (t *Tracer) shade(prim *scene.Primitive, base, pt, n, dir mathutil.Vec3) mathutil.Vec3 {
	lt := &t.opts.Light
	toLight := lt.Position.Sub(pt)
	lightDist := toLight.Len()
	l := toLight.Normalize()

	m := &prim.Material
	local := lt.phong(base, n, l, dir.Neg(), m.Shininess, m.Specular)

	shadowRay, err := mathutil.NewRay(pt, l)
	if err != nil {
		// Point sits on the light.
		return local
	}
	t.stats.shadow.Add(1)
	sh, ok := t.scene.ClosestHit(shadowRay)
	if !ok || sh.Distance >= lightDist {
		return local
	}

	occ := &t.scene.Primitive(sh).Material
	f := &t.opts.Shadow
	switch {
	case occ.Transparent:
		tc := occ.TransparencyCoeff
		return occ.Color.Scale(f.Transparent * (1 - tc)).Add(local.Scale(tc))
	case occ.Refractive:
		rc := occ.RefractionCoeff
		return occ.Color.Lerp(local, rc).Scale(f.Refractive)
	}
	return base.Scale(f.Opaque)
}

func (t *Tracer) reflect(r mathutil.Ray, hit scene.Hit, n mathutil.Vec3, depth int) (mathutil.Vec3, bool) {
	ray, err := mathutil.NewRay(hit.Point, r.Dir.Reflect(n))
	if err != nil {
		return mathutil.Vec3{}, false
	}
	return t.Trace(ray, depth+1), true
}

// refract bends r into prim, finds where the inner ray leaves, bends it
// back out and continues from there.
func (t *Tracer) refract(r mathutil.Ray, hit scene.Hit, prim *scene.Primitive, n mathutil.Vec3, depth int) (mathutil.Vec3, bool) {
	eta := prim.Material.RefractiveIndex
	facing := n
	if r.Dir.Dot(n) > 0 {
		facing = n.Neg()
	}
	// Entering goes from air (1) into the medium (eta), so the ratio is
	// 1/eta here and eta on the way out. Passing eta on entry instead, as
	// glm-style call sites often do, bends away from the normal for eta > 1.
	innerDir, ok := r.Dir.Refract(facing, 1/eta)
	if !ok {
		return mathutil.Vec3{}, false
	}
	inner, err := mathutil.NewRay(hit.Point, innerDir)
	if err != nil {
		return mathutil.Vec3{}, false
	}

	exit, ok := t.scene.ClosestHit(inner)
	if !ok {
		return t.Trace(inner, depth+1), true
	}

	outDir, ok := inner.Dir.Refract(prim.Shape.Normal(exit.Point).Neg(), eta)
	if !ok {
		outDir = inner.Dir
	}
	out, err := mathutil.NewRay(exit.Point, outDir)
	if err != nil {
		return mathutil.Vec3{}, false
	}
	return t.Trace(out, depth+1), true
}

// transmit continues r straight through the surface it hit.
func (t *Tracer) transmit(r mathutil.Ray, hit scene.Hit, depth int) mathutil.Vec3 {
	inner := mathutil.Ray{Origin: hit.Point, Dir: r.Dir}
	origin := hit.Point
	if exit, ok := t.scene.ClosestHit(inner); ok {
		origin = exit.Point
	}
	return t.Trace(mathutil.Ray{Origin: origin, Dir: r.Dir}, depth+1)
}

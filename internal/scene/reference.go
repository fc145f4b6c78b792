package scene

import (
	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/texture"
)

// Reference builds the built-in demo scene: a checkered floor, a textured
// sphere, a blue pyramid, glass and mirror spheres, two transparent spheres
// on capped pedestals and two cones. tex may be nil, in which case the
// textured sphere falls back to its base color.
func Reference(tex texture.Sampler) (*Scene, error) {
	b := &builder{}
	v := func(x, y, z float64) mathutil.Vec3 { return mathutil.Vec3{x, y, z} }
	base := DefaultMaterial()
	blue := v(0, 0, 1)

	floor := b.polygon(v(-200, -15, -30), v(200, -15, -30), v(200, -15, -200), v(-200, -15, -200))
	noSpec := base
	noSpec.Specular = false
	b.add(Primitive{Name: "floor", Shape: floor, Material: noSpec, Shading: Checker, Checker: DefaultChecker()})

	b.add(Primitive{Name: "textured sphere", Shape: b.sphere(v(6, -4, -55), 3), Material: base, Shading: Textured, Texture: tex})

	pa, pb, pc, pd, pe := v(-10, -15, -45), v(0, -15, -35), v(0, -5, -37.5), v(10, -15, -45), v(0, -15, -55)
	for _, face := range [][3]mathutil.Vec3{{pa, pb, pc}, {pb, pd, pc}, {pd, pe, pc}, {pe, pa, pc}} {
		b.add(Primitive{Name: "pyramid", Shape: b.polygon(face[0], face[1], face[2]), Material: base.WithColor(blue)})
	}

	glass := base.WithColor(v(1, 1, 0)).WithRefraction(0.76, 1.01).WithReflection(0.2)
	glass.Shininess = 20
	b.add(Primitive{Name: "glass sphere", Shape: b.sphere(v(0, 0, -37), 5), Material: glass})

	red := base.WithColor(v(1, 0, 0))
	red.Shininess = 5
	b.add(Primitive{Name: "red sphere", Shape: b.sphere(v(5, 10, -100), 4), Material: red})

	mirror := base.WithColor(v(0, 0, 0)).WithReflection(0.8)
	mirror.Shininess = 5
	b.add(Primitive{Name: "mirror sphere", Shape: b.sphere(v(-5, 0, -60), 5), Material: mirror})

	frosted := base.WithColor(v(0.4, 0.4, 0.8)).WithTransparency(0.5).WithReflection(0.2)
	for _, x := range []float64{20, -20} {
		b.add(Primitive{Name: "clear sphere", Shape: b.sphere(v(x, -5, -50), 4.25), Material: frosted})
		b.add(Primitive{Name: "pedestal", Shape: b.cylinder(v(x, -15, -50), 2.5, 5, true), Material: base.WithColor(blue)})
	}

	for _, x := range []float64{40, -40} {
		b.add(Primitive{Name: "cone", Shape: b.cone(v(x, -15, -100), 2, 10), Material: base.WithColor(v(1, 0, 0))})
	}

	if b.err != nil {
		return nil, b.err
	}
	return New("reference", b.prims...)
}

// builder collects primitives and keeps the first constructor error.
type builder struct {
	prims []Primitive
	err   error
}

func (b *builder) add(p Primitive) {
	if p.Shape != nil {
		b.prims = append(b.prims, p)
	}
}

func (b *builder) keep(s geometry.Shape, err error) geometry.Shape {
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return nil
	}
	return s
}

func (b *builder) sphere(c mathutil.Vec3, r float64) geometry.Shape {
	return b.keep(geometry.NewSphere(c, r))
}

func (b *builder) polygon(vs ...mathutil.Vec3) geometry.Shape {
	return b.keep(geometry.NewPolygon(vs...))
}

func (b *builder) cylinder(c mathutil.Vec3, r, h float64, hasCap bool) geometry.Shape {
	return b.keep(geometry.NewCylinder(c, r, h, hasCap))
}

func (b *builder) cone(c mathutil.Vec3, r, h float64) geometry.Shape {
	return b.keep(geometry.NewCone(c, r, h))
}

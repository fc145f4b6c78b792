package scene

import (
	"fmt"

	"whitted-raytracer/internal/mathutil"
)

// Material holds the surface parameters read by the tracer.
type Material struct {
	Color     mathutil.Vec3
	Shininess float64
	Specular  bool

	Reflective      bool
	ReflectionCoeff float64

	Refractive      bool
	RefractionCoeff float64
	RefractiveIndex float64

	Transparent       bool
	TransparencyCoeff float64
}

// DefaultMaterial is white, specular with shininess 50, and has no
// secondary effects.
func DefaultMaterial() Material {
	return Material{
		Color:     mathutil.Vec3{1, 1, 1},
		Shininess: 50,
		Specular:  true,
	}
}

// WithColor returns a copy of m with the base color replaced.
func (m Material) WithColor(c mathutil.Vec3) Material {
	m.Color = c
	return m
}

// WithReflection turns reflection on with coefficient rho.
func (m Material) WithReflection(rho float64) Material {
	m.Reflective, m.ReflectionCoeff = true, rho
	return m
}

// WithRefraction turns refraction on with coefficient rho and index eta.
func (m Material) WithRefraction(rho, eta float64) Material {
	m.Refractive, m.RefractionCoeff, m.RefractiveIndex = true, rho, eta
	return m
}

// WithTransparency turns straight-through transparency on.
func (m Material) WithTransparency(rho float64) Material {
	m.Transparent, m.TransparencyCoeff = true, rho
	return m
}

// Validate checks coefficient ranges.
func (m Material) Validate() error {
	coeffs := []struct {
		name string
		v    float64
	}{
		{"reflection", m.ReflectionCoeff},
		{"refraction", m.RefractionCoeff},
		{"transparency", m.TransparencyCoeff},
	}
	for _, c := range coeffs {
		if !(c.v >= 0 && c.v <= 1) {
			return fmt.Errorf("scene: %s coefficient %g outside [0,1]", c.name, c.v)
		}
	}
	if m.Refractive && !(m.RefractiveIndex > 0) {
		return fmt.Errorf("scene: refractive index must be positive, got %g", m.RefractiveIndex)
	}
	if m.Shininess < 0 {
		return fmt.Errorf("scene: negative shininess %g", m.Shininess)
	}
	return nil
}

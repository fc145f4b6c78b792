package trace

import (
	"fmt"

	"whitted-raytracer/internal/mathutil"
)

// Light is a single point light with Phong parameters.
type Light struct {
	Position      mathutil.Vec3
	Ambient       float64
	SpecularColor mathutil.Vec3
}

// Fog blends hit colors toward Color linearly in z between Near and Far.
type Fog struct {
	Enabled bool
	Near    float64
	Far     float64
	Color   mathutil.Vec3
}

// ShadowFactors scale the color of a point whose light is blocked, by the
// kind of occluder.
type ShadowFactors struct {
	Transparent float64
	Refractive  float64
	Opaque      float64
}

// Options configures a Tracer.
type Options struct {
	MaxDepth   int
	Background mathutil.Vec3
	Light      Light
	Fog        Fog
	Shadow     ShadowFactors
}

// DefaultOptions returns the reference render settings with fog off.
func DefaultOptions() Options {
	grey := mathutil.Vec3{0.8, 0.8, 0.8}
	return Options{
		MaxDepth:   5,
		Background: grey,
		Light: Light{
			Position:      mathutil.Vec3{30, 40, 20},
			Ambient:       0.2,
			SpecularColor: mathutil.Vec3{1, 1, 1},
		},
		Fog: Fog{
			Near:  -20,
			Far:   -200,
			Color: grey,
		},
		Shadow: ShadowFactors{
			Transparent: 0.2,
			Refractive:  0.8,
			Opaque:      0.1,
		},
	}
}

// Validate rejects settings the tracer cannot honor.
func (o Options) Validate() error {
	if o.MaxDepth < 1 {
		return fmt.Errorf("trace: max depth must be at least 1, got %d", o.MaxDepth)
	}
	if o.Fog.Enabled && o.Fog.Near == o.Fog.Far {
		return fmt.Errorf("trace: fog near and far planes coincide at %g", o.Fog.Near)
	}
	return nil
}

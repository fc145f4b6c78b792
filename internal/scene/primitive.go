package scene

import (
	"fmt"

	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/texture"
)

// Shading selects how a primitive's effective color is resolved.
type Shading int

const (
	Flat Shading = iota
	Checker
	Textured
)

func (s Shading) String() string {
	switch s {
	case Flat:
		return "flat"
	case Checker:
		return "checker"
	case Textured:
		return "textured"
	}
	return fmt.Sprintf("Shading(%d)", int(s))
}

// ParseShading maps a scene-file keyword to a Shading ("" means flat).
func ParseShading(s string) (Shading, error) {
	switch s {
	case "", "flat":
		return Flat, nil
	case "checker":
		return Checker, nil
	case "textured":
		return Textured, nil
	}
	return Flat, fmt.Errorf("scene: unknown shading %q", s)
}

// CheckerPattern tiles the XZ plane with two colors.
type CheckerPattern struct {
	Size float64
	Even mathutil.Vec3 // tile index sum even
	Odd  mathutil.Vec3
}

// DefaultChecker is the red/green floor pattern with 5-unit tiles.
func DefaultChecker() CheckerPattern {
	return CheckerPattern{
		Size: 5,
		Even: mathutil.Vec3{1, 0, 0},
		Odd:  mathutil.Vec3{0, 1, 0},
	}
}

// Primitive is one renderable object.
type Primitive struct {
	Name     string
	Shape    geometry.Shape
	Material Material
	Shading  Shading
	Checker  CheckerPattern
	Texture  texture.Sampler // read when Shading == Textured
}

// Validate checks the primitive is renderable.
func (p Primitive) Validate() error {
	if p.Shape == nil {
		return fmt.Errorf("scene: primitive %q has no shape", p.Name)
	}
	if err := p.Material.Validate(); err != nil {
		return fmt.Errorf("scene: primitive %q: %w", p.Name, err)
	}
	if p.Shading == Checker && !(p.Checker.Size > 0) {
		return fmt.Errorf("scene: primitive %q: checker size must be positive", p.Name)
	}
	return nil
}

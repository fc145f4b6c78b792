package scene

import (
	"math"
	"testing"

	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
)

func sphere(t *testing.T, c mathutil.Vec3, r float64) geometry.Shape {
	t.Helper()
	s, err := geometry.NewSphere(c, r)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func ray(t *testing.T, o, d mathutil.Vec3) mathutil.Ray {
	t.Helper()
	r, err := mathutil.NewRay(o, d)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestScene_ClosestHit(t *testing.T) {
	sc, err := New("test",
		Primitive{Name: "far", Shape: sphere(t, mathutil.Vec3{0, 0, -20}, 1), Material: DefaultMaterial()},
		Primitive{Name: "near", Shape: sphere(t, mathutil.Vec3{0, 0, -10}, 1), Material: DefaultMaterial()},
		Primitive{Name: "twin", Shape: sphere(t, mathutil.Vec3{0, 0, -10}, 1), Material: DefaultMaterial()},
	)
	if err != nil {
		t.Fatal(err)
	}

	hit, ok := sc.ClosestHit(ray(t, mathutil.Vec3{}, mathutil.Vec3{0, 0, -1}))
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Index != 1 {
		t.Errorf("Index = %d, want 1 (nearest, first of the tied pair)", hit.Index)
	}
	if math.Abs(hit.Distance-9) > 1e-9 {
		t.Errorf("Distance = %v, want 9", hit.Distance)
	}
	if math.Abs(hit.Point[2]+9) > 1e-9 {
		t.Errorf("Point = %v, want z=-9", hit.Point)
	}
	if sc.Primitive(hit).Name != "near" {
		t.Errorf("Primitive = %q", sc.Primitive(hit).Name)
	}
}

func TestScene_ClosestHitMiss(t *testing.T) {
	sc, _ := New("test", Primitive{Shape: sphere(t, mathutil.Vec3{0, 0, -10}, 1), Material: DefaultMaterial()})

	hit, ok := sc.ClosestHit(ray(t, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}))
	if ok {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if hit.Index != -1 {
		t.Errorf("Index = %d, want -1", hit.Index)
	}

	empty, _ := New("empty")
	if _, ok := empty.ClosestHit(ray(t, mathutil.Vec3{}, mathutil.Vec3{0, 0, -1})); ok {
		t.Error("empty scene reported a hit")
	}
}

func TestScene_ClosestHitSkipsOwnSurface(t *testing.T) {
	sc, _ := New("test", Primitive{Shape: sphere(t, mathutil.Vec3{0, 0, -10}, 1), Material: DefaultMaterial()})
	// A ray leaving the front surface outward must not re-hit it.
	if _, ok := sc.ClosestHit(ray(t, mathutil.Vec3{0, 0, -9}, mathutil.Vec3{0, 0, 1})); ok {
		t.Error("ray leaving the surface hit its own origin")
	}
	// Going inward it finds the back wall.
	hit, ok := sc.ClosestHit(ray(t, mathutil.Vec3{0, 0, -9}, mathutil.Vec3{0, 0, -1}))
	if !ok || math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("inward hit = %+v ok=%v, want distance 2", hit, ok)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       Material
		wantErr bool
	}{
		{"default", DefaultMaterial(), false},
		{"full mirror", DefaultMaterial().WithReflection(1), false},
		{"reflection above one", DefaultMaterial().WithReflection(1.5), true},
		{"negative transparency", DefaultMaterial().WithTransparency(-0.1), true},
		{"glass", DefaultMaterial().WithRefraction(0.8, 1.5), false},
		{"zero index", DefaultMaterial().WithRefraction(0.8, 0), true},
		{"NaN coefficient", DefaultMaterial().WithReflection(math.NaN()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_RejectsInvalidPrimitives(t *testing.T) {
	if _, err := New("x", Primitive{Name: "empty", Material: DefaultMaterial()}); err == nil {
		t.Error("primitive without shape accepted")
	}
	bad := Primitive{Shape: sphere(t, mathutil.Vec3{}, 1), Material: DefaultMaterial(), Shading: Checker}
	if _, err := New("x", bad); err == nil {
		t.Error("checker with zero tile size accepted")
	}
}

func TestParseShading(t *testing.T) {
	for in, want := range map[string]Shading{"": Flat, "flat": Flat, "checker": Checker, "textured": Textured} {
		got, err := ParseShading(in)
		if err != nil || got != want {
			t.Errorf("ParseShading(%q) = %v, %v", in, got, err)
		}
		if in != "" && got.String() != in {
			t.Errorf("String() = %q, want %q", got.String(), in)
		}
	}
	if _, err := ParseShading("marble"); err == nil {
		t.Error("unknown shading accepted")
	}
}

func TestReference(t *testing.T) {
	sc, err := Reference(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Primitives) != 15 {
		t.Fatalf("got %d primitives, want 15", len(sc.Primitives))
	}
	if sc.Primitives[0].Shading != Checker {
		t.Error("floor should be checkered")
	}
	if sc.Primitives[1].Shading != Textured {
		t.Error("second primitive should be textured")
	}

	// The primary ray through the image center lands on the glass sphere.
	hit, ok := sc.ClosestHit(ray(t, mathutil.Vec3{}, mathutil.Vec3{0, 0, -1}))
	if !ok {
		t.Fatal("center ray missed")
	}
	if got := sc.Primitive(hit).Name; got != "glass sphere" {
		t.Errorf("center ray hit %q", got)
	}
}

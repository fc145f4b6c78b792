package antialias

import (
	"math"
	"testing"

	"whitted-raytracer/internal/camera"
	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/trace"
)

// edgeTracer is white right of x=0 and black left of it.
type edgeTracer struct {
	calls  int
	depths map[int]int
}

func (e *edgeTracer) Trace(r mathutil.Ray, depth int) mathutil.Vec3 {
	e.calls++
	if e.depths == nil {
		e.depths = map[int]int{}
	}
	e.depths[depth]++
	if r.Dir[0] > 0 {
		return mathutil.Vec3{1, 1, 1}
	}
	return mathutil.Vec3{}
}

type constTracer struct {
	calls int
}

func (c *constTracer) Trace(mathutil.Ray, int) mathutil.Vec3 {
	c.calls++
	return mathutil.Vec3{0.3, 0.6, 0.9}
}

func TestSampleCell_RefinesAcrossEdge(t *testing.T) {
	tests := []struct {
		name      string
		maxSteps  int
		wantCalls int
	}{
		{"no refinement at the step limit", 1, 4},
		{"one level of refinement", 2, 20},
		{"uniform quadrants stop refining", 5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &edgeTracer{}
			s := New(tr, camera.Default())
			s.MaxSteps = tt.maxSteps

			got := s.SampleCell(-1, 0, 2, 2, 1)
			if got != (mathutil.Vec3{0.5, 0.5, 0.5}) {
				t.Errorf("SampleCell = %v, want half grey", got)
			}
			if tr.calls != tt.wantCalls {
				t.Errorf("trace calls = %d, want %d", tr.calls, tt.wantCalls)
			}
			if tr.depths[1] != tr.calls {
				t.Errorf("primary rays must be traced at depth 1, got %v", tr.depths)
			}
		})
	}
}

func TestSampleCell_OffCenterEdge(t *testing.T) {
	// The edge at x=0 crosses the right quarter of the cell [-1.5, 0.5].
	tr := &edgeTracer{}
	s := New(tr, camera.Default())
	s.MaxSteps = 2

	got := s.SampleCell(-1.5, 0, 2, 2, 1)
	// Unrefined: samples at -1.0 and 0.0 per row, all black, so the cell
	// never sees the edge. Four calls, black result.
	if got != (mathutil.Vec3{}) || tr.calls != 4 {
		t.Errorf("SampleCell = %v after %d calls", got, tr.calls)
	}
}

func TestSampleCell_UniformMatchesCenter(t *testing.T) {
	tr := &constTracer{}
	s := New(tr, camera.Default())

	aa := s.Cell(-10, 5, 1, 1, true)
	if tr.calls != 4 {
		t.Errorf("uniform cell traced %d rays, want 4", tr.calls)
	}
	plain := s.Cell(-10, 5, 1, 1, false)
	if tr.calls != 5 {
		t.Errorf("center sample traced %d rays, want 1", tr.calls-4)
	}
	for i := 0; i < 3; i++ {
		if math.Abs(aa[i]-plain[i]) > 1e-12 {
			t.Errorf("anti-aliased %v differs from center %v", aa, plain)
		}
	}
}

func TestSampleCell_IdempotentOnUniformScene(t *testing.T) {
	wall, err := geometry.NewPolygon(
		mathutil.Vec3{-500, -500, -10}, mathutil.Vec3{500, -500, -10},
		mathutil.Vec3{500, 500, -10}, mathutil.Vec3{-500, 500, -10})
	if err != nil {
		t.Fatal(err)
	}
	m := scene.DefaultMaterial().WithColor(mathutil.Vec3{0.2, 0.5, 1})
	m.Specular = false
	sc, err := scene.New("wall", scene.Primitive{Name: "wall", Shape: wall, Material: m})
	if err != nil {
		t.Fatal(err)
	}

	opts := trace.DefaultOptions()
	opts.Light.Position = mathutil.Vec3{0, 0, -100}
	s := New(trace.New(sc, opts), camera.Default())

	want := m.Color.Scale(opts.Light.Ambient)
	plane := camera.DefaultPlane()
	w, h := plane.CellSize()
	for _, cell := range [][2]int{{0, 0}, {123, 456}, {300, 300}, {599, 599}} {
		x, y := plane.CellOrigin(cell[0], cell[1])
		aa := s.Cell(x, y, w, h, true)
		plain := s.Cell(x, y, w, h, false)
		for i := 0; i < 3; i++ {
			if math.Abs(aa[i]-plain[i]) > 1e-9 || math.Abs(aa[i]-want[i]) > 1e-9 {
				t.Errorf("cell %v: aa %v, plain %v, want %v", cell, aa, plain, want)
				break
			}
		}
	}
}

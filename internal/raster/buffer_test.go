package raster

import (
	"math"
	"testing"

	"whitted-raytracer/internal/mathutil"
)

func TestClamp255(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{127.5, 128},
		{254.6, 255},
		{300, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFrameBuffer_SetIsBottomUp(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Set(0, 0, mathutil.Vec3{1, 0, 0})
	fb.Set(2, 1, mathutil.Vec3{0, 0, 1})

	img := fb.Image()
	// Cell (0,0) is the bottom-left pixel.
	if c := img.NRGBAAt(0, 1); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("bottom-left = %v", c)
	}
	if c := img.NRGBAAt(2, 0); c.B != 255 || c.A != 255 {
		t.Errorf("top-right = %v", c)
	}
	if c := img.NRGBAAt(1, 0); c.A != 0 {
		t.Errorf("untouched pixel = %v, want transparent", c)
	}
	if r, _, _, a := fb.At(0, 0); r != 255 || a != 255 {
		t.Errorf("At(0,0) = %d,%d", r, a)
	}
}

func TestFrameBuffer_SetClamps(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.Set(0, 0, mathutil.Vec3{1.7, -0.2, 0.5})
	r, g, b, _ := fb.At(0, 0)
	if r != 255 || g != 0 || b != 128 {
		t.Errorf("got %d,%d,%d, want 255,0,128", r, g, b)
	}

	// Out-of-range cells are ignored.
	fb.Set(1, 0, mathutil.Vec3{1, 1, 1})
	fb.Set(0, -1, mathutil.Vec3{1, 1, 1})
}

func TestTone(t *testing.T) {
	if got := ToneClamp.Apply(2); got != 2 {
		t.Errorf("clamp tone changed the value: %v", got)
	}
	if got := ToneACES.Apply(0); got != 0 {
		t.Errorf("ACES(0) = %v", got)
	}
	prev := 0.0
	for _, x := range []float64{0.1, 0.5, 1, 2, 10} {
		y := ToneACES.Apply(x)
		if y <= prev || y > 1.05 {
			t.Errorf("ACES(%v) = %v, want increasing and bounded", x, y)
		}
		prev = y
	}
	if math.Abs(ACESTonemap(1)-0.8038) > 1e-3 {
		t.Errorf("ACES(1) = %v", ACESTonemap(1))
	}

	for _, s := range []string{"", "clamp", "aces"} {
		if _, err := ParseTone(s); err != nil {
			t.Errorf("ParseTone(%q): %v", s, err)
		}
	}
	if _, err := ParseTone("reinhard"); err == nil {
		t.Error("unknown tone accepted")
	}
}

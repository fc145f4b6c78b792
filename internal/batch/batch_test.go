package batch

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"whitted-raytracer/internal/antialias"
	"whitted-raytracer/internal/camera"
	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/trace"
)

func smallPlane(n int) camera.Plane {
	p := camera.DefaultPlane()
	p.Divisions = n
	return p
}

func TestRun_EmptySceneIsBackground(t *testing.T) {
	sc, err := scene.New("empty")
	if err != nil {
		t.Fatal(err)
	}
	tr := trace.New(sc, trace.DefaultOptions())
	plane := smallPlane(8)
	fb := raster.NewFrameBuffer(8, 8)

	res := Run(Config{
		Sampler: antialias.New(tr, camera.Default()),
		Plane:   plane,
		Workers: 3,
		Stats:   tr.Stats(),
	}, fb)

	if res.Rows != 8 || res.Cells != 64 {
		t.Errorf("result = %+v", res)
	}
	if res.Rays.Primary != 64 || res.Rays.Secondary != 0 {
		t.Errorf("rays = %+v, want 64 primary", res.Rays)
	}
	for i := 0; i < len(fb.Color); i += 4 {
		px := fb.Color[i : i+4]
		if px[0] != 204 || px[1] != 204 || px[2] != 204 || px[3] != 255 {
			t.Fatalf("pixel %d = %v, want background grey", i/4, px)
		}
	}
}

func TestRun_AntiAliasingTracesMore(t *testing.T) {
	sph, err := geometry.NewSphere(mathutil.Vec3{0, 0, -100}, 20)
	if err != nil {
		t.Fatal(err)
	}
	m := scene.DefaultMaterial().WithColor(mathutil.Vec3{0, 0, 0})
	m.Specular = false
	sc, err := scene.New("dot", scene.Primitive{Name: "dot", Shape: sph, Material: m})
	if err != nil {
		t.Fatal(err)
	}

	count := func(aa bool) (trace.Snapshot, *raster.FrameBuffer) {
		tr := trace.New(sc, trace.DefaultOptions())
		fb := raster.NewFrameBuffer(16, 16)
		res := Run(Config{
			Sampler:      antialias.New(tr, camera.Default()),
			Plane:        smallPlane(16),
			AntiAliasing: aa,
			Workers:      4,
			Stats:        tr.Stats(),
		}, fb)
		return res.Rays, fb
	}

	plain, fbPlain := count(false)
	aa, _ := count(true)
	if plain.Primary != 256 {
		t.Errorf("plain primary rays = %d, want 256", plain.Primary)
	}
	// Four per cell, plus refinement along the silhouette.
	if aa.Primary <= 4*256 {
		t.Errorf("anti-aliased primary rays = %d, want more than %d", aa.Primary, 4*256)
	}

	// The sphere covers the center, the background the corners.
	if r, _, _, _ := fbPlain.At(8, 8); r != 0 {
		t.Errorf("center red = %d, want black sphere", r)
	}
	if r, _, _, _ := fbPlain.At(0, 0); r != 204 {
		t.Errorf("corner red = %d, want background", r)
	}
}

func TestSave(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out", "render.png")
	if err := Save(pngPath, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}

	webpPath := filepath.Join(dir, "render.webp")
	if err := Save(webpPath, img); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(webpPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) < 12 || !bytes.Equal(raw[:4], []byte("RIFF")) || !bytes.Equal(raw[8:12], []byte("WEBP")) {
		t.Errorf("not a WebP container: % x", raw[:min(len(raw), 12)])
	}

	if err := Save(filepath.Join(dir, "render.gif"), img); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestWriteManifest(t *testing.T) {
	m := NewManifest(Result{
		Rows:    600,
		Elapsed: 1500 * time.Millisecond,
		Rays:    trace.Snapshot{Primary: 10, Secondary: 5, Shadow: 7, Deepest: 3},
	})
	m.Scene = "reference"
	m.Image = "render.webp"

	path := filepath.Join(t.TempDir(), "render.json")
	if err := WriteManifest(path, m); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Manifest
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Errorf("manifest = %+v, want %+v", got, m)
	}
	if got.Divisions != 600 || got.Seconds != 1.5 || got.DeepestDepth != 3 {
		t.Errorf("fields not carried over: %+v", got)
	}
}

// Package antialias implements adaptive supersampling of image-plane cells.
package antialias

import (
	"math"

	"whitted-raytracer/internal/camera"
	"whitted-raytracer/internal/mathutil"
)

// Tracer is the color function sampled by a Sampler.
type Tracer interface {
	Trace(r mathutil.Ray, depth int) mathutil.Vec3
}

// Defaults for Sampler.
const (
	DefaultMaxSteps  = 5
	DefaultThreshold = 0.2
)

// offsets are the four sub-sample positions, as fractions of the cell.
var offsets = [4][2]float64{
	{0.25, 0.25},
	{0.75, 0.25},
	{0.25, 0.75},
	{0.75, 0.75},
}

// Sampler colors image-plane cells. It holds no mutable state and may be
// shared across goroutines when its Tracer can.
type Sampler struct {
	Tracer    Tracer
	Camera    camera.Camera
	MaxSteps  int
	Threshold float64
}

// New returns a Sampler with the default step limit and threshold.
func New(tr Tracer, cam camera.Camera) *Sampler {
	return &Sampler{Tracer: tr, Camera: cam, MaxSteps: DefaultMaxSteps, Threshold: DefaultThreshold}
}

// Cell samples the w × h cell with bottom-left corner (x, y), adaptively
// when aa is set.
func (s *Sampler) Cell(x, y, w, h float64, aa bool) mathutil.Vec3 {
	if aa {
		return s.SampleCell(x, y, w, h, 1)
	}
	return s.SampleCenter(x, y, w, h)
}

// SampleCell traces four sub-samples of the cell and averages them. Below
// MaxSteps, every sub-sample that differs from the average by more than
// Threshold in some channel is replaced by the recursive sample of its
// quadrant.
func (s *Sampler) SampleCell(x, y, w, h float64, step int) mathutil.Vec3 {
	var cols [4]mathutil.Vec3
	for k, o := range offsets {
		cols[k] = s.sample(x+o[0]*w, y+o[1]*h)
	}
	avg := mathutil.Average(cols[:]...)
	if step >= s.MaxSteps {
		return avg
	}

	for k, o := range offsets {
		if s.diverges(cols[k], avg) {
			qx := x + (o[0]-0.25)*w
			qy := y + (o[1]-0.25)*h
			cols[k] = s.SampleCell(qx, qy, w/2, h/2, step+1)
		}
	}
	return mathutil.Average(cols[:]...)
}

// SampleCenter traces a single ray through the cell center.
func (s *Sampler) SampleCenter(x, y, w, h float64) mathutil.Vec3 {
	return s.sample(x+0.5*w, y+0.5*h)
}

func (s *Sampler) sample(x, y float64) mathutil.Vec3 {
	r, err := s.Camera.Ray(x, y)
	if err != nil {
		// Only reachable with a zero-distance camera at the plane center.
		return mathutil.Vec3{}
	}
	return s.Tracer.Trace(r, 1)
}

func (s *Sampler) diverges(c, avg mathutil.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(c[i]-avg[i]) > s.Threshold {
			return true
		}
	}
	return false
}

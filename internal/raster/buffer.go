// Package raster holds the grid of traced cell colors and converts it to
// an 8-bit image.
package raster

import (
	"image"

	"whitted-raytracer/internal/mathutil"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// Rows are stored top-down as in image.NRGBA.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
	Tone   Tone
}

// NewFrameBuffer allocates a zeroed (transparent black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Set stores the color of cell (i, j). j counts rows bottom-up as on the
// image plane. Writes to distinct cells never overlap, so rows may be
// filled from different goroutines.
func (fb *FrameBuffer) Set(i, j int, c mathutil.Vec3) {
	if i < 0 || i >= fb.Width || j < 0 || j >= fb.Height {
		return
	}
	idx := ((fb.Height-1-j)*fb.Width + i) * 4
	fb.Color[idx] = clamp255(fb.Tone.Apply(c[0]) * 255)
	fb.Color[idx+1] = clamp255(fb.Tone.Apply(c[1]) * 255)
	fb.Color[idx+2] = clamp255(fb.Tone.Apply(c[2]) * 255)
	fb.Color[idx+3] = 255
}

// At returns the stored 8-bit color of cell (i, j).
func (fb *FrameBuffer) At(i, j int) (r, g, b, a uint8) {
	idx := ((fb.Height-1-j)*fb.Width + i) * 4
	return fb.Color[idx], fb.Color[idx+1], fb.Color[idx+2], fb.Color[idx+3]
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func clamp255(v float64) uint8 {
	// NaN fails every comparison.
	if !(v >= 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

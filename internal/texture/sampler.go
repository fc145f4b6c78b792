package texture

import (
	"image"

	"whitted-raytracer/internal/mathutil"
)

// Sampler is the texture-sampling service used by textured primitives.
// u and v are in [0,1]; v=0 is the top row of the image.
type Sampler interface {
	SampleColor(u, v float64) mathutil.Vec3
}

// Image is a decoded texture sampled with bilinear filtering.
type Image struct {
	img *image.NRGBA
}

// NewImage wraps an NRGBA image. The image must be non-empty.
func NewImage(img *image.NRGBA) *Image {
	return &Image{img: img}
}

// Bounds returns the texture size in texels.
func (t *Image) Bounds() image.Rectangle {
	return t.img.Rect
}

// SampleColor performs bilinear filtering with UV wrapping and returns the
// color with channels in [0,1]. Accesses tex.Pix directly for performance.
func (t *Image) SampleColor(u, v float64) mathutil.Vec3 {
	tex := t.img
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs
	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var c mathutil.Vec3
	for k := 0; k < 3; k++ {
		c[k] = (float64(pix[i00+k])*w00 + float64(pix[i10+k])*w10 +
			float64(pix[i01+k])*w01 + float64(pix[i11+k])*w11) / 255
	}
	return c
}

// Average returns the mean texel color, used as the fallback base color of
// a textured primitive.
func (t *Image) Average() mathutil.Vec3 {
	tex := t.img
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	if w == 0 || h == 0 {
		return mathutil.Vec3{}
	}

	var sum mathutil.Vec3
	for y := 0; y < h; y++ {
		off := y * tex.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sum[0] += float64(tex.Pix[i])
			sum[1] += float64(tex.Pix[i+1])
			sum[2] += float64(tex.Pix[i+2])
		}
	}
	return sum.Scale(1 / (255 * float64(w*h)))
}

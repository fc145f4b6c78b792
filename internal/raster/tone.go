package raster

import "fmt"

// Tone maps an unbounded color channel into [0,1] before quantization.
type Tone int

const (
	// ToneClamp clips channels to [0,1].
	ToneClamp Tone = iota
	// ToneACES compresses highlights with the ACES filmic curve.
	ToneACES
)

// ParseTone maps a config keyword to a Tone ("" means clamp).
func ParseTone(s string) (Tone, error) {
	switch s {
	case "", "clamp":
		return ToneClamp, nil
	case "aces":
		return ToneACES, nil
	}
	return ToneClamp, fmt.Errorf("raster: unknown tone mapping %q", s)
}

func (t Tone) String() string {
	if t == ToneACES {
		return "aces"
	}
	return "clamp"
}

// Apply maps one channel.
func (t Tone) Apply(x float64) float64 {
	if t == ToneACES && x > 0 {
		return ACESTonemap(x)
	}
	return x
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

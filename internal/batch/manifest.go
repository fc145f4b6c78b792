package batch

import (
	"encoding/json"
	"os"
)

// Manifest describes a finished render. It is written next to the image
// when requested.
type Manifest struct {
	Scene        string  `json:"scene"`
	Image        string  `json:"image"`
	Size         int     `json:"size"`
	Divisions    int     `json:"divisions"`
	AntiAliasing bool    `json:"anti_aliasing"`
	Fog          bool    `json:"fog"`
	MaxDepth     int     `json:"max_depth"`
	Seconds      float64 `json:"seconds"`
	PrimaryRays  int64   `json:"primary_rays"`
	SecondRays   int64   `json:"secondary_rays"`
	ShadowRays   int64   `json:"shadow_rays"`
	DeepestDepth int64   `json:"deepest_depth"`
}

// NewManifest fills the timing and ray counts from res.
func NewManifest(res Result) Manifest {
	return Manifest{
		Divisions:    res.Rows,
		Seconds:      res.Elapsed.Seconds(),
		PrimaryRays:  res.Rays.Primary,
		SecondRays:   res.Rays.Secondary,
		ShadowRays:   res.Rays.Shadow,
		DeepestDepth: res.Rays.Deepest,
	}
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"whitted-raytracer/internal/camera"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/trace"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	SceneFile  string `json:"scene_file"` // empty renders the built-in reference scene
	TextureDir string `json:"texture_dir"`
	Output     string `json:"output"`
	Manifest   string `json:"manifest"` // optional JSON render report

	// Image plane and camera
	PlaneSize   float64 `json:"plane_size"`
	EyeDistance float64 `json:"eye_distance"`
	Divisions   int     `json:"divisions"`
	Yaw         float64 `json:"yaw"`
	Pitch       float64 `json:"pitch"`

	// Tracing
	MaxDepth       int         `json:"max_depth"`
	AntiAliasing   *bool       `json:"anti_aliasing"`
	AliasSteps     int         `json:"alias_steps"`
	AliasThreshold *float64    `json:"alias_threshold"`
	Fog            *bool       `json:"fog"`
	FogNear        float64     `json:"fog_near"`
	FogFar         float64     `json:"fog_far"`
	Light          *[3]float64 `json:"light"`
	Background     *[3]float64 `json:"background"`

	// Presentation
	OutputSize int    `json:"output_size"`
	ToneMap    string `json:"tone_map"`
	Workers    int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir    string
	SceneFile  string
	TextureDir string
	Output     string
	Manifest   string
	Size       int
	Divisions  int
	MaxDepth   int
	Workers    int
	Yaw        float64
	Pitch      float64
	NoAA       bool
	NoFog      bool
	ToneMap    string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.Size > 0 {
		c.OutputSize = flags.Size
	}
	if flags.Divisions > 0 {
		c.Divisions = flags.Divisions
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Yaw != 0 {
		c.Yaw = flags.Yaw
	}
	if flags.Pitch != 0 {
		c.Pitch = flags.Pitch
	}
	if flags.NoAA {
		c.AntiAliasing = boolPtr(false)
	}
	if flags.NoFog {
		c.Fog = boolPtr(false)
	}
	if flags.ToneMap != "" {
		c.ToneMap = flags.ToneMap
	}

	// Auto-detect base dir if still empty
	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		c.SceneFile = under(c.BaseDir, c.SceneFile)
		c.Output = under(c.BaseDir, c.Output)
		c.Manifest = under(c.BaseDir, c.Manifest)
		if c.TextureDir == "" {
			c.TextureDir = filepath.Join(c.BaseDir, "textures")
		} else {
			c.TextureDir = under(c.BaseDir, c.TextureDir)
		}
	}
	if c.Output == "" {
		c.Output = "render.webp"
	}

	// Defaults for render settings
	if c.PlaneSize <= 0 {
		c.PlaneSize = 100
	}
	if c.EyeDistance <= 0 {
		c.EyeDistance = 100
	}
	if c.Divisions <= 0 {
		c.Divisions = 600
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 5
	}
	if c.AntiAliasing == nil {
		c.AntiAliasing = boolPtr(true)
	}
	if c.AliasSteps <= 0 {
		c.AliasSteps = 5
	}
	if c.AliasThreshold == nil {
		t := 0.2
		c.AliasThreshold = &t
	}
	if c.Fog == nil {
		c.Fog = boolPtr(true)
	}
	if c.FogNear == 0 && c.FogFar == 0 {
		c.FogNear, c.FogFar = -20, -200
	}
	if c.Light == nil {
		c.Light = &[3]float64{30, 40, 20}
	}
	if c.Background == nil {
		c.Background = &[3]float64{0.8, 0.8, 0.8}
	}
	if c.OutputSize <= 0 {
		c.OutputSize = 1000
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if *c.Fog && c.FogNear == c.FogFar {
		return fmt.Errorf("config: fog_near and fog_far are both %g", c.FogNear)
	}
	if *c.AliasThreshold < 0 {
		return fmt.Errorf("config: alias_threshold %g is negative", *c.AliasThreshold)
	}
	if _, err := raster.ParseTone(c.ToneMap); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return c.Plane().Validate()
}

// TraceOptions maps the resolved settings onto trace.Options.
func (c *Config) TraceOptions() trace.Options {
	opts := trace.DefaultOptions()
	opts.MaxDepth = c.MaxDepth
	opts.Background = mathutil.Vec3(*c.Background)
	opts.Light.Position = mathutil.Vec3(*c.Light)
	opts.Fog.Enabled = *c.Fog
	opts.Fog.Near = c.FogNear
	opts.Fog.Far = c.FogFar
	opts.Fog.Color = opts.Background
	return opts
}

// Camera returns the eye at the origin turned by Yaw and Pitch.
func (c *Config) Camera() camera.Camera {
	cam := camera.Default()
	cam.Distance = c.EyeDistance
	return cam.Oriented(c.Yaw, c.Pitch)
}

// Plane returns the square image plane centered on the view axis.
func (c *Config) Plane() camera.Plane {
	h := c.PlaneSize / 2
	return camera.Plane{XMin: -h, XMax: h, YMin: -h, YMax: h, Divisions: c.Divisions}
}

func boolPtr(b bool) *bool { return &b }

func under(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// detectBaseDir looks for a textures/ directory next to the executable or
// in the working directory.
func detectBaseDir() string {
	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir)} {
			if _, err := os.Stat(filepath.Join(base, "textures")); err == nil {
				return base
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, "textures")); err == nil {
		return cwd
	}
	return ""
}

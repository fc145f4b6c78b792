package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"whitted-raytracer/internal/antialias"
	"whitted-raytracer/internal/batch"
	"whitted-raytracer/internal/config"
	"whitted-raytracer/internal/postprocess"
	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/scenefile"
	"whitted-raytracer/internal/texture"
	"whitted-raytracer/internal/trace"
)

// referenceTexture is the texture name the built-in scene's textured sphere
// looks for in the texture directory.
const referenceTexture = "Butterfly"

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	baseDir := flag.String("base", "", "Base directory for relative paths (default: auto-detect)")
	sceneFile := flag.String("scene", "", "Scene XML file (default: built-in reference scene)")
	texDir := flag.String("textures", "", "Texture directory (default: <base>/textures)")
	output := flag.String("output", "", "Output image, .webp or .png (default: render.webp)")
	manifest := flag.String("manifest", "", "Write a JSON render report to this path")
	size := flag.Int("size", 0, "Output image size in pixels (default: 1000)")
	divisions := flag.Int("divisions", 0, "Image plane cells per side (default: 600)")
	depth := flag.Int("depth", 0, "Maximum recursion depth (default: 5)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	yaw := flag.Float64("yaw", 0, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Camera pitch in degrees")
	noAA := flag.Bool("no-aa", false, "Disable adaptive anti-aliasing")
	noFog := flag.Bool("no-fog", false, "Disable depth fog")
	tone := flag.String("tone", "", "Tone mapping: clamp or aces (default: clamp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:    *baseDir,
		SceneFile:  *sceneFile,
		TextureDir: *texDir,
		Output:     *output,
		Manifest:   *manifest,
		Size:       *size,
		Divisions:  *divisions,
		MaxDepth:   *depth,
		Workers:    *workers,
		Yaw:        *yaw,
		Pitch:      *pitch,
		NoAA:       *noAA,
		NoFog:      *noFog,
		ToneMap:    *tone,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build texture index
	var texCache *texture.Cache
	if cfg.TextureDir != "" {
		texIndex := texture.BuildIndex(cfg.TextureDir)
		texCache = texture.NewCache(texIndex)
		fmt.Printf("Textures: %d indexed in %s\n", texIndex.Len(), cfg.TextureDir)
	}

	sc, err := loadScene(cfg.SceneFile, texCache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	opts := cfg.TraceOptions()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tracer := trace.New(sc, opts)

	sampler := antialias.New(tracer, cfg.Camera())
	sampler.MaxSteps = cfg.AliasSteps
	sampler.Threshold = *cfg.AliasThreshold

	// Print summary
	fmt.Printf("Whitted ray tracer: scene %q, %d primitives\n", sc.Name, len(sc.Primitives))
	fmt.Printf("Cells: %dx%d, AA: %v, Fog: %v, Depth: %d, Workers: %d\n",
		cfg.Divisions, cfg.Divisions, *cfg.AntiAliasing, *cfg.Fog, cfg.MaxDepth, cfg.Workers)
	fmt.Printf("Output: %s (%dpx)\n", cfg.Output, cfg.OutputSize)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	fb := raster.NewFrameBuffer(cfg.Divisions, cfg.Divisions)
	fb.Tone, _ = raster.ParseTone(cfg.ToneMap)

	res := batch.Run(batch.Config{
		Sampler:      sampler,
		Plane:        cfg.Plane(),
		AntiAliasing: *cfg.AntiAliasing,
		Workers:      cfg.Workers,
		Stats:        tracer.Stats(),
		Progress:     true,
	}, fb)

	img := postprocess.Resize(fb.Image(), cfg.OutputSize)
	if err := batch.Save(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Rays: %d primary, %d secondary, %d shadow (deepest %d)\n",
		res.Rays.Primary, res.Rays.Secondary, res.Rays.Shadow, res.Rays.Deepest)
	fmt.Printf("Saved: %s\n", cfg.Output)

	// Write manifest
	if cfg.Manifest != "" {
		m := batch.NewManifest(res)
		m.Scene = sc.Name
		m.Image = cfg.Output
		m.Size = cfg.OutputSize
		m.AntiAliasing = *cfg.AntiAliasing
		m.Fog = *cfg.Fog
		m.MaxDepth = cfg.MaxDepth
		if err := batch.WriteManifest(cfg.Manifest, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", cfg.Manifest)
		}
	}
}

// loadScene parses path, or builds the reference scene when path is empty.
// A nil res is allowed.
func loadScene(path string, res *texture.Cache) (*scene.Scene, error) {
	var resolver texture.Resolver
	if res != nil {
		resolver = res
	}
	if path != "" {
		return scenefile.Parse(path, resolver)
	}

	var tex texture.Sampler
	if resolver != nil {
		img, err := resolver.Resolve(referenceTexture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, textured sphere uses its base color\n", err)
		} else {
			tex = img
		}
	}
	return scene.Reference(tex)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"whitted-raytracer/internal/config"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/scenefile"
	"whitted-raytracer/internal/trace"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene XML file (default: built-in reference scene)")
	divisions := flag.Int("divisions", 0, "Image plane cells per side (default: 600)")
	i := flag.Int("i", -1, "Cell column, counted from the left (default: center)")
	j := flag.Int("j", -1, "Cell row, counted from the bottom (default: center)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{SceneFile: *sceneFile, Divisions: *divisions})

	var sc *scene.Scene
	var err error
	if cfg.SceneFile != "" {
		sc, err = scenefile.Parse(cfg.SceneFile, nil)
	} else {
		sc, err = scene.Reference(nil)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scene %q: %d primitives\n", sc.Name, len(sc.Primitives))
	for k, p := range sc.Primitives {
		m := p.Material
		fmt.Printf("  [%2d] %-8s %-16s shading=%-8s color=(%.2f, %.2f, %.2f)", k, p.Shape.Kind(), p.Name, p.Shading, m.Color[0], m.Color[1], m.Color[2])
		if m.Reflective {
			fmt.Printf(" refl=%.2f", m.ReflectionCoeff)
		}
		if m.Refractive {
			fmt.Printf(" refr=%.2f eta=%.2f", m.RefractionCoeff, m.RefractiveIndex)
		}
		if m.Transparent {
			fmt.Printf(" transp=%.2f", m.TransparencyCoeff)
		}
		fmt.Println()
	}

	plane := cfg.Plane()
	ci, cj := *i, *j
	if ci < 0 {
		ci = plane.Divisions / 2
	}
	if cj < 0 {
		cj = plane.Divisions / 2
	}
	x, y := plane.CellOrigin(ci, cj)
	w, h := plane.CellSize()
	r, err := cfg.Camera().Ray(x+0.5*w, y+0.5*h)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nCell (%d, %d): plane point (%.3f, %.3f)\n", ci, cj, x+0.5*w, y+0.5*h)
	walkMirrors(sc, r, cfg.MaxDepth)

	tracer := trace.New(sc, cfg.TraceOptions())
	c := tracer.Trace(r, 1)
	s := tracer.Stats().Snapshot()
	fmt.Printf("Color: (%.4f, %.4f, %.4f)\n", c[0], c[1], c[2])
	fmt.Printf("Rays: %d secondary, %d shadow, deepest %d\n", s.Secondary, s.Shadow, s.Deepest)
}

// walkMirrors prints the chain of closest hits along the primary ray and
// its mirror reflections.
func walkMirrors(sc *scene.Scene, r mathutil.Ray, maxDepth int) {
	for depth := 1; depth <= maxDepth; depth++ {
		hit, ok := sc.ClosestHit(r)
		if !ok {
			fmt.Printf("  depth %d: miss (background)\n", depth)
			return
		}
		p := sc.Primitive(hit)
		n := p.Shape.Normal(hit.Point)
		fmt.Printf("  depth %d: %s %q at (%.3f, %.3f, %.3f) t=%.3f normal=(%.3f, %.3f, %.3f)\n",
			depth, p.Shape.Kind(), p.Name, hit.Point[0], hit.Point[1], hit.Point[2], hit.Distance, n[0], n[1], n[2])
		if !p.Material.Reflective {
			return
		}
		next, err := mathutil.NewRay(hit.Point, r.Dir.Reflect(n))
		if err != nil {
			return
		}
		r = next
	}
}

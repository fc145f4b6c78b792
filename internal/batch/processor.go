// Package batch drives a render: it fans image-plane rows out to a worker
// pool, reports progress and writes the result to disk.
package batch

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"whitted-raytracer/internal/antialias"
	"whitted-raytracer/internal/camera"
	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/trace"
)

// Config holds all shared resources for a render.
type Config struct {
	Sampler      *antialias.Sampler
	Plane        camera.Plane
	AntiAliasing bool
	Workers      int
	Stats        *trace.Stats // optional, reported in Result
	Progress     bool
}

// Result summarizes a finished render.
type Result struct {
	Rows    int
	Cells   int
	Elapsed time.Duration
	Rays    trace.Snapshot
}

// Run colors every cell of cfg.Plane into fb, which must be
// Divisions × Divisions. Each worker owns whole rows, so writes never overlap.
func Run(cfg Config, fb *raster.FrameBuffer) Result {
	total := cfg.Plane.Divisions
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f rows/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rowChan {
				renderRow(cfg, fb, j)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for j := 0; j < total; j++ {
		rowChan <- j
	}
	close(rowChan)

	wg.Wait()
	close(done)

	res := Result{
		Rows:    total,
		Cells:   total * total,
		Elapsed: time.Since(start),
	}
	if cfg.Stats != nil {
		res.Rays = cfg.Stats.Snapshot()
	}
	return res
}

func renderRow(cfg Config, fb *raster.FrameBuffer, j int) {
	w, h := cfg.Plane.CellSize()
	for i := 0; i < cfg.Plane.Divisions; i++ {
		x, y := cfg.Plane.CellOrigin(i, j)
		fb.Set(i, j, cfg.Sampler.Cell(x, y, w, h, cfg.AntiAliasing))
	}
}

package main

import (
	"fmt"
	"os"

	"whitted-raytracer/internal/texture"
)

func main() {
	dir := "textures"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	idx := texture.BuildIndex(dir)
	cache := texture.NewCache(idx)
	fmt.Printf("%s: %d textures\n", dir, idx.Len())

	failed := 0
	for _, name := range idx.Names() {
		path, _ := idx.ResolvePath(name)
		img, err := cache.Resolve(name)
		if err != nil {
			fmt.Printf("  FAIL %-20s %v\n", name, err)
			failed++
			continue
		}
		b := img.Bounds()
		avg := img.Average()
		fmt.Printf("  OK   %-20s %4dx%-4d avg=(%.2f, %.2f, %.2f)  %s\n",
			name, b.Dx(), b.Dy(), avg[0], avg[1], avg[2], path)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

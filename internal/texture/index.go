package texture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// When several files share a stem, the earlier entry in Extensions wins.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans dir and its subdirectories for texture files.
// A missing directory yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !supported(ext) {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || rank(ext) < rank(strings.ToLower(filepath.Ext(existing))) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

func rank(ext string) int {
	for i, e := range Extensions {
		if e == ext {
			return i
		}
	}
	return len(Extensions)
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Names may carry a directory prefix or extension ("tex\\Butterfly.bmp").
func (idx *Index) ResolvePath(texName string) (string, bool) {
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Names returns the indexed stems in sorted order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for stem := range idx.entries {
		names = append(names, stem)
	}
	sort.Strings(names)
	return names
}

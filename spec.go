package slicon

import (
	"fmt"
	"sort"
	"strings"
)

// OutputDir is the directory, relative to the working directory, that receives the icons.
const OutputDir = "icons"

// IconSpec describes one icon to generate.
type IconSpec struct {
	Size int    `json:"size"`
	Path string `json:"path"`
}

// DefaultSpecs returns the icons generated on every run, in generation order.
func DefaultSpecs() []IconSpec {
	return []IconSpec{
		{Size: 512, Path: OutputDir + "/icon-512.png"},
		{Size: 192, Path: OutputDir + "/icon-192.png"},
	}
}

func (s IconSpec) validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("invalid icon size %d for %s: size must be positive", s.Size, s.Path)
	}
	if s.Path == "" {
		return fmt.Errorf("empty output path for %dx%d icon", s.Size, s.Size)
	}
	return nil
}

// Message returns the confirmation line printed after a successful run.
// Paths are listed from the smallest icon to the largest.
func Message(specs []IconSpec) string {
	sorted := make([]IconSpec, len(specs))
	copy(sorted, specs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size < sorted[j].Size
	})
	paths := make([]string, 0, len(sorted))
	for _, s := range sorted {
		paths = append(paths, s.Path)
	}
	return fmt.Sprintf("Icons generated: %s", strings.Join(paths, ", "))
}

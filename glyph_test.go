package slicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
)

// writeFont installs the Go regular font under name in dir and returns its path.
func writeFont(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestResolveGlyphStyle(t *testing.T) {
	fontDir := t.TempDir()
	fontPath := writeFont(t, fontDir, "arial.ttf")

	brokenDir := t.TempDir()
	brokenPath := filepath.Join(brokenDir, "arial.ttf")
	if err := os.WriteFile(brokenPath, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		canvasSize   int
		fontPaths    []string
		wantSize     float64
		wantPath     string
		wantFallback bool
	}{
		{"preferred font in directory at 512", 512, []string{fontDir}, 230, fontPath, false},
		{"preferred font in directory at 192", 192, []string{fontDir}, 86, fontPath, false},
		{"preferred font as file", 192, []string{fontPath}, 86, fontPath, false},
		{"broken font is skipped", 192, []string{brokenDir, fontDir}, 86, fontPath, false},
		{"no font paths", 512, nil, fallbackFontSize, "", true},
		{"missing directory", 512, []string{filepath.Join(fontDir, "missing")}, fallbackFontSize, "", true},
		{"broken font only", 192, []string{brokenPath}, fallbackFontSize, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := ResolveGlyphStyle(tt.canvasSize, tt.fontPaths)
			t.Cleanup(func() {
				_ = gs.Close()
			})
			if gs.Face == nil {
				t.Fatal("Face is nil")
			}
			if gs.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", gs.Size, tt.wantSize)
			}
			if gs.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", gs.Path, tt.wantPath)
			}
			if gs.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", gs.Fallback, tt.wantFallback)
			}
		})
	}
}

func TestResolveGlyphStyleReportsReason(t *testing.T) {
	gs, err := resolveGlyphStyle(192, nil)
	t.Cleanup(func() {
		_ = gs.Close()
	})
	if err == nil {
		t.Error("want the reason the preferred font was not used")
	}
	if !gs.Fallback {
		t.Error("want fallback style")
	}
}

func TestFontCandidates(t *testing.T) {
	dir := t.TempDir()
	lower := writeFont(t, dir, "arial.ttf")
	other := writeFont(t, t.TempDir(), "custom.otf")

	got := fontCandidates([]string{"", filepath.Join(dir, "missing"), other, dir, lower})
	// custom file first, directory entry next, duplicate dropped
	want := []string{other, lower}
	if len(got) > 2 {
		// case-insensitive filesystems also match Arial.ttf
		got = got[:2]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fontCandidates() mismatch (-want +got):\n%s", diff)
	}
}

func TestFontCache(t *testing.T) {
	p := writeFont(t, t.TempDir(), "arial.ttf")
	f1, err := loadFontFile(p)
	if err != nil {
		t.Fatal(err)
	}
	cached, ok := LoadFontCache(p)
	if !ok {
		t.Fatal("parsed font is not cached")
	}
	if cached != f1 {
		t.Error("cache returned a different font")
	}
	// served from the cache even after the file is gone
	if err := os.Remove(p); err != nil {
		t.Fatal(err)
	}
	f2, err := loadFontFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if f2 != f1 {
		t.Error("second load did not use the cache")
	}

	StoreFontCache("nil", nil)
	if _, ok := LoadFontCache("nil"); ok {
		t.Error("nil font should not be cached")
	}
}

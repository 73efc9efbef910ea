package slicon

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	glyphScale       = 0.45
	fallbackFontSize = 40
	fallbackCacheKey = "builtin:goregular"
)

// preferredFontNames are tried in every font directory.
var preferredFontNames = []string{"arial.ttf", "Arial.ttf"}

// GlyphStyle is the font face used to render the label of one icon.
type GlyphStyle struct {
	Face font.Face
	// Size is the nominal size in pixels.
	Size float64
	// Path is the font file the face was loaded from. Empty for built-in fonts.
	Path     string
	Fallback bool
}

func (g *GlyphStyle) Close() error {
	if g == nil || g.Face == nil {
		return nil
	}
	return g.Face.Close()
}

// ResolveGlyphStyle loads the preferred font from fontPaths at a size
// proportional to the canvas. When no candidate can be loaded it returns the
// built-in font at a fixed nominal size; it never fails.
func ResolveGlyphStyle(canvasSize int, fontPaths []string) *GlyphStyle {
	gs, _ := resolveGlyphStyle(canvasSize, fontPaths)
	return gs
}

// resolveGlyphStyle always returns a usable style. The error tells why the
// preferred font was not used.
func resolveGlyphStyle(canvasSize int, fontPaths []string) (*GlyphStyle, error) {
	size := math.Round(float64(canvasSize) * glyphScale)
	gs, err := preferredGlyphStyle(size, fontPaths)
	if err != nil {
		return fallbackGlyphStyle(), err
	}
	return gs, nil
}

func preferredGlyphStyle(size float64, fontPaths []string) (_ *GlyphStyle, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	candidates := fontCandidates(fontPaths)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("preferred font %s not found", preferredFontNames[0])
	}
	var lastErr error
	for _, p := range candidates {
		f, err := loadFontFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		face, err := newFace(f, size)
		if err != nil {
			lastErr = fmt.Errorf("failed to create face from %s: %w", p, err)
			continue
		}
		return &GlyphStyle{Face: face, Size: size, Path: p}, nil
	}
	return nil, lastErr
}

func fallbackGlyphStyle() *GlyphStyle {
	f, ok := LoadFontCache(fallbackCacheKey)
	if !ok {
		parsed, err := opentype.Parse(goregular.TTF)
		if err == nil {
			StoreFontCache(fallbackCacheKey, parsed)
			f = parsed
		}
	}
	if f != nil {
		if face, err := newFace(f, fallbackFontSize); err == nil {
			return &GlyphStyle{Face: face, Size: fallbackFontSize, Fallback: true}
		}
	}
	return &GlyphStyle{Face: basicfont.Face7x13, Size: fallbackFontSize, Fallback: true}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func loadFontFile(p string) (*opentype.Font, error) {
	if f, ok := LoadFontCache(p); ok {
		return f, nil
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", p, err)
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font file %s: %w", p, err)
	}
	StoreFontCache(p, f)
	return f, nil
}

// fontCandidates expands fontPaths into font files to try, in order.
// Directories contribute the preferred font names; files are used as is.
// Paths that do not exist are skipped.
func fontCandidates(fontPaths []string) []string {
	var candidates []string
	seen := map[string]struct{}{}
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		candidates = append(candidates, p)
	}
	for _, p := range fontPaths {
		if p == "" {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !fi.IsDir() {
			add(p)
			continue
		}
		for _, name := range preferredFontNames {
			fp := filepath.Join(p, name)
			if _, err := os.Stat(fp); err == nil {
				add(fp)
			}
		}
	}
	return candidates
}

// SystemFontDirs returns the platform directories searched for the preferred font.
func SystemFontDirs() []string {
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			dirs = append(dirs, filepath.Join(v, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts/Supplemental", "/System/Library/Fonts")
	default:
		dirs = append(dirs,
			"/usr/share/fonts/truetype/msttcorefonts",
			"/usr/share/fonts/msttcore",
			"/usr/share/fonts/TTF",
			"/usr/local/share/fonts",
		)
	}
	if home, err := os.UserHomeDir(); err == nil {
		switch runtime.GOOS {
		case "darwin":
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		case "windows":
		default:
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}

package slicon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/k1LoW/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Generator renders icons and writes them below OutputDir.
type Generator struct {
	specs     []IconSpec
	fontPaths []string
	logger    *slog.Logger
}

type Option func(*Generator) error

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// WithFontPaths sets the files and directories searched for the preferred
// font, replacing the system font directories.
func WithFontPaths(paths ...string) Option {
	return func(g *Generator) error {
		g.fontPaths = paths
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		specs:     DefaultSpecs(),
		fontPaths: SystemFontDirs(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Specs returns the icons the generator produces.
func (g *Generator) Specs() []IconSpec {
	specs := make([]IconSpec, len(g.specs))
	copy(specs, g.specs)
	return specs
}

// EnsureOutputDir creates OutputDir if it does not exist.
func (g *Generator) EnsureOutputDir() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(OutputDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", OutputDir, err)
	}
	return nil
}

// Generate creates the output directory and writes every icon, in order.
// It returns the specs that were written.
func (g *Generator) Generate(ctx context.Context) (_ []IconSpec, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := g.EnsureOutputDir(); err != nil {
		g.logger.Error("failed to create output directory", slog.String("dir", OutputDir), slog.String("error", err.Error()))
		return nil, err
	}
	var written []IconSpec
	for _, spec := range g.specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.MakeIcon(ctx, spec); err != nil {
			g.logger.Error("failed to generate icon", slog.String("path", spec.Path), slog.String("error", err.Error()))
			return nil, err
		}
		written = append(written, spec)
	}
	g.logger.Info("generation completed", slog.Int("count", len(written)))
	return written, nil
}

// MakeIcon renders spec and writes it as PNG to spec.Path, overwriting any
// existing file. The parent directory must exist.
func (g *Generator) MakeIcon(ctx context.Context, spec IconSpec) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := spec.validate(); err != nil {
		return err
	}
	b, err := g.encode(spec.Size)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", spec.Path, err)
	}
	if err := os.WriteFile(spec.Path, b, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", spec.Path, err)
	}
	g.logger.Info("generated icon", slog.String("path", spec.Path), slog.Int("size", spec.Size))
	return nil
}

// Render draws an icon of the given size.
func (g *Generator) Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillGradient(img)
	overlayRect(size).Draw(img)

	gs, err := resolveGlyphStyle(size, g.fontPaths)
	if err != nil {
		g.logger.Debug("preferred font unavailable, using built-in font", slog.Int("size", size), slog.String("reason", err.Error()))
	}
	defer gs.Close()
	drawCenteredText(img, gs.Face, Label, color.White)
	return img
}

// encode renders an icon into PNG bytes. Nothing touches the disk until the
// whole file is encoded.
func (g *Generator) encode(size int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, g.Render(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

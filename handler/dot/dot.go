package dot

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var (
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var _ slog.Handler = (*dotHandler)(nil)

// New returns a handler that prints one mark per icon to stderr.
// Records are not forwarded; h only decides which levels are enabled.
func New(h slog.Handler) slog.Handler {
	return NewWithWriter(h, colorable.NewColorableStderr())
}

func NewWithWriter(h slog.Handler, w io.Writer) slog.Handler {
	return &dotHandler{
		handler: h,
		out:     w,
		mu:      &sync.Mutex{},
	}
}

type dotHandler struct {
	handler slog.Handler
	out     io.Writer
	mu      *sync.Mutex
}

func (h *dotHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *dotHandler) Handle(ctx context.Context, r slog.Record) error {
	switch {
	case r.Message == "generated icon":
		return h.write(yellow("."))
	case r.Message == "verified icon":
		return h.write(green("."))
	case strings.Contains(r.Message, "failed to"):
		return h.write(red("!"))
	case r.Message == "generation completed", r.Message == "check completed":
		return h.write("\n")
	}
	return nil
}

func (h *dotHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dotHandler{handler: h.handler.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *dotHandler) WithGroup(name string) slog.Handler {
	return &dotHandler{handler: h.handler.WithGroup(name), out: h.out, mu: h.mu}
}

func (h *dotHandler) write(s string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, s)
	return err
}

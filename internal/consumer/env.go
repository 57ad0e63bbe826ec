package consumer

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/mesh-intelligence/sharedkit/internal/logging"
	"github.com/mesh-intelligence/sharedkit/internal/palette"
	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// Env carries the collaborators a consumer writes to.
type Env struct {
	Out     io.Writer        // Report destination (required).
	Painter *palette.Painter // Color rendering; nil prints plain tags.
	Logger  *slog.Logger     // Diagnostics; nil discards.
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

func (e Env) paint(c types.Color) string {
	return e.Painter.Paint(c)
}

// report writes lines to an io.Writer and keeps the first write error, so
// consumers can print unconditionally and check once at the end.
type report struct {
	w   io.Writer
	err error
}

func (r *report) linef(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format+"\n", args...)
}

// formatCounts renders counts as space-separated item=count pairs in
// sorted item order.
func formatCounts(counts map[string]int) string {
	keys := slices.Sorted(maps.Keys(counts))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageprofile"
)

// Ensure LoggingRenderer implements pageprofile.Renderer.
var _ pageprofile.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   pageprofile.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next pageprofile.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the URL being rendered and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string) (page *pageprofile.RenderedPage, err error) {
	defer func(begin time.Time) {
		var bytes, lines int
		if page != nil {
			bytes, lines = len(page.HTML), len(page.Console)
		}
		r.logger.Info("render",
			"url", url,
			"bytes", bytes,
			"console", lines,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}

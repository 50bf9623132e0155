package rod

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/pageprofile"
	"github.com/go-rod/rod/lib/proto"
)

// consoleLine converts a console API call into a ConsoleLine.
// String arguments are used verbatim; other values use their JSON form.
func consoleLine(e *proto.RuntimeConsoleAPICalled) pageprofile.ConsoleLine {
	parts := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		switch {
		case arg.Type == proto.RuntimeRemoteObjectTypeString:
			parts = append(parts, arg.Value.Str())
		case arg.Description != "":
			parts = append(parts, arg.Description)
		default:
			parts = append(parts, arg.Value.String())
		}
	}
	return pageprofile.ConsoleLine{
		Kind: string(e.Type),
		Text: strings.Join(parts, " "),
	}
}

// consoleRecorder collects console lines emitted while a page is open.
// It is safe for concurrent use.
type consoleRecorder struct {
	mu        sync.Mutex
	lines     []pageprofile.ConsoleLine
	telemetry int
	notify    chan struct{}
}

func newConsoleRecorder() *consoleRecorder {
	return &consoleRecorder{notify: make(chan struct{}, 1)}
}

func (r *consoleRecorder) record(e *proto.RuntimeConsoleAPICalled) {
	line := consoleLine(e)

	r.mu.Lock()
	r.lines = append(r.lines, line)
	if isTelemetry(line) {
		r.telemetry++
	}
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

// waitTelemetry blocks until n telemetry lines were recorded, the settle
// period elapses, or ctx is done.
func (r *consoleRecorder) waitTelemetry(ctx context.Context, n int, settle time.Duration) {
	timer := time.NewTimer(settle)
	defer timer.Stop()
	for {
		r.mu.Lock()
		done := r.telemetry >= n
		r.mu.Unlock()
		if done {
			return
		}
		select {
		case <-r.notify:
		case <-timer.C:
			return
		case <-ctx.Done():
			return
		}
	}
}

// snapshot returns a copy of the recorded lines.
func (r *consoleRecorder) snapshot() []pageprofile.ConsoleLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pageprofile.ConsoleLine(nil), r.lines...)
}

func isTelemetry(line pageprofile.ConsoleLine) bool {
	return line.Kind == pageprofile.ConsoleInfo &&
		(strings.HasPrefix(line.Text, pageprofile.TelemetryFonts) ||
			strings.HasPrefix(line.Text, pageprofile.TelemetryColors))
}

// Package slog provides log/slog decorators for the pageprofile extractors
// and services.
package slog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/pageprofile"
)

// LogFunc adapts logger into a pageprofile.LogFunc that writes debug
// records with the formatted message.
func LogFunc(logger *slog.Logger) pageprofile.LogFunc {
	return func(format string, args ...any) {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

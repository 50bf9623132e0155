package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pageprofile"
)

var (
	_ pageprofile.Profiler         = (*LoggingProfiler)(nil)
	_ pageprofile.BlockDetector    = (*LoggingBlockDetector)(nil)
	_ pageprofile.CaptionExtractor = (*LoggingCaptionExtractor)(nil)
)

// LoggingProfiler wraps a Profiler with logging.
type LoggingProfiler struct {
	next   pageprofile.Profiler
	logger *slog.Logger
}

// NewLoggingProfiler creates a new LoggingProfiler.
func NewLoggingProfiler(next pageprofile.Profiler, logger *slog.Logger) *LoggingProfiler {
	return &LoggingProfiler{next: next, logger: logger}
}

// Profile logs which profile fields were found.
func (p *LoggingProfiler) Profile(input *pageprofile.ProfileInput) (profile *pageprofile.PageProfile, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(input.HTML),
			"console", len(input.Console),
			"duration", time.Since(begin),
			"err", err,
		}
		if profile != nil {
			attrs = append(attrs,
				"name", profile.Name,
				"email", profile.Email != nil,
				"phone", profile.Phone != nil,
				"address", profile.Address != nil,
				"logo", profile.Logo != nil,
				"fonts", len(profile.Fonts),
				"colors", len(profile.Colors),
			)
		}
		p.logger.Info("profile", attrs...)
	}(time.Now())
	return p.next.Profile(input)
}

// LoggingBlockDetector wraps a BlockDetector with logging.
type LoggingBlockDetector struct {
	next   pageprofile.BlockDetector
	logger *slog.Logger
}

// NewLoggingBlockDetector creates a new LoggingBlockDetector.
func NewLoggingBlockDetector(next pageprofile.BlockDetector, logger *slog.Logger) *LoggingBlockDetector {
	return &LoggingBlockDetector{next: next, logger: logger}
}

// DetectBlocks logs the number of blocks found.
func (d *LoggingBlockDetector) DetectBlocks(html string) (blocks []pageprofile.ContentBlock, err error) {
	defer func(begin time.Time) {
		d.logger.Info("detect blocks",
			"bytes", len(html),
			"blocks", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DetectBlocks(html)
}

// LoggingCaptionExtractor wraps a CaptionExtractor with logging.
type LoggingCaptionExtractor struct {
	next   pageprofile.CaptionExtractor
	logger *slog.Logger
}

// NewLoggingCaptionExtractor creates a new LoggingCaptionExtractor.
func NewLoggingCaptionExtractor(next pageprofile.CaptionExtractor, logger *slog.Logger) *LoggingCaptionExtractor {
	return &LoggingCaptionExtractor{next: next, logger: logger}
}

// Captions logs the number of captions built.
func (e *LoggingCaptionExtractor) Captions(html string) (captions []pageprofile.ImageCaption, err error) {
	defer func(begin time.Time) {
		e.logger.Info("captions",
			"bytes", len(html),
			"captions", len(captions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Captions(html)
}

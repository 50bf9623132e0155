package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageprofile"
)

// Ensure LoggingReportService implements pageprofile.ReportService.
var _ pageprofile.ReportService = (*LoggingReportService)(nil)

// LoggingReportService wraps a ReportService with debug logging.
type LoggingReportService struct {
	next   pageprofile.ReportService
	logger *slog.Logger
}

// NewLoggingReportService creates a new LoggingReportService.
func NewLoggingReportService(next pageprofile.ReportService, logger *slog.Logger) *LoggingReportService {
	return &LoggingReportService{next: next, logger: logger}
}

func (s *LoggingReportService) SaveReport(ctx context.Context, report *pageprofile.Report) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save report",
			"url", report.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveReport(ctx, report)
}

func (s *LoggingReportService) FindReportByURL(ctx context.Context, url string) (report *pageprofile.Report, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find report",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReportByURL(ctx, url)
}

func (s *LoggingReportService) FindReports(ctx context.Context, filter pageprofile.ReportFilter) (reports []*pageprofile.Report, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find reports",
			"count", len(reports),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReports(ctx, filter)
}

func (s *LoggingReportService) DeleteReport(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete report",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteReport(ctx, url)
}

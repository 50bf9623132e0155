package mock

import (
	"context"

	"github.com/fwojciec/pageprofile"
)

var (
	_ pageprofile.Analyzer      = (*Analyzer)(nil)
	_ pageprofile.ReportService = (*ReportService)(nil)
	_ pageprofile.ReportStore   = (*ReportStore)(nil)
)

// Analyzer is a mock implementation of pageprofile.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, page *pageprofile.RenderedPage) (*pageprofile.Report, error)
}

func (a *Analyzer) Analyze(ctx context.Context, page *pageprofile.RenderedPage) (*pageprofile.Report, error) {
	return a.AnalyzeFn(ctx, page)
}

// ReportService is a mock implementation of pageprofile.ReportService.
type ReportService struct {
	SaveReportFn      func(ctx context.Context, report *pageprofile.Report) error
	FindReportByURLFn func(ctx context.Context, url string) (*pageprofile.Report, error)
	FindReportsFn     func(ctx context.Context, filter pageprofile.ReportFilter) ([]*pageprofile.Report, error)
	DeleteReportFn    func(ctx context.Context, url string) error
}

func (s *ReportService) SaveReport(ctx context.Context, report *pageprofile.Report) error {
	return s.SaveReportFn(ctx, report)
}

func (s *ReportService) FindReportByURL(ctx context.Context, url string) (*pageprofile.Report, error) {
	return s.FindReportByURLFn(ctx, url)
}

func (s *ReportService) FindReports(ctx context.Context, filter pageprofile.ReportFilter) ([]*pageprofile.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, url string) error {
	return s.DeleteReportFn(ctx, url)
}

// ReportStore is a mock implementation of pageprofile.ReportStore.
type ReportStore struct {
	SaveFn   func(ctx context.Context, report *pageprofile.Report) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReportStore) Save(ctx context.Context, report *pageprofile.Report) error {
	return s.SaveFn(ctx, report)
}

func (s *ReportStore) Commit() error {
	return s.CommitFn()
}

func (s *ReportStore) Abort() error {
	return s.AbortFn()
}

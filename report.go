package pageprofile

import (
	"context"
	"time"
)

// Report is the full analysis of one page.
type Report struct {
	ID        string         `json:"id"`
	URL       string         `json:"url"`
	Profile   *PageProfile   `json:"profile"`
	Blocks    []ContentBlock `json:"blocks"`
	Captions  []ImageCaption `json:"captions"`
	HTMLHash  string         `json:"html_hash"`
	CreatedAt time.Time      `json:"created_at"`

	// Markdown holds one rendering per block, in block order, when a
	// Converter was configured.
	Markdown []string `json:"markdown,omitempty"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "report URL required")
	}
	if r.Profile == nil {
		return Errorf(EINVALID, "report profile required")
	}
	return nil
}

// PageBlocks returns the report's blocks tagged with its URL.
func (r *Report) PageBlocks() PageBlocks {
	return PageBlocks{URL: r.URL, Blocks: r.Blocks}
}

// Analyzer turns a rendered page into a report.
type Analyzer interface {
	Analyze(ctx context.Context, page *RenderedPage) (*Report, error)
}

// ReportService represents a service for persisting reports.
type ReportService interface {
	// SaveReport stores a report, replacing any earlier report for its URL.
	SaveReport(ctx context.Context, report *Report) error

	// FindReportByURL retrieves the latest report for a URL.
	// Returns ENOTFOUND if no report exists.
	FindReportByURL(ctx context.Context, url string) (*Report, error)

	// FindReports retrieves reports matching the filter.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport removes the report for a URL.
	// Returns ENOTFOUND if no report exists.
	DeleteReport(ctx context.Context, url string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	URL      *string `json:"url"`
	HTMLHash *string `json:"htmlHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportStore persists reports to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ReportStore interface {
	Save(ctx context.Context, report *Report) error
	Commit() error
	Abort() error
}

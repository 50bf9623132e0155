package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pageprofile"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pageprofile.ReportService = (*ReportService)(nil)

// ReportService implements pageprofile.ReportService using SQLite.
// Blocks live in their own table so they can be queried by title.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// SaveReport stores a report, replacing any earlier report for its URL.
// A missing ID or creation time is generated.
func (s *ReportService) SaveReport(ctx context.Context, report *pageprofile.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	// created_at is compared as text, so every row must share one offset.
	report.CreatedAt = report.CreatedAt.UTC().Truncate(time.Second)

	profile, err := marshalColumn(report.Profile, "profile")
	if err != nil {
		return err
	}
	captions, err := marshalColumn(report.Captions, "captions")
	if err != nil {
		return err
	}
	markdown, err := marshalColumn(report.Markdown, "markdown")
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reports WHERE url = ?", report.URL); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reports (id, url, profile, captions, markdown, html_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.URL, profile, captions, markdown, report.HTMLHash,
		report.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, b := range report.Blocks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO blocks (report_id, position, title, image_src, description, raw_html)
			VALUES (?, ?, ?, ?, ?, ?)
		`, report.ID, i, b.Title, b.ImageSrc, b.Description, b.RawHTML); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindReportByURL retrieves the report for a URL.
func (s *ReportService) FindReportByURL(ctx context.Context, url string) (*pageprofile.Report, error) {
	reports, err := s.FindReports(ctx, pageprofile.ReportFilter{URL: &url, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, pageprofile.Errorf(pageprofile.ENOTFOUND, "report not found: %s", url)
	}
	return reports[0], nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter pageprofile.ReportFilter) ([]*pageprofile.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, profile, captions, markdown, html_hash, created_at FROM reports WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.HTMLHash != nil {
		query.WriteString(" AND html_hash = ?")
		args = append(args, *filter.HTMLHash)
	}

	query.WriteString(" ORDER BY created_at DESC, url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*pageprofile.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, report := range reports {
		if report.Blocks, err = s.findBlocks(ctx, report.ID); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

// DeleteReport permanently removes the report for a URL and its blocks.
func (s *ReportService) DeleteReport(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE url = ?", url)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pageprofile.Errorf(pageprofile.ENOTFOUND, "report not found: %s", url)
	}
	return nil
}

func (s *ReportService) findBlocks(ctx context.Context, reportID string) ([]pageprofile.ContentBlock, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, image_src, description, raw_html
		FROM blocks
		WHERE report_id = ?
		ORDER BY position ASC
	`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := []pageprofile.ContentBlock{}
	for rows.Next() {
		var b pageprofile.ContentBlock
		if err := rows.Scan(&b.Title, &b.ImageSrc, &b.Description, &b.RawHTML); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*pageprofile.Report, error) {
	var report pageprofile.Report
	var profile, captions, markdown, createdAt string

	err := row.Scan(&report.ID, &report.URL, &profile, &captions, &markdown, &report.HTMLHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pageprofile.Errorf(pageprofile.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	if err := unmarshalColumn(profile, &report.Profile, "profile"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(captions, &report.Captions, "captions"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(markdown, &report.Markdown, "markdown"); err != nil {
		return nil, err
	}
	if len(report.Markdown) == 0 {
		report.Markdown = nil
	}

	if report.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &report, nil
}

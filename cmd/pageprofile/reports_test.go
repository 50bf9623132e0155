package main_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pageprofile"
	main "github.com/fwojciec/pageprofile/cmd/pageprofile"
	"github.com/fwojciec/pageprofile/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists reports with URL and counts", func(t *testing.T) {
		t.Parallel()

		var gotFilter pageprofile.ReportFilter
		deps, stdout, _ := newDeps()
		deps.Reports = &mock.ReportService{
			FindReportsFn: func(_ context.Context, filter pageprofile.ReportFilter) ([]*pageprofile.Report, error) {
				gotFilter = filter
				return []*pageprofile.Report{
					{
						URL:       "https://acme.com/services",
						Blocks:    make([]pageprofile.ContentBlock, 3),
						Captions:  make([]pageprofile.ImageCaption, 2),
						CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}
		cmd := &main.ListCmd{Hash: "abc", Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-01 10:00:00  https://acme.com/services  3 blocks  2 captions\n", stdout.String())
		require.NotNil(t, gotFilter.HTMLHash)
		assert.Equal(t, "abc", *gotFilter.HTMLHash)
		assert.Equal(t, 10, gotFilter.Limit)
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Reports = &mock.ReportService{
			FindReportsFn: func(context.Context, pageprofile.ReportFilter) ([]*pageprofile.Report, error) {
				return nil, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No reports found")
	})

	t.Run("surfaces service errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Reports = &mock.ReportService{
			FindReportsFn: func(context.Context, pageprofile.ReportFilter) ([]*pageprofile.Report, error) {
				return nil, errors.New("db locked")
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints report JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Reports = &mock.ReportService{
			FindReportByURLFn: func(_ context.Context, url string) (*pageprofile.Report, error) {
				return &pageprofile.Report{URL: url, Profile: &pageprofile.PageProfile{Name: "Acme"}}, nil
			},
		}

		err := (&main.ShowCmd{URL: "https://acme.com"}).Run(deps)

		require.NoError(t, err)
		var report pageprofile.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		assert.Equal(t, "https://acme.com", report.URL)
		assert.Equal(t, "Acme", report.Profile.Name)
	})

	t.Run("explains missing report", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Reports = &mock.ReportService{
			FindReportByURLFn: func(context.Context, string) (*pageprofile.Report, error) {
				return nil, pageprofile.Errorf(pageprofile.ENOTFOUND, "report not found")
			},
		}

		err := (&main.ShowCmd{URL: "https://acme.com"}).Run(deps)

		assert.Equal(t, pageprofile.ENOTFOUND, pageprofile.ErrorCode(err))
		assert.Contains(t, stderr.String(), "pageprofile list")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()

		err := (&main.DeleteCmd{URL: "https://acme.com"}).Run(deps)

		assert.Equal(t, pageprofile.EINVALID, pageprofile.ErrorCode(err))
	})

	t.Run("deletes report", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := newDeps()
		deps.Reports = &mock.ReportService{
			DeleteReportFn: func(_ context.Context, url string) error {
				deleted = url
				return nil
			},
		}

		err := (&main.DeleteCmd{URL: "https://acme.com", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://acme.com", deleted)
		assert.Equal(t, "Deleted report for https://acme.com\n", stdout.String())
	})

	t.Run("explains missing report", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Reports = &mock.ReportService{
			DeleteReportFn: func(context.Context, string) error {
				return pageprofile.Errorf(pageprofile.ENOTFOUND, "report not found")
			},
		}

		err := (&main.DeleteCmd{URL: "https://acme.com", Force: true}).Run(deps)

		assert.Equal(t, pageprofile.ENOTFOUND, pageprofile.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no report for")
	})
}

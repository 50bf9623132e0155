package main_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/pageprofile"
	main "github.com/fwojciec/pageprofile/cmd/pageprofile"
	"github.com/fwojciec/pageprofile/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesRenderer() *mock.Renderer {
	return &mock.Renderer{
		RenderFn: func(_ context.Context, url string) (*pageprofile.RenderedPage, error) {
			if url == "https://acme.com/missing" {
				return nil, pageprofile.Errorf(pageprofile.ENOTFOUND, "page not found: %s", url)
			}
			return &pageprofile.RenderedPage{
				URL:     url,
				HTML:    servicesHTML,
				Console: []pageprofile.ConsoleLine{{Kind: "info", Text: `fonts ["Lato"]`}},
			}, nil
		},
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints reports as JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Renderer = servicesRenderer()
		cmd := &main.AnalyzeCmd{URLs: []string{"https://acme.com/services"}, Concurrency: 1}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var reports []pageprofile.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "https://acme.com/services", reports[0].URL)
		assert.Equal(t, "Acme Home Services", reports[0].Profile.Name)
		assert.Equal(t, []string{"Lato"}, reports[0].Profile.Fonts)
		assert.Len(t, reports[0].Blocks, 3)
		assert.Len(t, reports[0].Captions, 3)
		assert.Len(t, reports[0].HTMLHash, 16)
	})

	t.Run("adds markdown when converter is wired", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Renderer = servicesRenderer()
		deps.Converter = &mock.Converter{
			ConvertFn: func(string, string) (string, error) { return "### card", nil },
		}
		cmd := &main.AnalyzeCmd{URLs: []string{"https://acme.com/services"}, Markdown: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var reports []pageprofile.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, []string{"### card", "### card", "### card"}, reports[0].Markdown)
	})

	t.Run("saves reports to service and directory", func(t *testing.T) {
		t.Parallel()

		var saved []string
		deps, _, stderr := newDeps()
		deps.Renderer = servicesRenderer()
		deps.Reports = &mock.ReportService{
			SaveReportFn: func(_ context.Context, r *pageprofile.Report) error {
				saved = append(saved, r.URL)
				return nil
			},
		}
		out := t.TempDir()
		cmd := &main.AnalyzeCmd{
			URLs: []string{"https://acme.com/services"},
			Save: true,
			Out:  out,
			Name: "acme",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://acme.com/services"}, saved)
		assert.FileExists(t, filepath.Join(out, "acme", "acme.com", "services.json"))
		assert.FileExists(t, filepath.Join(out, "acme", "blocks.md"))
		assert.Contains(t, stderr.String(), "Saved 1 of 1 pages")
	})

	t.Run("burst admits same-site pages without pacing", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Renderer = servicesRenderer()
		cmd := &main.AnalyzeCmd{
			URLs:        []string{"https://acme.com/a", "https://www.acme.com/b", "https://acme.com/c"},
			Concurrency: 3,
			RPS:         0.2,
			Burst:       3,
		}

		start := time.Now()
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
		var reports []pageprofile.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
		assert.Len(t, reports, 3)
	})

	t.Run("skips failed pages", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Renderer = servicesRenderer()
		cmd := &main.AnalyzeCmd{URLs: []string{"https://acme.com/missing", "https://acme.com/"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip https://acme.com/missing")
		var reports []pageprofile.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "https://acme.com/", reports[0].URL)
	})

	t.Run("fails when every page fails", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Renderer = servicesRenderer()
		cmd := &main.AnalyzeCmd{URLs: []string{"https://acme.com/missing"}}

		err := cmd.Run(deps)

		assert.Error(t, err)
		assert.Equal(t, "[]\n", stdout.String())
	})
}

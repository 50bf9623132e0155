package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pageprofile"
	"github.com/fwojciec/pageprofile/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(url string) *pageprofile.Report {
	return &pageprofile.Report{
		URL:     url,
		Profile: &pageprofile.PageProfile{Name: "Acme"},
		Blocks: []pageprofile.ContentBlock{
			{ImageSrc: "a.jpg", Title: "Plumbing", Description: "Plumbing We fix pipes."},
		},
	}
}

func TestReportStore(t *testing.T) {
	t.Parallel()

	t.Run("save writes to temp directory only", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir, "acme")

		require.NoError(t, store.Save(context.Background(), newReport("https://acme.com/services")))

		assert.FileExists(t, filepath.Join(dir, "acme.tmp", "acme.com", "services.json"))
		assert.NoDirExists(t, filepath.Join(dir, "acme"))
	})

	t.Run("commit moves reports and writes block summary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir, "acme")
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, newReport("https://acme.com/")))
		require.NoError(t, store.Commit())

		assert.NoDirExists(t, filepath.Join(dir, "acme.tmp"))

		data, err := os.ReadFile(filepath.Join(dir, "acme", "acme.com", "index.json"))
		require.NoError(t, err)
		var got pageprofile.Report
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "https://acme.com/", got.URL)
		assert.Equal(t, "Acme", got.Profile.Name)

		summary, err := os.ReadFile(filepath.Join(dir, "acme", fs.SummaryFile))
		require.NoError(t, err)
		assert.Equal(t, "## Page: https://acme.com/\n- Plumbing [a.jpg]\n  Plumbing We fix pipes.", string(summary))
	})

	t.Run("commit replaces previous output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()

		first := fs.NewReportStore(dir, "acme")
		require.NoError(t, first.Save(ctx, newReport("https://acme.com/old")))
		require.NoError(t, first.Commit())

		second := fs.NewReportStore(dir, "acme")
		require.NoError(t, second.Save(ctx, newReport("https://acme.com/new")))
		require.NoError(t, second.Commit())

		assert.NoFileExists(t, filepath.Join(dir, "acme", "acme.com", "old.json"))
		assert.FileExists(t, filepath.Join(dir, "acme", "acme.com", "new.json"))
	})

	t.Run("abort discards pending reports", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir, "acme")

		require.NoError(t, store.Save(context.Background(), newReport("https://acme.com/")))
		require.NoError(t, store.Abort())

		assert.NoDirExists(t, filepath.Join(dir, "acme.tmp"))
		assert.NoDirExists(t, filepath.Join(dir, "acme"))
	})

	t.Run("rejects invalid report", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(t.TempDir(), "acme")

		err := store.Save(context.Background(), &pageprofile.Report{URL: "https://acme.com"})

		assert.Equal(t, pageprofile.EINVALID, pageprofile.ErrorCode(err))
	})

	t.Run("rejects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		store := fs.NewReportStore(t.TempDir(), "acme")

		err := store.Save(ctx, newReport("https://acme.com/"))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

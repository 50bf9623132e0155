package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fwojciec/pageprofile"
)

// SummaryFile is the name of the Markdown block listing written on Commit.
const SummaryFile = "blocks.md"

// Ensure ReportStore implements pageprofile.ReportStore at compile time.
var _ pageprofile.ReportStore = (*ReportStore)(nil)

// ReportStore implements pageprofile.ReportStore with atomic update
// semantics. Reports are written as JSON to baseDir/name.tmp and the
// directory is moved to baseDir/name on Commit, together with a Markdown
// summary of every saved page's blocks.
//
// ReportStore is safe for concurrent use.
type ReportStore struct {
	baseDir string
	name    string

	mu    sync.Mutex
	pages []pageprofile.PageBlocks
}

// NewReportStore creates a new ReportStore.
func NewReportStore(baseDir, name string) *ReportStore {
	return &ReportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ReportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ReportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the report to the temporary directory.
func (s *ReportStore) Save(ctx context.Context, report *pageprofile.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := report.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(report.URL, ".json")
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.pages = append(s.pages, report.PageBlocks())
	s.mu.Unlock()
	return nil
}

// Commit writes the block summary and replaces the final directory with
// the temporary one.
func (s *ReportStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages := append([]pageprofile.PageBlocks(nil), s.pages...)
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].URL < pages[j].URL })

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	summary := pageprofile.FormatBlocks(pages)
	if err := os.WriteFile(filepath.Join(s.tempDir(), SummaryFile), []byte(summary), 0644); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	s.pages = nil
	return nil
}

// Abort discards everything saved since the last Commit.
func (s *ReportStore) Abort() error {
	s.mu.Lock()
	s.pages = nil
	s.mu.Unlock()
	return os.RemoveAll(s.tempDir())
}

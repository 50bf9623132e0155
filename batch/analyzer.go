// Package batch renders and analyzes pages in bulk.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pageprofile"
	"golang.org/x/sync/errgroup"
)

var _ pageprofile.Analyzer = (*Analyzer)(nil)

// Analyzer runs the profile, block and caption extractors over a rendered
// page and assembles a Report.
type Analyzer struct {
	Profiler pageprofile.Profiler
	Blocks   pageprofile.BlockDetector
	Captions pageprofile.CaptionExtractor

	// Converter, when set, renders every block's raw HTML as Markdown.
	Converter pageprofile.Converter

	// Now returns the report timestamp, stored in UTC. Defaults to time.Now.
	Now func() time.Time
}

// Analyze builds the report for one page. The three extractors run
// concurrently; any failure fails the report.
func (a *Analyzer) Analyze(ctx context.Context, page *pageprofile.RenderedPage) (*pageprofile.Report, error) {
	if page == nil || page.URL == "" {
		return nil, pageprofile.Errorf(pageprofile.EINVALID, "rendered page URL required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		profile  *pageprofile.PageProfile
		blocks   []pageprofile.ContentBlock
		captions []pageprofile.ImageCaption
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		profile, err = a.Profiler.Profile(&pageprofile.ProfileInput{
			HTML:     page.HTML,
			Console:  page.Console,
			Entities: page.Entities,
		})
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		blocks, err = a.Blocks.DetectBlocks(page.HTML)
		if err != nil {
			return fmt.Errorf("blocks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		captions, err = a.Captions.Captions(page.HTML)
		if err != nil {
			return fmt.Errorf("captions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &pageprofile.Report{
		URL:       page.URL,
		Profile:   profile,
		Blocks:    blocks,
		Captions:  captions,
		HTMLHash:  HashHTML(page.HTML),
		CreatedAt: a.now(),
	}

	if a.Converter != nil && len(blocks) > 0 {
		report.Markdown = make([]string, len(blocks))
		for i, block := range blocks {
			md, err := a.Converter.Convert(block.RawHTML, page.URL)
			if err != nil {
				return nil, fmt.Errorf("convert block %d: %w", i, err)
			}
			report.Markdown[i] = md
		}
	}

	return report, nil
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

// HashHTML returns the xxhash of a document as 16 hex digits.
func HashHTML(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

package batch

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pageprofile"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages rendered at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// Runner renders, analyzes and optionally persists a list of pages.
type Runner struct {
	Renderer pageprofile.Renderer
	Analyzer pageprofile.Analyzer

	// Reports, when set, receives every successful report.
	Reports pageprofile.ReportService
	// Store, when set, receives every successful report and is committed
	// once the run finishes.
	Store pageprofile.ReportStore

	RateLimiter pageprofile.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logf        pageprofile.LogFunc
}

// Result holds the outcome of a run.
type Result struct {
	// Reports are the successful reports in input order.
	Reports []*pageprofile.Report
	Errors  []PageError
	Saved   int
}

// Failed returns the number of pages that could not be analyzed or saved.
func (r *Result) Failed() int { return len(r.Errors) }

// PageError records why one page failed.
type PageError struct {
	URL string
	Err error
}

func (e PageError) Error() string {
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

func (e PageError) Unwrap() error { return e.Err }

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

type pageResult struct {
	position int
	url      string
	report   *pageprofile.Report
	err      error
}

// Run processes urls with bounded concurrency. Individual page failures
// are collected in the result; Run itself fails only when the context is
// canceled or the store cannot be committed.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- r.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	results := make([]pageResult, total)
	for res := range resultCh {
		n := int(completed.Add(1))
		results[res.position] = res
		if res.err != nil {
			progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: res.url, Error: res.err})
			continue
		}
		progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: res.url})
	}

	if err := ctx.Err(); err != nil {
		if r.Store != nil {
			_ = r.Store.Abort()
		}
		return nil, err
	}

	result := &Result{}
	for _, res := range results {
		if res.err != nil {
			result.Errors = append(result.Errors, PageError{URL: res.url, Err: res.err})
			continue
		}
		if err := r.save(ctx, res.report); err != nil {
			result.Errors = append(result.Errors, PageError{URL: res.url, Err: err})
			continue
		}
		if r.Reports != nil || r.Store != nil {
			result.Saved++
		}
		result.Reports = append(result.Reports, res.report)
	}

	if r.Store != nil {
		if err := r.Store.Commit(); err != nil {
			_ = r.Store.Abort()
			return nil, fmt.Errorf("commit reports: %w", err)
		}
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

func (r *Runner) save(ctx context.Context, report *pageprofile.Report) error {
	if r.Reports != nil {
		if err := r.Reports.SaveReport(ctx, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}
	if r.Store != nil {
		if err := r.Store.Save(ctx, report); err != nil {
			return fmt.Errorf("store report: %w", err)
		}
	}
	return nil
}

// processURL renders and analyzes a single URL.
func (r *Runner) processURL(ctx context.Context, position int, rawURL string) pageResult {
	result := pageResult{position: position, url: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		result.err = pageprofile.Errorf(pageprofile.EINVALID, "invalid URL %q", rawURL)
		return result
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := FetchWithRetryDelays(ctx, rawURL, r.Renderer.Render, r.Logf, delays)
	if err != nil {
		result.err = fmt.Errorf("render: %w", err)
		return result
	}

	report, err := r.Analyzer.Analyze(ctx, page)
	if err != nil {
		result.err = fmt.Errorf("analyze: %w", err)
		return result
	}
	result.report = report
	return result
}

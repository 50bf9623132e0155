package main

import (
	"fmt"

	"github.com/fwojciec/pageprofile"
	"github.com/fwojciec/pageprofile/batch"
	"github.com/fwojciec/pageprofile/fs"
	ppslog "github.com/fwojciec/pageprofile/slog"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	runner := &batch.Runner{
		Renderer: deps.Renderer,
		Analyzer: &batch.Analyzer{
			Profiler:  deps.Profiler,
			Blocks:    deps.Blocks,
			Captions:  deps.Captions,
			Converter: deps.Converter,
		},
		Concurrency: c.Concurrency,
	}
	if c.RPS > 0 {
		runner.RateLimiter = batch.NewDomainLimiter(c.RPS, batch.WithBurst(c.Burst))
	}
	if deps.Logger != nil {
		runner.Logf = ppslog.LogFunc(deps.Logger)
	}
	if c.Save {
		runner.Reports = deps.Reports
	}
	if c.Out != "" {
		runner.Store = fs.NewReportStore(c.Out, c.Name)
	}

	progress := func(event batch.ProgressEvent) {
		if event.Type == batch.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := runner.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	reports := result.Reports
	if reports == nil {
		reports = []*pageprofile.Report{}
	}
	if err := writeJSON(deps.Stdout, reports); err != nil {
		return err
	}

	if c.Save || c.Out != "" {
		fmt.Fprintf(deps.Stderr, "Saved %d of %d pages\n", result.Saved, len(c.URLs))
	}
	if len(result.Reports) == 0 && result.Failed() > 0 {
		return fmt.Errorf("all %d pages failed", result.Failed())
	}
	return nil
}

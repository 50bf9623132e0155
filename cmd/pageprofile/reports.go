package main

import (
	"fmt"

	"github.com/fwojciec/pageprofile"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pageprofile.ReportFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Hash != "" {
		filter.HTMLHash = &c.Hash
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageprofile.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'pageprofile analyze --save' to create some.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d blocks  %d captions\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.URL, len(r.Blocks), len(r.Captions))
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByURL(deps.Ctx, c.URL)
	if err != nil {
		if pageprofile.ErrorCode(err) == pageprofile.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no report for %q. Use 'pageprofile list' to see stored reports.\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pageprofile.ErrorMessage(err))
		}
		return err
	}
	return writeJSON(deps.Stdout, report)
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pageprofile.Errorf(pageprofile.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Reports.DeleteReport(deps.Ctx, c.URL); err != nil {
		if pageprofile.ErrorCode(err) == pageprofile.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no report for %q. Use 'pageprofile list' to see stored reports.\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pageprofile.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted report for %s\n", c.URL)
	return nil
}

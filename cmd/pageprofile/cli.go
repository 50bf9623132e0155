package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pageprofile"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Profiler  pageprofile.Profiler
	Blocks    pageprofile.BlockDetector
	Captions  pageprofile.CaptionExtractor
	Converter pageprofile.Converter
	Renderer  pageprofile.Renderer
	Reports   pageprofile.ReportService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool   `short:"v" help:"Log extractor and service activity to stderr"`
	DB       string `name:"db" env:"PAGEPROFILE_DB" help:"SQLite database path"`
	Metadata string `enum:"none,trafilatura,readability" default:"none" help:"Add page metadata to profiles (none, trafilatura, readability)"`

	Analyze  AnalyzeCmd  `cmd:"" help:"Render pages and print their reports"`
	Profile  ProfileCmd  `cmd:"" help:"Profile a saved HTML file"`
	Blocks   BlocksCmd   `cmd:"" help:"Detect repeating blocks in a saved HTML file"`
	Captions CaptionsCmd `cmd:"" help:"Extract image captions from a saved HTML file"`
	List     ListCmd     `cmd:"" help:"List stored reports"`
	Show     ShowCmd     `cmd:"" help:"Print a stored report"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored report"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs"`
	Static      bool          `help:"Fetch raw HTML over HTTP instead of rendering in Chrome"`
	Stealth     bool          `help:"Apply stealth evasions to browser pages"`
	Save        bool          `short:"s" help:"Store reports in the database"`
	Out         string        `short:"o" type:"path" help:"Write reports as JSON files under this directory"`
	Name        string        `default:"reports" help:"Name of the report directory created under --out"`
	Markdown    bool          `short:"m" help:"Add a Markdown rendering of every block"`
	Concurrency int           `short:"c" default:"4" env:"PAGEPROFILE_CONCURRENCY" help:"Pages rendered at once"`
	Timeout     time.Duration `default:"30s" env:"PAGEPROFILE_TIMEOUT" help:"Per-page render timeout"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per domain"`
	Burst       int           `default:"1" help:"Requests per domain allowed before pacing starts"`
	Proxy       string        `env:"PAGEPROFILE_PROXY" help:"Route browser traffic through host:port"`
	PageBudget  int64         `name:"page-budget" default:"75" help:"Pages rendered before the browser is relaunched"`
}

// ProfileCmd is the "profile" subcommand.
type ProfileCmd struct {
	File     string `arg:"" type:"existingfile" help:"HTML file"`
	Console  string `type:"existingfile" help:"JSON array of console lines ({\"kind\",\"text\"})"`
	Entities string `type:"existingfile" help:"JSON array of extracted entities"`
}

// BlocksCmd is the "blocks" subcommand.
type BlocksCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML file"`
	URL  string `help:"URL to tag the blocks with (defaults to the file path)"`
	Text bool   `help:"Print a readable listing instead of JSON"`
}

// CaptionsCmd is the "captions" subcommand.
type CaptionsCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Hash   string `help:"Only reports whose HTML hash matches"`
	Limit  int    `default:"0" help:"Maximum number of reports (0 = all)"`
	Offset int    `default:"0" help:"Number of reports to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Force bool   `help:"Confirm deletion"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

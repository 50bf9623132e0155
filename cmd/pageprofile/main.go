package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pageprofile"
	"github.com/fwojciec/pageprofile/goquery"
	"github.com/fwojciec/pageprofile/htmltomarkdown"
	pphttp "github.com/fwojciec/pageprofile/http"
	"github.com/fwojciec/pageprofile/readability"
	"github.com/fwojciec/pageprofile/rod"
	ppslog "github.com/fwojciec/pageprofile/slog"
	"github.com/fwojciec/pageprofile/sqlite"
	"github.com/fwojciec/pageprofile/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageprofile"),
		kong.Description("Extract contact profiles, repeating blocks and image captions from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pageprofile --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if err := m.wireExtractors(deps, cli); err != nil {
		return err
	}

	needsDB := cmd == "list" || cmd == "show" || cmd == "delete" || (cmd == "analyze" && cli.Analyze.Save)
	if needsDB {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGEPROFILE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Reports = sqlite.NewReportService(m.DB)
		if cli.Verbose {
			deps.Reports = ppslog.NewLoggingReportService(deps.Reports, logger)
		}
	}

	if cmd == "analyze" {
		renderer, err := newRenderer(&cli.Analyze, ppslog.LogFunc(logger))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer renderer.Close()

		deps.Renderer = renderer
		if cli.Verbose {
			deps.Renderer = rod.NewLoggingRenderer(renderer, logger)
		}
		if cli.Analyze.Markdown {
			deps.Converter = htmltomarkdown.NewConverter()
		}
	}

	return kongCtx.Run(deps)
}

// wireExtractors builds the goquery extractors, decorated with logging in
// verbose mode.
func (m *Main) wireExtractors(deps *Dependencies, cli *CLI) error {
	opts := []goquery.Option{
		goquery.WithLogFunc(ppslog.LogFunc(deps.Logger)),
	}
	switch cli.Metadata {
	case "trafilatura":
		opts = append(opts, goquery.WithMetadataExtractor(trafilatura.NewMetadataExtractor()))
	case "readability":
		opts = append(opts, goquery.WithMetadataExtractor(readability.NewMetadataExtractor()))
	case "", "none":
	default:
		return pageprofile.Errorf(pageprofile.EINVALID, "unknown metadata extractor %q", cli.Metadata)
	}

	var (
		profiler pageprofile.Profiler         = goquery.NewProfiler(opts...)
		blocks   pageprofile.BlockDetector    = goquery.NewBlockDetector(opts...)
		captions pageprofile.CaptionExtractor = goquery.NewCaptionExtractor(opts...)
	)
	if cli.Verbose {
		profiler = ppslog.NewLoggingProfiler(profiler, deps.Logger)
		blocks = ppslog.NewLoggingBlockDetector(blocks, deps.Logger)
		captions = ppslog.NewLoggingCaptionExtractor(captions, deps.Logger)
	}

	deps.Profiler = profiler
	deps.Blocks = blocks
	deps.Captions = captions
	return nil
}

func newRenderer(c *AnalyzeCmd, logf pageprofile.LogFunc) (pageprofile.Renderer, error) {
	if c.Static {
		return pphttp.NewRenderer(pphttp.WithTimeout(c.Timeout)), nil
	}
	managerOpts := []rod.ManagerOption{
		rod.WithPageBudget(c.PageBudget),
		rod.WithManagerLogf(logf),
	}
	if c.Proxy != "" {
		managerOpts = append(managerOpts, rod.WithProxy(c.Proxy))
	}
	opts := []rod.RendererOption{
		rod.WithTimeout(c.Timeout),
		rod.WithManagerOptions(managerOpts...),
	}
	if c.Stealth {
		opts = append(opts, rod.WithStealth())
	}
	return rod.NewRenderer(opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEPROFILE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pageprofile.db"
	}
	dir := filepath.Join(home, ".pageprofile")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pageprofile.db")
}

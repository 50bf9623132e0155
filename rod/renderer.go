package rod

import (
	"context"
	_ "embed"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pageprofile"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// brandScript logs the computed fonts and dominant colors of the page as
// `fonts [..]` and `colors [..]` info lines.
//
//go:embed brand.js
var brandScript string

// brandLines is the number of telemetry lines brandScript emits.
const brandLines = 2

// Defaults for Renderer.
const (
	DefaultTimeout = 30 * time.Second
	DefaultSettle  = 500 * time.Millisecond
)

// Ensure Renderer implements pageprofile.Renderer at compile time.
var _ pageprofile.Renderer = (*Renderer)(nil)

// Renderer renders pages in headless Chrome, runs the brand script and
// captures the browser console.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager     *BrowserManager
	managerOpts []ManagerOption
	timeout     time.Duration
	settle      time.Duration
	stealth     bool
	closed      atomic.Bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTimeout bounds the time spent rendering a single page.
func WithTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithSettle sets how long to wait for the brand script's console lines
// after it ran.
func WithSettle(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.settle = d
	}
}

// WithStealth opens pages with go-rod/stealth evasions applied.
func WithStealth() RendererOption {
	return func(r *Renderer) {
		r.stealth = true
	}
}

// WithManagerOptions passes options to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) RendererOption {
	return func(r *Renderer) {
		r.managerOpts = append(r.managerOpts, opts...)
	}
}

// NewRenderer creates a new Renderer backed by a recycling headless browser.
// Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		timeout: DefaultTimeout,
		settle:  DefaultSettle,
	}
	for _, opt := range opts {
		opt(r)
	}

	manager, err := NewBrowserManager(r.managerOpts...)
	if err != nil {
		return nil, err
	}
	r.manager = manager
	return r, nil
}

// Render navigates to the URL, runs the brand script and returns the
// rendered HTML together with every console line the page produced.
func (r *Renderer) Render(ctx context.Context, url string) (*pageprofile.RenderedPage, error) {
	if r.closed.Load() {
		return nil, pageprofile.Errorf(pageprofile.EINVALID, "renderer is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := r.openPage()
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	recorder := newConsoleRecorder()
	go page.EachEvent(recorder.record)()

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", url, err)
	}

	if _, err := page.Eval(brandScript); err != nil {
		return nil, fmt.Errorf("running brand script: %w", err)
	}
	recorder.waitTelemetry(ctx, brandLines, r.settle)

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	r.manager.MarkRendered()

	return &pageprofile.RenderedPage{
		URL:     url,
		HTML:    html,
		Console: recorder.snapshot(),
	}, nil
}

func (r *Renderer) openPage() (*rod.Page, error) {
	browser := r.manager.Browser()
	if browser == nil {
		return nil, pageprofile.Errorf(pageprofile.EINTERNAL, "no active browser")
	}
	if r.stealth {
		return stealth.Page(browser)
	}
	return browser.Page(proto.TargetCreateTarget{})
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (r *Renderer) LauncherPID() int {
	return r.manager.LauncherPID()
}

package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/pageprofile"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Browser defaults. Block detection depends on layout, so pages render in a
// desktop-sized window unless told otherwise.
const (
	DefaultPageBudget   = 75
	DefaultWindowWidth  = 1366
	DefaultWindowHeight = 768
)

// BrowserManager owns the Chrome process behind a Renderer. After
// budget rendered pages the process is swapped for a fresh one; a failed
// swap keeps the old process running and is retried on the next call.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	budget   int64
	bin      string
	proxy    string
	width    int
	height   int
	headless bool
	logf     pageprofile.LogFunc

	rendered atomic.Int64
	recycles atomic.Int64
	closed   atomic.Bool

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithPageBudget sets the number of pages rendered before the browser is
// replaced. Values below 1 are ignored.
func WithPageBudget(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.budget = n
		}
	}
}

// WithBrowserBin uses the Chrome binary at path.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// WithHeadful shows the browser window.
func WithHeadful() ManagerOption {
	return func(bm *BrowserManager) {
		bm.headless = false
	}
}

// WithProxy routes browser traffic through host:port.
func WithProxy(host string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.proxy = host
	}
}

// WithWindowSize sets the browser window in CSS pixels.
func WithWindowSize(width, height int) ManagerOption {
	return func(bm *BrowserManager) {
		if width > 0 && height > 0 {
			bm.width, bm.height = width, height
		}
	}
}

// WithManagerLogf reports browser relaunches and relaunch failures.
func WithManagerLogf(logf pageprofile.LogFunc) ManagerOption {
	return func(bm *BrowserManager) {
		bm.logf = logf
	}
}

// NewBrowserManager launches a browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		budget:   DefaultPageBudget,
		width:    DefaultWindowWidth,
		height:   DefaultWindowHeight,
		headless: true,
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, l, err := bm.start()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, l
	return bm, nil
}

// Browser returns the live browser, relaunching it first when the page
// budget is spent. Returns nil after Close.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed.Load() {
		return nil
	}
	if bm.rendered.Load() >= bm.budget {
		bm.relaunch()
	}
	return bm.browser
}

// MarkRendered counts one page against the budget.
func (bm *BrowserManager) MarkRendered() {
	bm.rendered.Add(1)
}

// Recycles reports how many times the browser has been relaunched.
func (bm *BrowserManager) Recycles() int64 {
	return bm.recycles.Load()
}

// LauncherPID returns the process ID of the browser launcher, or 0.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()
	err := stop(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

func (bm *BrowserManager) start() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("window-size", fmt.Sprintf("%d,%d", bm.width, bm.height)).
		Leakless(true).
		Headless(bm.headless)
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}
	if bm.proxy != "" {
		l = l.Proxy(bm.proxy)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	// Without a default device the page viewport follows window-size.
	browser := rod.New().ControlURL(controlURL).NoDefaultDevice()
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}

// relaunch must be called with mu held.
func (bm *BrowserManager) relaunch() {
	browser, l, err := bm.start()
	if err != nil {
		bm.logf.Printf("relaunching browser after %d pages: %v", bm.rendered.Load(), err)
		return
	}

	_ = stop(bm.browser, bm.launcher)
	bm.browser, bm.launcher = browser, l
	bm.rendered.Store(0)
	n := bm.recycles.Add(1)
	bm.logf.Printf("browser relaunched (recycle %d)", n)
}

func stop(browser *rod.Browser, l *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}

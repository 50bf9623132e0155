package pageprofile

import "context"

// RenderedPage is what a browser-automation collaborator hands over for one
// page: the rendered document plus the console output of injected scripts.
type RenderedPage struct {
	URL     string
	HTML    string
	Console []ConsoleLine

	// Entities is an optional JSON array of ExtractedEntity.
	Entities []byte
}

// Renderer retrieves a rendered page from a URL.
// Implementations may use browser automation to execute JavaScript and
// capture console telemetry; static implementations return no console lines.
type Renderer interface {
	// Render navigates to the URL, waits for the page to settle, and returns
	// the rendered HTML with any captured console lines.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (*RenderedPage, error)

	// Close releases renderer resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// DomainLimiter rate limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

package mock

import (
	"context"

	"github.com/fwojciec/pageprofile"
)

var _ pageprofile.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pageprofile.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (*pageprofile.RenderedPage, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (*pageprofile.RenderedPage, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

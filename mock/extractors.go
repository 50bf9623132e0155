package mock

import "github.com/fwojciec/pageprofile"

var (
	_ pageprofile.Profiler         = (*Profiler)(nil)
	_ pageprofile.BlockDetector    = (*BlockDetector)(nil)
	_ pageprofile.CaptionExtractor = (*CaptionExtractor)(nil)
	_ pageprofile.ContactLocator   = (*ContactLocator)(nil)
)

// Profiler is a mock implementation of pageprofile.Profiler.
type Profiler struct {
	ProfileFn func(input *pageprofile.ProfileInput) (*pageprofile.PageProfile, error)
}

func (p *Profiler) Profile(input *pageprofile.ProfileInput) (*pageprofile.PageProfile, error) {
	return p.ProfileFn(input)
}

// BlockDetector is a mock implementation of pageprofile.BlockDetector.
type BlockDetector struct {
	DetectBlocksFn func(html string) ([]pageprofile.ContentBlock, error)
}

func (d *BlockDetector) DetectBlocks(html string) ([]pageprofile.ContentBlock, error) {
	return d.DetectBlocksFn(html)
}

// CaptionExtractor is a mock implementation of pageprofile.CaptionExtractor.
type CaptionExtractor struct {
	CaptionsFn func(html string) ([]pageprofile.ImageCaption, error)
}

func (e *CaptionExtractor) Captions(html string) ([]pageprofile.ImageCaption, error) {
	return e.CaptionsFn(html)
}

// ContactLocator is a mock implementation of pageprofile.ContactLocator.
type ContactLocator struct {
	LocateFn func(html string) (pageprofile.ContactCandidates, error)
}

func (l *ContactLocator) Locate(html string) (pageprofile.ContactCandidates, error) {
	return l.LocateFn(html)
}

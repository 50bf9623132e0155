package goquery

import (
	"github.com/fwojciec/pageprofile"
)

// Ensure CaptionExtractor implements pageprofile.CaptionExtractor.
var _ pageprofile.CaptionExtractor = (*CaptionExtractor)(nil)

// CaptionType is the media type reported for every caption.
const CaptionType = "image"

// CaptionExtractor turns the cards found by a BlockDetector into cleaned
// image captions.
type CaptionExtractor struct {
	settings settings
	detector *BlockDetector
}

// NewCaptionExtractor creates a new CaptionExtractor.
func NewCaptionExtractor(opts ...Option) *CaptionExtractor {
	s := newSettings(opts)
	return &CaptionExtractor{
		settings: s,
		detector: &BlockDetector{settings: s},
	}
}

// Captions implements pageprofile.CaptionExtractor.
func (e *CaptionExtractor) Captions(html string) ([]pageprofile.ImageCaption, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	cards := e.detector.detect(doc)
	captions := make([]pageprofile.ImageCaption, 0, len(cards))
	for _, c := range cards {
		format := pageprofile.ImageFormat(c.ImageSrc)
		img := pageprofile.MediaImage{
			Src:    c.ImageSrc,
			Alt:    c.alt,
			Desc:   pageprofile.CollapseWhitespace(c.Description),
			Type:   CaptionType,
			Score:  pageprofile.ScoreImage(c.alt, c.Description, format, c.width),
			Format: format,
			Width:  c.width,
		}
		captions = append(captions, pageprofile.BuildCaption(img, e.settings.logf))
	}
	return captions, nil
}

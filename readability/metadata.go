// Package readability reads page metadata with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pageprofile"
	"github.com/go-shiori/go-readability"
)

// Ensure MetadataExtractor implements pageprofile.MetadataExtractor at compile time.
var _ pageprofile.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor wraps go-readability. It is lighter than the
// trafilatura implementation and falls back to the article excerpt when the
// page has no description meta tag. It does not report the page language.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata implements pageprofile.MetadataExtractor.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*pageprofile.PageMetadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pageprofile.Errorf(pageprofile.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pageprofile.PageMetadata{
		Title:       article.Title,
		SiteName:    article.SiteName,
		Description: article.Excerpt,
	}, nil
}

// Package trafilatura reads page metadata with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pageprofile"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure MetadataExtractor implements pageprofile.MetadataExtractor at compile time.
var _ pageprofile.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor wraps go-trafilatura's metadata extraction, which
// combines meta tags, JSON-LD and Dublin Core.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pageprofile.PageMetadata{
		Title:       result.Metadata.Title,
		SiteName:    result.Metadata.Sitename,
		Description: result.Metadata.Description,
		Language:    result.Metadata.Language,
	}, nil
}

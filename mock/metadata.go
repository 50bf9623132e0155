package mock

import "github.com/fwojciec/pageprofile"

var _ pageprofile.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pageprofile.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*pageprofile.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*pageprofile.PageMetadata, error) {
	return e.ExtractMetadataFn(html)
}

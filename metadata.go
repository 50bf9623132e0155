package pageprofile

// PageMetadata holds descriptive page metadata (meta tags, JSON+LD, etc.).
type PageMetadata struct {
	Title       string `json:"title,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

// MetadataExtractor reads descriptive metadata from an HTML page.
type MetadataExtractor interface {
	// ExtractMetadata processes raw HTML and returns the page metadata.
	// Returns EINVALID for empty input.
	ExtractMetadata(html string) (*PageMetadata, error)
}

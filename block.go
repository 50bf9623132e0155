package pageprofile

// ContentBlock is one card inside a repeating listing (services, products).
type ContentBlock struct {
	ImageSrc    string `json:"image_src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RawHTML     string `json:"raw_html"`
}

// PageBlocks groups the blocks of one page under the URL they came from.
type PageBlocks struct {
	URL    string         `json:"url"`
	Blocks []ContentBlock `json:"blocks"`
}

// BlockDetector finds structurally repeating sibling groups in a document.
type BlockDetector interface {
	// DetectBlocks returns the blocks of every repeating group, flattened in
	// document order and deduplicated by case-insensitive title.
	DetectBlocks(html string) ([]ContentBlock, error)
}

package pageprofile

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a block's raw markup,
	// into Markdown. Relative links and image sources resolve against
	// pageURL when it is set.
	Convert(html, pageURL string) (string, error)
}

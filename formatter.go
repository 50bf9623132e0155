package pageprofile

import "strings"

// FormatBlocks formats per-page block groups for display.
// Each page gets a heading with its URL; blocks list their title, image
// and description. Pages are separated by blank lines.
func FormatBlocks(pages []PageBlocks) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		var b strings.Builder
		b.WriteString("## Page: ")
		b.WriteString(page.URL)
		for _, block := range page.Blocks {
			b.WriteString("\n- ")
			b.WriteString(block.Title)
			if block.ImageSrc != "" {
				b.WriteString(" [")
				b.WriteString(block.ImageSrc)
				b.WriteString("]")
			}
			if block.Description != "" && block.Description != block.Title {
				b.WriteString("\n  ")
				b.WriteString(CollapseWhitespace(block.Description))
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

package pageprofile

import (
	"path"
	"strings"
)

// MediaImage is an image descriptor as handed over by a crawler's media list.
type MediaImage struct {
	Src    string  `json:"src"`
	Alt    string  `json:"alt"`
	Desc   string  `json:"desc"`
	Type   string  `json:"type"`
	Score  float64 `json:"score"`
	Format string  `json:"format"`
	Width  *int    `json:"width"`
}

// ImageCaption is an image with a cleaned description.
type ImageCaption struct {
	Src         string  `json:"src"`
	Alt         string  `json:"alt"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Score       float64 `json:"score"`
	Format      string  `json:"format"`
	Width       *int    `json:"width"`
}

// CaptionExtractor builds image captions for the repeating blocks of a page.
type CaptionExtractor interface {
	Captions(html string) ([]ImageCaption, error)
}

// BuildCaption cleans an image's description of scraping artifacts.
// Newlines are flattened and only the text before the first "Read More"
// is kept; a self-repeating leading phrase is then stripped and becomes
// the alt text when the image has none.
func BuildCaption(img MediaImage, logf LogFunc) ImageCaption {
	desc := strings.TrimSpace(strings.ReplaceAll(img.Desc, "\n", " "))
	if parts := SplitReadMore(desc); len(parts) > 0 {
		desc = parts[0]
	}
	cleaned := DetectAndStrip(desc, logf)

	alt := img.Alt
	if alt == "" {
		alt = cleaned.Prefix
	}

	return ImageCaption{
		Src:         img.Src,
		Alt:         alt,
		Description: cleaned.Cleaned,
		Type:        img.Type,
		Score:       img.Score,
		Format:      img.Format,
		Width:       img.Width,
	}
}

// ImageFormat returns the lowercase file extension of an image source
// without query string or fragment, e.g. "jpg". Returns "" if none.
func ImageFormat(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	return strings.TrimPrefix(strings.ToLower(path.Ext(src)), ".")
}

// MinScoredWidth is the width at which an image counts as content-sized.
const MinScoredWidth = 150

// ScoreImage counts the quality signals of an image: alt text, a
// content-sized width, a description and a raster format.
func ScoreImage(alt, desc, format string, width *int) float64 {
	var score float64
	if alt != "" {
		score++
	}
	if width != nil && *width >= MinScoredWidth {
		score++
	}
	if desc != "" {
		score++
	}
	switch format {
	case "jpg", "jpeg", "png", "webp", "gif":
		score++
	}
	return score
}

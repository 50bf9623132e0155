package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageprofile"
)

// Ensure BlockDetector implements pageprofile.BlockDetector.
var _ pageprofile.BlockDetector = (*BlockDetector)(nil)

// BlockDetector finds lists of repeated content cards without any
// page-specific selector.
//
// A container is an element whose element children all share one tag name
// and number at least MinContainerChildren. Each child is a card candidate;
// it is rejected when it has no image, its image is an SVG, its title spans
// lines, or its title is its entire text. Containers keeping fewer than
// MinGroupBlocks cards are dropped.
type BlockDetector struct {
	settings settings
}

// NewBlockDetector creates a new BlockDetector.
func NewBlockDetector(opts ...Option) *BlockDetector {
	return &BlockDetector{settings: newSettings(opts)}
}

// DetectBlocks implements pageprofile.BlockDetector.
func (d *BlockDetector) DetectBlocks(html string) ([]pageprofile.ContentBlock, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	cards := d.detect(doc)
	blocks := make([]pageprofile.ContentBlock, len(cards))
	for i, c := range cards {
		blocks[i] = c.ContentBlock
	}
	return blocks, nil
}

// card is an accepted block plus the image attributes the caption
// aggregator needs.
type card struct {
	pageprofile.ContentBlock
	alt   string
	width *int
}

// detect returns the flattened, deduplicated cards of every kept container
// in document order.
func (d *BlockDetector) detect(doc *goquery.Document) []card {
	var groups [][]card
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		children := s.Children()
		if !isContainer(children, d.settings.cfg.MinContainerChildren) {
			return
		}

		var group []card
		children.Each(func(_ int, child *goquery.Selection) {
			if c, ok := evaluateCard(child); ok {
				group = append(group, c)
			}
		})
		if len(group) >= d.settings.cfg.MinGroupBlocks {
			groups = append(groups, group)
		}
	})

	seen := make(map[string]struct{})
	cards := []card{}
	for _, group := range groups {
		for _, c := range group {
			key := strings.ToLower(strings.TrimSpace(c.Title))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			cards = append(cards, c)
		}
	}
	return cards
}

func isContainer(children *goquery.Selection, minChildren int) bool {
	if children.Length() < minChildren {
		return false
	}
	tag := goquery.NodeName(children.First())
	same := true
	children.EachWithBreak(func(_ int, child *goquery.Selection) bool {
		same = goquery.NodeName(child) == tag
		return same
	})
	return same
}

func evaluateCard(child *goquery.Selection) (card, bool) {
	img := child.Find("img").First()
	if img.Length() == 0 {
		return card{}, false
	}
	src := imageSource(img)
	if src == "" || strings.HasSuffix(strings.ToLower(src), ".svg") {
		return card{}, false
	}

	title := strings.TrimSpace(titleElement(child).Text())
	text := strings.TrimSpace(child.Text())
	if strings.Contains(title, "\n") || title == text {
		return card{}, false
	}

	raw, err := goquery.OuterHtml(child)
	if err != nil {
		return card{}, false
	}

	alt, _ := img.Attr("alt")
	return card{
		ContentBlock: pageprofile.ContentBlock{
			ImageSrc:    src,
			Title:       title,
			Description: text,
			RawHTML:     raw,
		},
		alt:   strings.TrimSpace(alt),
		width: imageWidth(img),
	}, true
}

// imageSource prefers the lazy-loading data-src attribute over src.
func imageSource(img *goquery.Selection) string {
	if src := strings.TrimSpace(img.AttrOr("data-src", "")); src != "" {
		return src
	}
	return strings.TrimSpace(img.AttrOr("src", ""))
}

func imageWidth(img *goquery.Selection) *int {
	v := strings.TrimSuffix(strings.TrimSpace(img.AttrOr("width", "")), "px")
	w, err := strconv.Atoi(v)
	if err != nil || w <= 0 {
		return nil
	}
	return &w
}

// titleElement returns the first descendant heading or element whose class
// mentions "title". The selection is empty when there is none.
func titleElement(child *goquery.Selection) *goquery.Selection {
	return child.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			return true
		}
		return attrContainsFold(s, "class", "title")
	}).First()
}

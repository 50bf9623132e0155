package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageprofile"
)

// Ensure ContactLocator implements pageprofile.ContactLocator.
var _ pageprofile.ContactLocator = (*ContactLocator)(nil)

// ContactLocator picks the region of a page most likely to hold contact
// details and runs the contact patterns over it.
//
// Regions are tried in order and only the first one with text is used:
// the first <footer> element, then every element whose class contains
// "footer", then the last few elements of <body>.
type ContactLocator struct {
	settings settings
}

// NewContactLocator creates a new ContactLocator.
func NewContactLocator(opts ...Option) *ContactLocator {
	return &ContactLocator{settings: newSettings(opts)}
}

// Locate implements pageprofile.ContactLocator.
func (l *ContactLocator) Locate(html string) (pageprofile.ContactCandidates, error) {
	doc, err := parse(html)
	if err != nil {
		return pageprofile.ContactCandidates{}, err
	}
	return l.locate(doc), nil
}

func (l *ContactLocator) locate(doc *goquery.Document) pageprofile.ContactCandidates {
	region, text := l.region(doc)
	c := pageprofile.ExtractContacts(text)
	c.Region = region
	return c
}

func (l *ContactLocator) region(doc *goquery.Document) (string, string) {
	if text := doc.Find("footer").First().Text(); strings.TrimSpace(text) != "" {
		return pageprofile.RegionFooter, text
	}

	var parts []string
	doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return attrContainsFold(s, "class", "footer")
	}).Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	if text := strings.Join(parts, " "); strings.TrimSpace(text) != "" {
		return pageprofile.RegionFooterClass, text
	}

	all := doc.Find("body").First().Find("*")
	start := all.Length() - l.settings.cfg.TailElements
	if start < 0 {
		start = 0
	}
	parts = parts[:0]
	all.Slice(start, all.Length()).Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	if text := strings.Join(parts, " "); strings.TrimSpace(text) != "" {
		return pageprofile.RegionTail, text
	}

	return "", ""
}

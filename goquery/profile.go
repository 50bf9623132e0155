package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageprofile"
)

// Ensure Profiler implements pageprofile.Profiler.
var _ pageprofile.Profiler = (*Profiler)(nil)

// Profiler aggregates the signals of one page into a PageProfile.
type Profiler struct {
	settings settings
	locator  *ContactLocator
}

// NewProfiler creates a new Profiler.
func NewProfiler(opts ...Option) *Profiler {
	s := newSettings(opts)
	return &Profiler{
		settings: s,
		locator:  &ContactLocator{settings: s},
	}
}

// Profile implements pageprofile.Profiler.
func (p *Profiler) Profile(input *pageprofile.ProfileInput) (*pageprofile.PageProfile, error) {
	entities, err := pageprofile.ParseEntities(input.Entities)
	if err != nil {
		return nil, err
	}

	doc, err := parse(input.HTML)
	if err != nil {
		return nil, err
	}

	contacts := p.locator.locate(doc)
	telemetry := pageprofile.MergeTelemetry(input.Console)

	profile := &pageprofile.PageProfile{
		Name:   strings.TrimSpace(doc.Find("title").First().Text()),
		Email:  firstNonEmpty(entityValue(entities, pageprofile.LabelEmail), contacts.FirstEmail()),
		Phone:  firstNonEmpty(entityValue(entities, pageprofile.LabelPhoneUS, pageprofile.LabelPhone), contacts.FirstPhone()),
		Logo:   logo(doc),
		Fonts:  telemetry.Fonts,
		Colors: telemetry.Colors,
	}
	if address := contacts.FirstAddress(); address != "" {
		profile.Address = pageprofile.ParseAddress(address)
	}

	if p.settings.metadata != nil {
		meta, err := p.settings.metadata.ExtractMetadata(input.HTML)
		if err != nil {
			p.settings.logf.Printf("metadata unavailable: %v", err)
		} else {
			profile.Metadata = meta
		}
	}

	return profile, nil
}

// entityValue returns the first entity value for the earliest label present.
func entityValue(entities pageprofile.Entities, labels ...string) string {
	for _, label := range labels {
		if v, ok := entities.First(label); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}

// logo returns the src of the first image whose src or class mentions "logo".
func logo(doc *goquery.Document) *string {
	img := doc.Find("img").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return attrContainsFold(s, "src", "logo") || attrContainsFold(s, "class", "logo")
	}).First()
	src, ok := img.Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return nil
	}
	src = strings.TrimSpace(src)
	return &src
}

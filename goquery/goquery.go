// Package goquery implements the document-tree heuristics of pageprofile on
// top of github.com/PuerkitoBio/goquery: contact region location, repeated
// block detection, and the profile and caption aggregators.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageprofile"
)

// Option configures the extractors in this package.
type Option func(*settings)

type settings struct {
	cfg      pageprofile.Config
	logf     pageprofile.LogFunc
	metadata pageprofile.MetadataExtractor
}

func newSettings(opts []Option) settings {
	s := settings{cfg: pageprofile.DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithConfig overrides the default heuristic thresholds.
func WithConfig(cfg pageprofile.Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithLogFunc sets the diagnostic sink passed to the text heuristics.
func WithLogFunc(logf pageprofile.LogFunc) Option {
	return func(s *settings) {
		s.logf = logf
	}
}

// WithMetadataExtractor fills PageProfile.Metadata using m.
// Only the Profiler uses it.
func WithMetadataExtractor(m pageprofile.MetadataExtractor) Option {
	return func(s *settings) {
		s.metadata = m
	}
}

// invisibleSelector matches elements whose text never renders.
const invisibleSelector = "script,noscript,style,template"

// parse builds a fresh document for one call and drops invisible elements,
// so Text() on any selection yields only visible text.
func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pageprofile.Errorf(pageprofile.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(invisibleSelector).Remove()
	return doc, nil
}

// attrContainsFold reports whether the named attribute of the first element
// in sel contains substr, ignoring case.
func attrContainsFold(sel *goquery.Selection, attr, substr string) bool {
	v, ok := sel.Attr(attr)
	return ok && pageprofile.ContainsFold(v, substr)
}

// Package htmltomarkdown renders content blocks as Markdown.
package htmltomarkdown

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pageprofile"
)

var _ pageprofile.Converter = (*Converter)(nil)

// blankRuns matches three or more newlines left behind by nested card
// wrappers.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Converter renders a block's raw HTML as Markdown. Relative image and
// link targets are made absolute against the page's origin so a block
// stays usable once detached from its page.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert implements pageprofile.Converter.
func (c *Converter) Convert(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pageprofile.Errorf(pageprofile.EINVALID, "empty HTML input")
	}

	var (
		md  string
		err error
	)
	if origin := originOf(pageURL); origin != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(origin))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", fmt.Errorf("converting block HTML: %w", err)
	}
	return blankRuns.ReplaceAllString(strings.TrimSpace(md), "\n\n"), nil
}

// originOf returns scheme://host of rawURL, or "" when it has neither.
func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pageprofile"
	"github.com/fwojciec/pageprofile/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a content card", func(t *testing.T) {
		t.Parallel()

		html := `<div class="card"><img src="https://cdn.acme.com/plumbing.jpg" alt="Plumbing"><h3>Plumbing</h3><p>We fix <strong>leaks</strong> fast.</p></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "![Plumbing](https://cdn.acme.com/plumbing.jpg)")
		assert.Contains(t, md, "### Plumbing")
		assert.Contains(t, md, "We fix **leaks** fast.")
	})

	t.Run("resolves relative targets against the page origin", func(t *testing.T) {
		t.Parallel()

		html := `<div><img src="/img/roof.jpg" alt="Roof"><h3>Roofing</h3><a href="/roofing">Read More</a></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html, "https://acme.com/services?page=2")

		require.NoError(t, err)
		assert.Contains(t, md, "https://acme.com/img/roof.jpg")
		assert.Contains(t, md, "https://acme.com/roofing")
	})

	t.Run("converts lists inside cards", func(t *testing.T) {
		t.Parallel()

		html := `<li><h4>Roofing</h4><ul><li>Repairs</li><li>Replacement</li></ul></li>`

		md, err := htmltomarkdown.NewConverter().Convert(html, "https://acme.com")

		require.NoError(t, err)
		assert.Contains(t, md, "#### Roofing")
		assert.Contains(t, md, "- Repairs")
		assert.Contains(t, md, "- Replacement")
	})

	t.Run("converts price tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Service</th><th>Price</th></tr><tr><td>Inspection</td><td>$99</td></tr></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html, "")

		require.NoError(t, err)
		assert.Contains(t, md, "| Service")
		assert.Contains(t, md, "Inspection")
	})

	t.Run("collapses blank runs from nested wrappers", func(t *testing.T) {
		t.Parallel()

		html := `<div><div><p>Hello</p></div><div></div><div><div><p>World</p></div></div></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html, "")

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "Hello")
		assert.Contains(t, md, "World")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n\n<p>Hello</p>\n\n", "")

		require.NoError(t, err)
		assert.Equal(t, "Hello", md)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ", "https://acme.com")

		assert.Equal(t, pageprofile.EINVALID, pageprofile.ErrorCode(err))
	})
}

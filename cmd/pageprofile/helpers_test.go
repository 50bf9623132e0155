package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/pageprofile/cmd/pageprofile"
	"github.com/fwojciec/pageprofile/goquery"
	"github.com/stretchr/testify/require"
)

const servicesHTML = `<!DOCTYPE html>
<html>
<head><title>Acme Home Services</title></head>
<body>
<header><img class="logo" src="/img/brand.png" alt="Acme"></header>
<section>
	<div><img src="a.jpg" width="300"> <h3>Plumbing</h3> <p>We fix pipes.</p></div>
	<div><img src="b.jpg" width="300"> <h3>Roofing</h3> <p>We fix roofs.</p></div>
	<div><img src="c.jpg" width="300"> <h3>Painting</h3> <p>We paint walls.</p></div>
</section>
<footer>
	<p>123 Main St, Springfield, IL 62704</p>
	<p>hello@acme.com &middot; +1 555 123 4567</p>
</footer>
</body>
</html>`

// newDeps returns dependencies wired with the real goquery extractors.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Profiler: goquery.NewProfiler(),
		Blocks:   goquery.NewBlockDetector(),
		Captions: goquery.NewCaptionExtractor(),
	}, stdout, stderr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

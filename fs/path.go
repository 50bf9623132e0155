// Package fs writes page reports to a directory tree.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/pageprofile"
)

// URLToPath converts a page URL to a relative file path with the given
// extension, rooted at the host.
// Example: https://example.com/services/roofing → example.com/services/roofing.json
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pageprofile.Errorf(pageprofile.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", pageprofile.Errorf(pageprofile.EINVALID, "URL %q has no host", rawURL)
	}

	p := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	switch {
	case p == "":
		p = "index"
	case strings.HasSuffix(u.Path, "/"):
		p += "/index"
	}

	return u.Host + "/" + p + ext, nil
}

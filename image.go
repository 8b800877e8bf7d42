package mdxport

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// DefaultImageHostPattern matches images hosted on Framer's remote content
// CDN. Only <img> tags whose src matches the configured pattern are
// downloaded and rewritten.
const DefaultImageHostPattern = `^https://framerusercontent\.com/images/`

// ImageReference is one remote <img> occurrence in a source document.
// Position is the 1-based ordinal of the tag in document order; output
// substitution happens strictly in this order.
type ImageReference struct {
	SourceURL string
	Position  int
}

// ImageScanner extracts remote image references from an HTML fragment,
// in document order.
type ImageScanner interface {
	Scan(html string) ([]ImageReference, error)
}

// ImageFetcher retrieves remote image bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ImageStore persists downloaded image bytes under a path relative to the
// images root.
type ImageStore interface {
	Save(ctx context.Context, relPath string, data []byte) error
}

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	hyphenRunRe = regexp.MustCompile(`[-\s]+`)
)

// SanitizeTitle converts a human-readable title to a filename-safe slug:
// lowercase, punctuation stripped, whitespace and hyphen runs collapsed to
// single hyphens.
func SanitizeTitle(title string) string {
	s := strings.ToLower(title)
	s = nonWordRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ImagePath returns the site-absolute path for the nth image of a document,
// following the /images/<category>/<subcategory>/<slug>/<slug>-<n>.png
// convention. n is 1-based.
func ImagePath(category, subcategory, title string, n int) string {
	slug := SanitizeTitle(title)
	return fmt.Sprintf("/images/%s/%s/%s/%s-%d.png", category, subcategory, slug, slug, n)
}

// EncodePath percent-encodes a slash-separated path segment by segment.
// The first segment (the part before the leading slash) is kept as-is,
// empty segments are dropped, and the slash separators themselves stay
// literal. Segments may contain spaces and punctuation from human-readable
// titles; downstream rendering requires them percent-encoded.
func EncodePath(path string) string {
	parts := strings.Split(path, "/")
	encoded := make([]string, 0, len(parts))
	encoded = append(encoded, parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		encoded = append(encoded, encodeSegment(part))
	}
	return strings.Join(encoded, "/")
}

// encodeSegment percent-encodes everything except unreserved characters.
// Stricter than url.PathEscape, which leaves sub-delimiters like & literal.
func encodeSegment(s string) string {
	const upperhex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// ImageTag renders an HTML img tag for a locally-downloaded image.
// The path is percent-encoded so segments with spaces resolve correctly.
func ImageTag(localPath string) string {
	return fmt.Sprintf(`<img src="%s" alt="" />`, EncodePath(localPath))
}

// RemoteImageTag renders an HTML img tag pointing at the original remote
// URL. Used as a fallback when a download fails so no image reference is
// silently lost.
func RemoteImageTag(url string) string {
	return fmt.Sprintf(`<img src="%s" alt="" />`, url)
}

package mdxport

import (
	"context"
	"strings"
)

// SourceDocument represents one Framer-exported page: a human-readable
// title, a blank separator line, and the raw HTML body.
type SourceDocument struct {
	Title string
	Body  string
}

// ParseSourceDocument parses the two-part export format. Line 1 is the
// title, line 2 is a blank separator, and everything from line 3 on is the
// HTML body. A document may legitimately have an empty body, but a file
// with fewer than two lines is malformed.
// Returns EINVALID for malformed input.
func ParseSourceDocument(text string) (*SourceDocument, error) {
	parts := strings.SplitN(text, "\n", 3)
	if len(parts) < 2 {
		return nil, Errorf(EINVALID, "source document must have a title line and a separator line")
	}

	doc := &SourceDocument{
		Title: strings.TrimSpace(parts[0]),
	}
	if len(parts) == 3 {
		doc.Body = parts[2]
	}

	return doc, doc.Validate()
}

// Validate returns an error if the document contains invalid fields.
func (d *SourceDocument) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "source document title required")
	}
	return nil
}

// ConvertedDocument pairs an IA placement with converted Markdown that is
// ready to be emitted as an MDX file.
type ConvertedDocument struct {
	Placement Placement
	Title     string
	Markdown  string
}

// Validate returns an error if the document contains invalid fields.
func (d *ConvertedDocument) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "converted document title required")
	}
	if d.Placement.Category == "" {
		return Errorf(EINVALID, "converted document category required")
	}
	return nil
}

// DocumentWriter emits converted documents to storage.
// Returns the path the document was written to.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *ConvertedDocument) (string, error)
}

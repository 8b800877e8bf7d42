// Package fs provides file-based input and output for document conversion.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdxport"
)

// DocumentPath returns the output path for a placement, relative to the
// output root: <category>/<subcategory>/<sanitized-title>.mdx.
func DocumentPath(p mdxport.Placement) string {
	return filepath.Join(p.Category, p.Subcategory, mdxport.SanitizeTitle(p.Title)+".mdx")
}

// FormatDocument formats a converted document as MDX with a frontmatter
// header.
func FormatDocument(doc *mdxport.ConvertedDocument) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: \"")
	b.WriteString(doc.Title)
	b.WriteString("\"\n---\n\n")
	b.WriteString(doc.Markdown)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements mdxport.DocumentWriter at compile time.
var _ mdxport.DocumentWriter = (*Writer)(nil)

// Writer writes converted documents as MDX files under a base directory.
// Re-running a conversion over unchanged sources leaves existing files
// untouched, so file modification times stay meaningful.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk and returns the path it was
// written to. The write is skipped when the existing file already has
// identical content.
func (w *Writer) WriteDocument(ctx context.Context, doc *mdxport.ConvertedDocument) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, DocumentPath(doc.Placement))
	content := FormatDocument(doc)

	if existing, err := os.ReadFile(fullPath); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return fullPath, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}

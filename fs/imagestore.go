package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdxport"
)

// Ensure ImageStore implements mdxport.ImageStore at compile time.
var _ mdxport.ImageStore = (*ImageStore)(nil)

// ImageStore writes downloaded image bytes under a base directory.
// Relative paths follow the same category/subcategory/slug layout the MDX
// files reference, so a site-absolute /images path resolves to a file here.
type ImageStore struct {
	baseDir string
}

// NewImageStore creates a new ImageStore rooted at baseDir.
func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

// Save writes image bytes to relPath under the store's base directory,
// creating parent directories as needed.
func (s *ImageStore) Save(ctx context.Context, relPath string, data []byte) error {
	relPath = strings.TrimPrefix(relPath, "/")
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

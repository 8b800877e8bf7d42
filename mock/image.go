package mock

import (
	"context"

	"github.com/fwojciec/mdxport"
)

var _ mdxport.ImageScanner = (*ImageScanner)(nil)

// ImageScanner is a mock implementation of mdxport.ImageScanner.
type ImageScanner struct {
	ScanFn func(html string) ([]mdxport.ImageReference, error)
}

func (s *ImageScanner) Scan(html string) ([]mdxport.ImageReference, error) {
	return s.ScanFn(html)
}

var _ mdxport.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of mdxport.ImageFetcher.
type ImageFetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *ImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

var _ mdxport.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of mdxport.ImageStore.
type ImageStore struct {
	SaveFn func(ctx context.Context, relPath string, data []byte) error
}

func (s *ImageStore) Save(ctx context.Context, relPath string, data []byte) error {
	return s.SaveFn(ctx, relPath, data)
}

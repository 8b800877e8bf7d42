package mock

import (
	"context"

	"github.com/fwojciec/mdxport"
)

var _ mdxport.ManifestService = (*ManifestService)(nil)

// ManifestService is a mock implementation of mdxport.ManifestService.
type ManifestService struct {
	CreateConversionFn func(ctx context.Context, c *mdxport.Conversion) error
	FindConversionsFn  func(ctx context.Context, filter mdxport.ConversionFilter) ([]*mdxport.Conversion, error)
	LatestRunIDFn      func(ctx context.Context) (string, error)
}

func (s *ManifestService) CreateConversion(ctx context.Context, c *mdxport.Conversion) error {
	return s.CreateConversionFn(ctx, c)
}

func (s *ManifestService) FindConversions(ctx context.Context, filter mdxport.ConversionFilter) ([]*mdxport.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ManifestService) LatestRunID(ctx context.Context) (string, error) {
	return s.LatestRunIDFn(ctx)
}

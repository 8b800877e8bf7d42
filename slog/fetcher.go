// Package slog provides logging decorators for mdxport services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdxport"
)

// Ensure LoggingFetcher implements mdxport.ImageFetcher.
var _ mdxport.ImageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an ImageFetcher with debug logging.
type LoggingFetcher struct {
	next   mdxport.ImageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mdxport.ImageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("image fetch",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

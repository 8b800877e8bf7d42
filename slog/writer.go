package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdxport"
)

// Ensure LoggingWriter implements mdxport.DocumentWriter.
var _ mdxport.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with debug logging.
type LoggingWriter struct {
	next   mdxport.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next mdxport.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteDocument(ctx context.Context, doc *mdxport.ConvertedDocument) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("document write",
			"title", doc.Title,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc)
}

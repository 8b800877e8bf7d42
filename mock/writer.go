package mock

import (
	"context"

	"github.com/fwojciec/mdxport"
)

var _ mdxport.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of mdxport.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *mdxport.ConvertedDocument) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *mdxport.ConvertedDocument) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}

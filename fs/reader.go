package fs

import (
	"os"

	"github.com/fwojciec/mdxport"
)

// ReadSourceDocument reads a two-part export file from disk: line 1 is the
// title, line 2 is blank, the remainder is the HTML body.
func ReadSourceDocument(path string) (*mdxport.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return mdxport.ParseSourceDocument(string(data))
}

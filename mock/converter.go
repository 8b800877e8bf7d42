package mock

import "github.com/fwojciec/mdxport"

var _ mdxport.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdxport.Converter.
type Converter struct {
	ConvertFn func(htmlBody string, imageTags []string) (string, error)
}

func (c *Converter) Convert(htmlBody string, imageTags []string) (string, error) {
	return c.ConvertFn(htmlBody, imageTags)
}

package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mdxport"
)

// Ensure Converter implements mdxport.Converter at compile time.
var _ mdxport.Converter = (*Converter)(nil)

var (
	imgTagRe         = regexp.MustCompile(`<img[^>]*>`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// Converter wraps html-to-markdown to convert HTML to Markdown. It is the
// generic variant used for sources that don't need Framer-specific
// handling; the html package holds the tree-walking variant.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown, substituting the nth
// <img> occurrence with imageTags[n]. Occurrences beyond the supplied tags
// are left for the library to convert as ordinary images.
func (c *Converter) Convert(htmlBody string, imageTags []string) (string, error) {
	if strings.TrimSpace(htmlBody) == "" {
		return "", mdxport.Errorf(mdxport.EINVALID, "empty HTML input")
	}

	// Swap image occurrences for text placeholders before conversion so
	// the library's markdown image syntax doesn't apply to them; the
	// resolved tags go back in afterwards.
	index := 0
	replaced := imgTagRe.ReplaceAllStringFunc(htmlBody, func(tag string) string {
		if index >= len(imageTags) {
			return tag
		}
		placeholder := imagePlaceholder(index)
		index++
		return "<p>" + placeholder + "</p>"
	})

	result, err := c.conv.ConvertString(replaced)
	if err != nil {
		return "", err
	}

	for i := 0; i < index; i++ {
		result = strings.Replace(result, imagePlaceholder(i), "\n\n"+imageTags[i]+"\n\n", 1)
	}

	result = excessNewlinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}

func imagePlaceholder(i int) string {
	return fmt.Sprintf("@@mdxport-image-%d@@", i)
}

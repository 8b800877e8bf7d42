package mdxport

// Converter converts an HTML fragment to Markdown.
type Converter interface {
	// Convert transforms an HTML body into Markdown. imageTags holds one
	// pre-resolved <img> tag per image occurrence in the body, in document
	// order; the nth <img> in the body is replaced by imageTags[n]. If the
	// slice is shorter than the number of occurrences, the extra tags pass
	// through unmodified. Convert is a pure text transform: no I/O, and it
	// never fails on malformed HTML (unrecognized constructs are preserved
	// visibly rather than dropped).
	Convert(htmlBody string, imageTags []string) (string, error)
}

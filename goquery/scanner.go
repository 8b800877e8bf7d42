// Package goquery provides selector-based HTML scanning built on
// PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdxport"
)

// Ensure ImageScanner implements mdxport.ImageScanner at compile time.
var _ mdxport.ImageScanner = (*ImageScanner)(nil)

// ImageScanner extracts remote image references from HTML fragments.
// Only <img> tags whose src matches the configured host pattern are
// reported; other images are not downloaded or rewritten.
type ImageScanner struct {
	hostRe *regexp.Regexp
}

// NewImageScanner creates an ImageScanner matching the given host pattern.
// An empty pattern falls back to mdxport.DefaultImageHostPattern.
func NewImageScanner(hostPattern string) (*ImageScanner, error) {
	if hostPattern == "" {
		hostPattern = mdxport.DefaultImageHostPattern
	}
	re, err := regexp.Compile(hostPattern)
	if err != nil {
		return nil, mdxport.Errorf(mdxport.EINVALID, "invalid image host pattern: %v", err)
	}
	return &ImageScanner{hostRe: re}, nil
}

// Scan returns one reference per matching <img>, in document order, with
// 1-based positions. Position drives the downloaded image's filename
// suffix, so order must match the order tags appear in the source.
func (s *ImageScanner) Scan(html string) ([]mdxport.ImageReference, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var refs []mdxport.ImageReference
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !s.hostRe.MatchString(src) {
			return
		}
		refs = append(refs, mdxport.ImageReference{
			SourceURL: src,
			Position:  len(refs) + 1,
		})
	})

	return refs, nil
}

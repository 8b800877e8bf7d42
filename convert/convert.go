// Package convert provides batch conversion orchestration. It coordinates
// source parsing, image download, HTML-to-Markdown conversion, and MDX
// emission for a set of exported documents.
package convert

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdxport"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	if content == "" {
		return ""
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// Pipeline orchestrates the conversion of exported documents.
type Pipeline struct {
	Mapping     mdxport.Mapping
	Scanner     mdxport.ImageScanner
	Fetcher     mdxport.ImageFetcher
	Converter   mdxport.Converter
	Writer      mdxport.DocumentWriter
	Images      mdxport.ImageStore
	Manifest    mdxport.ManifestService
	Concurrency int
}

// Input is one source document to convert. Filename is the export's base
// name, used for the IA placement lookup; Text is the raw file contents.
type Input struct {
	Filename string
	Text     string
}

// Result holds the aggregate outcome of a batch run.
type Result struct {
	RunID         string
	Converted     int
	Skipped       int
	Failed        int
	Images        int
	ImageFailures int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressConverted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type       ProgressType
	Filename   string
	OutputPath string
	Completed  int
	Total      int
	Error      error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// outcome holds the result of processing a single document.
type outcome struct {
	filename      string
	outputPath    string
	title         string
	status        string
	detail        string
	markdown      string
	images        int
	imageFailures int
	err           error
}

// Run converts all inputs. Documents are processed concurrently up to
// Concurrency; images within one document are downloaded sequentially so
// positions stay aligned with document order. Per-document failures never
// abort the batch; they are reported via progress events and counted in
// the result.
func (p *Pipeline) Run(ctx context.Context, inputs []Input, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	result := &Result{RunID: uuid.New().String()}
	total := len(inputs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	outcomeCh := make(chan outcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, in := range inputs {
			in := in
			g.Go(func() error {
				outcomeCh <- p.processInput(gctx, in)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	completed := 0
	for o := range outcomeCh {
		completed++
		result.Images += o.images
		result.ImageFailures += o.imageFailures

		eventType := ProgressConverted
		switch o.status {
		case mdxport.StatusConverted:
			result.Converted++
		case mdxport.StatusSkipped:
			result.Skipped++
			eventType = ProgressSkipped
		case mdxport.StatusFailed:
			result.Failed++
			eventType = ProgressFailed
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:       eventType,
				Filename:   o.filename,
				OutputPath: o.outputPath,
				Completed:  completed,
				Total:      total,
				Error:      o.err,
			})
		}

		if p.Manifest != nil {
			conv := &mdxport.Conversion{
				RunID:         result.RunID,
				SourceFile:    o.filename,
				OutputPath:    o.outputPath,
				Title:         o.title,
				Status:        o.status,
				Detail:        o.detail,
				Images:        o.images,
				ImageFailures: o.imageFailures,
				ContentHash:   hashContent(o.markdown),
			}
			if err := p.Manifest.CreateConversion(ctx, conv); err != nil {
				return nil, err
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return result, nil
}

func (p *Pipeline) processInput(ctx context.Context, in Input) outcome {
	o := outcome{filename: in.Filename, status: mdxport.StatusFailed}

	doc, err := mdxport.ParseSourceDocument(in.Text)
	if err != nil {
		o.status = mdxport.StatusSkipped
		o.detail = mdxport.ErrorMessage(err)
		o.err = err
		return o
	}

	placement, err := p.Mapping.Lookup(in.Filename)
	if err != nil {
		o.status = mdxport.StatusSkipped
		o.detail = mdxport.ErrorMessage(err)
		o.err = err
		return o
	}

	// The mapping's curated title wins over the export's title line when
	// both are present.
	title := placement.Title
	if title == "" {
		title = doc.Title
	}
	placement.Title = title
	o.title = title

	tags, images, failures := p.resolveImages(ctx, doc.Body, placement)
	o.images = images
	o.imageFailures = failures

	markdown, err := p.Converter.Convert(doc.Body, tags)
	if err != nil {
		o.detail = "conversion: " + err.Error()
		o.err = err
		return o
	}
	o.markdown = markdown

	path, err := p.Writer.WriteDocument(ctx, &mdxport.ConvertedDocument{
		Placement: placement,
		Title:     title,
		Markdown:  markdown,
	})
	if err != nil {
		o.detail = "write: " + err.Error()
		o.err = err
		return o
	}

	o.outputPath = path
	o.status = mdxport.StatusConverted
	return o
}

// resolveImages downloads each referenced image in document order and
// builds the substitution tags. A failed download degrades to a tag
// pointing at the original remote URL; the reference is never dropped.
func (p *Pipeline) resolveImages(ctx context.Context, body string, placement mdxport.Placement) ([]string, int, int) {
	if p.Scanner == nil {
		return nil, 0, 0
	}

	refs, err := p.Scanner.Scan(body)
	if err != nil || len(refs) == 0 {
		return nil, 0, 0
	}

	tags := make([]string, 0, len(refs))
	failures := 0
	for _, ref := range refs {
		localPath := mdxport.ImagePath(placement.Category, placement.Subcategory, placement.Title, ref.Position)

		data, err := p.Fetcher.Fetch(ctx, ref.SourceURL)
		if err == nil {
			err = p.Images.Save(ctx, localPath, data)
		}
		if err != nil {
			failures++
			tags = append(tags, mdxport.RemoteImageTag(ref.SourceURL))
			continue
		}
		tags = append(tags, mdxport.ImageTag(localPath))
	}

	return tags, len(refs), failures
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/convert"
	"github.com/fwojciec/mdxport/fs"
	"github.com/fwojciec/mdxport/goquery"
	"github.com/fwojciec/mdxport/html"
	"github.com/fwojciec/mdxport/htmltomarkdown"
	mdxhttp "github.com/fwojciec/mdxport/http"
	mdxslog "github.com/fwojciec/mdxport/slog"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	mapping, err := loadMapping(c.Mapping)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	filenames, err := listExports(c.InputDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(filenames) == 0 {
		fmt.Fprintln(deps.Stdout, "No export files found.")
		return nil
	}

	if c.DryRun {
		return c.dryRun(deps, mapping, filenames)
	}

	inputs := make([]convert.Input, 0, len(filenames))
	for _, name := range filenames {
		data, err := os.ReadFile(filepath.Join(c.InputDir, name))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		inputs = append(inputs, convert.Input{Filename: name, Text: string(data)})
	}

	scanner, err := goquery.NewImageScanner(c.Host)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	var converter mdxport.Converter = html.NewConverter()
	if c.Generic {
		converter = htmltomarkdown.NewConverter()
	}

	pipeline := &convert.Pipeline{
		Mapping:     mapping,
		Scanner:     scanner,
		Fetcher:     mdxslog.NewLoggingFetcher(mdxhttp.NewFetcher(), deps.Logger),
		Converter:   converter,
		Writer:      mdxslog.NewLoggingWriter(fs.NewWriter(c.Out), deps.Logger),
		Images:      fs.NewImageStore(c.Images),
		Manifest:    deps.Manifest,
		Concurrency: c.Concurrency,
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Converting %d documents\n", event.Total)
		case convert.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Filename, mdxport.ErrorMessage(event.Error))
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Filename, event.Error)
		}
	}

	result, err := pipeline.Run(deps.Ctx, inputs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d, skipped %d, failed %d (%d images, %d image failures)\n",
		result.Converted, result.Skipped, result.Failed, result.Images, result.ImageFailures)
	if deps.Manifest != nil {
		fmt.Fprintf(deps.Stdout, "Run %s recorded in %s\n", result.RunID, c.Manifest)
	}

	return nil
}

// dryRun lists the MDX paths a conversion would produce without fetching
// images or writing anything.
func (c *ConvertCmd) dryRun(deps *Dependencies, mapping mdxport.Mapping, filenames []string) error {
	for _, name := range filenames {
		if _, err := fs.ReadSourceDocument(filepath.Join(c.InputDir, name)); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", name, mdxport.ErrorMessage(err))
			continue
		}
		placement, err := mapping.Lookup(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", name, mdxport.ErrorMessage(err))
			continue
		}
		fmt.Fprintln(deps.Stdout, filepath.Join(c.Out, fs.DocumentPath(placement)))
	}
	return nil
}

// loadMapping reads the filename-to-placement table from a JSON file.
func loadMapping(path string) (mdxport.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mdxport.LoadMapping(f)
}

// listExports returns the sorted names of export files in dir.
func listExports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

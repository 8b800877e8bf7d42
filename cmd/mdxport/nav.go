package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/nav"
)

// Run executes the nav generate command.
func (c *NavGenerateCmd) Run(deps *Dependencies) error {
	mapping, err := loadMapping(c.Mapping)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	docsJSON, err := os.ReadFile(c.DocsJSON)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	out, err := nav.Generate(docsJSON, mapping, c.Tab)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	if err := os.WriteFile(c.DocsJSON, out, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %s\n", c.DocsJSON)
	return nil
}

// Run executes the nav labels command.
func (c *NavLabelsCmd) Run(deps *Dependencies) error {
	docsJSON, err := os.ReadFile(c.DocsJSON)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	lookup := func(pagePath string) (string, bool) {
		content, err := os.ReadFile(filepath.Join(c.Docs, pagePath+".mdx"))
		if err != nil {
			return "", false
		}
		title := mdxport.ExtractFrontmatterTitle(string(content))
		return title, title != ""
	}

	out, err := nav.ApplyLabels(docsJSON, lookup)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	if err := os.WriteFile(c.DocsJSON, out, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %s with page labels\n", c.DocsJSON)
	return nil
}

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/mdxport"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Manifest mdxport.ManifestService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert exported HTML documents to MDX"`
	Nav     NavCmd     `cmd:"" help:"Patch docs.json navigation"`
	Report  ReportCmd  `cmd:"" help:"Show conversion outcomes for a run"`

	Verbose bool `short:"v" help:"Enable informational logging"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	InputDir    string `arg:"" type:"existingdir" help:"Directory of exported documents"`
	Mapping     string `required:"" type:"existingfile" help:"Filename-to-placement JSON table"`
	Out         string `default:"." help:"Docs root to write MDX files into"`
	Images      string `default:"." help:"Root directory for downloaded images"`
	Host        string `help:"Image host pattern (regex); defaults to the Framer CDN"`
	Generic     bool   `help:"Use the generic library converter instead of the Framer converter"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent document limit"`
	Manifest    string `help:"SQLite manifest path; omit to skip recording outcomes"`
	DryRun      bool   `help:"List would-be outputs without converting"`
}

// NavCmd groups the navigation subcommands.
type NavCmd struct {
	Generate NavGenerateCmd `cmd:"" help:"Regenerate navigation tabs from the mapping"`
	Labels   NavLabelsCmd   `cmd:"" help:"Label navigation pages with frontmatter titles"`
}

// NavGenerateCmd is the "nav generate" subcommand.
type NavGenerateCmd struct {
	DocsJSON string `arg:"" type:"existingfile" help:"Path to docs.json"`
	Mapping  string `required:"" type:"existingfile" help:"Filename-to-placement JSON table"`
	Tab      string `help:"Regenerate only the named tab"`
}

// NavLabelsCmd is the "nav labels" subcommand.
type NavLabelsCmd struct {
	DocsJSON string `arg:"" type:"existingfile" help:"Path to docs.json"`
	Docs     string `default:"." help:"Docs root containing the MDX files"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Manifest string `required:"" help:"SQLite manifest path"`
	RunID    string `name:"run" help:"Run ID; defaults to the latest run"`
	Status   string `help:"Filter by status (converted, skipped, failed)"`
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/mdxport"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	runID := c.RunID
	if runID == "" {
		latest, err := deps.Manifest.LatestRunID(deps.Ctx)
		if err != nil {
			if mdxport.ErrorCode(err) == mdxport.ENOTFOUND {
				fmt.Fprintln(deps.Stdout, "No conversions recorded.")
				return nil
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
			return err
		}
		runID = latest
	}

	filter := mdxport.ConversionFilter{RunID: &runID}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	conversions, err := deps.Manifest.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	if len(conversions) == 0 {
		fmt.Fprintf(deps.Stdout, "No conversions for run %s.\n", runID)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Run %s\n", runID)

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tSOURCE\tOUTPUT\tIMAGES\tDETAIL")
	for _, conv := range conversions {
		detail := conv.Detail
		if detail == "" && conv.ImageFailures > 0 {
			detail = fmt.Sprintf("%d image failures", conv.ImageFailures)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			conv.Status, conv.SourceFile, conv.OutputPath, conv.Images, detail)
	}
	return w.Flush()
}

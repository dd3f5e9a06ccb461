package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
	"github.com/ogurasousui/employee-pairs/internal/core/collaboration"
)

type findOptions struct {
	input      string
	dateFormat string
	workers    int
	all        bool
}

func newFindCmd(c *cli) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find [input]",
		Short: "Report the longest collaborating pair in a CSV file",
		Example: `  pairs find testdata/employees.csv
  pairs find --input employees.csv --date-format dd.MM.yyyy --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return runFind(cmd, c, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV file to analyze (defaults to input.path in config)")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", "", "force a single date format, e.g. yyyy-MM-dd or 2006-01-02")
	cmd.Flags().IntVar(&opts.workers, "workers", -1, "scan projects with this many workers (defaults to finder.workers in config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print every pair that worked together on more than one project")

	return cmd
}

func runFind(cmd *cobra.Command, c *cli, opts *findOptions) error {
	input := opts.input
	if input == "" {
		input = c.cfg.Input.Path
	}
	dateFormat := opts.dateFormat
	if dateFormat == "" {
		dateFormat = c.cfg.Input.DateFormat
	}
	workers := c.cfg.Finder.Workers
	if cmd.Flags().Changed("workers") {
		workers = opts.workers
	}

	finder, err := collaboration.NewFinder(collaboration.FinderOptions{Workers: workers}, c.logger)
	if err != nil {
		return err
	}
	svc := collaboration.NewService(assignment.NewParser(nil, c.logger), finder, c.logger)

	report, err := svc.FindLongestInFile(cmd.Context(), collaboration.FindInFileInput{
		Path:       input,
		DateFormat: dateFormat,
	})
	out := cmd.OutOrStdout()
	if errors.Is(err, collaboration.ErrNoQualifyingPair) {
		fmt.Fprintln(out, report)
		return nil
	}
	if err != nil {
		return err
	}

	if !opts.all {
		fmt.Fprintln(out, report)
		return nil
	}

	for i, p := range report.Ranking {
		fmt.Fprintf(out, "%d. %s\n", i+1, p)
	}
	return nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the date layouts tried when no date format is forced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, layout := range assignment.DefaultDateLayouts {
				fmt.Fprintln(cmd.OutOrStdout(), layout)
			}
			return nil
		},
	}
}

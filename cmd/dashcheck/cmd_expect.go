package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dashcheck/internal/dataset"
	"dashcheck/internal/expect"
	"dashcheck/internal/format"
)

var expectFlags struct {
	newCohort bool
	notebook  bool
	vision    bool
	markdown  bool
	json      bool
}

func newExpectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expect <dataset>",
		Short: "Print the expected dataset cohorts view for a fixture or descriptor file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExpect,
	}
	f := cmd.Flags()
	f.BoolVar(&expectFlags.newCohort, "new-cohort", false, "Include the fixture's new cohort")
	f.BoolVar(&expectFlags.notebook, "notebook", false, "Resolve for notebook mode")
	f.BoolVar(&expectFlags.vision, "vision", false, "Force vision mode")
	f.BoolVar(&expectFlags.markdown, "markdown", false, "Render Markdown tables")
	f.BoolVar(&expectFlags.json, "json", false, "Print the expectation as JSON")
	return cmd
}

func runExpect(cmd *cobra.Command, args []string) error {
	d, err := dataset.Resolve(args[0])
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	e := expect.Resolve(d, expect.Mode{
		Notebook:         expectFlags.notebook,
		Vision:           expectFlags.vision || d.IsVision,
		IncludeNewCohort: expectFlags.newCohort,
	})

	out := cmd.OutOrStdout()
	if expectFlags.json {
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return fmt.Errorf("encode expectation: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	mode := format.ASCII
	if expectFlags.markdown {
		mode = format.Markdown
	}
	fmt.Fprintln(out, format.ExpectationTable(mode, e))
	fmt.Fprintln(out)
	fmt.Fprintln(out, format.PresenceTable(mode, e))
	return nil
}

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"dashcheck/internal/dataset"
	"dashcheck/internal/display"
	"dashcheck/internal/expect"
	"dashcheck/internal/format"
	"dashcheck/internal/logging"
)

func newDatasetsCmd() *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the bundled dataset fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.New("datasets")
			mode := format.ASCII
			if markdown {
				mode = format.Markdown
			}

			t := format.NewTable(mode).Header("Dataset", "Task", "Cohorts", "New cohort")
			names := dataset.List()
			for _, name := range names {
				d, err := dataset.Load(name)
				if err != nil {
					return err
				}
				if err := d.Validate(); err != nil {
					logger.Warn("invalid fixture", "dataset", name, "error", err)
				}
				missing := expect.MissingMetrics(d)
				cohorts := make([]string, 0, len(missing))
				for c := range missing {
					cohorts = append(cohorts, c)
				}
				slices.Sort(cohorts)
				for _, c := range cohorts {
					logger.Warn("cohort lacks metrics", "dataset", name, "cohort", c, "metrics", missing[c])
				}

				newCohort := "-"
				if nc := d.ModelOverview.NewCohort; nc != nil {
					newCohort = nc.Name
				}
				t.Row(name, display.Task(string(d.TaskType())),
					strings.Join(expect.CohortNames(d.ModelOverview.InitialCohorts), ", "), newCohort)
			}
			t.Footer("", "", fmt.Sprintf("%d fixtures", len(names)), "")
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render Markdown instead of a terminal table")
	return cmd
}

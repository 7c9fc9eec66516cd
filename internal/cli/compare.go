package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler-sim/internal/render"
	"os-scheduler-sim/internal/schedulers"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	var (
		input   inputOptions
		details bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every policy on the same workload and compare averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := input.checkOutput(); err != nil {
				return err
			}
			request, err := input.load(root.config.RoundRobinTimeQuantum)
			if err != nil {
				return err
			}

			all, err := schedulers.ScheduleAll(request.Descriptors(), request.TimeQuantum, input.idle || root.config.IncludeIdle)
			if err != nil {
				return err
			}
			if input.output == "json" {
				return writeJSON(cmd.OutOrStdout(), all)
			}

			w := cmd.OutOrStdout()
			if details {
				for i, response := range all.Results {
					render.Report(w, schedulers.Policies[i].Title(), response)
					fmt.Fprintln(w)
				}
			}
			render.Comparison(w, all)
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "Also print each policy's timeline and table")
	input.bind(cmd)
	return cmd
}

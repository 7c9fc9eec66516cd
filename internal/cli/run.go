package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"os-scheduler-sim/internal/render"
	"os-scheduler-sim/internal/schedulers"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		input  inputOptions
		policy string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one policy and print its timeline and metrics",
		Example: `  schedsim run --policy srtf -p P1:0:8 -p P2:1:4 -p P3:2:9 -p P4:3:5
  schedsim run --policy rr --quantum 4 --file workload.yaml --idle`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := input.checkOutput(); err != nil {
				return err
			}
			p, err := schedulers.ParsePolicy(policy)
			if err != nil {
				return err
			}
			request, err := input.load(root.config.RoundRobinTimeQuantum)
			if err != nil {
				return err
			}

			result, err := schedulers.Simulate(p, request.Descriptors(), request.TimeQuantum)
			if err != nil {
				return err
			}
			root.logger.Debug("simulation finished", zap.String("policy", string(p)), zap.Int("blocks", len(result.Blocks)))

			response := schedulers.GenerateResponse(p, request.TimeQuantum, result, input.idle || root.config.IncludeIdle)
			if input.output == "json" {
				return writeJSON(cmd.OutOrStdout(), response)
			}
			render.Report(cmd.OutOrStdout(), p.Title(), response)
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", string(schedulers.FCFS), "Scheduling policy (fcfs, sjf, srtf, rr)")
	input.bind(cmd)
	return cmd
}

package main

import (
	"fmt"

	"github.com/sgostarter/libtabulated/integration"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		tasks int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the generator/integrator pipeline over random logarithm tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Integration

			if cmd.Flags().Changed("tasks") {
				cfg.TaskCount = tasks
			}

			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			runner := integration.NewRunner(cfg, func(r integration.Result) {
				if r.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", r.Task, r.Err)

					return
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.15f\n", r.Task, r.Value)
			}, a.logger)

			report, err := runner.Run(cmd.Context())

			fmt.Fprintf(cmd.OutOrStdout(), "generated %d, processed %d, failed %d, mean %v\n",
				report.Generated, report.Processed, report.Failed, report.MeanDuration)

			return err
		},
	}

	cmd.Flags().IntVar(&tasks, "tasks", 0, "number of tasks, overrides the config")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, overrides the config")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim/workload"
)

// newGenerateCmd writes a synthetic workload.
func newGenerateCmd() *cobra.Command {
	g := workload.DefaultGeneratorSpec()
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic workload file",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := workload.Generate(g)
			if err != nil {
				return err
			}
			if output != "" {
				if err := workload.SaveProcesses(output, specs); err != nil {
					return err
				}
				logrus.Infof("wrote %d processes to %s", len(specs), output)
				return nil
			}
			data, err := workload.MarshalProcesses(specs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().Int64Var(&g.Seed, "seed", g.Seed, "Seed for workload generation")
	cmd.Flags().IntVar(&g.Count, "count", g.Count, "Number of processes")
	cmd.Flags().Float64Var(&g.MeanInterArrival, "mean-inter-arrival", g.MeanInterArrival, "Mean gap between arrivals (ticks)")
	cmd.Flags().Int64Var(&g.MinBurst, "min-burst", g.MinBurst, "Minimum CPU time per process")
	cmd.Flags().Int64Var(&g.MaxBurst, "max-burst", g.MaxBurst, "Maximum CPU time per process")
	cmd.Flags().Int64Var(&g.MaxPriority, "max-priority", g.MaxPriority, "Largest priority value")
	cmd.Flags().Float64Var(&g.DeadlineFraction, "deadline-fraction", g.DeadlineFraction, "Share of processes that carry a deadline")
	cmd.Flags().Int64Var(&g.MinSlack, "min-slack", g.MinSlack, "Minimum deadline slack beyond the burst")
	cmd.Flags().Int64Var(&g.MaxSlack, "max-slack", g.MaxSlack, "Maximum deadline slack beyond the burst")
	cmd.Flags().IntVar(&g.MaxPages, "max-pages", g.MaxPages, "Largest page count")
	cmd.Flags().StringVar(&output, "output", "", fmt.Sprintf("Output file (default stdout; e.g. %s)", workload.DefaultStorePath))
	return cmd
}

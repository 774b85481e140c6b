package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
)

// newCompareCmd runs every policy over the same workload.
func newCompareCmd() *cobra.Command {
	o := &simOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all five policies over a workload and compare them",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := o.load()
			if err != nil {
				return err
			}
			cfg := sim.NewConfig(o.quantum, o.overhead, o.diskCost)
			results := make([]*sim.Result, 0, len(sim.ValidSchedulers))
			for _, name := range sim.SchedulerNames() {
				res, err := sim.Simulate(name, cfg, specs)
				if err != nil {
					return err
				}
				results = append(results, res)
			}
			report.RenderComparison(cmd.OutOrStdout(), results)
			return o.writeMetrics(results...)
		},
	}
	o.register(cmd)
	return cmd
}

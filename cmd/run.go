package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

// simOptions are the simulation parameters shared by run and compare.
type simOptions struct {
	processesPath string // Workload file
	quantum       int64  // Time slice for preemptive policies
	overhead      int64  // Context-switch cost charged on preemption
	diskCost      int64  // Accepted and reported, not used in scheduling
	metricsFile   string // Prometheus textfile output path
}

func (o *simOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.processesPath, "processes", workload.DefaultStorePath, "Workload file (versioned YAML/JSON document or legacy list)")
	cmd.Flags().Int64Var(&o.quantum, "quantum", 2, "Time slice for preemptive policies (ticks)")
	cmd.Flags().Int64Var(&o.overhead, "overhead", 1, "Context-switch overhead charged on preemption (ticks)")
	cmd.Flags().Int64Var(&o.diskCost, "disk-cost", 0, "Auxiliary disk cost (informational)")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
}

func (o *simOptions) load() ([]sim.ProcessSpec, error) {
	specs, err := workload.LoadProcesses(o.processesPath)
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded %d processes from %s", len(specs), o.processesPath)
	return specs, nil
}

func (o *simOptions) writeMetrics(results ...*sim.Result) error {
	if o.metricsFile == "" {
		return nil
	}
	if err := report.WriteMetrics(o.metricsFile, results...); err != nil {
		return err
	}
	logrus.Infof("metrics written to %s", o.metricsFile)
	return nil
}

type runOptions struct {
	simOptions
	policy            string
	gantt             bool
	grayAfterDeadline bool
	csvPath           string
	traceLevel        string
}

// newRunCmd executes one policy over a workload file.
func newRunCmd() *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scheduling policy over a workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := o.load()
			if err != nil {
				return err
			}
			cfg := sim.NewConfig(o.quantum, o.overhead, o.diskCost)
			cfg.Trace = trace.TraceConfig{Level: trace.TraceLevel(o.traceLevel)}

			res, err := sim.Simulate(o.policy, cfg, specs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.RenderTable(out, res)
			if o.gantt {
				_, _ = fmt.Fprintln(out)
				report.RenderGantt(out, res, report.GanttOptions{GrayAfterDeadline: o.grayAfterDeadline})
			}
			if res.Trace != nil {
				ts := trace.Summarize(res.Trace)
				_, _ = fmt.Fprintf(out, "Trace: %d dispatches, %d preemptions (%d overhead), %d idle periods (%d ticks)\n",
					ts.TotalDispatches, ts.Preemptions, ts.TotalOverhead, ts.IdlePeriods, ts.TotalIdle)
			}
			if o.csvPath != "" {
				if err := writeCSVFile(o.csvPath, res); err != nil {
					return err
				}
			}
			return o.writeMetrics(res)
		},
	}
	o.register(cmd)
	cmd.Flags().StringVar(&o.policy, "policy", sim.PolicyRoundRobin, fmt.Sprintf("Scheduling policy %v (aliases round-robin, fair-share)", sim.SchedulerNames()))
	cmd.Flags().BoolVar(&o.gantt, "gantt", false, "Print a text Gantt chart")
	cmd.Flags().BoolVar(&o.grayAfterDeadline, "gray-after-deadline", false, "Mark Gantt ticks past a process's absolute deadline with 'x'")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "Export the per-process results table as CSV")
	cmd.Flags().StringVar(&o.traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	return cmd
}

func writeCSVFile(path string, res *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	if err := report.WriteCSV(f, res); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing csv file: %w", err)
	}
	logrus.Infof("results exported to %s", path)
	return nil
}

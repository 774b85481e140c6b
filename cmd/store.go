package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

// newAddCmd appends one process to the store file.
func newAddCmd() *cobra.Command {
	var (
		storePath string
		spec      sim.ProcessSpec
		deadline  int64
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a process to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.ID = args[0]
			if cmd.Flags().Changed("deadline") {
				spec.Deadline = &deadline
			}
			stored, err := workload.NewStore(storePath).Add(spec)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Process %s created\n", stored.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&storePath, "store", workload.DefaultStorePath, "Process store file")
	cmd.Flags().Int64Var(&spec.Arrival, "arrival", 1, "Arrival time")
	cmd.Flags().Int64Var(&spec.TotalTime, "duration", 1, "CPU time the process needs")
	cmd.Flags().Int64Var(&spec.Priority, "priority", 1, "Priority (larger means a smaller fair share)")
	cmd.Flags().Int64Var(&deadline, "deadline", 0, "Deadline relative to arrival (omit for none)")
	cmd.Flags().IntVar(&spec.NumPages, "pages", 1, "Number of memory pages")
	return cmd
}

// newListCmd prints the stored processes.
func newListCmd() *cobra.Command {
	var storePath string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stored processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := workload.NewStore(storePath).List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(specs) == 0 {
				_, _ = fmt.Fprintln(out, "No processes found.")
				return nil
			}
			for i, s := range specs {
				deadline := "none"
				if s.Deadline != nil {
					deadline = fmt.Sprint(*s.Deadline)
				}
				_, _ = fmt.Fprintf(out, "%d. id=%s arrival=%d duration=%d priority=%d deadline=%s pages=%d\n",
					i+1, s.ID, s.Arrival, s.TotalTime, s.Priority, deadline, s.NumPages)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&storePath, "store", workload.DefaultStorePath, "Process store file")
	return cmd
}

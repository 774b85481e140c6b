package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedsim/schedsim/sim/internal/testutil"
)

// TestSimulator_GoldenDataset runs every golden case and compares the exact
// completion schedule plus the derived metrics.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			workload := make([]ProcessSpec, len(tc.Processes))
			for i, gp := range tc.Processes {
				workload[i] = ProcessSpec{
					ID:        gp.ID,
					Arrival:   gp.Arrival,
					TotalTime: gp.TotalTime,
					Priority:  gp.Priority,
					Deadline:  gp.Deadline,
				}
			}

			res := runPolicy(t, tc.Policy, NewConfig(tc.Quantum, tc.Overhead, 0), workload)
			s := Summarize(res)

			assert.Equal(t, tc.Metrics.FinishOrder, finishedIDs(res), "finish order")
			for id, want := range tc.Metrics.FinishTimes {
				assert.Equal(t, want, byID(res)[id].FinishTime, "finish time of %s", id)
			}
			assert.Equal(t, tc.Metrics.Clock, res.Clock, "clock")
			assert.Equal(t, tc.Metrics.IdleTime, res.IdleTime, "idle_time")
			assert.Equal(t, tc.Metrics.ContextSwitches, s.ContextSwitches, "context_switches")
			assert.Equal(t, tc.Metrics.DeadlineMisses, s.DeadlineMisses, "deadline_misses")

			const relTol = 1e-9
			testutil.AssertFloat64Equal(t, "mean_wait", tc.Metrics.MeanWait, s.MeanWait, relTol)
			testutil.AssertFloat64Equal(t, "mean_turnaround", tc.Metrics.MeanTurnaround, s.MeanTurnaround, relTol)
			testutil.AssertFloat64Equal(t, "throughput", tc.Metrics.Throughput, s.Throughput, relTol)
		})
	}
}

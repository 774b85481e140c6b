package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// proc builds a priority-1 descriptor without a deadline.
func proc(id string, arrival, total int64) ProcessSpec {
	return ProcessSpec{ID: id, Arrival: arrival, TotalTime: total, Priority: 1, NumPages: 1}
}

// withDeadline returns a copy of s carrying the relative deadline d.
func withDeadline(s ProcessSpec, d int64) ProcessSpec {
	s.Deadline = &d
	return s
}

// withPriority returns a copy of s with the given priority.
func withPriority(s ProcessSpec, priority int64) ProcessSpec {
	s.Priority = priority
	return s
}

func runPolicy(t *testing.T, name string, cfg Config, workload []ProcessSpec) *Result {
	t.Helper()
	res, err := Simulate(name, cfg, workload)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func byID(res *Result) map[string]*Process {
	m := make(map[string]*Process, len(res.Finished))
	for _, p := range res.Finished {
		m[p.ID] = p
	}
	return m
}

func finishedIDs(res *Result) []string {
	ids := make([]string, len(res.Finished))
	for i, p := range res.Finished {
		ids[i] = p.ID
	}
	return ids
}

// randomWorkload builds a deterministic workload for invariant checks.
func randomWorkload(seed int64, n int) []ProcessSpec {
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	arrivals := rng.ForSubsystem(SubsystemArrivals)
	bursts := rng.ForSubsystem(SubsystemBursts)
	priorities := rng.ForSubsystem(SubsystemPriorities)
	deadlines := rng.ForSubsystem(SubsystemDeadlines)

	specs := make([]ProcessSpec, n)
	for i := range specs {
		s := ProcessSpec{
			ID:        fmt.Sprintf("P%d", i+1),
			Arrival:   arrivals.Int63n(30),
			TotalTime: 1 + bursts.Int63n(9),
			Priority:  1 + priorities.Int63n(4),
			NumPages:  1,
		}
		if deadlines.Intn(2) == 0 {
			d := deadlines.Int63n(40)
			s.Deadline = &d
		}
		specs[i] = s
	}
	return specs
}

package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	Preemptions          int
	TotalOverhead        int64
	IdlePeriods          int
	TotalIdle            int64
	DispatchDistribution map[string]int // process ID → number of dispatches
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchDistribution[d.ProcessID]++
	}

	summary.Preemptions = len(st.Preemptions)
	for _, p := range st.Preemptions {
		summary.TotalOverhead += p.Overhead
	}

	summary.IdlePeriods = len(st.Idles)
	for _, idle := range st.Idles {
		summary.TotalIdle += idle.To - idle.From
	}

	return summary
}

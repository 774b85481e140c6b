// Derives per-run performance statistics from a Result: mean wait and turnaround,
// throughput, idle share, context switches and deadline misses.

package sim

// Summary aggregates statistics about one policy run for final reporting.
type Summary struct {
	Policy            string  `json:"policy"`
	FinishedCount     int     `json:"finished_count"`
	MeanWait          float64 `json:"mean_wait"`
	MaxWait           int64   `json:"max_wait"`
	MeanTurnaround    float64 `json:"mean_turnaround"`
	P90Turnaround     float64 `json:"p90_turnaround"`
	TotalTime         int64   `json:"total_time"` // max(final clock, latest finish)
	Throughput        float64 `json:"throughput"` // finished processes per tick
	IdleTime          int64   `json:"idle_time"`
	IdlePercent       float64 `json:"idle_percent"`
	Preemptions       int     `json:"preemptions"`       // overhead segments charged
	ContextSwitches   int     `json:"context_switches"`  // preemptions + finished - 1
	DeadlineMisses    int     `json:"deadline_misses"`
	DeadlineProcesses int     `json:"deadline_processes"` // processes that carried a deadline
}

// Summarize computes aggregate statistics from a Result.
// Safe for an empty run (returns zero-valued rates).
func Summarize(res *Result) Summary {
	s := Summary{
		Policy:   res.Policy,
		IdleTime: res.IdleTime,
	}
	n := len(res.Finished)
	s.FinishedCount = n
	s.TotalTime = res.Clock

	waits := make([]int64, 0, n)
	turnarounds := make([]int64, 0, n)
	for _, p := range res.Finished {
		waits = append(waits, p.WaitTime)
		turnarounds = append(turnarounds, p.TurnaroundTime)
		if p.WaitTime > s.MaxWait {
			s.MaxWait = p.WaitTime
		}
		if p.FinishTime > s.TotalTime {
			s.TotalTime = p.FinishTime
		}
		s.Preemptions += p.OverheadCount()
		if p.HasDeadline() {
			s.DeadlineProcesses++
			if p.MissedDeadline() {
				s.DeadlineMisses++
			}
		}
	}
	if n == 0 {
		return s
	}

	s.MeanWait = CalculateMean(waits)
	s.MeanTurnaround = CalculateMean(turnarounds)
	s.P90Turnaround = CalculatePercentile(turnarounds, 90)
	s.ContextSwitches = s.Preemptions + n - 1
	if s.TotalTime > 0 {
		s.Throughput = float64(n) / float64(s.TotalTime)
		s.IdlePercent = float64(s.IdleTime) / float64(s.TotalTime) * 100
	}
	return s
}

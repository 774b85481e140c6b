package sim

import "fmt"

// SJFScheduler is non-preemptive shortest-job-first: at every dispatch point the
// arrived process with the least remaining time runs to completion. Ties go to the
// process that appears first in the workload.
type SJFScheduler struct {
	engine
}

// NewSJFScheduler validates the inputs and returns a scheduler over a private copy of workload.
func NewSJFScheduler(cfg Config, workload []ProcessSpec) (*SJFScheduler, error) {
	if err := validateInputs(PolicySJF, cfg, workload); err != nil {
		return nil, err
	}
	return &SJFScheduler{engine: newEngine(PolicySJF, cfg, workload)}, nil
}

// Run executes the simulation.
func (s *SJFScheduler) Run() *Result {
	s.begin()
	for !s.done() {
		next := s.shortestArrived()
		if next == nil {
			s.idleAdvance()
			continue
		}
		s.runToCompletion(next, fmt.Sprintf("remaining=%d", next.RemainingTime))
	}
	return s.result()
}

// shortestArrived returns the arrived, unfinished process with minimum remaining
// time, or nil when none has arrived.
func (s *SJFScheduler) shortestArrived() *Process {
	var best *Process
	for _, p := range s.processes {
		if p.State == StateFinished || p.Arrival > s.clock {
			continue
		}
		if best == nil || p.RemainingTime < best.RemainingTime {
			best = p
		}
	}
	return best
}

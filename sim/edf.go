package sim

import (
	"fmt"
	"sort"
)

// EDFScheduler is preemptive earliest-deadline-first. The ready set is re-sorted by
// absolute deadline before every dispatch, so a process that arrives with a sooner
// deadline takes the CPU at the next quantum boundary. Processes without a deadline
// sort last; equal deadlines keep ready-queue order.
type EDFScheduler struct {
	engine
}

// NewEDFScheduler validates the inputs and returns a scheduler over a private copy of workload.
func NewEDFScheduler(cfg Config, workload []ProcessSpec) (*EDFScheduler, error) {
	if err := validateInputs(PolicyEDF, cfg, workload); err != nil {
		return nil, err
	}
	return &EDFScheduler{engine: newEngine(PolicyEDF, cfg, workload)}, nil
}

// Run executes the simulation.
func (s *EDFScheduler) Run() *Result {
	s.begin()
	s.runTimeSliced(deadlineOrder{})
	return s.result()
}

// deadlineOrder dispatches the earliest absolute deadline first; ties go to the
// process listed first in the workload.
type deadlineOrder struct{}

func (deadlineOrder) admit(_ *Process, _ *ReadyQueue, _ int64) {}

func (deadlineOrder) pick(ready *ReadyQueue) *Process {
	ready.Reorder(func(ps []*Process) {
		sort.SliceStable(ps, func(i, j int) bool {
			ki, kj := ps[i].deadlineKey(), ps[j].deadlineKey()
			if ki != kj {
				return ki < kj
			}
			return ps[i].seq < ps[j].seq
		})
	})
	return ready.DequeueFront()
}

func (deadlineOrder) charge(_ *Process, _ int64) {}

func (deadlineOrder) requeueFirst() bool { return false }

func (deadlineOrder) reason(p *Process) string {
	if !p.HasDeadline() {
		return "deadline=none"
	}
	return fmt.Sprintf("deadline=%d", *p.AbsoluteDeadline)
}

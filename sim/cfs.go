package sim

import (
	"fmt"
	"sort"
)

// CFSScheduler is a fair-share policy modeled after weighted fair queueing: the
// ready process with the smallest virtual runtime runs next, for at most one
// quantum, and its vruntime then grows by slice * priority. A larger priority
// number therefore means a smaller CPU share.
//
// A newcomer starts at the minimum vruntime of the ready set (or at the current
// clock when the set is empty) so it can neither starve nor monopolize the CPU.
// A preempted process rejoins the ready set before arrivals are admitted, so it
// counts toward that minimum.
type CFSScheduler struct {
	engine
}

// NewCFSScheduler validates the inputs and returns a scheduler over a private copy of workload.
func NewCFSScheduler(cfg Config, workload []ProcessSpec) (*CFSScheduler, error) {
	if err := validateInputs(PolicyCFS, cfg, workload); err != nil {
		return nil, err
	}
	return &CFSScheduler{engine: newEngine(PolicyCFS, cfg, workload)}, nil
}

// Run executes the simulation.
func (s *CFSScheduler) Run() *Result {
	s.begin()
	s.runTimeSliced(vruntimeOrder{})
	return s.result()
}

// vruntimeOrder dispatches the smallest vruntime first; ties keep ready-queue order.
type vruntimeOrder struct{}

func (vruntimeOrder) admit(p *Process, ready *ReadyQueue, clock int64) {
	if ready.Len() == 0 {
		p.VRuntime = float64(clock)
		return
	}
	p.VRuntime = minVRuntime(ready.Items())
}

func (vruntimeOrder) pick(ready *ReadyQueue) *Process {
	ready.Reorder(func(ps []*Process) {
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].VRuntime < ps[j].VRuntime
		})
	})
	return ready.DequeueFront()
}

func (vruntimeOrder) charge(p *Process, slice int64) {
	p.VRuntime += float64(slice * p.Priority)
}

func (vruntimeOrder) requeueFirst() bool { return true }

func (vruntimeOrder) reason(p *Process) string {
	return fmt.Sprintf("vruntime=%.2f", p.VRuntime)
}

func minVRuntime(ps []*Process) float64 {
	m := ps[0].VRuntime
	for _, p := range ps[1:] {
		if p.VRuntime < m {
			m = p.VRuntime
		}
	}
	return m
}

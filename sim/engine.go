package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// maxTick orders deadline-less processes after every real deadline.
const maxTick = math.MaxInt64

// Result is the outcome of one policy run.
type Result struct {
	Policy   string                 `json:"policy"`
	Finished []*Process             `json:"processes"` // in completion order
	Clock    int64                  `json:"clock"`     // final simulated clock
	IdleTime int64                  `json:"idle_time"` // accumulated idle CPU time
	Trace    *trace.SimulationTrace `json:"-"`         // nil unless tracing was enabled
}

// engine is the skeleton every policy embeds: the private workload copy, the
// simulation clock, idle accounting and the finished set.
type engine struct {
	name      string
	cfg       Config
	processes []*Process // deep copy of the workload, input order
	finished  []*Process
	clock     int64
	idle      int64
	trace     *trace.SimulationTrace
	ran       bool
}

func newEngine(name string, cfg Config, workload []ProcessSpec) engine {
	processes := make([]*Process, len(workload))
	for i, spec := range workload {
		processes[i] = NewProcess(spec)
		processes[i].seq = i
	}
	e := engine{
		name:      name,
		cfg:       cfg,
		processes: processes,
		finished:  make([]*Process, 0, len(workload)),
	}
	if cfg.Trace.Enabled() {
		e.trace = trace.NewSimulationTrace(cfg.Trace)
	}
	return e
}

// Name returns the canonical policy name.
func (e *engine) Name() string {
	return e.name
}

// begin guards against running a policy instance twice; its state is consumed by the first run.
func (e *engine) begin() {
	if e.ran {
		panic(fmt.Sprintf("%s: Run called twice on the same scheduler", e.name))
	}
	e.ran = true
	logrus.Debugf("[tick %07d] %s starting with %d processes", e.clock, e.name, len(e.processes))
}

// done reports whether every process has finished.
func (e *engine) done() bool {
	return len(e.finished) == len(e.processes)
}

// byArrival returns the processes sorted by arrival, ties in input order.
func (e *engine) byArrival() []*Process {
	sorted := make([]*Process, len(e.processes))
	copy(sorted, e.processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival < sorted[j].Arrival
	})
	return sorted
}

// idleAdvance jumps the clock to the earliest arrival among unfinished processes and
// charges the gap as idle time. Callers use it only when nothing is dispatchable
// while unfinished processes remain; anything else is an engine bug.
func (e *engine) idleAdvance() {
	next := int64(maxTick)
	found := false
	for _, p := range e.processes {
		if p.State == StateFinished {
			continue
		}
		if p.Arrival < next {
			next = p.Arrival
			found = true
		}
	}
	if !found {
		panic(fmt.Sprintf("%s: idle advance at tick %d with no unfinished process", e.name, e.clock))
	}
	if next <= e.clock {
		panic(fmt.Sprintf("%s: idle advance at tick %d but process arriving at %d was not dispatchable", e.name, e.clock, next))
	}
	logrus.Debugf("[tick %07d] %s idle until %d", e.clock, e.name, next)
	if e.trace != nil {
		e.trace.RecordIdle(trace.IdleRecord{From: e.clock, To: next})
	}
	e.idle += next - e.clock
	e.clock = next
}

// execute records the wait since the process last stopped, then runs it for slice ticks.
func (e *engine) execute(p *Process, slice int64, reason string) {
	if slice <= 0 || slice > p.RemainingTime {
		panic(fmt.Sprintf("%s: invalid slice %d for process %s with %d remaining", e.name, slice, p.ID, p.RemainingTime))
	}
	p.appendSegment(SegmentWaiting, e.clock-p.LastActiveTime)
	p.State = StateRunning
	logrus.Debugf("[tick %07d] %s dispatch %s for %d (%s)", e.clock, e.name, p.ID, slice, reason)
	if e.trace != nil {
		e.trace.RecordDispatch(trace.DispatchRecord{ProcessID: p.ID, Clock: e.clock, Slice: slice, Reason: reason})
	}
	p.appendSegment(SegmentExecuting, slice)
	e.clock += slice
	p.RemainingTime -= slice
	p.LastActiveTime = e.clock
}

// preempt returns a partially run process to the ready state, charging the
// context-switch overhead. LastActiveTime moves past the overhead so it is never
// counted as wait.
func (e *engine) preempt(p *Process) {
	p.State = StateReady
	if e.trace != nil {
		e.trace.RecordPreemption(trace.PreemptionRecord{ProcessID: p.ID, Clock: e.clock, Overhead: e.cfg.Overhead})
	}
	if e.cfg.Overhead > 0 {
		p.appendSegment(SegmentOverhead, e.cfg.Overhead)
		e.clock += e.cfg.Overhead
		p.LastActiveTime = e.clock
	}
}

// finish writes the completion metrics exactly once and moves p to the finished set.
func (e *engine) finish(p *Process, wait int64) {
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("%s: finishing process %s with %d remaining", e.name, p.ID, p.RemainingTime))
	}
	p.State = StateFinished
	p.FinishTime = e.clock
	p.TurnaroundTime = p.FinishTime - p.Arrival
	p.WaitTime = wait
	e.finished = append(e.finished, p)
	logrus.Debugf("[tick %07d] %s finished %s (wait=%d, turnaround=%d)", e.clock, e.name, p.ID, p.WaitTime, p.TurnaroundTime)
}

// runToCompletion is the non-preemptive dispatch shared by FIFO and SJF.
func (e *engine) runToCompletion(p *Process, reason string) {
	wait := e.clock - p.Arrival
	e.execute(p, p.RemainingTime, reason)
	e.finish(p, wait)
}

func (e *engine) result() *Result {
	logrus.Infof("[tick %07d] %s simulation ended: %d finished, idle=%d", e.clock, e.name, len(e.finished), e.idle)
	return &Result{
		Policy:   e.name,
		Finished: e.finished,
		Clock:    e.clock,
		IdleTime: e.idle,
		Trace:    e.trace,
	}
}

// sliceOrder is what distinguishes the time-sliced policies: how a newly arrived
// process is admitted, which ready process runs next, and what running costs it.
type sliceOrder interface {
	admit(p *Process, ready *ReadyQueue, clock int64)
	pick(ready *ReadyQueue) *Process
	charge(p *Process, slice int64)
	reason(p *Process) string
	// requeueFirst reports whether a preempted process rejoins the ready set
	// before the arrivals that came in during its slice are admitted.
	requeueFirst() bool
}

// runTimeSliced is the preemptive loop shared by round-robin, EDF and fair-share.
func (e *engine) runTimeSliced(order sliceOrder) {
	upcoming := e.byArrival()
	ready := &ReadyQueue{}

	absorbArrivals := func() {
		for len(upcoming) > 0 && upcoming[0].Arrival <= e.clock {
			p := upcoming[0]
			upcoming = upcoming[1:]
			order.admit(p, ready, e.clock)
			p.State = StateReady
			ready.Enqueue(p)
		}
	}

	for !e.done() {
		absorbArrivals()
		if ready.Len() == 0 {
			e.idleAdvance()
			continue
		}

		logrus.Debugf("[tick %07d] %s ready %s", e.clock, e.name, ready)
		p := order.pick(ready)
		slice := min(p.RemainingTime, e.cfg.Quantum)
		e.execute(p, slice, order.reason(p))
		order.charge(p, slice)

		if p.RemainingTime == 0 {
			e.finish(p, e.clock-p.Arrival-p.TotalTime)
			continue
		}
		e.preempt(p)
		if order.requeueFirst() {
			ready.Enqueue(p)
			absorbArrivals()
			continue
		}
		absorbArrivals()
		ready.Enqueue(p)
	}
}

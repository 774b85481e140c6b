package sim

// RoundRobinScheduler gives each ready process at most one quantum per turn,
// cycling through a FIFO ready queue. A preempted process pays the overhead and
// rejoins the tail after anything that arrived while it ran.
type RoundRobinScheduler struct {
	engine
}

// NewRoundRobinScheduler validates the inputs and returns a scheduler over a private copy of workload.
func NewRoundRobinScheduler(cfg Config, workload []ProcessSpec) (*RoundRobinScheduler, error) {
	if err := validateInputs(PolicyRoundRobin, cfg, workload); err != nil {
		return nil, err
	}
	return &RoundRobinScheduler{engine: newEngine(PolicyRoundRobin, cfg, workload)}, nil
}

// Run executes the simulation.
func (s *RoundRobinScheduler) Run() *Result {
	s.begin()
	s.runTimeSliced(fifoOrder{})
	return s.result()
}

// fifoOrder dispatches in ready-queue order.
type fifoOrder struct{}

func (fifoOrder) admit(_ *Process, _ *ReadyQueue, _ int64) {}

func (fifoOrder) pick(ready *ReadyQueue) *Process {
	return ready.DequeueFront()
}

func (fifoOrder) charge(_ *Process, _ int64) {}

func (fifoOrder) requeueFirst() bool { return false }

func (fifoOrder) reason(_ *Process) string {
	return "fifo"
}

package sim

import "fmt"

// FIFOScheduler runs processes to completion in arrival order.
// Ties on arrival keep workload order. No overhead is ever charged.
type FIFOScheduler struct {
	engine
}

// NewFIFOScheduler validates the inputs and returns a scheduler over a private copy of workload.
func NewFIFOScheduler(cfg Config, workload []ProcessSpec) (*FIFOScheduler, error) {
	if err := validateInputs(PolicyFIFO, cfg, workload); err != nil {
		return nil, err
	}
	return &FIFOScheduler{engine: newEngine(PolicyFIFO, cfg, workload)}, nil
}

// Run executes the simulation.
func (s *FIFOScheduler) Run() *Result {
	s.begin()
	for _, p := range s.byArrival() {
		if s.clock < p.Arrival {
			s.idleAdvance()
		}
		s.runToCompletion(p, fmt.Sprintf("arrival=%d", p.Arrival))
	}
	return s.result()
}

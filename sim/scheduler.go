package sim

import (
	"fmt"
	"sort"
)

// Canonical policy names.
const (
	PolicyFIFO       = "fifo"
	PolicySJF        = "sjf"
	PolicyRoundRobin = "rr"
	PolicyEDF        = "edf"
	PolicyCFS        = "cfs"
)

// Scheduler is one simulation run of a policy over a private copy of a workload.
// Run may be called once; the returned Result owns the finished processes.
type Scheduler interface {
	Name() string
	Run() *Result
}

// ValidSchedulers is the set of canonical scheduler names, mapped to whether the
// policy is preemptive (and therefore needs a positive quantum).
var ValidSchedulers = map[string]bool{
	PolicyFIFO:       false,
	PolicySJF:        false,
	PolicyRoundRobin: true,
	PolicyEDF:        true,
	PolicyCFS:        true,
}

// schedulerAliases maps accepted long names to canonical ones.
var schedulerAliases = map[string]string{
	"round-robin": PolicyRoundRobin,
	"fair-share":  PolicyCFS,
}

// CanonicalSchedulerName resolves aliases. The second result is false for unknown names.
func CanonicalSchedulerName(name string) (string, bool) {
	if canonical, ok := schedulerAliases[name]; ok {
		return canonical, true
	}
	_, ok := ValidSchedulers[name]
	return name, ok
}

// IsValidScheduler returns true if name is a canonical scheduler name or an alias.
func IsValidScheduler(name string) bool {
	_, ok := CanonicalSchedulerName(name)
	return ok
}

// IsPreemptive reports whether the named policy slices execution by quantum.
func IsPreemptive(name string) bool {
	canonical, _ := CanonicalSchedulerName(name)
	return ValidSchedulers[canonical]
}

// SchedulerNames returns the canonical scheduler names, sorted.
func SchedulerNames() []string {
	names := make([]string, 0, len(ValidSchedulers))
	for name := range ValidSchedulers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateInputs(name string, cfg Config, workload []ProcessSpec) error {
	if err := cfg.Validate(IsPreemptive(name)); err != nil {
		return err
	}
	return ValidateWorkload(workload)
}

// NewScheduler creates a Scheduler by name over a private copy of workload.
// Valid names: "fifo", "sjf", "rr" (alias "round-robin"), "edf", "cfs" (alias "fair-share").
func NewScheduler(name string, cfg Config, workload []ProcessSpec) (Scheduler, error) {
	canonical, ok := CanonicalSchedulerName(name)
	if !ok {
		return nil, fmt.Errorf("unknown scheduler %q", name)
	}
	if err := validateInputs(canonical, cfg, workload); err != nil {
		return nil, err
	}
	e := newEngine(canonical, cfg, workload)
	switch canonical {
	case PolicyFIFO:
		return &FIFOScheduler{engine: e}, nil
	case PolicySJF:
		return &SJFScheduler{engine: e}, nil
	case PolicyRoundRobin:
		return &RoundRobinScheduler{engine: e}, nil
	case PolicyEDF:
		return &EDFScheduler{engine: e}, nil
	case PolicyCFS:
		return &CFSScheduler{engine: e}, nil
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", canonical))
	}
}

// Simulate builds the named scheduler and runs it.
func Simulate(name string, cfg Config, workload []ProcessSpec) (*Result, error) {
	s, err := NewScheduler(name, cfg, workload)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

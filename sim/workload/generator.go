package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/schedsim/schedsim/sim"
)

// GeneratorSpec parameterizes a synthetic workload. Inter-arrival gaps are
// exponential with the given mean; bursts, priorities, slack and pages are uniform
// over their inclusive ranges. A process carries a deadline with probability
// DeadlineFraction, set to its burst plus the drawn slack.
type GeneratorSpec struct {
	Seed             int64   `yaml:"seed"`
	Count            int     `yaml:"count"`
	MeanInterArrival float64 `yaml:"mean_inter_arrival"`
	MinBurst         int64   `yaml:"min_burst"`
	MaxBurst         int64   `yaml:"max_burst"`
	MaxPriority      int64   `yaml:"max_priority"`
	DeadlineFraction float64 `yaml:"deadline_fraction"`
	MinSlack         int64   `yaml:"min_slack"`
	MaxSlack         int64   `yaml:"max_slack"`
	MaxPages         int     `yaml:"max_pages"`
}

// DefaultGeneratorSpec returns the generator defaults used by the CLI.
func DefaultGeneratorSpec() GeneratorSpec {
	return GeneratorSpec{
		Seed:             42,
		Count:            10,
		MeanInterArrival: 3,
		MinBurst:         1,
		MaxBurst:         10,
		MaxPriority:      4,
		DeadlineFraction: 0.5,
		MinSlack:         0,
		MaxSlack:         10,
		MaxPages:         4,
	}
}

// Validate checks the generator ranges.
func (g GeneratorSpec) Validate() error {
	if g.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", g.Count)
	}
	if math.IsNaN(g.MeanInterArrival) || math.IsInf(g.MeanInterArrival, 0) || g.MeanInterArrival < 0 {
		return fmt.Errorf("mean_inter_arrival must be a finite non-negative number, got %f", g.MeanInterArrival)
	}
	if g.MinBurst < 1 || g.MaxBurst < g.MinBurst {
		return fmt.Errorf("burst range must satisfy 1 <= min_burst <= max_burst, got [%d, %d]", g.MinBurst, g.MaxBurst)
	}
	if g.MaxPriority < 1 {
		return fmt.Errorf("max_priority must be >= 1, got %d", g.MaxPriority)
	}
	if g.DeadlineFraction < 0 || g.DeadlineFraction > 1 {
		return fmt.Errorf("deadline_fraction must be in [0, 1], got %f", g.DeadlineFraction)
	}
	if g.MinSlack < 0 || g.MaxSlack < g.MinSlack {
		return fmt.Errorf("slack range must satisfy 0 <= min_slack <= max_slack, got [%d, %d]", g.MinSlack, g.MaxSlack)
	}
	if g.MaxPages < 1 {
		return fmt.Errorf("max_pages must be >= 1, got %d", g.MaxPages)
	}
	return nil
}

// Generate creates a workload from spec.
// Deterministic given the same spec. Returns descriptors sorted by arrival with
// sequential ids P1..Pn.
func Generate(spec GeneratorSpec) ([]sim.ProcessSpec, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	arrivals := rng.ForSubsystem(sim.SubsystemArrivals)
	bursts := rng.ForSubsystem(sim.SubsystemBursts)
	priorities := rng.ForSubsystem(sim.SubsystemPriorities)
	deadlines := rng.ForSubsystem(sim.SubsystemDeadlines)
	pages := rng.ForSubsystem(sim.SubsystemPages)

	specs := make([]sim.ProcessSpec, spec.Count)
	var clock float64
	for i := range specs {
		if i > 0 {
			clock += arrivals.ExpFloat64() * spec.MeanInterArrival
		}
		burst := uniform(bursts, spec.MinBurst, spec.MaxBurst)
		s := sim.ProcessSpec{
			Arrival:   int64(math.Round(clock)),
			TotalTime: burst,
			Priority:  uniform(priorities, 1, spec.MaxPriority),
			NumPages:  int(uniform(pages, 1, int64(spec.MaxPages))),
		}
		// Both draws happen for every process so toggling the fraction does not
		// shift the slack sequence.
		hit := deadlines.Float64() < spec.DeadlineFraction
		slack := uniform(deadlines, spec.MinSlack, spec.MaxSlack)
		if hit {
			d := burst + slack
			s.Deadline = &d
		}
		specs[i] = s
	}

	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Arrival < specs[j].Arrival
	})
	for i := range specs {
		specs[i].ID = fmt.Sprintf("P%d", i+1)
	}
	if err := sim.ValidateWorkload(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// uniform draws from [lo, hi] inclusive.
func uniform(r *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Int63n(hi-lo+1)
}

package sim

import (
	"errors"
	"fmt"

	"github.com/schedsim/schedsim/sim/trace"
)

// ErrInvalidConfig is wrapped by every simulation parameter validation error.
var ErrInvalidConfig = errors.New("invalid simulation config")

// ErrInvalidWorkload is wrapped by every process descriptor validation error.
var ErrInvalidWorkload = errors.New("invalid workload")

// Config groups the simulation parameters shared by every policy.
type Config struct {
	Quantum  int64             // time slice for preemptive policies (must be > 0 for rr, edf, cfs)
	Overhead int64             // context-switch cost charged on preemption, not on completion
	DiskCost int64             // accepted for compatibility with process files; not used by any policy
	Trace    trace.TraceConfig // decision trace collection (zero value = off)
}

// NewConfig creates a Config with tracing disabled.
func NewConfig(quantum, overhead, diskCost int64) Config {
	return Config{Quantum: quantum, Overhead: overhead, DiskCost: diskCost}
}

// Validate checks parameter ranges. The quantum is only checked for preemptive policies.
func (c Config) Validate(preemptive bool) error {
	if preemptive && c.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfig, c.Quantum)
	}
	if c.Overhead < 0 {
		return fmt.Errorf("%w: overhead must be non-negative, got %d", ErrInvalidConfig, c.Overhead)
	}
	if c.DiskCost < 0 {
		return fmt.Errorf("%w: disk cost must be non-negative, got %d", ErrInvalidConfig, c.DiskCost)
	}
	if !trace.IsValidTraceLevel(string(c.Trace.Level)) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidConfig, c.Trace.Level)
	}
	return nil
}

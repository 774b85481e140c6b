// Package trace provides decision-trace recording for scheduling policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures a single dispatch decision: which process got the CPU,
// when, and for how long.
type DispatchRecord struct {
	ProcessID string
	Clock     int64
	Slice     int64
	Reason    string // policy-specific ordering key, e.g. "deadline=12" or "vruntime=4.0"
}

// PreemptionRecord captures a process being returned to the ready set before completion.
type PreemptionRecord struct {
	ProcessID string
	Clock     int64 // clock at the end of the executed slice, before overhead
	Overhead  int64
}

// IdleRecord captures a CPU idle period [From, To).
type IdleRecord struct {
	From int64
	To   int64
}

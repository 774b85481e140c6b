// Package sim provides the CPU scheduling simulation engine for schedsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready → running → finished) and its timeline
//   - engine.go: the shared skeleton every policy embeds (clock, idle accounting, finalize)
//   - scheduler.go: the policy registry and the Scheduler interface
//
// # Policies
//
// Five policies are implemented, each in its own file:
//   - fifo.go: first-in-first-out, non-preemptive, arrival order
//   - sjf.go: shortest job first, non-preemptive
//   - round_robin.go: fixed quantum, FIFO ready queue, overhead on preemption
//   - edf.go: earliest absolute deadline first, re-sorted every cycle
//   - cfs.go: fair-share ordering by weighted virtual runtime
//
// Every policy works on a private deep copy of the workload, so repeated or
// concurrent runs over the same []ProcessSpec never observe each other.
//
// # Sub-packages
//
//   - sim/trace/: dispatch decision trace recording
//   - sim/workload/: workload file loading, the process store and synthetic generation
//   - sim/report/: tables, text Gantt charts, CSV and metrics export
package sim

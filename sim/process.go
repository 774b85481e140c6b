// Defines the Process struct that models a single workload unit in the simulation.
// Tracks arrival, CPU demand, deadline, scheduling state and the timeline of segments.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew      ProcessState = "new"
	StateReady    ProcessState = "ready"
	StateRunning  ProcessState = "running"
	StateFinished ProcessState = "finished"
)

// SegmentKind labels a timeline segment.
type SegmentKind string

const (
	SegmentWaiting   SegmentKind = "waiting"
	SegmentExecuting SegmentKind = "executing"
	SegmentOverhead  SegmentKind = "overhead"
)

// Segment is one timed piece of a process timeline.
type Segment struct {
	Duration int64       `json:"duration" yaml:"duration"`
	Kind     SegmentKind `json:"kind" yaml:"kind"`
}

// ProcessSpec is the static description of a process, as loaded from a workload file.
type ProcessSpec struct {
	ID        string `json:"id" yaml:"id"`
	Arrival   int64  `json:"arrival" yaml:"arrival"`
	TotalTime int64  `json:"total_time" yaml:"total_time"`
	Priority  int64  `json:"priority" yaml:"priority"`
	Deadline  *int64 `json:"deadline,omitempty" yaml:"deadline,omitempty"` // relative to arrival; nil = no deadline
	NumPages  int    `json:"num_pages" yaml:"num_pages"`
}

// Validate checks the descriptor ranges. NumPages of 0 is accepted and means 1.
func (s ProcessSpec) Validate() error {
	if s.Arrival < 0 {
		return fmt.Errorf("%w: process %q: arrival must be non-negative, got %d", ErrInvalidWorkload, s.ID, s.Arrival)
	}
	if s.TotalTime <= 0 {
		return fmt.Errorf("%w: process %q: total_time must be positive, got %d", ErrInvalidWorkload, s.ID, s.TotalTime)
	}
	if s.Priority < 1 {
		return fmt.Errorf("%w: process %q: priority must be >= 1, got %d", ErrInvalidWorkload, s.ID, s.Priority)
	}
	if s.Deadline != nil && *s.Deadline < 0 {
		return fmt.Errorf("%w: process %q: deadline must be non-negative, got %d", ErrInvalidWorkload, s.ID, *s.Deadline)
	}
	if s.NumPages < 0 {
		return fmt.Errorf("%w: process %q: num_pages must be >= 1, got %d", ErrInvalidWorkload, s.ID, s.NumPages)
	}
	return nil
}

// ValidateWorkload validates every descriptor and rejects duplicate ids.
func ValidateWorkload(specs []ProcessSpec) error {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidWorkload, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Process models a single process's mutable state during one simulation run.
type Process struct {
	ID        string `json:"id"`
	Arrival   int64  `json:"arrival"`
	TotalTime int64  `json:"total_time"`
	Priority  int64  `json:"priority"`
	NumPages  int    `json:"num_pages"`

	Deadline         *int64 `json:"deadline,omitempty"`          // relative deadline as given
	AbsoluteDeadline *int64 `json:"absolute_deadline,omitempty"` // Arrival + Deadline, fixed at construction

	RemainingTime  int64        `json:"remaining_time"`
	State          ProcessState `json:"state"`
	VRuntime       float64      `json:"vruntime"`         // fair-share only
	LastActiveTime int64        `json:"last_active_time"` // last clock the process stopped running or became ready

	TimeLine []Segment `json:"time_line"`

	WaitTime       int64 `json:"wait_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	FinishTime     int64 `json:"finish_time"` // -1 until finished

	seq int // position in the input workload
}

// NewProcess builds a fresh Process from its descriptor. The result shares no
// memory with spec.
func NewProcess(spec ProcessSpec) *Process {
	pages := spec.NumPages
	if pages == 0 {
		pages = 1
	}
	p := &Process{
		ID:             spec.ID,
		Arrival:        spec.Arrival,
		TotalTime:      spec.TotalTime,
		Priority:       spec.Priority,
		NumPages:       pages,
		RemainingTime:  spec.TotalTime,
		State:          StateNew,
		LastActiveTime: spec.Arrival,
		TimeLine:       make([]Segment, 0),
		FinishTime:     -1,
	}
	if spec.Deadline != nil {
		rel := *spec.Deadline
		abs := spec.Arrival + rel
		p.Deadline = &rel
		p.AbsoluteDeadline = &abs
	}
	return p
}

// appendSegment records a segment; non-positive durations are dropped.
func (p *Process) appendSegment(kind SegmentKind, duration int64) {
	if duration <= 0 {
		return
	}
	p.TimeLine = append(p.TimeLine, Segment{Duration: duration, Kind: kind})
}

// HasDeadline reports whether the process carries a deadline.
func (p *Process) HasDeadline() bool {
	return p.AbsoluteDeadline != nil
}

// deadlineKey returns the absolute deadline, or MaxInt64 for processes without one.
func (p *Process) deadlineKey() int64 {
	if p.AbsoluteDeadline == nil {
		return maxTick
	}
	return *p.AbsoluteDeadline
}

// MissedDeadline reports whether a finished process completed after its absolute deadline.
func (p *Process) MissedDeadline() bool {
	return p.State == StateFinished && p.AbsoluteDeadline != nil && p.FinishTime > *p.AbsoluteDeadline
}

// StartTimes walks the timeline from arrival and returns the clock value at which
// each executing segment began.
func (p *Process) StartTimes() []int64 {
	starts := make([]int64, 0)
	t := p.Arrival
	for _, seg := range p.TimeLine {
		if seg.Kind == SegmentExecuting {
			starts = append(starts, t)
		}
		t += seg.Duration
	}
	return starts
}

// ExecutedTime sums the executing segments.
func (p *Process) ExecutedTime() int64 {
	return p.sumSegments(SegmentExecuting)
}

// OverheadCount is the number of context-switch overhead segments charged to the process.
func (p *Process) OverheadCount() int {
	n := 0
	for _, seg := range p.TimeLine {
		if seg.Kind == SegmentOverhead {
			n++
		}
	}
	return n
}

func (p *Process) sumSegments(kind SegmentKind) int64 {
	var total int64
	for _, seg := range p.TimeLine {
		if seg.Kind == kind {
			total += seg.Duration
		}
	}
	return total
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, Remaining: %d, Arrival: %d)", p.ID, p.State, p.RemainingTime, p.Arrival)
}

// Implements the ReadyQueue, which holds processes that have arrived and are
// waiting for the CPU.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of dispatchable processes.
// Policies that order by something other than arrival (EDF, fair-share) re-sort it
// in place with Reorder before each dispatch.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.ID)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT append to
// or reslice it. For reordering, use Reorder() instead.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering:
//
//	rq.Reorder(func(ps []*Process) {
//	    sort.SliceStable(ps, func(i, j int) bool { return ps[i].VRuntime < ps[j].VRuntime })
//	})
//
// fn MUST NOT change the slice length (no append/delete).
func (rq *ReadyQueue) Reorder(fn func([]*Process)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// DequeueFront removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) DequeueFront() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

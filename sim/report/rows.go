// Package report renders simulation results for people and tools: a results
// table, a text Gantt chart, CSV export and a Prometheus textfile.
package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// ProcessRow is one line of the per-process results table.
type ProcessRow struct {
	ID               string
	Arrival          int64
	Burst            int64
	AbsoluteDeadline *int64
	Priority         int64
	Starts           []int64
	Finish           int64
	Wait             int64
	Turnaround       int64
	DeadlineOK       bool
}

// rowHeader matches ProcessRow.Strings.
var rowHeader = []string{"ID", "Arrival", "Burst", "Deadline", "Priority", "Starts", "Finish", "Wait", "Turnaround", "Deadline OK"}

// ProcessRows builds one row per finished process, sorted by arrival with ties in
// completion order. A process without a deadline is always on time.
func ProcessRows(res *sim.Result) []ProcessRow {
	rows := make([]ProcessRow, 0, len(res.Finished))
	for _, p := range res.Finished {
		rows = append(rows, ProcessRow{
			ID:               p.ID,
			Arrival:          p.Arrival,
			Burst:            p.TotalTime,
			AbsoluteDeadline: p.AbsoluteDeadline,
			Priority:         p.Priority,
			Starts:           p.StartTimes(),
			Finish:           p.FinishTime,
			Wait:             p.WaitTime,
			Turnaround:       p.TurnaroundTime,
			DeadlineOK:       !p.MissedDeadline(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Arrival < rows[j].Arrival
	})
	return rows
}

// Strings renders the row for text and CSV output.
func (r ProcessRow) Strings() []string {
	deadline := "-"
	if r.AbsoluteDeadline != nil {
		deadline = strconv.FormatInt(*r.AbsoluteDeadline, 10)
	}
	starts := make([]string, len(r.Starts))
	for i, s := range r.Starts {
		starts[i] = strconv.FormatInt(s, 10)
	}
	ok := "yes"
	if !r.DeadlineOK {
		ok = "no"
	}
	return []string{
		r.ID,
		strconv.FormatInt(r.Arrival, 10),
		strconv.FormatInt(r.Burst, 10),
		deadline,
		strconv.FormatInt(r.Priority, 10),
		strings.Join(starts, " "),
		strconv.FormatInt(r.Finish, 10),
		strconv.FormatInt(r.Wait, 10),
		strconv.FormatInt(r.Turnaround, 10),
		ok,
	}
}

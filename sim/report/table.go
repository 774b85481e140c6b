package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// RenderTable writes the per-process results table followed by the run summary.
func RenderTable(w io.Writer, res *sim.Result) {
	s := sim.Summarize(res)
	outputTitle(w, res.Policy)

	rows := ProcessRows(res)
	bulk := make([][]string, len(rows))
	for i, r := range rows {
		bulk[i] = r.Strings()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(rowHeader)
	table.AppendBulk(bulk)
	table.SetFooter([]string{"", "", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", s.MeanWait),
		fmt.Sprintf("Average\n%.2f", s.MeanTurnaround),
		fmt.Sprintf("Missed\n%d", s.DeadlineMisses)})
	table.Render()

	writeSummary(w, s)
}

func writeSummary(w io.Writer, s sim.Summary) {
	_, _ = fmt.Fprintf(w, "Total time:        %d\n", s.TotalTime)
	_, _ = fmt.Fprintf(w, "Throughput:        %.4f/t\n", s.Throughput)
	_, _ = fmt.Fprintf(w, "Idle CPU:          %d (%.2f%%)\n", s.IdleTime, s.IdlePercent)
	_, _ = fmt.Fprintf(w, "Context switches:  %d\n", s.ContextSwitches)
	_, _ = fmt.Fprintf(w, "Deadline misses:   %d/%d\n", s.DeadlineMisses, s.DeadlineProcesses)
}

// RenderComparison writes one summary line per policy run.
func RenderComparison(w io.Writer, results []*sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Mean wait", "Mean turnaround", "P90 turnaround", "Throughput", "Idle %", "Context switches", "Deadline misses"})
	for _, res := range results {
		s := sim.Summarize(res)
		table.Append([]string{
			s.Policy,
			fmt.Sprintf("%.2f", s.MeanWait),
			fmt.Sprintf("%.2f", s.MeanTurnaround),
			fmt.Sprintf("%.2f", s.P90Turnaround),
			fmt.Sprintf("%.4f", s.Throughput),
			fmt.Sprintf("%.2f", s.IdlePercent),
			fmt.Sprintf("%d", s.ContextSwitches),
			fmt.Sprintf("%d/%d", s.DeadlineMisses, s.DeadlineProcesses),
		})
	}
	table.Render()
}

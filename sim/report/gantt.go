package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// Gantt cell glyphs.
const (
	glyphIdle         = ' '
	glyphWaiting      = '.'
	glyphExecuting    = '#'
	glyphOverhead     = '!'
	glyphPastDeadline = 'x'
)

// GanttOptions controls RenderGantt.
type GanttOptions struct {
	// GrayAfterDeadline replaces every tick at or after a process's absolute
	// deadline with 'x', whatever the process was doing.
	GrayAfterDeadline bool
}

// GanttRow returns the timeline of p as one glyph per tick over [0, width).
func GanttRow(p *sim.Process, width int64, opts GanttOptions) string {
	cells := []byte(strings.Repeat(string(glyphIdle), int(width)))
	t := p.Arrival
	for _, seg := range p.TimeLine {
		glyph := glyphFor(seg.Kind)
		for i := int64(0); i < seg.Duration && t < width; i++ {
			cells[t] = glyph
			if opts.GrayAfterDeadline && p.AbsoluteDeadline != nil && t >= *p.AbsoluteDeadline {
				cells[t] = glyphPastDeadline
			}
			t++
		}
	}
	return string(cells)
}

func glyphFor(kind sim.SegmentKind) byte {
	switch kind {
	case sim.SegmentExecuting:
		return glyphExecuting
	case sim.SegmentOverhead:
		return glyphOverhead
	default:
		return glyphWaiting
	}
}

// RenderGantt writes a text Gantt chart with one row per process, in arrival
// order, and one column per tick of the run.
func RenderGantt(w io.Writer, res *sim.Result, opts GanttOptions) {
	width := sim.Summarize(res).TotalTime
	rows := ProcessRows(res)
	byID := make(map[string]*sim.Process, len(res.Finished))
	labelWidth := 0
	for _, p := range res.Finished {
		byID[p.ID] = p
		labelWidth = max(labelWidth, len(p.ID))
	}

	_, _ = fmt.Fprintf(w, "Gantt schedule (%s, ticks 0-%d)\n", res.Policy, width)
	axis := make([]byte, width)
	for t := range axis {
		axis[t] = byte('0' + t%10)
	}
	_, _ = fmt.Fprintf(w, "%*s  %s\n", labelWidth, "", axis)
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%-*s |%s|\n", labelWidth, r.ID, GanttRow(byID[r.ID], width, opts))
	}
	legend := "# executing  . waiting  ! overhead"
	if opts.GrayAfterDeadline {
		legend += "  x past deadline"
	}
	_, _ = fmt.Fprintln(w, legend)
}

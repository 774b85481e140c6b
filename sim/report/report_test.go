package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func proc(id string, arrival, total int64) sim.ProcessSpec {
	return sim.ProcessSpec{ID: id, Arrival: arrival, TotalTime: total, Priority: 1, NumPages: 1}
}

func withDeadline(s sim.ProcessSpec, d int64) sim.ProcessSpec {
	s.Deadline = &d
	return s
}

// rrWithOverhead: A(0,3), B(0,2), quantum 2, overhead 1.
// B finishes at 5 and A at 6 after one preemption.
func rrWithOverhead(t *testing.T) *sim.Result {
	t.Helper()
	res, err := sim.Simulate("rr", sim.NewConfig(2, 1, 0), []sim.ProcessSpec{proc("A", 0, 3), proc("B", 0, 2)})
	require.NoError(t, err)
	return res
}

func TestProcessRows_ArrivalOrderAndStarts(t *testing.T) {
	rows := ProcessRows(rrWithOverhead(t))

	// both arrive at 0, so completion order (B then A) is kept
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].ID)
	assert.Equal(t, []int64{3}, rows[0].Starts)
	assert.True(t, rows[0].DeadlineOK)
	assert.Equal(t, "A", rows[1].ID)
	assert.Equal(t, []int64{0, 5}, rows[1].Starts)
	assert.Equal(t, int64(6), rows[1].Finish)
}

func TestProcessRow_Strings(t *testing.T) {
	d := int64(4)
	r := ProcessRow{ID: "P1", Arrival: 1, Burst: 3, AbsoluteDeadline: &d, Priority: 2,
		Starts: []int64{1, 6}, Finish: 8, Wait: 4, Turnaround: 7, DeadlineOK: false}

	assert.Equal(t, []string{"P1", "1", "3", "4", "2", "1 6", "8", "4", "7", "no"}, r.Strings())

	r.AbsoluteDeadline = nil
	r.DeadlineOK = true
	got := r.Strings()
	assert.Equal(t, "-", got[3])
	assert.Equal(t, "yes", got[9])
}

func TestGanttRow_Glyphs(t *testing.T) {
	res := rrWithOverhead(t)
	byID := map[string]*sim.Process{}
	for _, p := range res.Finished {
		byID[p.ID] = p
	}

	assert.Equal(t, "##!..#", GanttRow(byID["A"], 6, GanttOptions{}))
	assert.Equal(t, "...## ", GanttRow(byID["B"], 6, GanttOptions{}))
}

func TestGanttRow_GrayAfterDeadline(t *testing.T) {
	// GIVEN A(0,5) with absolute deadline 3 under FIFO
	res, err := sim.Simulate("fifo", sim.NewConfig(1, 0, 0), []sim.ProcessSpec{withDeadline(proc("A", 0, 5), 3)})
	require.NoError(t, err)
	a := res.Finished[0]

	assert.Equal(t, "#####", GanttRow(a, 5, GanttOptions{}))
	assert.Equal(t, "###xx", GanttRow(a, 5, GanttOptions{GrayAfterDeadline: true}))
}

func TestRenderGantt_OneRowPerProcess(t *testing.T) {
	var buf bytes.Buffer
	RenderGantt(&buf, rrWithOverhead(t), GanttOptions{GrayAfterDeadline: true})

	out := buf.String()
	assert.Contains(t, out, "Gantt schedule (rr, ticks 0-6)")
	assert.Contains(t, out, "   012345\n")
	assert.Contains(t, out, "A |##!..#|\n")
	assert.Contains(t, out, "B |...## |\n")
	assert.Contains(t, out, "x past deadline")
}

func TestRenderTable_ContainsRowsAndSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, rrWithOverhead(t))

	out := buf.String()
	assert.Contains(t, out, "DEADLINE OK") // tablewriter upper-cases headers
	assert.Contains(t, out, "0 5")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "Context switches:  2")
	assert.Contains(t, out, "Total time:        6")
}

func TestRenderComparison_OneLinePerPolicy(t *testing.T) {
	workload := []sim.ProcessSpec{proc("A", 0, 3), proc("B", 0, 2)}
	var results []*sim.Result
	for _, name := range sim.SchedulerNames() {
		res, err := sim.Simulate(name, sim.NewConfig(2, 1, 0), workload)
		require.NoError(t, err)
		results = append(results, res)
	}

	var buf bytes.Buffer
	RenderComparison(&buf, results)

	for _, name := range sim.SchedulerNames() {
		assert.Contains(t, buf.String(), name)
	}
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rrWithOverhead(t)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Policy", records[0][0])
	assert.Equal(t, []string{"rr", "A", "0", "3", "-", "1", "0 5", "6", "3", "6", "yes"}, records[2])
}

func TestRunMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newRunMetrics(reg)

	m.observe(rrWithOverhead(t))

	assert.InDelta(t, 3.0, testutil.ToFloat64(m.meanWait.WithLabelValues("rr")), 1e-9)
	assert.InDelta(t, 5.5, testutil.ToFloat64(m.meanTurnaround.WithLabelValues("rr")), 1e-9)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.contextSwitches.WithLabelValues("rr")), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.idleRatio.WithLabelValues("rr")), 1e-9)
	assert.Equal(t, 6, mustGatherAndCount(t, reg))
}

func TestWriteMetrics_Textfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedsim.prom")

	require.NoError(t, WriteMetrics(path, rrWithOverhead(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `schedsim_mean_wait_time{policy="rr"} 3`)
	assert.Contains(t, out, `schedsim_context_switches{policy="rr"} 2`)
	assert.Contains(t, out, "# TYPE schedsim_throughput gauge")
}

func mustGatherAndCount(t *testing.T, reg *prometheus.Registry) int {
	t.Helper()
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	return n
}

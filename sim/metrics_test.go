package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_RoundRobinWithOverhead(t *testing.T) {
	// GIVEN A(total=3), B(total=2) under RR quantum=2, overhead=1
	res := runPolicy(t, "rr", NewConfig(2, 1, 0), []ProcessSpec{proc("A", 0, 3), proc("B", 0, 2)})

	// WHEN summarized
	s := Summarize(res)

	// THEN one preemption plus one hand-off between the two processes
	assert.Equal(t, "rr", s.Policy)
	assert.Equal(t, 2, s.FinishedCount)
	assert.Equal(t, 1, s.Preemptions)
	assert.Equal(t, 2, s.ContextSwitches)
	assert.InDelta(t, 3.0, s.MeanWait, 1e-9)
	assert.Equal(t, int64(3), s.MaxWait)
	assert.InDelta(t, 5.5, s.MeanTurnaround, 1e-9)
	assert.Equal(t, int64(6), s.TotalTime)
	assert.InDelta(t, 2.0/6.0, s.Throughput, 1e-9)
	assert.Equal(t, 0.0, s.IdlePercent)
}

func TestSummarize_IdleAndDeadlines(t *testing.T) {
	// GIVEN a workload with an idle gap and one missed deadline
	workload := []ProcessSpec{
		withDeadline(proc("A", 2, 3), 1), // finishes at 5, absolute deadline 3
		withDeadline(proc("B", 10, 2), 5),
		proc("C", 10, 1),
	}
	res := runPolicy(t, "fifo", NewConfig(1, 0, 0), workload)

	s := Summarize(res)

	assert.Equal(t, int64(7), s.IdleTime)
	assert.Equal(t, int64(13), s.TotalTime)
	assert.InDelta(t, 7.0/13.0*100, s.IdlePercent, 1e-9)
	assert.Equal(t, 2, s.DeadlineProcesses)
	assert.Equal(t, 1, s.DeadlineMisses)
	assert.Equal(t, 0, s.Preemptions)
	assert.Equal(t, 2, s.ContextSwitches)
}

func TestSummarize_EmptyRun_ZeroRates(t *testing.T) {
	res := runPolicy(t, "cfs", NewConfig(1, 0, 0), nil)
	s := Summarize(res)
	assert.Equal(t, 0, s.FinishedCount)
	assert.Equal(t, 0, s.ContextSwitches)
	assert.Equal(t, 0.0, s.Throughput)
	assert.Equal(t, 0.0, s.MeanWait)
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int64{}))
	assert.InDelta(t, 2.5, CalculateMean([]int64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 0.5, CalculateMean([]float64{0.25, 0.75}), 1e-9)
}

func TestCalculatePercentile_Interpolates(t *testing.T) {
	data := []int64{40, 10, 30, 20}

	assert.Equal(t, 10.0, CalculatePercentile(data, 0))
	assert.Equal(t, 40.0, CalculatePercentile(data, 100))
	assert.InDelta(t, 25.0, CalculatePercentile(data, 50), 1e-9)
	assert.InDelta(t, 37.0, CalculatePercentile(data, 90), 1e-9)
	// input left untouched
	assert.Equal(t, []int64{40, 10, 30, 20}, data)
	assert.Equal(t, 0.0, CalculatePercentile([]int64{}, 50))
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSJF_AllArriveTogether_ShortestFirst(t *testing.T) {
	// GIVEN A(total=8), B(total=4), C(total=1) all arriving at 0
	workload := []ProcessSpec{proc("A", 0, 8), proc("B", 0, 4), proc("C", 0, 1)}

	// WHEN SJF runs
	res := runPolicy(t, "sjf", NewConfig(1, 0, 0), workload)
	got := byID(res)

	// THEN dispatch order is C, B, A with waits 0, 1, 5
	assert.Equal(t, []string{"C", "B", "A"}, finishedIDs(res))
	assert.Equal(t, int64(0), got["C"].WaitTime)
	assert.Equal(t, int64(1), got["B"].WaitTime)
	assert.Equal(t, int64(5), got["A"].WaitTime)
	assert.Equal(t, int64(13), res.Clock)
}

func TestSJF_NonPreemptive_OnlyArrivedAreCandidates(t *testing.T) {
	// GIVEN a long job that is alone at time 0 and two shorter late arrivals
	workload := []ProcessSpec{proc("A", 0, 5), proc("B", 1, 1), proc("C", 2, 2)}

	res := runPolicy(t, "sjf", NewConfig(1, 0, 0), workload)
	got := byID(res)

	// THEN A runs to completion before the shorter jobs
	assert.Equal(t, []string{"A", "B", "C"}, finishedIDs(res))
	assert.Equal(t, int64(6), got["B"].FinishTime)
	assert.Equal(t, int64(4), got["B"].WaitTime)
	assert.Equal(t, int64(8), got["C"].FinishTime)
	assert.Equal(t, int64(4), got["C"].WaitTime)
	assert.Equal(t, []Segment{{4, SegmentWaiting}, {2, SegmentExecuting}}, got["C"].TimeLine)
}

func TestSJF_Tie_EarlierInputWins(t *testing.T) {
	workload := []ProcessSpec{proc("X", 0, 3), proc("Y", 0, 3)}
	res := runPolicy(t, "sjf", NewConfig(1, 0, 0), workload)
	assert.Equal(t, []string{"X", "Y"}, finishedIDs(res))
}

func TestSJF_NothingArrived_IdlesUntilFirstArrival(t *testing.T) {
	workload := []ProcessSpec{proc("A", 4, 2), proc("B", 3, 5)}
	res := runPolicy(t, "sjf", NewConfig(1, 0, 0), workload)
	// B arrives first at 3 and runs 3-8; A then runs 8-10
	assert.Equal(t, []string{"B", "A"}, finishedIDs(res))
	assert.Equal(t, int64(3), res.IdleTime)
	assert.Equal(t, int64(10), res.Clock)
}

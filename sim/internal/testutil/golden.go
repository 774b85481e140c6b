// Package testutil provides shared test infrastructure for schedsim.
// It holds the golden dataset types and assertion helpers used by the
// sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one policy run over a small hand-checked workload.
type GoldenTestCase struct {
	Name      string          `json:"name"`
	Policy    string          `json:"policy"`
	Quantum   int64           `json:"quantum"`
	Overhead  int64           `json:"overhead"`
	Processes []GoldenProcess `json:"processes"`
	Metrics   GoldenMetrics   `json:"metrics"`
}

// GoldenProcess mirrors a workload descriptor. Deadline is relative to arrival.
type GoldenProcess struct {
	ID        string `json:"id"`
	Arrival   int64  `json:"arrival"`
	TotalTime int64  `json:"total_time"`
	Priority  int64  `json:"priority"`
	Deadline  *int64 `json:"deadline,omitempty"`
}

// GoldenMetrics represents the expected outcome of a golden test case.
type GoldenMetrics struct {
	// Exact match
	FinishOrder     []string         `json:"finish_order"`
	FinishTimes     map[string]int64 `json:"finish_times"`
	Clock           int64            `json:"clock"`
	IdleTime        int64            `json:"idle_time"`
	ContextSwitches int              `json:"context_switches"`
	DeadlineMisses  int              `json:"deadline_misses"`

	// Derived floating-point metrics
	MeanWait       float64 `json:"mean_wait"`
	MeanTurnaround float64 `json:"mean_turnaround"`
	Throughput     float64 `json:"throughput"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

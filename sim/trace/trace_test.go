package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		ProcessID: "P1",
		Clock:     10,
		Slice:     2,
		Reason:    "fifo",
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" {
		t.Errorf("expected process ID P1, got %s", st.Dispatches[0].ProcessID)
	}
	if st.Dispatches[0].Slice != 2 {
		t.Errorf("expected slice 2, got %d", st.Dispatches[0].Slice)
	}
}

func TestSimulationTrace_RecordPreemption_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a preemption record is recorded
	st.RecordPreemption(PreemptionRecord{ProcessID: "P2", Clock: 4, Overhead: 1})

	// THEN the trace contains one preemption record with correct data
	if len(st.Preemptions) != 1 {
		t.Fatalf("expected 1 preemption, got %d", len(st.Preemptions))
	}
	if st.Preemptions[0].ProcessID != "P2" || st.Preemptions[0].Overhead != 1 {
		t.Errorf("unexpected preemption record %+v", st.Preemptions[0])
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{ProcessID: "P1", Clock: 0, Slice: 2})
	st.RecordDispatch(DispatchRecord{ProcessID: "P2", Clock: 2, Slice: 2})
	st.RecordIdle(IdleRecord{From: 4, To: 7})

	// THEN order is preserved
	if len(st.Dispatches) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" || st.Dispatches[1].ProcessID != "P2" {
		t.Error("dispatch order not preserved")
	}
	if len(st.Idles) != 1 || st.Idles[0].To != 7 {
		t.Error("idle record mismatch")
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{}).Enabled() {
		t.Error("empty level must not enable tracing")
	}
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none level must not enable tracing")
	}
	if !(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("decisions level must enable tracing")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true}, // empty defaults to none
		{"detailed", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}

package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/schedsim/schedsim/sim"
)

// runMetrics holds the per-policy gauges exported after a run.
type runMetrics struct {
	meanWait        *prometheus.GaugeVec
	meanTurnaround  *prometheus.GaugeVec
	throughput      *prometheus.GaugeVec
	idleRatio       *prometheus.GaugeVec
	contextSwitches *prometheus.GaugeVec
	deadlineMisses  *prometheus.GaugeVec
}

func newRunMetrics(reg prometheus.Registerer) *runMetrics {
	gauge := func(name, help string) *prometheus.GaugeVec {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "schedsim",
			Name:      name,
			Help:      help,
		}, []string{"policy"})
		reg.MustRegister(g)
		return g
	}
	return &runMetrics{
		meanWait:        gauge("mean_wait_time", "Mean process wait time in ticks."),
		meanTurnaround:  gauge("mean_turnaround_time", "Mean process turnaround time in ticks."),
		throughput:      gauge("throughput", "Finished processes per tick."),
		idleRatio:       gauge("idle_ratio", "Share of the run the CPU was idle, between 0 and 1."),
		contextSwitches: gauge("context_switches", "Preemptions plus hand-offs between processes."),
		deadlineMisses:  gauge("deadline_misses", "Processes that finished after their absolute deadline."),
	}
}

func (m *runMetrics) observe(res *sim.Result) {
	s := sim.Summarize(res)
	m.meanWait.WithLabelValues(s.Policy).Set(s.MeanWait)
	m.meanTurnaround.WithLabelValues(s.Policy).Set(s.MeanTurnaround)
	m.throughput.WithLabelValues(s.Policy).Set(s.Throughput)
	m.idleRatio.WithLabelValues(s.Policy).Set(s.IdlePercent / 100)
	m.contextSwitches.WithLabelValues(s.Policy).Set(float64(s.ContextSwitches))
	m.deadlineMisses.WithLabelValues(s.Policy).Set(float64(s.DeadlineMisses))
}

// WriteMetrics writes the run gauges of every result to path in the Prometheus
// text exposition format, for pickup by a node exporter textfile collector.
func WriteMetrics(path string, results ...*sim.Result) error {
	reg := prometheus.NewRegistry()
	m := newRunMetrics(reg)
	for _, res := range results {
		m.observe(res)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

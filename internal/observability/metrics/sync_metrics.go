// Package metrics exposes prometheus instrumentation for the commission
// sync scheduler.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	RunResultOK      = "ok"
	RunResultError   = "error"
	RunResultTimeout = "timeout"
)

const (
	RecordActionCreated = "created"
	RecordActionUpdated = "updated"
	RecordActionDeleted = "deleted"
)

// SyncMetrics captures commission sync health signals.
type SyncMetrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	records  *prometheus.CounterVec
}

var (
	syncMetricsOnce sync.Once
	syncMetrics     *SyncMetrics
)

// Sync returns the singleton sync metrics registry.
func Sync() *SyncMetrics {
	syncMetricsOnce.Do(func() {
		syncMetrics = newSyncMetrics(prometheus.DefaultRegisterer)
	})
	return syncMetrics
}

func newSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "komisi_sync_runs_total",
			Help: "Commission sync invocations by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "komisi_sync_duration_seconds",
			Help:    "Duration of one commission sync invocation.",
			Buckets: prometheus.DefBuckets,
		}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "komisi_sync_records_total",
			Help: "Commission records written by the sync, by action.",
		}, []string{"action"}),
	}
	reg.MustRegister(m.runs, m.duration, m.records)
	return m
}

func (m *SyncMetrics) IncRun(result string) {
	m.runs.WithLabelValues(result).Inc()
}

func (m *SyncMetrics) ObserveRunDuration(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

func (m *SyncMetrics) AddRecords(action string, count int) {
	if count <= 0 {
		return
	}
	m.records.WithLabelValues(action).Add(float64(count))
}

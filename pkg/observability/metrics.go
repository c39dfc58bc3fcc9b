package observability

import (
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors of a table.
type Metrics struct {
	ToggleAttempts *prometheus.CounterVec
	RowsChanges    prometheus.Counter
	ExpandedRows   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ToggleAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rowexpand_toggle_attempts_total",
				Help: "Total number of expand/collapse requests",
			},
			[]string{"direction"},
		),
		RowsChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rowexpand_expanded_rows_changes_total",
			Help: "Total number of committed changes of the expanded row set",
		}),
		ExpandedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rowexpand_expanded_rows",
			Help: "Number of rows currently expanded",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ToggleAttempts, m.RowsChanges, m.ExpandedRows)
	}
	return m
}

// Hooks returns expansion hooks recording toggle metrics.
// Chain them with the caller's hooks via domain.ExpansionHooks.Chain.
func (m *Metrics) Hooks() domain.ExpansionHooks {
	return domain.ExpansionHooks{
		OnExpand: func(expanded bool, record domain.Row) {
			direction := "collapse"
			if expanded {
				direction = "expand"
			}
			m.ToggleAttempts.WithLabelValues(direction).Inc()
		},
		OnExpandedRowsChange: func(keys domain.KeySet) {
			m.RowsChanges.Inc()
		},
	}
}

// Observe keeps the expanded-rows gauge in sync with store.
// The returned function stops observing.
func (m *Metrics) Observe(store ports.ViewStateStore) func() {
	m.ExpandedRows.Set(float64(len(store.GetState().ExpandedRowKeys)))
	return store.Subscribe(func(s domain.ViewState) {
		m.ExpandedRows.Set(float64(len(s.ExpandedRowKeys)))
	})
}

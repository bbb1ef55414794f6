package ddns

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds prometheus instrumentation for update cycles. A
// single *Metrics may be shared by any number of Updaters.
type Metrics struct {
	cycleCount           *prometheus.CounterVec
	lastSuccessTimestamp *prometheus.GaugeVec
}

// NewMetrics creates update cycle metrics registered with the
// specified registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		cycleCount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ddns_update_cycles_total",
			Help: "Number of update cycles, by zone record and result.",
		}, []string{"result", "zone"}),
		lastSuccessTimestamp: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ddns_last_success_timestamp_seconds",
			Help: "Time of the last successful update cycle, by zone record.",
		}, []string{"zone"}),
	}
}

func (m *Metrics) record(fqdn, result string) {
	m.cycleCount.WithLabelValues(result, fqdn).Inc()
	if result == resultSuccess {
		m.lastSuccessTimestamp.WithLabelValues(fqdn).SetToCurrentTime()
	}
}

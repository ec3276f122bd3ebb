package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

var (
	registerOnce sync.Once
	actions      = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fanbase",
			Subsystem: "ledger",
			Name:      "actions_total",
			Help:      "Count of delivered actions classified by action and result",
		},
		[]string{"action", "result"},
	)

	deliverSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fanbase",
			Subsystem: "ledger",
			Name:      "deliver_seconds",
			Help:      "Time spent executing and committing an action",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1},
		},
		[]string{"action"},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(actions, deliverSeconds)
	})
}

func ActionsCounter() *prometheus.CounterVec {
	ensureRegistered()
	return actions
}

func DeliverObserver(action string) prometheus.Observer {
	ensureRegistered()
	return deliverSeconds.WithLabelValues(action)
}

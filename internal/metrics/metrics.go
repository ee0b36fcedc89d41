// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hiram_agreement_deliveries_total",
		Help: "Terminal agreement delivery outcomes, by status and detail (method or failure reason).",
	},
	[]string{"status", "detail"},
)

// RecordDelivery counts one terminal pipeline outcome. detail is the
// delivery method on success and the failure classification otherwise.
func RecordDelivery(status, detail string) {
	deliveriesTotal.WithLabelValues(status, detail).Inc()
}

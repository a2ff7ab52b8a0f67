package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestClientMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClientMetrics(reg)
	m.ObserveRequest("appointments.create", "200")
	m.ObserveRequest("ratings.my_rating", "404")
	m.ObserveLatency("appointments.create", 0.12)
}

func TestClientMetricsNilSafe(t *testing.T) {
	var m *ClientMetrics
	m.ObserveRequest("operation", "status")
	m.ObserveLatency("operation", 0.1)
}

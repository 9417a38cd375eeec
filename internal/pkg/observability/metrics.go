// Package observability exposes the service's Prometheus metrics. Collectors
// are registered once at package load and shared by the HTTP layer and the
// background jobs.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderintake",
		Name:      "orders_created_total",
		Help:      "Orders accepted and persisted, by delivery type.",
	}, []string{"delivery_type"})

	ordersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderintake",
		Name:      "orders_rejected_total",
		Help:      "Order submissions rejected before persistence, by reason.",
	}, []string{"reason"})

	pendingOrdersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "orderintake",
		Name:      "orders_pending",
		Help:      "Orders currently waiting for confirmation.",
	})
)

// Rejection reasons recorded on orders_rejected_total.
const (
	ReasonValidation  = "validation"
	ReasonOutOfZone   = "out_of_zone"
	ReasonNotFound    = "not_found"
	ReasonConflict    = "conflict"
	ReasonRateLimited = "rate_limited"
	ReasonInternal    = "internal"
)

// ObserveOrderCreated records one accepted order.
func ObserveOrderCreated(deliveryType string) {
	ordersCreatedTotal.WithLabelValues(deliveryType).Inc()
}

// ObserveOrderRejected records one rejected order submission.
func ObserveOrderRejected(reason string) {
	ordersRejectedTotal.WithLabelValues(reason).Inc()
}

// SetPendingOrders publishes the current pending-order backlog size.
func SetPendingOrders(count int64) {
	pendingOrdersGauge.Set(float64(count))
}

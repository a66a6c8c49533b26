package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts handled requests by method, route and status class.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fulfilment_http_requests_total",
	Help: "HTTP requests handled, by method, route and status.",
}, []string{"method", "route", "status"})

// ValidationFailures counts business-rule rejections by kind.
var ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fulfilment_validation_failures_total",
	Help: "Business rule rejections, by validation kind.",
}, []string{"kind"})

// WarehouseOperations counts warehouse lifecycle transitions by operation and outcome.
var WarehouseOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fulfilment_warehouse_operations_total",
	Help: "Warehouse lifecycle operations, by operation and outcome.",
}, []string{"operation", "outcome"})

// Associations counts association attempts by relation and outcome.
var Associations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fulfilment_associations_total",
	Help: "Fulfilment association attempts, by relation and outcome.",
}, []string{"relation", "outcome"})

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

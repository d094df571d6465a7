package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/wine-collection-service/internal/ports"
)

const metricsNamespace = "wine_inventory"

// Operation outcomes recorded on the operations counter.
const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// inventoryMetrics holds the Prometheus collectors for inventory use cases.
type inventoryMetrics struct {
	operations          *prometheus.CounterVec
	referentialFailures prometheus.Counter
}

func newInventoryMetrics(
	reg prometheus.Registerer,
	winemakers ports.WinemakerRepository,
	bottles ports.BottleRepository,
) *inventoryMetrics {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "winemakers",
		Help:      "Number of winemakers currently stored.",
	}, func() float64 {
		return float64(len(winemakers.GetAll(context.Background())))
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "bottles",
		Help:      "Number of bottle records currently stored.",
	}, func() float64 {
		return float64(len(bottles.GetAll(context.Background())))
	})

	return &inventoryMetrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "Inventory operations by entity, operation and outcome.",
		}, []string{"entity", "operation", "outcome"}),
		referentialFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "referential_integrity_violations_total",
			Help:      "Bottle writes rejected because the winemaker does not exist.",
		}),
	}
}

func (m *inventoryMetrics) observe(entity, operation, outcome string) {
	m.operations.WithLabelValues(entity, operation, outcome).Inc()
}

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	EntityKey    = attribute.Key("catalog.entity") // game/publisher/genre
	OperationKey = attribute.Key("catalog.op")     // create/update/delete/feature/unfeature/seed
)

// CatalogMetrics counts successful catalog mutations.
type CatalogMetrics struct {
	mutations metric.Int64Counter
}

// NewCatalogMetrics registers the instruments on meter, or on the global meter when nil.
func NewCatalogMetrics(meter metric.Meter) (*CatalogMetrics, error) {
	if meter == nil {
		meter = otel.Meter("ludotheque.catalog")
	}
	c, err := meter.Int64Counter("catalog.mutations",
		metric.WithDescription("Successful catalog writes"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return nil, err
	}
	return &CatalogMetrics{mutations: c}, nil
}

// Record adds n mutations of op on entity. A nil receiver is a no-op.
func (m *CatalogMetrics) Record(ctx context.Context, entity, op string, n int64) {
	if m == nil || n == 0 {
		return
	}
	m.mutations.Add(ctx, n, metric.WithAttributes(EntityKey.String(entity), OperationKey.String(op)))
}

package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type orderMetrics struct {
	ordersCreated  metric.Int64Counter
	ticketsBooked  metric.Int64Counter
	ordersRejected metric.Int64Counter
}

// newOrderMetrics registers the order counters on the global meter provider,
// which is a no-op until InitTelemetry installs an exporting one.
func newOrderMetrics() (*orderMetrics, error) {
	meter := otel.Meter(serviceName)

	ordersCreated, err := meter.Int64Counter(
		"orders.created",
		metric.WithDescription("Number of orders placed"),
	)
	if err != nil {
		return nil, err
	}

	ticketsBooked, err := meter.Int64Counter(
		"tickets.booked",
		metric.WithDescription("Number of tickets sold"),
	)
	if err != nil {
		return nil, err
	}

	ordersRejected, err := meter.Int64Counter(
		"orders.rejected",
		metric.WithDescription("Number of orders refused, by reason"),
	)
	if err != nil {
		return nil, err
	}

	return &orderMetrics{
		ordersCreated:  ordersCreated,
		ticketsBooked:  ticketsBooked,
		ordersRejected: ordersRejected,
	}, nil
}

func (m *orderMetrics) orderCreated(ctx context.Context, tickets int) {
	if m == nil {
		return
	}

	m.ordersCreated.Add(ctx, 1)
	m.ticketsBooked.Add(ctx, int64(tickets))
}

func (m *orderMetrics) orderRejected(ctx context.Context, reason string) {
	if m == nil {
		return
	}

	m.ordersRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

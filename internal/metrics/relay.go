package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type RelayOutcome string

const (
	OutcomeSuccess          RelayOutcome = "success"
	OutcomeUpstreamFailure  RelayOutcome = "upstream_failure"
	OutcomeTransportFailure RelayOutcome = "transport_failure"
	OutcomeRejected         RelayOutcome = "rejected"
)

// RelayCollector counts send-notification invocations by terminal state.
type RelayCollector struct {
	notifications metric.Int64Counter
}

func NewRelayCollector(meter metric.Meter) (*RelayCollector, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	notifications, err := meter.Int64Counter(
		"relay.notifications",
		metric.WithDescription("Relayed push notifications by outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	return &RelayCollector{
		notifications: notifications,
	}, nil
}

func (r *RelayCollector) RecordOutcome(ctx context.Context, outcome RelayOutcome) {
	r.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("relay.outcome", string(outcome)),
	))
}

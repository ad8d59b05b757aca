package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type HTTPClientCollector struct {
	requestCount          metric.Int64Counter
	requestDuration       metric.Float64Histogram
	errorCount            metric.Int64Counter
	circuitBreakerState   metric.Int64Gauge
	circuitBreakerChanges metric.Int64Counter
}

func NewHTTPClientCollector(meter metric.Meter) (*HTTPClientCollector, error) {
	// The noop meter never returns errors.
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}
	requestCount, err := meter.Int64Counter(
		"http.client.requests",
		metric.WithDescription("Total HTTP client requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.client.duration",
		metric.WithDescription("HTTP client request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"http.client.errors",
		metric.WithDescription("Total HTTP client errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Gauge(
		"http.client.circuit_breaker.state",
		metric.WithDescription("Circuit breaker state (0=Closed, 1=Open, 2=HalfOpen)"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerChanges, err := meter.Int64Counter(
		"http.client.circuit_breaker.state_changes",
		metric.WithDescription("Circuit breaker state changes"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPClientCollector{
		requestCount:          requestCount,
		requestDuration:       requestDuration,
		errorCount:            errorCount,
		circuitBreakerState:   circuitBreakerState,
		circuitBreakerChanges: circuitBreakerChanges,
	}, nil
}

// RecordRequest records one gateway call. A call counts as an error when it
// failed before a response was read or when the gateway answered non-2xx.
func (c *HTTPClientCollector) RecordRequest(
	ctx context.Context,
	method string,
	host string,
	statusCode int,
	duration time.Duration,
	err error,
) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.host", host),
		attribute.Int("http.status_code", statusCode),
	}

	c.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if errorType := getErrorType(statusCode, err); errorType != "" {
		errorAttrs := []attribute.KeyValue{
			attribute.String("http.host", host),
			attribute.String("error.type", errorType),
		}
		c.errorCount.Add(ctx, 1, metric.WithAttributes(errorAttrs...))
	}
}

func (c *HTTPClientCollector) RecordCircuitBreakerState(
	ctx context.Context,
	host string,
	state gobreaker.State,
) {
	attrs := []attribute.KeyValue{
		attribute.String("http.host", host),
		attribute.String("circuit_breaker.state", state.String()),
	}

	c.circuitBreakerState.Record(ctx, circuitBreakerStateToInt(state), metric.WithAttributes(attrs...))
}

func (c *HTTPClientCollector) RecordCircuitBreakerStateChange(
	ctx context.Context,
	host string,
	from gobreaker.State,
	to gobreaker.State,
) {
	attrs := []attribute.KeyValue{
		attribute.String("http.host", host),
		attribute.String("circuit_breaker.from_state", from.String()),
		attribute.String("circuit_breaker.to_state", to.String()),
	}

	c.circuitBreakerChanges.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func circuitBreakerStateToInt(state gobreaker.State) int64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return -1
	}
}

// getErrorType returns an empty string when the call succeeded.
func getErrorType(statusCode int, err error) string {
	if err == nil {
		if statusCode >= 200 && statusCode < 300 {
			return ""
		}
		return "invalid_status"
	}

	var netErr net.Error
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker_open"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.As(err, &netErr):
		return "network"
	default:
		return "unknown"
	}
}

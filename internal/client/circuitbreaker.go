package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/push-notification-relay/internal/metrics"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type CircuitBreakerRegistry struct {
	enabled          bool
	breakers         *sync.Map
	settings         gobreaker.Settings
	metricsCollector *metrics.HTTPClientCollector
	logger           *zap.Logger
}

type CircuitBreakerRegistryParams struct {
	fx.In

	Config           CircuitBreakerRegistryConfig
	MetricsCollector *metrics.HTTPClientCollector `optional:"true"`
	Logger           *zap.Logger
}

func NewCircuitBreakerRegistry(params CircuitBreakerRegistryParams) *CircuitBreakerRegistry {
	registry := &CircuitBreakerRegistry{
		enabled:          params.Config.Enabled,
		breakers:         &sync.Map{},
		metricsCollector: params.MetricsCollector,
		logger:           params.Logger,
	}

	registry.settings = gobreaker.Settings{
		MaxRequests: params.Config.MaxHalfOpenRequests,
		Timeout:     params.Config.OpenStateTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < params.Config.MinRequestsBeforeTrip {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return failureRatio >= (params.Config.FailureThresholdPercent / 100)
		},
		// A caller hanging up says nothing about the gateway's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: registry.onStateChange,
	}

	return registry
}

type CircuitBreakerRegistryConfig struct {
	// Off by default: an open breaker makes one request's outcome depend on
	// earlier ones.
	Enabled                 bool          `envconfig:"CIRCUIT_BREAKER_ENABLED" default:"false"`
	MaxHalfOpenRequests     uint32        `envconfig:"CIRCUIT_BREAKER_MAX_HALF_OPEN_REQUESTS" default:"5"`
	OpenStateTimeout        time.Duration `envconfig:"CIRCUIT_BREAKER_OPEN_STATE_TIMEOUT" default:"60s"`
	MinRequestsBeforeTrip   uint32        `envconfig:"CIRCUIT_BREAKER_MIN_REQUESTS_BEFORE_TRIP" default:"3"`
	FailureThresholdPercent float64       `envconfig:"CIRCUIT_BREAKER_FAILURE_THRESHOLD_PERCENT" default:"60"`
}

func NewCircuitBreakerRegistryConfig() CircuitBreakerRegistryConfig {
	var cfg CircuitBreakerRegistryConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (r *CircuitBreakerRegistry) Enabled() bool {
	return r.enabled
}

// GetOrCreate returns the breaker guarding host. Breakers only see transport
// failures: a gateway that answers, whatever the status, is reachable.
func (r *CircuitBreakerRegistry) GetOrCreate(host string) *gobreaker.CircuitBreaker[GatewayResponse] {
	if cb, ok := r.breakers.Load(host); ok {
		return cb.(*gobreaker.CircuitBreaker[GatewayResponse])
	}

	settings := r.settings
	settings.Name = host

	cb := gobreaker.NewCircuitBreaker[GatewayResponse](settings)

	actual, _ := r.breakers.LoadOrStore(host, cb)
	return actual.(*gobreaker.CircuitBreaker[GatewayResponse])
}

func (r *CircuitBreakerRegistry) onStateChange(host string, from gobreaker.State, to gobreaker.State) {
	r.logger.Warn("Gateway circuit breaker changed state",
		zap.String("host", host),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)

	if r.metricsCollector != nil {
		r.metricsCollector.RecordCircuitBreakerStateChange(context.Background(), host, from, to)
	}
}

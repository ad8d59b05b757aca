package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/push-notification-relay/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . GatewayClientProvider
type GatewayClientProvider interface {
	Send(ctx context.Context, payload UpstreamPayload) (GatewayResponse, error)
}

var _ GatewayClientProvider = (*HTTPClient)(nil)

type HTTPClient struct {
	httpclient             *http.Client
	endpoint               string
	serverKey              string
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.HTTPClientCollector
	logger                 *zap.Logger
}

type HTTPClientConfig struct {
	Endpoint  string `envconfig:"FCM_ENDPOINT" default:"https://fcm.googleapis.com/fcm/send"`
	ServerKey string `envconfig:"FCM_SERVER_KEY" required:"true"`
	// Zero leaves the transport default in place.
	Timeout time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"0s"`
}

type HTTPClientParams struct {
	fx.In

	Config                 HTTPClientConfig
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.HTTPClientCollector
	Logger                 *zap.Logger
}

func NewHTTPClient(params HTTPClientParams) *HTTPClient {
	return &HTTPClient{
		httpclient: &http.Client{
			Timeout: params.Config.Timeout,
		},
		endpoint:               params.Config.Endpoint,
		serverKey:              params.Config.ServerKey,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
		logger:                 params.Logger,
	}
}

func NewHTTPClientConfig() HTTPClientConfig {
	var cfg HTTPClientConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Send posts payload to the gateway once. A non-2xx answer is not an error;
// the caller decides what the status means.
func (c *HTTPClient) Send(ctx context.Context, payload UpstreamPayload) (GatewayResponse, error) {
	start := time.Now()
	host, err := extractHost(c.endpoint)
	if err != nil {
		return GatewayResponse{}, err
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return GatewayResponse{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return GatewayResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	do := func() (GatewayResponse, error) {
		resp, err := c.httpclient.Do(req)
		if err != nil {
			return GatewayResponse{}, err
		}
		defer resp.Body.Close()

		rawBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return GatewayResponse{}, err
		}

		return GatewayResponse{
			StatusCode: resp.StatusCode,
			Body:       rawBody,
		}, nil
	}

	var resp GatewayResponse
	if c.circuitBreakerRegistry.Enabled() {
		circuitBreaker := c.circuitBreakerRegistry.GetOrCreate(host)
		c.metricsCollector.RecordCircuitBreakerState(ctx, host, circuitBreaker.State())

		resp, err = circuitBreaker.Execute(do)
	} else {
		resp, err = do()
	}

	duration := time.Since(start)
	c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, resp.StatusCode, duration, err)

	if err != nil {
		c.logger.Error("Gateway request failed",
			zap.String("host", host),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return GatewayResponse{}, err
	}

	return resp, nil
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}

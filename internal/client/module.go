package client

import "go.uber.org/fx"

var Module = fx.Module("gateway_client",
	fx.Provide(
		fx.Annotate(
			NewHTTPClient,
			fx.As(new(GatewayClientProvider)),
		),
		NewHTTPClientConfig,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
	),
)

package service

import (
	"context"
	"encoding/json"

	"github.com/koungkub/push-notification-relay/internal/client"
	"github.com/koungkub/push-notification-relay/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewRelayService,
			fx.As(new(RelayProvider)),
		),
	),
)

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . RelayProvider
type RelayProvider interface {
	SendNotification(ctx context.Context, req NotificationRequest) (RelayResult, error)
}

var _ RelayProvider = (*RelayService)(nil)

type RelayService struct {
	gateway        client.GatewayClientProvider
	relayCollector *metrics.RelayCollector
	logger         *zap.Logger
}

type RelayServiceParams struct {
	fx.In

	Gateway        client.GatewayClientProvider
	RelayCollector *metrics.RelayCollector
	Logger         *zap.Logger
}

func NewRelayService(params RelayServiceParams) *RelayService {
	return &RelayService{
		gateway:        params.Gateway,
		relayCollector: params.RelayCollector,
		logger:         params.Logger,
	}
}

// SendNotification forwards req to the gateway exactly once. Any answer the
// gateway gives comes back as a RelayResult; only failures to obtain or
// decode that answer are returned as *InternalError.
func (s *RelayService) SendNotification(ctx context.Context, req NotificationRequest) (RelayResult, error) {
	payload := client.UpstreamPayload{
		To: req.Token,
		Notification: client.Notification{
			Title: req.Title,
			Body:  req.Body,
		},
	}

	s.logger.Info("Sending notification to token", zap.String("token", req.Token))
	s.logger.Info("Payload", zap.Any("payload", payload))

	resp, err := s.gateway.Send(ctx, payload)
	if err != nil {
		s.relayCollector.RecordOutcome(ctx, metrics.OutcomeTransportFailure)
		return RelayResult{}, &InternalError{Err: err}
	}

	var body json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		s.logger.Error("Gateway response is not valid JSON",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", resp.Body),
			zap.Error(err),
		)
		s.relayCollector.RecordOutcome(ctx, metrics.OutcomeTransportFailure)
		return RelayResult{}, &InternalError{Err: err}
	}

	s.logger.Info("FCM Response",
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", body),
	)

	if !resp.OK() {
		s.relayCollector.RecordOutcome(ctx, metrics.OutcomeUpstreamFailure)
		return RelayResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Body:       body,
		}, nil
	}

	s.relayCollector.RecordOutcome(ctx, metrics.OutcomeSuccess)
	return RelayResult{
		Success:    true,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

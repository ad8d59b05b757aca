package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/push-notification-relay/internal/metrics"
	"github.com/koungkub/push-notification-relay/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewNotificationHandler,
	),
)

type Notification struct {
	services       service.RelayProvider
	relayCollector *metrics.RelayCollector
	logger         *zap.Logger
}

type NotificationParams struct {
	fx.In

	Services       service.RelayProvider
	RelayCollector *metrics.RelayCollector
	Logger         *zap.Logger
}

func NewNotificationHandler(params NotificationParams) *Notification {
	return &Notification{
		services:       params.Services,
		relayCollector: params.RelayCollector,
		logger:         params.Logger,
	}
}

func (n *Notification) SendNotificationHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendNotificationRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		n.logger.Debug("Rejected send-notification request", zap.Error(err))
		n.relayCollector.RecordOutcome(ctx, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, GetRequestError())
		return
	}

	result, err := n.services.SendNotification(ctx, service.NotificationRequest{
		Token: req.Token,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		n.logger.Error("Error sending notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, GetInternalError(err))
		return
	}

	if !result.Success {
		c.JSON(result.StatusCode, GetUpstreamError(result.Body))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": result.Body,
	})
}

func (n *Notification) ExistingEndpointHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This is an existing endpoint",
	})
}

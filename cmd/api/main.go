package main

import (
	"github.com/koungkub/push-notification-relay/internal/client"
	"github.com/koungkub/push-notification-relay/internal/handler"
	"github.com/koungkub/push-notification-relay/internal/metrics"
	"github.com/koungkub/push-notification-relay/internal/server"
	"github.com/koungkub/push-notification-relay/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		metrics.Module,
		server.Module,
		handler.Module,
		service.Module,
		client.Module,
		fx.Invoke(func(*server.HTTPServer) {}),
	).Run()
}

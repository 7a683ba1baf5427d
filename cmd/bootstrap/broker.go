package bootstrap

import (
	"context"
	"log/slog"

	"padel-booking/internal/infra/events"
	"padel-booking/internal/pkg/config"
	"padel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when RABBITMQ_URL is unset.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if !cfg.Broker.Enabled() {
		logger.Info("reservation events disabled")
		return events.NopPublisher{}, nil
	}

	publisher, err := events.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

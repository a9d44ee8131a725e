package components

import (
	"log/slog"

	"anchor-gateway/internal/pkg/clock"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewKitchenGate,
		usecase.NewTableBookingUseCase,
	),
)

func NewKitchenGate(client usecase.AnchorClient, cfg config.Config, logger *slog.Logger) *usecase.KitchenGate {
	return usecase.NewKitchenGate(client, cfg.Contact, logger)
}

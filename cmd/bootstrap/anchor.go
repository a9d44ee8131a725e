package bootstrap

import (
	"log/slog"

	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/usecase"

	"go.uber.org/fx"
)

var AnchorModule = fx.Module("anchor",
	fx.Provide(
		fx.Annotate(
			NewAnchorClient,
			fx.As(new(usecase.AnchorClient)),
		),
	),
)

func NewAnchorClient(cfg config.Config, logger *slog.Logger) *anchor.Client {
	return anchor.NewClient(cfg.Anchor, logger)
}

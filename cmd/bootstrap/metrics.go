package bootstrap

import (
	"lodging-service/internal/infra/cache"
	"lodging-service/internal/pkg/metrics"
	"lodging-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.AdmissionRecorder)),
			fx.As(new(cache.Observer)),
		),
	),
)

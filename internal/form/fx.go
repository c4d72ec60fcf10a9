package form

import (
	"context"

	"github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/form/service"
	"go.uber.org/fx"
)

var Module = fx.Module("form.service",
	fx.Provide(service.New),
	fx.Invoke(registerLoad),
)

func registerLoad(lc fx.Lifecycle, svc domain.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Load(ctx)
		},
	})
}

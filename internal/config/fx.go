package config

import "go.uber.org/fx"

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewCalculatorConfigHolder),
	fx.Provide(func(h *CalculatorConfigHolder) CalculatorSettings { return h }),
)

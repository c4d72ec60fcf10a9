package commands

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/feefeefee/internal/config"
	"github.com/smallbiznis/feefeefee/internal/form"
	"github.com/smallbiznis/feefeefee/internal/observability"
	"github.com/smallbiznis/feefeefee/internal/server"
	"github.com/smallbiznis/feefeefee/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				// Core Infrastructure
				config.Module,
				observability.Module,
				fx.Provide(RegisterSnowflake),
				fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: log.Named("fx")}
				}),
				store.Module,

				// Functional Domains
				form.Module,
				server.Module,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func RegisterSnowflake(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.NodeID)
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/feefeefee/internal/config"
	formdomain "github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/observability"
	obsmiddleware "github.com/smallbiznis/feefeefee/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/feefeefee/internal/observability/metrics"
	obstracing "github.com/smallbiznis/feefeefee/internal/observability/tracing"
	"github.com/smallbiznis/feefeefee/internal/receipt"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(receipt.NewRenderer),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:    obsCfg.Debug(),
		Classify: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine   *gin.Engine
	log      *zap.Logger
	form     formdomain.Service
	settings config.CalculatorSettings
	receipts receipt.Renderer
	metrics  *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Log        *zap.Logger
	Form       formdomain.Service
	Settings   config.CalculatorSettings
	Receipts   receipt.Renderer
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:   p.Gin,
		log:      p.Log.Named("http.server"),
		form:     p.Form,
		settings: p.Settings,
		receipts: p.Receipts,
		metrics:  p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Languages & messages --------
	api.GET("/languages", s.ListLanguages)
	api.PUT("/language", s.SetLanguage)
	api.GET("/messages/:key", s.GetMessage)

	// -------- Directory --------
	api.GET("/places", s.ListPlaces)

	// -------- Fee --------
	api.GET("/fee", s.GetFee)
	api.PUT("/fee/query", s.FormLanguage(), s.SetFeeQuery)
	api.POST("/fee/confirm", s.FormLanguage(), s.ConfirmFee)
	api.POST("/fee/submit", s.FormLanguage(), s.SubmitFee)

	// -------- Form --------
	form := api.Group("/form", s.FormLanguage())
	{
		form.GET("", s.GetForm)
		form.DELETE("", s.ClearForm)
		form.POST("/items", s.AddItem)
		form.PATCH("/items/:id", s.EditItem)
		form.DELETE("/items/:id", s.RemoveItem)
		form.GET("/receipt.pdf", s.RenderReceipt)
	}
}

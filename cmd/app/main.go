package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"safarsathi/cmd/fx/config_fx"
	"safarsathi/cmd/fx/controllers_fx"
	"safarsathi/cmd/fx/itinerary_fx"
	"safarsathi/cmd/fx/llm_fx"
	"safarsathi/cmd/fx/memcache_fx"
	"safarsathi/internal/api"
	"safarsathi/internal/api/controllers"
	"safarsathi/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		config_fx.Module,
		memcache_fx.Module,
		llm_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	itineraryController *controllers.ItineraryController) (*gin.Engine, error) {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.RouterConfig{
		SessionCookie: cfg.Session.CookieName,
		SessionTTL:    cfg.Session.TTL,
	}, logger, itineraryController)
}

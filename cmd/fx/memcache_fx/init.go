package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"safarsathi/internal/config"
	mem "safarsathi/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) mem.SessionStore {
	store := mem.NewSessions(cfg.Session.TTL)
	stop := make(chan struct{})

	// an expired session lingers at most a quarter TTL
	interval := mem.JanitorInterval(cfg.Session.TTL)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunJanitor(interval, stop, func(removed int) {
				logger.Debug("Expired sessions removed", zap.Int("count", removed))
			})
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})

	return store
}

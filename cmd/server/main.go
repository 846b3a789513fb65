package main

import (
	"awty-football/internal/config"
	"awty-football/internal/constants"
	fxmodules "awty-football/internal/fx"
	"awty-football/internal/service"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	handler http.Handler,
	ledgers *service.LedgerService,
	auth *service.AuthService,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           http.TimeoutHandler(handler, constants.RequestTimeout, "request timed out"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	houseCtx, stopHousekeeping := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			auth.PurgeExpiredSessions(ctx)
			go housekeeping(houseCtx, auth, ledgers)

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			stopHousekeeping()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			shutdownErr := srv.Shutdown(shutdownCtx)
			if shutdownErr != nil {
				logger.Error().Err(shutdownErr).Msg("server shutdown failed")
			}

			// requests are drained, so pending game edits can go out now
			if err := ledgers.Close(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("unsaved game edits at shutdown")
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			if shutdownErr != nil {
				return shutdownErr
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

func housekeeping(ctx context.Context, auth *service.AuthService, ledgers *service.LedgerService) {
	purge := time.NewTicker(constants.SessionPurgeInterval)
	defer purge.Stop()
	sweep := time.NewTicker(constants.LedgerSweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-purge.C:
			purgeCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
			auth.PurgeExpiredSessions(purgeCtx)
			cancel()
		case <-sweep.C:
			ledgers.EvictIdle(ctx, constants.LedgerIdleTTL)
		}
	}
}

package fx

import (
	"awty-football/internal/api"
	"awty-football/internal/config"
	"awty-football/internal/database"
	"awty-football/internal/db"
	"awty-football/internal/logger"
	"awty-football/internal/repository"
	"awty-football/internal/server"
	"awty-football/internal/service"
	"database/sql"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewGameRepository),
	fx.Provide(repository.NewAuthRepository),
	// api client
	fx.Provide(api.NewGoogleClient),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewLedgerService),
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewAuthService),
	fx.Provide(service.NewTransferService),
	// server
	fx.Provide(server.NewStatsServer),
	fx.Provide(server.NewHandlers),
	fx.Provide(server.NewRouter),
)

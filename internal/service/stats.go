package service

import (
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"awty-football/internal/repository"
	"awty-football/internal/stats"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	players *repository.PlayerRepository
	games   *repository.GameRepository
	logger  zerolog.Logger
}

func NewStatsService(players *repository.PlayerRepository, games *repository.GameRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{players: players, games: games, logger: logger}
}

func (s *StatsService) Standings(ctx context.Context, sort stats.SortState) ([]stats.PlayerStats, error) {
	players, games, err := loadAll(ctx, s.players, s.games)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load standings input")
		return nil, err
	}

	rows := stats.Standings(players, games, sort)
	s.logger.Debug().
		Int("players", len(players)).
		Int("games", len(games)).
		Int("rows", len(rows)).
		Str("sort", string(sort.Column)).
		Str("direction", string(sort.Direction)).
		Msg("standings computed")
	return rows, nil
}

func (s *StatsService) Partnerships(ctx context.Context) ([]stats.PartnerPair, error) {
	players, games, err := loadAll(ctx, s.players, s.games)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load partnership input")
		return nil, err
	}
	return stats.Partnerships(players, games), nil
}

// loadAll reads the player and game stores concurrently.
func loadAll(ctx context.Context, playerRepo *repository.PlayerRepository, gameRepo *repository.GameRepository) ([]domain.Player, []domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	var players []domain.Player
	var games []domain.Game

	g.Go(func() error {
		var err error
		players, err = playerRepo.List(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		games, err = gameRepo.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load players and games: %w", err)
	}
	return players, games, nil
}

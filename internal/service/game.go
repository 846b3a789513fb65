package service

import (
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"awty-football/internal/repository"
	"context"

	"github.com/rs/zerolog"
)

type GameService struct {
	repo    *repository.GameRepository
	ledgers *LedgerService
	logger  zerolog.Logger
}

func NewGameService(repo *repository.GameRepository, ledgers *LedgerService, logger zerolog.Logger) *GameService {
	return &GameService{repo: repo, ledgers: ledgers, logger: logger}
}

func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.List(ctx)
}

func (s *GameService) Get(ctx context.Context, id string) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}

func (s *GameService) Create(ctx context.Context) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Create(ctx)
}

// Update writes a partial update. An open ledger session for the game is
// dropped first so its pending save cannot overwrite this one.
func (s *GameService) Update(ctx context.Context, id string, update domain.GameUpdate) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := update.Validate(); err != nil {
		return nil, err
	}

	s.ledgers.Evict(id)
	game, err := s.repo.Update(ctx, id, update)
	if err != nil {
		s.logger.Warn().Err(err).Str("game_id", id).Msg("failed to update game")
		return nil, err
	}
	return game, nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.ledgers.Evict(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("game_id", id).Msg("game deleted")
	return nil
}

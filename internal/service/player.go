package service

import (
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"awty-football/internal/repository"
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	repo   *repository.PlayerRepository
	logger zerolog.Logger
}

func NewPlayerService(repo *repository.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.List(ctx)
}

func (s *PlayerService) Create(ctx context.Context, name, pictureURL string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	pictureURL = strings.TrimSpace(pictureURL)
	if err := validatePictureURL(pictureURL); err != nil {
		return nil, err
	}

	player, err := s.repo.Create(ctx, name, pictureURL)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("player_id", player.ID).Str("name", player.Name).Msg("player added")
	return player, nil
}

func (s *PlayerService) Update(ctx context.Context, id string, update domain.PlayerUpdate) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name, err := normalizeName(*update.Name)
		if err != nil {
			return nil, err
		}
		player.Name = name
	}
	if update.PictureURL != nil {
		pictureURL := strings.TrimSpace(*update.PictureURL)
		if err := validatePictureURL(pictureURL); err != nil {
			return nil, err
		}
		player.PictureURL = pictureURL
	}

	if err := s.repo.Update(ctx, player); err != nil {
		return nil, err
	}
	s.logger.Info().Str("player_id", player.ID).Msg("player updated")
	return player, nil
}

// Delete removes the player. Games keep referencing the id; the stats
// simply stop showing the player.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("player_id", id).Msg("player deleted")
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(name) > constants.PlayerNameMaxLength {
		return "", domain.NewValidationError("name", "must be at most %d characters", constants.PlayerNameMaxLength)
	}
	return name, nil
}

func validatePictureURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("pictureUrl", "must be an absolute http(s) URL")
	}
	return nil
}

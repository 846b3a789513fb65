package service

import (
	"awty-football/internal/api"
	"awty-football/internal/config"
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"awty-football/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type AuthService struct {
	google *api.GoogleClient
	repo   *repository.AuthRepository
	cfg    *config.Config
	logger zerolog.Logger
}

func NewAuthService(google *api.GoogleClient, repo *repository.AuthRepository, cfg *config.Config, logger zerolog.Logger) *AuthService {
	return &AuthService{google: google, repo: repo, cfg: cfg, logger: logger}
}

// SignIn exchanges a Google ID token for a session. The role is derived from
// the admin list on every sign-in.
func (s *AuthService) SignIn(ctx context.Context, credential string) (*domain.User, *domain.Session, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	info, err := s.google.VerifyIDToken(apiCtx, credential)
	if err != nil {
		s.logger.Warn().Err(err).Msg("google credential rejected")
		return nil, nil, err
	}

	role := domain.RoleRegular
	if s.cfg.IsAdminEmail(info.Email) {
		role = domain.RoleAdmin
	}

	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	user, err := s.repo.UpsertUser(dbCtx, domain.User{
		Email:      strings.ToLower(info.Email),
		Name:       info.Name,
		PictureURL: info.Picture,
		Role:       role,
	})
	if err != nil {
		return nil, nil, err
	}

	session, err := s.repo.CreateSession(dbCtx, user.ID, s.cfg.SessionTTL, constants.SessionTokenSize)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user signed in")
	return user, session, nil
}

// Authenticate resolves a session token to its user. Unknown or expired
// tokens yield ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	user, err := s.repo.SessionUser(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("invalid session: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.DeleteSession(ctx, token)
}

func (s *AuthService) PurgeExpiredSessions(ctx context.Context) {
	n, err := s.repo.PurgeExpiredSessions(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to purge expired sessions")
		return
	}
	if n > 0 {
		s.logger.Info().Int64("sessions", n).Msg("expired sessions purged")
	}
}

package repository

import (
	"awty-football/internal/db"
	"awty-football/internal/domain"
	"context"
	"database/sql"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type AuthRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewAuthRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *AuthRepository {
	return &AuthRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func toDomainUser(u db.User) domain.User {
	return domain.User{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		PictureURL: u.PictureUrl,
		Role:       domain.Role(u.Role),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UpsertUser inserts the user or refreshes name, picture and role of the
// existing user with the same email.
func (r *AuthRepository) UpsertUser(ctx context.Context, user domain.User) (*domain.User, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	now := time.Now().UTC()
	err = qtx.UpsertUser(ctx, db.UpsertUserParams{
		ID:         id,
		Email:      user.Email,
		Name:       user.Name,
		PictureUrl: user.PictureURL,
		Role:       string(user.Role),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	row, err := qtx.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user: %w", err)
	}

	u := toDomainUser(row)
	return &u, nil
}

func (r *AuthRepository) CreateSession(ctx context.Context, userID string, ttl time.Duration, tokenSize int) (*domain.Session, error) {
	token, err := gonanoid.New(tokenSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	err = r.queries.CreateSession(ctx, db.CreateSessionParams{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

// SessionUser resolves a session token. Expired sessions are deleted and
// reported as not found.
func (r *AuthRepository) SessionUser(ctx context.Context, token string) (*domain.User, error) {
	row, err := r.queries.GetSessionUser(ctx, token)
	if err != nil {
		return nil, translate(err, "session")
	}

	if !row.Session.ExpiresAt.After(time.Now()) {
		r.logger.Debug().Str("user_id", row.Session.UserID).Msg("session expired")
		if err := r.queries.DeleteSession(ctx, token); err != nil {
			r.logger.Warn().Err(err).Msg("failed to delete expired session")
		}
		return nil, fmt.Errorf("session expired: %w", domain.ErrNotFound)
	}

	u := toDomainUser(row.User)
	return &u, nil
}

func (r *AuthRepository) DeleteSession(ctx context.Context, token string) error {
	if err := r.queries.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *AuthRepository) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return n, nil
}

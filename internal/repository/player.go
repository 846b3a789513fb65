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

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func toDomainPlayer(p db.Player) domain.Player {
	return domain.Player{
		ID:         p.ID,
		Name:       p.Name,
		PictureURL: p.PictureUrl,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = toDomainPlayer(p)
	}
	return result, nil
}

func (r *PlayerRepository) Get(ctx context.Context, id string) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, translate(err, "player "+id)
	}
	p := toDomainPlayer(player)
	return &p, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByName(ctx, name)
	if err != nil {
		return nil, translate(err, "player "+name)
	}
	p := toDomainPlayer(player)
	return &p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, name, pictureURL string) (*domain.Player, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	now := time.Now().UTC()
	err = r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		ID:         id,
		Name:       name,
		PictureUrl: pictureURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		r.logger.Warn().Err(err).Str("name", name).Msg("failed to create player")
		return nil, translate(err, "player "+name)
	}

	r.logger.Debug().Str("player_id", id).Str("name", name).Msg("player created")
	return &domain.Player{ID: id, Name: name, PictureURL: pictureURL, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	player.UpdatedAt = time.Now().UTC()
	n, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{
		Name:       player.Name,
		PictureUrl: player.PictureURL,
		UpdatedAt:  player.UpdatedAt,
		ID:         player.ID,
	})
	if err != nil {
		return translate(err, "player "+player.Name)
	}
	return mustAffect(n, nil, "player "+player.ID)
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	n, err := r.queries.DeletePlayer(ctx, id)
	return mustAffect(n, err, "player "+id)
}

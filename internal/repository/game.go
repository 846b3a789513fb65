package repository

import (
	"awty-football/internal/constants"
	"awty-football/internal/db"
	"awty-football/internal/domain"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type GameRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewGameRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func toDomainGame(row db.Game) (domain.Game, error) {
	game := domain.Game{
		ID:              row.ID,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		TeamAssignments: map[string]domain.Team{},
		Goals:           []domain.Goal{},
		TeamChanges:     []domain.TeamChange{},
	}
	if row.GameNumber.Valid {
		n := int(row.GameNumber.Int64)
		game.GameNumber = &n
	}
	if err := unmarshalColumn(row.TeamAssignments, &game.TeamAssignments); err != nil {
		return game, fmt.Errorf("failed to decode team assignments of game %s: %w", row.ID, err)
	}
	if err := unmarshalColumn(row.Goals, &game.Goals); err != nil {
		return game, fmt.Errorf("failed to decode goals of game %s: %w", row.ID, err)
	}
	if err := unmarshalColumn(row.TeamChanges, &game.TeamChanges); err != nil {
		return game, fmt.Errorf("failed to decode team changes of game %s: %w", row.ID, err)
	}
	return game, nil
}

func unmarshalColumn(raw string, v any) error {
	if raw == "" || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}

type encodedGame struct {
	number      sql.NullInt64
	assignments string
	goals       string
	changes     string
}

func encodeGame(game domain.Game) (encodedGame, error) {
	var enc encodedGame
	if game.GameNumber != nil {
		enc.number = sql.NullInt64{Int64: int64(*game.GameNumber), Valid: true}
	}

	assignments := game.TeamAssignments
	if assignments == nil {
		assignments = map[string]domain.Team{}
	}
	goals := game.Goals
	if goals == nil {
		goals = []domain.Goal{}
	}
	changes := game.TeamChanges
	if changes == nil {
		changes = []domain.TeamChange{}
	}

	b, err := json.Marshal(assignments)
	if err != nil {
		return enc, fmt.Errorf("failed to encode team assignments: %w", err)
	}
	enc.assignments = string(b)
	if b, err = json.Marshal(goals); err != nil {
		return enc, fmt.Errorf("failed to encode goals: %w", err)
	}
	enc.goals = string(b)
	if b, err = json.Marshal(changes); err != nil {
		return enc, fmt.Errorf("failed to encode team changes: %w", err)
	}
	enc.changes = string(b)
	return enc, nil
}

// List returns every game, newest first.
func (r *GameRepository) List(ctx context.Context) ([]domain.Game, error) {
	rows, err := r.queries.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	games := make([]domain.Game, 0, len(rows))
	for _, row := range rows {
		game, err := toDomainGame(row)
		if err != nil {
			r.logger.Error().Err(err).Str("game_id", row.ID).Msg("skipping undecodable game")
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

func (r *GameRepository) Get(ctx context.Context, id string) (*domain.Game, error) {
	row, err := r.queries.GetGame(ctx, id)
	if err != nil {
		return nil, translate(err, "game "+id)
	}
	game, err := toDomainGame(row)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Create inserts an empty game numbered one past the current maximum.
func (r *GameRepository) Create(ctx context.Context) (*domain.Game, error) {
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

	maxNumber, err := qtx.MaxGameNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read max game number: %w", err)
	}
	number := 1
	if maxNumber.Valid {
		number = int(maxNumber.Int64) + 1
	}

	now := time.Now().UTC()
	game := domain.Game{
		ID:              id,
		GameNumber:      &number,
		CreatedAt:       now,
		UpdatedAt:       now,
		TeamAssignments: map[string]domain.Team{},
		Goals:           []domain.Goal{},
		TeamChanges:     []domain.TeamChange{},
	}
	if err := r.insert(ctx, qtx, game); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit game: %w", err)
	}

	r.logger.Info().Str("game_id", id).Int("game_number", number).Msg("game created")
	return &game, nil
}

func (r *GameRepository) insert(ctx context.Context, q *db.Queries, game domain.Game) error {
	enc, err := encodeGame(game)
	if err != nil {
		return err
	}
	err = q.CreateGame(ctx, db.CreateGameParams{
		ID:              game.ID,
		GameNumber:      enc.number,
		CreatedAt:       game.CreatedAt.UTC(),
		TeamAssignments: enc.assignments,
		Goals:           enc.goals,
		TeamChanges:     enc.changes,
		UpdatedAt:       game.UpdatedAt.UTC(),
	})
	if err != nil {
		return translate(err, "game "+game.ID)
	}
	return nil
}

// Update applies a partial update as a read-modify-write inside one
// transaction. Game numbers stay unique.
func (r *GameRepository) Update(ctx context.Context, id string, update domain.GameUpdate) (*domain.Game, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	row, err := qtx.GetGame(ctx, id)
	if err != nil {
		return nil, translate(err, "game "+id)
	}
	game, err := toDomainGame(row)
	if err != nil {
		return nil, err
	}

	if update.GameNumber != nil {
		taken, err := qtx.CountGamesByNumber(ctx, db.CountGamesByNumberParams{
			GameNumber: int64(*update.GameNumber),
			ExcludeID:  id,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to check game number: %w", err)
		}
		if taken > 0 {
			return nil, fmt.Errorf("game number %d already exists: %w", *update.GameNumber, domain.ErrConflict)
		}
	}

	update.Apply(&game)
	game.UpdatedAt = time.Now().UTC()

	enc, err := encodeGame(game)
	if err != nil {
		return nil, err
	}
	n, err := qtx.UpdateGame(ctx, db.UpdateGameParams{
		GameNumber:      enc.number,
		CreatedAt:       game.CreatedAt.UTC(),
		TeamAssignments: enc.assignments,
		Goals:           enc.goals,
		TeamChanges:     enc.changes,
		UpdatedAt:       game.UpdatedAt,
		ID:              id,
	})
	if err := mustAffect(n, err, "game "+id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit game: %w", err)
	}

	r.logger.Debug().
		Str("game_id", id).
		Int("goals", len(game.Goals)).
		Int("team_changes", len(game.TeamChanges)).
		Msg("game updated")
	return &game, nil
}

// SaveEvents writes the event logs of game, leaving its number and date alone.
func (r *GameRepository) SaveEvents(ctx context.Context, game domain.Game) error {
	_, err := r.Update(ctx, game.ID, domain.GameUpdate{
		TeamAssignments: &game.TeamAssignments,
		Goals:           &game.Goals,
		TeamChanges:     &game.TeamChanges,
	})
	return err
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	n, err := r.queries.DeleteGame(ctx, id)
	return mustAffect(n, err, "game "+id)
}

// InsertBatch stores imported games in a single transaction. Games without an
// id get a fresh one.
func (r *GameRepository) InsertBatch(ctx context.Context, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for i := 0; i < len(games); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(games) {
			end = len(games)
		}

		for _, game := range games[i:end] {
			if game.ID == "" {
				if game.ID, err = gonanoid.New(); err != nil {
					return fmt.Errorf("failed to generate nanoid: %w", err)
				}
			}
			if game.CreatedAt.IsZero() {
				game.CreatedAt = now
			}
			game.UpdatedAt = now
			if err := r.insert(ctx, qtx, game); err != nil {
				return fmt.Errorf("failed to insert game: %w", err)
			}
		}
		r.logger.Debug().Int("from", i).Int("to", end).Msg("inserted game batch")
	}

	return tx.Commit()
}

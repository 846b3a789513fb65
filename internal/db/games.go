package db

import (
	"context"
	"database/sql"
	"time"
)

const listGames = `
SELECT id, game_number, created_at, team_assignments, goals, team_changes, updated_at
FROM games
ORDER BY created_at DESC, game_number DESC
`

func (q *Queries) ListGames(ctx context.Context) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listGames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Game
	for rows.Next() {
		var i Game
		if err := rows.Scan(
			&i.ID,
			&i.GameNumber,
			&i.CreatedAt,
			&i.TeamAssignments,
			&i.Goals,
			&i.TeamChanges,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getGame = `
SELECT id, game_number, created_at, team_assignments, goals, team_changes, updated_at
FROM games
WHERE id = ?
`

func (q *Queries) GetGame(ctx context.Context, id string) (Game, error) {
	row := q.db.QueryRowContext(ctx, getGame, id)
	var i Game
	err := row.Scan(
		&i.ID,
		&i.GameNumber,
		&i.CreatedAt,
		&i.TeamAssignments,
		&i.Goals,
		&i.TeamChanges,
		&i.UpdatedAt,
	)
	return i, err
}

const maxGameNumber = `
SELECT MAX(game_number) FROM games
`

func (q *Queries) MaxGameNumber(ctx context.Context) (sql.NullInt64, error) {
	row := q.db.QueryRowContext(ctx, maxGameNumber)
	var maxNumber sql.NullInt64
	err := row.Scan(&maxNumber)
	return maxNumber, err
}

const countGamesByNumber = `
SELECT COUNT(*) FROM games
WHERE game_number = ? AND id != ?
`

type CountGamesByNumberParams struct {
	GameNumber int64
	ExcludeID  string
}

func (q *Queries) CountGamesByNumber(ctx context.Context, arg CountGamesByNumberParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countGamesByNumber, arg.GameNumber, arg.ExcludeID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createGame = `
INSERT INTO games (id, game_number, created_at, team_assignments, goals, team_changes, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateGameParams struct {
	ID              string
	GameNumber      sql.NullInt64
	CreatedAt       time.Time
	TeamAssignments string
	Goals           string
	TeamChanges     string
	UpdatedAt       time.Time
}

func (q *Queries) CreateGame(ctx context.Context, arg CreateGameParams) error {
	_, err := q.db.ExecContext(ctx, createGame,
		arg.ID,
		arg.GameNumber,
		arg.CreatedAt,
		arg.TeamAssignments,
		arg.Goals,
		arg.TeamChanges,
		arg.UpdatedAt,
	)
	return err
}

const updateGame = `
UPDATE games
SET game_number = ?, created_at = ?, team_assignments = ?, goals = ?, team_changes = ?, updated_at = ?
WHERE id = ?
`

type UpdateGameParams struct {
	GameNumber      sql.NullInt64
	CreatedAt       time.Time
	TeamAssignments string
	Goals           string
	TeamChanges     string
	UpdatedAt       time.Time
	ID              string
}

func (q *Queries) UpdateGame(ctx context.Context, arg UpdateGameParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateGame,
		arg.GameNumber,
		arg.CreatedAt,
		arg.TeamAssignments,
		arg.Goals,
		arg.TeamChanges,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteGame = `
DELETE FROM games
WHERE id = ?
`

func (q *Queries) DeleteGame(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteGame, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

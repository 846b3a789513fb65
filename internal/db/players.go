package db

import (
	"context"
	"time"
)

const listPlayers = `
SELECT id, name, picture_url, created_at, updated_at
FROM players
ORDER BY name COLLATE NOCASE
`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(&i.ID, &i.Name, &i.PictureUrl, &i.CreatedAt, &i.UpdatedAt); err != nil {
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

const getPlayer = `
SELECT id, name, picture_url, created_at, updated_at
FROM players
WHERE id = ?
`

func (q *Queries) GetPlayer(ctx context.Context, id string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, id)
	var i Player
	err := row.Scan(&i.ID, &i.Name, &i.PictureUrl, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getPlayerByName = `
SELECT id, name, picture_url, created_at, updated_at
FROM players
WHERE name = ? COLLATE NOCASE
`

func (q *Queries) GetPlayerByName(ctx context.Context, name string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayerByName, name)
	var i Player
	err := row.Scan(&i.ID, &i.Name, &i.PictureUrl, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const createPlayer = `
INSERT INTO players (id, name, picture_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
`

type CreatePlayerParams struct {
	ID         string
	Name       string
	PictureUrl string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) error {
	_, err := q.db.ExecContext(ctx, createPlayer,
		arg.ID,
		arg.Name,
		arg.PictureUrl,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updatePlayer = `
UPDATE players
SET name = ?, picture_url = ?, updated_at = ?
WHERE id = ?
`

type UpdatePlayerParams struct {
	Name       string
	PictureUrl string
	UpdatedAt  time.Time
	ID         string
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updatePlayer,
		arg.Name,
		arg.PictureUrl,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deletePlayer = `
DELETE FROM players
WHERE id = ?
`

func (q *Queries) DeletePlayer(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePlayer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

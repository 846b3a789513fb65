package db

import (
	"context"
	"time"
)

const upsertUser = `
INSERT INTO users (id, email, name, picture_url, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (email) DO UPDATE SET
    name = excluded.name,
    picture_url = excluded.picture_url,
    role = excluded.role,
    updated_at = excluded.updated_at
`

type UpsertUserParams struct {
	ID         string
	Email      string
	Name       string
	PictureUrl string
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (q *Queries) UpsertUser(ctx context.Context, arg UpsertUserParams) error {
	_, err := q.db.ExecContext(ctx, upsertUser,
		arg.ID,
		arg.Email,
		arg.Name,
		arg.PictureUrl,
		arg.Role,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getUserByEmail = `
SELECT id, email, name, picture_url, role, created_at, updated_at
FROM users
WHERE email = ?
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.Name, &i.PictureUrl, &i.Role, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const createSession = `
INSERT INTO sessions (token, user_id, expires_at, created_at)
VALUES (?, ?, ?, ?)
`

type CreateSessionParams struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) error {
	_, err := q.db.ExecContext(ctx, createSession, arg.Token, arg.UserID, arg.ExpiresAt, arg.CreatedAt)
	return err
}

const getSessionUser = `
SELECT s.token, s.user_id, s.expires_at, s.created_at,
       u.id, u.email, u.name, u.picture_url, u.role, u.created_at, u.updated_at
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.token = ?
`

type GetSessionUserRow struct {
	Session Session
	User    User
}

func (q *Queries) GetSessionUser(ctx context.Context, token string) (GetSessionUserRow, error) {
	row := q.db.QueryRowContext(ctx, getSessionUser, token)
	var i GetSessionUserRow
	err := row.Scan(
		&i.Session.Token,
		&i.Session.UserID,
		&i.Session.ExpiresAt,
		&i.Session.CreatedAt,
		&i.User.ID,
		&i.User.Email,
		&i.User.Name,
		&i.User.PictureUrl,
		&i.User.Role,
		&i.User.CreatedAt,
		&i.User.UpdatedAt,
	)
	return i, err
}

const deleteSession = `
DELETE FROM sessions
WHERE token = ?
`

func (q *Queries) DeleteSession(ctx context.Context, token string) error {
	_, err := q.db.ExecContext(ctx, deleteSession, token)
	return err
}

const deleteExpiredSessions = `
DELETE FROM sessions
WHERE expires_at <= ?
`

func (q *Queries) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

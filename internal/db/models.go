package db

import (
	"database/sql"
	"time"
)

type Player struct {
	ID         string
	Name       string
	PictureUrl string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Game stores the event logs as JSON text columns.
type Game struct {
	ID              string
	GameNumber      sql.NullInt64
	CreatedAt       time.Time
	TeamAssignments string
	Goals           string
	TeamChanges     string
	UpdatedAt       time.Time
}

type User struct {
	ID         string
	Email      string
	Name       string
	PictureUrl string
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

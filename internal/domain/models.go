package domain

import (
	"time"
)

type Team string

const (
	TeamColor Team = "color"
	TeamWhite Team = "white"
)

func (t Team) Valid() bool {
	return t == TeamColor || t == TeamWhite
}

func (t Team) Opposite() Team {
	switch t {
	case TeamColor:
		return TeamWhite
	case TeamWhite:
		return TeamColor
	}
	return ""
}

type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PictureURL string    `json:"pictureUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Goal.Team is captured from the scorer's assignment when the goal is recorded
// and is never recomputed afterwards. Empty AssisterID means unassisted.
type Goal struct {
	ScorerID   string    `json:"scorerId"`
	AssisterID string    `json:"assisterId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Team       Team      `json:"team,omitempty"`
}

type TeamChangeType string

const (
	TeamChangeLeave TeamChangeType = "leave"
	TeamChangeSwap  TeamChangeType = "swap"
)

type TeamChange struct {
	PlayerID     string         `json:"playerId"`
	Timestamp    time.Time      `json:"timestamp"`
	Type         TeamChangeType `json:"type"`
	Team         Team           `json:"team"`
	PreviousTeam Team           `json:"previousTeam,omitempty"`
	NewTeam      Team           `json:"newTeam,omitempty"`
}

type Game struct {
	ID              string          `json:"id"`
	GameNumber      *int            `json:"gameNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	TeamAssignments map[string]Team `json:"teamAssignments"`
	Goals           []Goal          `json:"goals"`
	TeamChanges     []TeamChange    `json:"teamChanges"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Clone returns a deep copy so callers can mutate slices and maps freely.
func (g Game) Clone() Game {
	out := g
	if g.GameNumber != nil {
		n := *g.GameNumber
		out.GameNumber = &n
	}
	out.TeamAssignments = make(map[string]Team, len(g.TeamAssignments))
	for id, team := range g.TeamAssignments {
		out.TeamAssignments[id] = team
	}
	out.Goals = append([]Goal{}, g.Goals...)
	out.TeamChanges = append([]TeamChange{}, g.TeamChanges...)
	return out
}

// GameUpdate carries a partial update; nil fields are left untouched.
type GameUpdate struct {
	TeamAssignments *map[string]Team `json:"teamAssignments,omitempty"`
	Goals           *[]Goal          `json:"goals,omitempty"`
	TeamChanges     *[]TeamChange    `json:"teamChanges,omitempty"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	GameNumber      *int             `json:"gameNumber,omitempty"`
}

func (u GameUpdate) Apply(g *Game) {
	if u.TeamAssignments != nil {
		g.TeamAssignments = *u.TeamAssignments
	}
	if u.Goals != nil {
		g.Goals = *u.Goals
	}
	if u.TeamChanges != nil {
		g.TeamChanges = *u.TeamChanges
	}
	if u.CreatedAt != nil {
		g.CreatedAt = *u.CreatedAt
	}
	if u.GameNumber != nil {
		n := *u.GameNumber
		g.GameNumber = &n
	}
}

type PlayerUpdate struct {
	Name       *string `json:"name,omitempty"`
	PictureURL *string `json:"pictureUrl,omitempty"`
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	PictureURL string    `json:"pictureUrl,omitempty"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Package ledger holds the editable event log of a single game: team
// membership, goals and team changes, with score and roster derived on read.
//
// A Ledger is not safe for concurrent use.
package ledger

import (
	"awty-football/internal/domain"
	"awty-football/internal/stats"
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrInvalidTransition    = fmt.Errorf("%w: invalid player transition", domain.ErrConflict)
	ErrUnknownPlayer        = fmt.Errorf("%w: player is not assigned to this game", domain.ErrInvalid)
	ErrInvalidTeam          = fmt.Errorf("%w: team must be color or white", domain.ErrInvalid)
	ErrInvalidAssister      = fmt.Errorf("%w: assister must be a teammate of the scorer", domain.ErrInvalid)
	ErrSelfAssist           = fmt.Errorf("%w: a player cannot assist their own goal", domain.ErrInvalid)
	ErrInvalidTimestamp     = fmt.Errorf("%w: timestamp is required", domain.ErrInvalid)
	ErrGoalIndex            = fmt.Errorf("%w: goal index out of range", domain.ErrNotFound)
	ErrStaleDeletion        = fmt.Errorf("%w: goal changed since deletion was requested", domain.ErrConflict)
	ErrDraftClosed          = fmt.Errorf("%w: goal already recorded", domain.ErrConflict)
	ErrConfirmationRequired = errors.New("confirmation required")
)

type Status int

const (
	Unassigned Status = iota
	Active
	Left
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Left:
		return "left"
	default:
		return "unassigned"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Membership is a player's state within one game. Team is empty when the
// player is Unassigned.
type Membership struct {
	Status Status      `json:"status"`
	Team   domain.Team `json:"team,omitempty"`
}

type Ledger struct {
	game    domain.Game
	members map[string]Membership
	now     func() time.Time
}

// New builds a ledger from a stored game. A player whose latest team change
// is a leave starts in the Left state.
func New(game domain.Game, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	g := game.Clone()

	members := make(map[string]Membership, len(g.TeamAssignments))
	for playerID, team := range g.TeamAssignments {
		members[playerID] = Membership{Status: Active, Team: team}
	}
	for playerID, m := range members {
		if i := lastChangeIndex(g.TeamChanges, playerID); i >= 0 && g.TeamChanges[i].Type == domain.TeamChangeLeave {
			m.Status = Left
			members[playerID] = m
		}
	}

	return &Ledger{game: g, members: members, now: now}
}

func (l *Ledger) Game() domain.Game {
	return l.game.Clone()
}

func (l *Ledger) ID() string {
	return l.game.ID
}

func (l *Ledger) Membership(playerID string) Membership {
	return l.members[playerID]
}

func (l *Ledger) Assign(playerID string, team domain.Team) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalid)
	}
	if !team.Valid() {
		return ErrInvalidTeam
	}
	if m := l.members[playerID]; m.Status != Unassigned {
		return fmt.Errorf("%w: cannot assign player %s (%s)", ErrInvalidTransition, playerID, m.Status)
	}
	l.setMember(playerID, Membership{Status: Active, Team: team})
	return nil
}

// Swap moves an active player to the other side. When the swap undoes the
// player's immediately preceding swap and the player has not scored or
// assisted since, the earlier entry is dropped and nothing new is logged.
func (l *Ledger) Swap(playerID string) error {
	m := l.members[playerID]
	if m.Status != Active {
		return fmt.Errorf("%w: cannot swap player %s (%s)", ErrInvalidTransition, playerID, m.Status)
	}
	from, to := m.Team, m.Team.Opposite()
	l.setMember(playerID, Membership{Status: Active, Team: to})

	if i := lastChangeIndex(l.game.TeamChanges, playerID); i >= 0 {
		prev := l.game.TeamChanges[i]
		if prev.Type == domain.TeamChangeSwap && prev.PreviousTeam == to && !l.involvedSince(playerID, prev.Timestamp) {
			l.game.TeamChanges = append(l.game.TeamChanges[:i], l.game.TeamChanges[i+1:]...)
			return nil
		}
	}

	l.game.TeamChanges = append(l.game.TeamChanges, domain.TeamChange{
		PlayerID:     playerID,
		Timestamp:    l.now(),
		Type:         domain.TeamChangeSwap,
		Team:         to,
		PreviousTeam: from,
		NewTeam:      to,
	})
	return nil
}

func (l *Ledger) Leave(playerID string) error {
	m := l.members[playerID]
	if m.Status != Active {
		return fmt.Errorf("%w: cannot mark player %s as left (%s)", ErrInvalidTransition, playerID, m.Status)
	}
	l.setMember(playerID, Membership{Status: Left, Team: m.Team})
	l.game.TeamChanges = append(l.game.TeamChanges, domain.TeamChange{
		PlayerID:  playerID,
		Timestamp: l.now(),
		Type:      domain.TeamChangeLeave,
		Team:      m.Team,
	})
	return nil
}

// Return reactivates a player who left and erases every team change logged
// for them in this game.
func (l *Ledger) Return(playerID string) error {
	m := l.members[playerID]
	if m.Status != Left {
		return fmt.Errorf("%w: cannot return player %s (%s)", ErrInvalidTransition, playerID, m.Status)
	}
	l.setMember(playerID, Membership{Status: Active, Team: m.Team})
	l.dropChanges(playerID)
	return nil
}

// Remove clears the assignment without logging a team change. The player's
// team changes go with it, so a later Assign starts from a clean history and
// a reloaded game derives the same state.
func (l *Ledger) Remove(playerID string) error {
	if m := l.members[playerID]; m.Status == Unassigned {
		return fmt.Errorf("%w: cannot remove player %s (%s)", ErrInvalidTransition, playerID, m.Status)
	}
	l.setMember(playerID, Membership{Status: Unassigned})
	l.dropChanges(playerID)
	return nil
}

func (l *Ledger) dropChanges(playerID string) {
	kept := make([]domain.TeamChange, 0, len(l.game.TeamChanges))
	for _, c := range l.game.TeamChanges {
		if c.PlayerID != playerID {
			kept = append(kept, c)
		}
	}
	l.game.TeamChanges = kept
}

func (l *Ledger) setMember(playerID string, m Membership) {
	if m.Status == Unassigned {
		delete(l.members, playerID)
		delete(l.game.TeamAssignments, playerID)
		return
	}
	l.members[playerID] = m
	l.game.TeamAssignments[playerID] = m.Team
}

func (l *Ledger) involvedSince(playerID string, since time.Time) bool {
	for _, g := range l.game.Goals {
		if g.ScorerID != playerID && g.AssisterID != playerID {
			continue
		}
		if !g.Timestamp.Before(since) {
			return true
		}
	}
	return false
}

// lastChangeIndex finds the player's latest team change; later entries win
// timestamp ties.
func lastChangeIndex(changes []domain.TeamChange, playerID string) int {
	idx := -1
	for i, c := range changes {
		if c.PlayerID != playerID {
			continue
		}
		if idx < 0 || !c.Timestamp.Before(changes[idx].Timestamp) {
			idx = i
		}
	}
	return idx
}

type Score struct {
	Color int `json:"color"`
	White int `json:"white"`
}

func (l *Ledger) Score() Score {
	color, white := stats.Score(l.game.Goals)
	return Score{Color: color, White: white}
}

type RosterEntry struct {
	PlayerID string `json:"playerId"`
	Left     bool   `json:"left"`
}

type Roster struct {
	Color []RosterEntry `json:"color"`
	White []RosterEntry `json:"white"`
}

func (l *Ledger) Roster() Roster {
	roster := Roster{Color: []RosterEntry{}, White: []RosterEntry{}}
	for playerID, m := range l.members {
		entry := RosterEntry{PlayerID: playerID, Left: m.Status == Left}
		switch m.Team {
		case domain.TeamColor:
			roster.Color = append(roster.Color, entry)
		case domain.TeamWhite:
			roster.White = append(roster.White, entry)
		}
	}
	byID := func(entries []RosterEntry) {
		sort.Slice(entries, func(i, j int) bool { return entries[i].PlayerID < entries[j].PlayerID })
	}
	byID(roster.Color)
	byID(roster.White)
	return roster
}

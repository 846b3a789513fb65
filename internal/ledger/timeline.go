package ledger

import (
	"awty-football/internal/domain"
	"sort"
	"strings"
	"time"
)

type EventKind string

const (
	EventGoal  EventKind = "goal"
	EventSwap  EventKind = "swap"
	EventLeave EventKind = "leave"
)

// Event is one row of the combined timeline. Index points into the goal list
// or the team change list depending on Kind.
type Event struct {
	Kind       EventKind          `json:"kind"`
	Index      int                `json:"index"`
	Timestamp  time.Time          `json:"timestamp"`
	Goal       *domain.Goal       `json:"goal,omitempty"`
	TeamChange *domain.TeamChange `json:"teamChange,omitempty"`
}

type Filter struct {
	Goals  bool
	Swaps  bool
	Leaves bool
}

func AllEvents() Filter {
	return Filter{Goals: true, Swaps: true, Leaves: true}
}

// ParseFilter reads a comma separated list such as "goals,leaves". An empty
// string shows everything.
func ParseFilter(show string) Filter {
	if strings.TrimSpace(show) == "" {
		return AllEvents()
	}
	var f Filter
	for _, part := range strings.Split(show, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "goals", "goal":
			f.Goals = true
		case "swaps", "swap":
			f.Swaps = true
		case "leaves", "leave":
			f.Leaves = true
		}
	}
	return f
}

func (f Filter) allows(kind EventKind) bool {
	switch kind {
	case EventGoal:
		return f.Goals
	case EventSwap:
		return f.Swaps
	case EventLeave:
		return f.Leaves
	}
	return false
}

// Timeline merges goals and team changes, most recent first.
func (l *Ledger) Timeline(f Filter) []Event {
	events := make([]Event, 0, len(l.game.Goals)+len(l.game.TeamChanges))
	if f.Goals {
		for i := range l.game.Goals {
			g := l.game.Goals[i]
			events = append(events, Event{Kind: EventGoal, Index: i, Timestamp: g.Timestamp, Goal: &g})
		}
	}
	for i := range l.game.TeamChanges {
		c := l.game.TeamChanges[i]
		kind := EventSwap
		if c.Type == domain.TeamChangeLeave {
			kind = EventLeave
		}
		if !f.allows(kind) {
			continue
		}
		events = append(events, Event{Kind: kind, Index: i, Timestamp: c.Timestamp, TeamChange: &c})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

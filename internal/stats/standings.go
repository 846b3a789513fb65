// Package stats folds game history into per-player standings and assist
// partnerships. Nothing here performs I/O or returns errors: incomplete games
// and references to unknown players are skipped.
package stats

import (
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"math"
	"sort"
)

type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
)

type PlayerStats struct {
	Player           domain.Player `json:"player"`
	GamesPlayed      int           `json:"gamesPlayed"`
	Wins             int           `json:"wins"`
	Losses           int           `json:"losses"`
	Ties             int           `json:"ties"`
	Points           int           `json:"points"`
	PointsPerGame    float64       `json:"pointsPerGame"`
	Goals            int           `json:"goals"`
	Assists          int           `json:"assists"`
	GoalInvolvements int           `json:"goalInvolvements"`
	// Form holds up to five results, oldest first.
	Form     []Result `json:"form"`
	FormWins int      `json:"formWins"`
}

// Score counts goals per side. Goals without a team label count for neither.
func Score(goals []domain.Goal) (color, white int) {
	for _, g := range goals {
		switch g.Team {
		case domain.TeamColor:
			color++
		case domain.TeamWhite:
			white++
		}
	}
	return color, white
}

func resultFor(team domain.Team, color, white int) Result {
	switch {
	case color == white:
		return ResultTie
	case (team == domain.TeamColor) == (color > white):
		return ResultWin
	default:
		return ResultLoss
	}
}

func isPlayed(g domain.Game) bool {
	return len(g.TeamAssignments) > 0 && len(g.Goals) > 0
}

// Standings builds the stats table: only players with at least one game,
// ordered by the given sort state.
func Standings(players []domain.Player, games []domain.Game, state SortState) []PlayerStats {
	all := Aggregate(players, games)
	rows := make([]PlayerStats, 0, len(all))
	for _, s := range all {
		if s.GamesPlayed > 0 {
			rows = append(rows, s)
		}
	}
	Sort(rows, state)
	return rows
}

// Aggregate returns one entry per known player, in input order, including
// players who never played.
func Aggregate(players []domain.Player, games []domain.Game) []PlayerStats {
	index := make(map[string]*PlayerStats, len(players))
	order := make([]*PlayerStats, 0, len(players))
	for _, p := range players {
		if _, dup := index[p.ID]; dup {
			continue
		}
		entry := &PlayerStats{Player: p, Form: []Result{}}
		index[p.ID] = entry
		order = append(order, entry)
	}

	for _, game := range games {
		if !isPlayed(game) {
			continue
		}
		color, white := Score(game.Goals)

		played := make(map[string]bool, len(game.TeamAssignments))
		credit := func(entry *PlayerStats, team domain.Team) {
			entry.GamesPlayed++
			if !team.Valid() {
				return
			}
			switch resultFor(team, color, white) {
			case ResultWin:
				entry.Wins++
			case ResultLoss:
				entry.Losses++
			default:
				entry.Ties++
			}
		}

		for playerID, team := range game.TeamAssignments {
			entry, ok := index[playerID]
			if !ok {
				continue
			}
			played[playerID] = true
			credit(entry, team)
		}

		for _, goal := range game.Goals {
			if scorer, ok := index[goal.ScorerID]; ok {
				scorer.Goals++
				if !played[goal.ScorerID] {
					played[goal.ScorerID] = true
					credit(scorer, goal.Team)
				}
			}
			if goal.AssisterID == "" || goal.AssisterID == goal.ScorerID {
				continue
			}
			if assister, ok := index[goal.AssisterID]; ok {
				assister.Assists++
				if !played[goal.AssisterID] {
					played[goal.AssisterID] = true
					credit(assister, goal.Team)
				}
			}
		}
	}

	recent := make([]domain.Game, len(games))
	copy(recent, games)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	out := make([]PlayerStats, 0, len(order))
	for _, entry := range order {
		entry.Points = constants.PointsPerWin*entry.Wins + constants.PointsPerTie*entry.Ties
		entry.PointsPerGame = pointsPerGame(entry.Points, entry.GamesPlayed)
		entry.GoalInvolvements = entry.Goals + entry.Assists
		entry.Form = form(entry.Player.ID, recent)
		entry.FormWins = formWins(entry.Form)
		out = append(out, *entry)
	}
	return out
}

func pointsPerGame(points, games int) float64 {
	if games == 0 {
		return 0
	}
	return math.Round(float64(points)/float64(games)*100) / 100
}

// form walks games newest first and returns the last results oldest first.
func form(playerID string, newestFirst []domain.Game) []Result {
	results := make([]Result, 0, constants.FormWindow)
	for _, game := range newestFirst {
		team, ok := game.TeamAssignments[playerID]
		if !ok {
			continue
		}
		color, white := Score(game.Goals)
		results = append(results, resultFor(team, color, white))
		if len(results) == constants.FormWindow {
			break
		}
	}
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results
}

func formWins(results []Result) int {
	n := 0
	for _, r := range results {
		switch r {
		case ResultWin:
			n++
		case ResultLoss:
			n--
		}
	}
	return n
}

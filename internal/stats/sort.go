package stats

import (
	"fmt"
	"sort"
	"strings"
)

type Column string

const (
	ColumnName             Column = "name"
	ColumnGamesPlayed      Column = "gamesPlayed"
	ColumnWins             Column = "wins"
	ColumnLosses           Column = "losses"
	ColumnTies             Column = "ties"
	ColumnPoints           Column = "points"
	ColumnPointsPerGame    Column = "pointsPerGame"
	ColumnGoals            Column = "goals"
	ColumnAssists          Column = "assists"
	ColumnGoalInvolvements Column = "goalInvolvements"
	ColumnForm             Column = "form"
)

type Direction string

const (
	Descending Direction = "desc"
	Ascending  Direction = "asc"
)

type SortState struct {
	Column    Column    `json:"column"`
	Direction Direction `json:"direction"`
}

func DefaultSort() SortState {
	return SortState{Column: ColumnPoints, Direction: Descending}
}

// Toggle is the header-click transition: the active column flips direction,
// any other column starts descending.
func (s SortState) Toggle(col Column) SortState {
	if s.Column == col {
		if s.Direction == Descending {
			return SortState{Column: col, Direction: Ascending}
		}
		return SortState{Column: col, Direction: Descending}
	}
	return SortState{Column: col, Direction: Descending}
}

// ParseSort fills missing values with the defaults and rejects unknown ones.
func ParseSort(column, direction string) (SortState, error) {
	state := DefaultSort()
	if column != "" {
		col := Column(column)
		if _, ok := tieBreaks[col]; !ok {
			return state, fmt.Errorf("unknown sort column %q", column)
		}
		state.Column = col
	}
	switch Direction(strings.ToLower(direction)) {
	case "":
	case Ascending:
		state.Direction = Ascending
	case Descending:
		state.Direction = Descending
	default:
		return state, fmt.Errorf("unknown sort direction %q", direction)
	}
	return state, nil
}

type metric func(PlayerStats) float64

var (
	byGamesPlayed      metric = func(s PlayerStats) float64 { return float64(s.GamesPlayed) }
	byWins             metric = func(s PlayerStats) float64 { return float64(s.Wins) }
	byLosses           metric = func(s PlayerStats) float64 { return float64(s.Losses) }
	byTies             metric = func(s PlayerStats) float64 { return float64(s.Ties) }
	byPoints           metric = func(s PlayerStats) float64 { return float64(s.Points) }
	byPointsPerGame    metric = func(s PlayerStats) float64 { return s.PointsPerGame }
	byGoals            metric = func(s PlayerStats) float64 { return float64(s.Goals) }
	byAssists          metric = func(s PlayerStats) float64 { return float64(s.Assists) }
	byGoalInvolvements metric = func(s PlayerStats) float64 { return float64(s.GoalInvolvements) }
	byFormWins         metric = func(s PlayerStats) float64 { return float64(s.FormWins) }
)

// tieBreaks lists, per column, the primary key followed by its tie-breakers.
// The name column has no numeric chain and is handled separately.
var tieBreaks = map[Column][]metric{
	ColumnName:             nil,
	ColumnGamesPlayed:      {byGamesPlayed, byPoints, byPointsPerGame},
	ColumnWins:             {byWins, byPoints, byPointsPerGame},
	ColumnLosses:           {byLosses, byGamesPlayed, byPoints},
	ColumnTies:             {byTies, byPoints, byPointsPerGame},
	ColumnPoints:           {byPoints, byPointsPerGame, byGoalInvolvements, byGoals},
	ColumnPointsPerGame:    {byPointsPerGame, byPoints, byGoalInvolvements},
	ColumnGoals:            {byGoals, byAssists, byPoints},
	ColumnAssists:          {byAssists, byGoals, byPoints},
	ColumnGoalInvolvements: {byGoalInvolvements, byGoals, byAssists, byPoints},
	ColumnForm:             {byFormWins, byPoints, byPointsPerGame},
}

// Sort orders rows in place. The direction applies to the whole chain;
// rows that tie on every key fall back to name then id, ascending.
func Sort(rows []PlayerStats, state SortState) {
	chain, ok := tieBreaks[state.Column]
	if !ok {
		state = DefaultSort()
		chain = tieBreaks[state.Column]
	}
	asc := state.Direction == Ascending

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if state.Column == ColumnName {
			if c := compareNames(a, b); c != 0 {
				return (c < 0) == asc
			}
		}
		for _, m := range chain {
			x, y := m(a), m(b)
			if x == y {
				continue
			}
			if asc {
				return x < y
			}
			return x > y
		}
		return compareNames(a, b) < 0
	})
}

func compareNames(a, b PlayerStats) int {
	if c := strings.Compare(strings.ToLower(a.Player.Name), strings.ToLower(b.Player.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Player.ID, b.Player.ID)
}

package stats

import (
	"awty-football/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func player(id, name string) domain.Player {
	return domain.Player{ID: id, Name: name}
}

func goal(scorer, assister string, team domain.Team) domain.Goal {
	return domain.Goal{ScorerID: scorer, AssisterID: assister, Team: team, Timestamp: base}
}

func game(id string, day int, teams map[string]domain.Team, goals ...domain.Goal) domain.Game {
	return domain.Game{
		ID:              id,
		CreatedAt:       base.AddDate(0, 0, day),
		TeamAssignments: teams,
		Goals:           goals,
	}
}

func find(t *testing.T, rows []PlayerStats, id string) PlayerStats {
	t.Helper()
	for _, r := range rows {
		if r.Player.ID == id {
			return r
		}
	}
	require.Failf(t, "player missing", "no stats row for %s", id)
	return PlayerStats{}
}

func TestStandings_EndToEndTie(t *testing.T) {
	players := []domain.Player{player("P1", "Ana"), player("P2", "Ben")}
	games := []domain.Game{
		game("g1", 0,
			map[string]domain.Team{"P1": domain.TeamColor, "P2": domain.TeamWhite},
			goal("P1", "", domain.TeamColor),
			goal("P2", "P1", domain.TeamWhite),
		),
	}

	color, white := Score(games[0].Goals)
	assert.Equal(t, 1, color)
	assert.Equal(t, 1, white)

	rows := Standings(players, games, DefaultSort())
	require.Len(t, rows, 2)

	p1 := find(t, rows, "P1")
	assert.Equal(t, 1, p1.GamesPlayed)
	assert.Equal(t, 1, p1.Ties)
	assert.Equal(t, 1, p1.Goals)
	assert.Equal(t, 1, p1.Assists)
	assert.Equal(t, 1, p1.Points)
	assert.Equal(t, []Result{ResultTie}, p1.Form)

	p2 := find(t, rows, "P2")
	assert.Equal(t, 1, p2.GamesPlayed)
	assert.Equal(t, 1, p2.Ties)
	assert.Equal(t, 1, p2.Goals)
	assert.Equal(t, 0, p2.Assists)
	assert.Equal(t, 1, p2.Points)

	pairs := Partnerships(players, games)
	require.Len(t, pairs, 1)
	assert.Equal(t, "P1", pairs[0].PlayerA.ID)
	assert.Equal(t, "P2", pairs[0].PlayerB.ID)
	assert.Equal(t, 1, pairs[0].Contributions)
}

func TestStandings_PointsAndPointsPerGame(t *testing.T) {
	teams := map[string]domain.Team{"A": domain.TeamColor, "B": domain.TeamWhite}
	games := []domain.Game{
		game("g1", 0, teams, goal("A", "", domain.TeamColor)),
		game("g2", 1, teams, goal("A", "", domain.TeamColor)),
		game("g3", 2, teams, goal("A", "", domain.TeamColor), goal("B", "", domain.TeamWhite)),
		game("g4", 3, teams, goal("B", "", domain.TeamWhite)),
	}

	rows := Standings([]domain.Player{player("A", "A"), player("B", "B")}, games, DefaultSort())
	a := find(t, rows, "A")
	assert.Equal(t, 4, a.GamesPlayed)
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 1, a.Ties)
	assert.Equal(t, 1, a.Losses)
	assert.Equal(t, 7, a.Points)
	assert.Equal(t, 1.75, a.PointsPerGame)
	assert.Equal(t, []Result{ResultWin, ResultWin, ResultTie, ResultLoss}, a.Form)
	assert.Equal(t, 1, a.FormWins)

	b := find(t, rows, "B")
	assert.Equal(t, 4, b.Points)
	assert.Equal(t, 1.0, b.PointsPerGame)
	assert.Equal(t, "A", rows[0].Player.ID)
}

func TestStandings_PointsPerGameRounding(t *testing.T) {
	teams := map[string]domain.Team{"A": domain.TeamColor, "B": domain.TeamWhite}
	games := []domain.Game{
		game("g1", 0, teams, goal("A", "", domain.TeamColor)),
		game("g2", 1, teams, goal("B", "", domain.TeamWhite)),
		game("g3", 2, teams, goal("B", "", domain.TeamWhite)),
	}
	rows := Aggregate([]domain.Player{player("A", "A")}, games)
	assert.Equal(t, 1.0, rows[0].PointsPerGame)

	games = append(games, game("g4", 3, teams, goal("A", "", domain.TeamColor), goal("B", "", domain.TeamWhite)))
	games = append(games, game("g5", 4, teams, goal("A", "", domain.TeamColor), goal("B", "", domain.TeamWhite)))
	games = append(games, game("g6", 5, teams, goal("B", "", domain.TeamWhite)))
	rows = Aggregate([]domain.Player{player("A", "A")}, games)
	// 3 + 1 + 1 = 5 points over 6 games
	assert.Equal(t, 0.83, rows[0].PointsPerGame)
}

func TestStandings_ExcludesPlayersWithoutGames(t *testing.T) {
	players := []domain.Player{player("A", "A"), player("idle", "Idle")}
	games := []domain.Game{
		game("g1", 0, map[string]domain.Team{"A": domain.TeamColor}, goal("A", "", domain.TeamColor)),
	}

	all := Aggregate(players, games)
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[1].GamesPlayed)
	assert.Empty(t, all[1].Form)

	rows := Standings(players, games, DefaultSort())
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Player.ID)
}

func TestStandings_SkipsUnplayedGames(t *testing.T) {
	players := []domain.Player{player("A", "A"), player("B", "B")}
	games := []domain.Game{
		game("no-goals", 0, map[string]domain.Team{"A": domain.TeamColor, "B": domain.TeamWhite}),
		game("no-teams", 1, nil, goal("A", "", domain.TeamColor)),
	}

	all := Aggregate(players, games)
	for _, s := range all {
		assert.Equal(t, 0, s.GamesPlayed)
		assert.Equal(t, 0, s.Goals)
	}
	// form still sees the 0-0 game the player was assigned to
	assert.Equal(t, []Result{ResultTie}, all[0].Form)
}

func TestStandings_CreditsUnassignedContributors(t *testing.T) {
	players := []domain.Player{player("A", "A"), player("B", "B"), player("ghost", "Ghost")}
	games := []domain.Game{
		game("g1", 0,
			map[string]domain.Team{"A": domain.TeamColor, "B": domain.TeamWhite},
			goal("ghost", "A", domain.TeamColor),
		),
	}

	ghost := find(t, Aggregate(players, games), "ghost")
	assert.Equal(t, 1, ghost.GamesPlayed)
	assert.Equal(t, 1, ghost.Goals)
	assert.Equal(t, 1, ghost.Wins)
	assert.Equal(t, 3, ghost.Points)
}

func TestStandings_DropsDeletedPlayers(t *testing.T) {
	players := []domain.Player{player("A", "A")}
	games := []domain.Game{
		game("g1", 0,
			map[string]domain.Team{"A": domain.TeamColor, "deleted": domain.TeamWhite},
			goal("deleted", "A", domain.TeamWhite),
			goal("A", "deleted", domain.TeamColor),
		),
	}

	rows := Standings(players, games, DefaultSort())
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Goals)
	assert.Equal(t, 1, rows[0].Assists)
	assert.Equal(t, 1, rows[0].Ties)

	assert.Empty(t, Partnerships(players, games))
}

func TestStandings_SelfAssistIsNotAnAssist(t *testing.T) {
	players := []domain.Player{player("A", "A")}
	games := []domain.Game{
		game("g1", 0, map[string]domain.Team{"A": domain.TeamColor}, goal("A", "A", domain.TeamColor)),
	}

	a := find(t, Aggregate(players, games), "A")
	assert.Equal(t, 1, a.Goals)
	assert.Equal(t, 0, a.Assists)
	assert.Empty(t, Partnerships(players, games))
}

func TestScore_IgnoresUnlabelledGoals(t *testing.T) {
	goals := []domain.Goal{
		goal("A", "", domain.TeamColor),
		goal("B", "", ""),
		goal("C", "", domain.TeamWhite),
		goal("A", "", domain.TeamColor),
	}
	color, white := Score(goals)
	assert.Equal(t, 2, color)
	assert.Equal(t, 1, white)
}

func TestForm_KeepsLastFiveOldestFirst(t *testing.T) {
	teams := map[string]domain.Team{"A": domain.TeamColor, "B": domain.TeamWhite}
	win := goal("A", "", domain.TeamColor)
	loss := goal("B", "", domain.TeamWhite)

	// created out of order on purpose; day offsets define chronology
	games := []domain.Game{
		game("d6", 6, teams, win),
		game("d1", 1, teams, win),
		game("d3", 3, teams, loss),
		game("d2", 2, teams, loss),
		game("d5", 5, teams, win, loss),
		game("d4", 4, teams, win),
	}

	a := find(t, Aggregate([]domain.Player{player("A", "A")}, games), "A")
	assert.Equal(t, []Result{ResultLoss, ResultLoss, ResultWin, ResultTie, ResultWin}, a.Form)
	assert.Equal(t, 0, a.FormWins)
}

func TestNormalizePair_Commutative(t *testing.T) {
	assert.Equal(t, NormalizePair("a", "b"), NormalizePair("b", "a"))
	assert.Equal(t, PairKey{A: "x1", B: "x2"}, NormalizePair("x2", "x1"))
}

func TestPartnerships_SortedByCount(t *testing.T) {
	players := []domain.Player{player("A", "A"), player("B", "B"), player("C", "C")}
	teams := map[string]domain.Team{"A": domain.TeamColor, "B": domain.TeamColor, "C": domain.TeamColor}
	games := []domain.Game{
		game("g1", 0, teams,
			goal("A", "C", domain.TeamColor),
			goal("A", "B", domain.TeamColor),
			goal("B", "A", domain.TeamColor),
			goal("C", "", domain.TeamColor),
		),
		game("g2", 1, teams, goal("B", "A", domain.TeamColor)),
	}

	pairs := Partnerships(players, games)
	require.Len(t, pairs, 2)
	assert.Equal(t, "A", pairs[0].PlayerA.ID)
	assert.Equal(t, "B", pairs[0].PlayerB.ID)
	assert.Equal(t, 3, pairs[0].Contributions)
	assert.Equal(t, "C", pairs[1].PlayerB.ID)
	assert.Equal(t, 1, pairs[1].Contributions)
}

func TestSort_PointsTieBreakChain(t *testing.T) {
	rows := []PlayerStats{
		{Player: player("a", "a"), Points: 6, PointsPerGame: 1.5, GoalInvolvements: 4, Goals: 1},
		{Player: player("b", "b"), Points: 6, PointsPerGame: 2, GoalInvolvements: 1, Goals: 0},
		{Player: player("c", "c"), Points: 6, PointsPerGame: 1.5, GoalInvolvements: 4, Goals: 3},
		{Player: player("d", "d"), Points: 6, PointsPerGame: 1.5, GoalInvolvements: 5, Goals: 0},
		{Player: player("e", "e"), Points: 9, PointsPerGame: 1, GoalInvolvements: 0, Goals: 0},
	}

	Sort(rows, DefaultSort())
	assert.Equal(t, []string{"e", "b", "d", "c", "a"}, ids(rows))

	Sort(rows, SortState{Column: ColumnPoints, Direction: Ascending})
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, ids(rows))
}

func TestSort_GoalsTieBreakChain(t *testing.T) {
	rows := []PlayerStats{
		{Player: player("a", "a"), Goals: 2, Assists: 1, Points: 3},
		{Player: player("b", "b"), Goals: 2, Assists: 1, Points: 6},
		{Player: player("c", "c"), Goals: 2, Assists: 4, Points: 0},
		{Player: player("d", "d"), Goals: 5},
	}

	Sort(rows, SortState{Column: ColumnGoals, Direction: Descending})
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(rows))
}

func TestSort_ByName(t *testing.T) {
	rows := []PlayerStats{
		{Player: player("1", "carla")},
		{Player: player("2", "Ana")},
		{Player: player("3", "ben")},
	}
	Sort(rows, SortState{Column: ColumnName, Direction: Ascending})
	assert.Equal(t, []string{"2", "3", "1"}, ids(rows))

	Sort(rows, SortState{Column: ColumnName, Direction: Descending})
	assert.Equal(t, []string{"1", "3", "2"}, ids(rows))
}

func TestSortState_Toggle(t *testing.T) {
	state := DefaultSort()

	state = state.Toggle(ColumnPoints)
	assert.Equal(t, SortState{Column: ColumnPoints, Direction: Ascending}, state)

	state = state.Toggle(ColumnPoints)
	assert.Equal(t, SortState{Column: ColumnPoints, Direction: Descending}, state)

	state = state.Toggle(ColumnPoints).Toggle(ColumnGoals)
	assert.Equal(t, SortState{Column: ColumnGoals, Direction: Descending}, state)
}

func TestParseSort(t *testing.T) {
	state, err := ParseSort("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSort(), state)

	state, err = ParseSort("assists", "ASC")
	require.NoError(t, err)
	assert.Equal(t, SortState{Column: ColumnAssists, Direction: Ascending}, state)

	_, err = ParseSort("height", "")
	assert.Error(t, err)

	_, err = ParseSort("goals", "sideways")
	assert.Error(t, err)
}

func ids(rows []PlayerStats) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player.ID
	}
	return out
}

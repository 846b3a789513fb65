package csvio

import (
	"awty-football/internal/domain"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roster = []domain.Player{
	{ID: "p1", Name: "Ana"},
	{ID: "p2", Name: "Bruno"},
	{ID: "p3", Name: "Caio"},
}

func sampleGame() domain.Game {
	n := 4
	kickoff := time.Date(2024, 3, 5, 19, 0, 0, 0, time.UTC)
	return domain.Game{
		ID:         "g4",
		GameNumber: &n,
		CreatedAt:  kickoff,
		TeamAssignments: map[string]domain.Team{
			"p1": domain.TeamColor,
			"p2": domain.TeamWhite,
			"p3": domain.TeamColor,
		},
		Goals: []domain.Goal{
			{ScorerID: "p1", AssisterID: "p3", Timestamp: kickoff.Add(5 * time.Minute), Team: domain.TeamColor},
			{ScorerID: "p2", Timestamp: kickoff.Add(9 * time.Minute), Team: domain.TeamWhite},
		},
		TeamChanges: []domain.TeamChange{
			{PlayerID: "p3", Timestamp: kickoff.Add(12 * time.Minute), Type: domain.TeamChangeSwap,
				Team: domain.TeamColor, PreviousTeam: domain.TeamColor, NewTeam: domain.TeamWhite},
			{PlayerID: "p2", Timestamp: kickoff.Add(20 * time.Minute), Type: domain.TeamChangeLeave, Team: domain.TeamWhite},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(roster, []domain.Game{sampleGame()})

	require.Len(t, rows, 1+3+2+2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"4", "2024-03-05T19:00:00Z", "assignment", "Ana", "", "color", "", "", ""}, rows[1])
	assert.Equal(t, []string{"4", "2024-03-05T19:00:00Z", "goal", "Ana", "Caio", "color", "2024-03-05T19:05:00Z", "", ""}, rows[4])
	assert.Equal(t, []string{"4", "2024-03-05T19:00:00Z", "swap", "Caio", "", "color", "2024-03-05T19:12:00Z", "color", "white"}, rows[6])
	assert.Equal(t, "leave", rows[7][colEvent])
}

func TestRows_OrdersByNumber(t *testing.T) {
	two, one := 2, 1
	games := []domain.Game{
		{GameNumber: &two, TeamAssignments: map[string]domain.Team{"p2": domain.TeamWhite}},
		{GameNumber: &one, TeamAssignments: map[string]domain.Team{"p1": domain.TeamColor}},
	}
	rows := Rows(roster, games)

	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[1][colGameNumber])
	assert.Equal(t, "2", rows[2][colGameNumber])
	assert.Equal(t, "Bruno", rows[2][colPlayer])
}

func TestRows_ExportOfDeletedPlayersAndUnnumberedGamesParses(t *testing.T) {
	game := sampleGame()
	game.TeamAssignments["ghost"] = domain.TeamWhite
	game.Goals = append(game.Goals,
		domain.Goal{ScorerID: "ghost", AssisterID: "p2", Timestamp: game.CreatedAt.Add(30 * time.Minute), Team: domain.TeamWhite},
		domain.Goal{ScorerID: "p2", AssisterID: "ghost", Timestamp: game.CreatedAt.Add(31 * time.Minute), Team: domain.TeamWhite},
	)
	game.TeamChanges = append(game.TeamChanges,
		domain.TeamChange{PlayerID: "ghost", Timestamp: game.CreatedAt.Add(40 * time.Minute), Type: domain.TeamChangeLeave, Team: domain.TeamWhite},
	)
	unnumbered := domain.Game{
		CreatedAt:       game.CreatedAt.Add(24 * time.Hour),
		TeamAssignments: map[string]domain.Team{"p1": domain.TeamColor},
	}

	rows := Rows(roster, []domain.Game{unnumbered, game})
	for _, row := range rows[1:] {
		assert.Equal(t, "4", row[colGameNumber])
		assert.NotEqual(t, "ghost", row[colPlayer])
		assert.NotEqual(t, "ghost", row[colAssister])
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	games, err := Parse(&buf, roster)
	require.NoError(t, err)
	require.Len(t, games, 1)

	got := games[0]
	assert.Len(t, got.TeamAssignments, 3)
	require.Len(t, got.Goals, 3)
	assert.Equal(t, "p2", got.Goals[2].ScorerID)
	assert.Empty(t, got.Goals[2].AssisterID)
	assert.Len(t, got.TeamChanges, 2)
}

func TestWriteThenParseRestoresGames(t *testing.T) {
	original := sampleGame()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Rows(roster, []domain.Game{original})))

	games, err := Parse(&buf, roster)
	require.NoError(t, err)
	require.Len(t, games, 1)

	got := games[0]
	assert.Empty(t, got.ID)
	assert.Equal(t, 4, *got.GameNumber)
	assert.True(t, original.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, original.TeamAssignments, got.TeamAssignments)
	require.Len(t, got.Goals, 2)
	assert.Equal(t, "p3", got.Goals[0].AssisterID)
	assert.Equal(t, domain.TeamWhite, got.Goals[1].Team)
	require.Len(t, got.TeamChanges, 2)
	assert.Equal(t, domain.TeamWhite, got.TeamChanges[0].NewTeam)
	assert.Equal(t, domain.TeamChangeLeave, got.TeamChanges[1].Type)
}

func TestParse_NamesAreCaseInsensitive(t *testing.T) {
	input := strings.Join(Header, ",") + "\n" +
		"1,2024-01-01,assignment,ana,,COLOR,,,\n" +
		"1,2024-01-01,goal,ANA,,,2024-01-01T19:00:00Z,,\n"

	games, err := Parse(strings.NewReader(input), roster)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, domain.TeamColor, games[0].TeamAssignments["p1"])
	assert.Equal(t, "p1", games[0].Goals[0].ScorerID)
}

func TestParse_Errors(t *testing.T) {
	head := strings.Join(Header, ",") + "\n"

	cases := []struct {
		name  string
		input string
		row   int
		msg   string
	}{
		{"unknown player", head + "1,,assignment,Zed,,color,,,\n", 2, "unknown player"},
		{"bad team", head + "1,,assignment,Ana,,green,,,\n", 2, "invalid team"},
		{"missing number", head + "1,,assignment,Ana,,color,,,\n,,assignment,Bruno,,white,,,\n", 3, "game_number"},
		{"bad timestamp", head + "1,,goal,Ana,,,yesterday,,\n", 2, "invalid timestamp"},
		{"self assist", head + "1,,goal,Ana,Ana,,2024-01-01T19:00:00Z,,\n", 2, "own goal"},
		{"unknown event", head + "1,,penalty,Ana,,,2024-01-01T19:00:00Z,,\n", 2, "unknown event"},
		{"double assignment", head + "1,,assignment,Ana,,color,,,\n1,,assignment,ana,,white,,,\n", 3, "assigned twice"},
		{"swap without teams", head + "1,,swap,Ana,,color,2024-01-01T19:00:00Z,,\n", 2, "previous_team"},
		{"bad header", "number,date\n", 1, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), roster)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tc.row, rowErr.Row)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""), roster)
	assert.True(t, domain.IsValidation(err))
}

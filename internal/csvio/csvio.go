// Package csvio converts games to and from the flat event CSV used for
// exports, imports and the spreadsheet sync.
package csvio

import (
	"awty-football/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Event string

const (
	EventAssignment Event = "assignment"
	EventGoal       Event = "goal"
	EventSwap       Event = "swap"
	EventLeave      Event = "leave"
)

var Header = []string{
	"game_number",
	"game_date",
	"event",
	"player",
	"assister",
	"team",
	"timestamp",
	"previous_team",
	"new_team",
}

const (
	colGameNumber = iota
	colGameDate
	colEvent
	colPlayer
	colAssister
	colTeam
	colTimestamp
	colPreviousTeam
	colNewTeam
)

// Rows flattens games into CSV rows, header first. Games are ordered by
// number and players are written by name. The output always parses back:
// games without a number are left out, and so are events of players that no
// longer exist. A goal assisted by a deleted player is written unassisted.
func Rows(players []domain.Player, games []domain.Game) [][]string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	ordered := make([]domain.Game, 0, len(games))
	for _, game := range games {
		if game.GameNumber != nil {
			ordered = append(ordered, game)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := *ordered[i].GameNumber, *ordered[j].GameNumber
		if a != b {
			return a < b
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	rows := [][]string{append([]string{}, Header...)}
	for _, game := range ordered {
		number := strconv.Itoa(*game.GameNumber)
		date := formatTime(game.CreatedAt)
		row := func(event Event, player, assister string, team domain.Team, ts time.Time, prev, next domain.Team) []string {
			return []string{number, date, string(event), player, assister, string(team), formatTime(ts), string(prev), string(next)}
		}

		assigned := make([]string, 0, len(game.TeamAssignments))
		for id := range game.TeamAssignments {
			if _, ok := names[id]; ok {
				assigned = append(assigned, id)
			}
		}
		sort.Slice(assigned, func(i, j int) bool {
			ni, nj := strings.ToLower(names[assigned[i]]), strings.ToLower(names[assigned[j]])
			if ni != nj {
				return ni < nj
			}
			return assigned[i] < assigned[j]
		})
		for _, id := range assigned {
			rows = append(rows, row(EventAssignment, names[id], "", game.TeamAssignments[id], time.Time{}, "", ""))
		}
		for _, g := range game.Goals {
			scorer, ok := names[g.ScorerID]
			if !ok {
				continue
			}
			rows = append(rows, row(EventGoal, scorer, names[g.AssisterID], g.Team, g.Timestamp, "", ""))
		}
		for _, c := range game.TeamChanges {
			player, ok := names[c.PlayerID]
			if !ok {
				continue
			}
			switch c.Type {
			case domain.TeamChangeSwap:
				rows = append(rows, row(EventSwap, player, "", c.Team, c.Timestamp, c.PreviousTeam, c.NewTeam))
			default:
				rows = append(rows, row(EventLeave, player, "", c.Team, c.Timestamp, "", ""))
			}
		}
	}
	return rows
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func Write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// RowError reports an invalid line of an import. Row is the 1-based line
// number in the file, the header being line 1.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func rowErr(row int, format string, args ...any) error {
	return &RowError{Row: row, Err: fmt.Errorf("%w: %s", domain.ErrInvalid, fmt.Sprintf(format, args...))}
}

// Parse reads an export back into games. Every row is validated before
// anything is returned; player names resolve case-insensitively. Games come
// back ordered by number and carry no id.
func Parse(r io.Reader, players []domain.Player) ([]domain.Game, error) {
	byName := make(map[string]string, len(players))
	for _, p := range players {
		byName[strings.ToLower(strings.TrimSpace(p.Name))] = p.ID
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty csv", domain.ErrInvalid)
	}
	if err != nil {
		return nil, rowErr(1, "invalid header: %v", err)
	}
	for i, col := range Header {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return nil, rowErr(1, "expected column %q, got %q", col, header[i])
		}
	}

	games := make(map[int]*domain.Game)
	var numbers []int

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, rowErr(parseErr.StartLine, "%v", parseErr.Err)
			}
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		p := rowParser{line: line, record: record, byName: byName}

		number, err := strconv.Atoi(p.field(colGameNumber))
		if err != nil || number <= 0 {
			return nil, rowErr(line, "game_number must be a positive integer")
		}
		game, ok := games[number]
		if !ok {
			n := number
			game = &domain.Game{
				GameNumber:      &n,
				TeamAssignments: map[string]domain.Team{},
				Goals:           []domain.Goal{},
				TeamChanges:     []domain.TeamChange{},
			}
			if date := p.field(colGameDate); date != "" {
				if game.CreatedAt, err = parseTime(date); err != nil {
					return nil, rowErr(line, "invalid game_date %q", date)
				}
			}
			games[number] = game
			numbers = append(numbers, number)
		}

		if err := p.apply(game); err != nil {
			return nil, err
		}
	}

	sort.Ints(numbers)
	out := make([]domain.Game, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, *games[n])
	}
	return out, nil
}

type rowParser struct {
	line   int
	record []string
	byName map[string]string
}

func (p rowParser) field(col int) string {
	return strings.TrimSpace(p.record[col])
}

func (p rowParser) player(col int, required bool) (string, error) {
	name := p.field(col)
	if name == "" {
		if required {
			return "", rowErr(p.line, "%s is required", Header[col])
		}
		return "", nil
	}
	id, ok := p.byName[strings.ToLower(name)]
	if !ok {
		return "", rowErr(p.line, "unknown player %q", name)
	}
	return id, nil
}

func (p rowParser) team(col int, required bool) (domain.Team, error) {
	v := domain.Team(strings.ToLower(p.field(col)))
	if v == "" && !required {
		return "", nil
	}
	if !v.Valid() {
		return "", rowErr(p.line, "invalid %s %q", Header[col], p.field(col))
	}
	return v, nil
}

func (p rowParser) timestamp() (time.Time, error) {
	raw := p.field(colTimestamp)
	if raw == "" {
		return time.Time{}, rowErr(p.line, "timestamp is required")
	}
	ts, err := parseTime(raw)
	if err != nil {
		return time.Time{}, rowErr(p.line, "invalid timestamp %q", raw)
	}
	return ts, nil
}

func (p rowParser) apply(game *domain.Game) error {
	playerID, err := p.player(colPlayer, true)
	if err != nil {
		return err
	}

	switch Event(strings.ToLower(p.field(colEvent))) {
	case EventAssignment:
		team, err := p.team(colTeam, true)
		if err != nil {
			return err
		}
		if _, dup := game.TeamAssignments[playerID]; dup {
			return rowErr(p.line, "player %q assigned twice", p.field(colPlayer))
		}
		game.TeamAssignments[playerID] = team

	case EventGoal:
		assisterID, err := p.player(colAssister, false)
		if err != nil {
			return err
		}
		if assisterID == playerID {
			return rowErr(p.line, "a player cannot assist their own goal")
		}
		team, err := p.team(colTeam, false)
		if err != nil {
			return err
		}
		ts, err := p.timestamp()
		if err != nil {
			return err
		}
		game.Goals = append(game.Goals, domain.Goal{ScorerID: playerID, AssisterID: assisterID, Timestamp: ts, Team: team})

	case EventSwap:
		team, err := p.team(colTeam, true)
		if err != nil {
			return err
		}
		prev, err := p.team(colPreviousTeam, true)
		if err != nil {
			return err
		}
		next, err := p.team(colNewTeam, true)
		if err != nil {
			return err
		}
		ts, err := p.timestamp()
		if err != nil {
			return err
		}
		game.TeamChanges = append(game.TeamChanges, domain.TeamChange{
			PlayerID: playerID, Timestamp: ts, Type: domain.TeamChangeSwap,
			Team: team, PreviousTeam: prev, NewTeam: next,
		})

	case EventLeave:
		team, err := p.team(colTeam, true)
		if err != nil {
			return err
		}
		ts, err := p.timestamp()
		if err != nil {
			return err
		}
		game.TeamChanges = append(game.TeamChanges, domain.TeamChange{
			PlayerID: playerID, Timestamp: ts, Type: domain.TeamChangeLeave, Team: team,
		})

	default:
		return rowErr(p.line, "unknown event %q", p.field(colEvent))
	}
	return nil
}

func parseTime(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", raw)
}

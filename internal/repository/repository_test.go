package repository

import (
	"awty-football/internal/config"
	"awty-football/internal/database"
	"awty-football/internal/db"
	"awty-football/internal/domain"
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()
	sqlDB, err := database.New(&config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB, db.New(sqlDB)
}

func TestPlayerRepository_CRUD(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewPlayerRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	ana, err := repo.Create(ctx, "Ana", "https://example.com/ana.png")
	require.NoError(t, err)
	assert.NotEmpty(t, ana.ID)

	_, err = repo.Create(ctx, "bruno", "")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "ANA", "")
	assert.ErrorIs(t, err, domain.ErrConflict)

	players, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Ana", players[0].Name)
	assert.Equal(t, "bruno", players[1].Name)

	byName, err := repo.GetByName(ctx, "aNa")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, byName.ID)

	ana.Name = "Ana Maria"
	require.NoError(t, repo.Update(ctx, ana))
	got, err := repo.Get(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "https://example.com/ana.png", got.PictureURL)

	require.NoError(t, repo.Delete(ctx, ana.ID))
	_, err = repo.Get(ctx, ana.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ana.ID), domain.ErrNotFound)
}

func TestGameRepository_CreateNumbersSequentially(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	first, err := repo.Create(ctx)
	require.NoError(t, err)
	second, err := repo.Create(ctx)
	require.NoError(t, err)

	require.NotNil(t, first.GameNumber)
	require.NotNil(t, second.GameNumber)
	assert.Equal(t, 1, *first.GameNumber)
	assert.Equal(t, 2, *second.GameNumber)
	assert.Empty(t, first.TeamAssignments)
	assert.Empty(t, first.Goals)
}

func TestGameRepository_UpdateRoundTripsEvents(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	game, err := repo.Create(ctx)
	require.NoError(t, err)

	ts := time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC)
	assignments := map[string]domain.Team{"p1": domain.TeamColor, "p2": domain.TeamWhite}
	goals := []domain.Goal{{ScorerID: "p1", AssisterID: "p3", Timestamp: ts, Team: domain.TeamColor}}
	changes := []domain.TeamChange{{
		PlayerID: "p2", Timestamp: ts.Add(time.Minute), Type: domain.TeamChangeSwap,
		Team: domain.TeamWhite, PreviousTeam: domain.TeamWhite, NewTeam: domain.TeamColor,
	}}

	updated, err := repo.Update(ctx, game.ID, domain.GameUpdate{
		TeamAssignments: &assignments,
		Goals:           &goals,
		TeamChanges:     &changes,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, *updated.GameNumber)

	got, err := repo.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, assignments, got.TeamAssignments)
	require.Len(t, got.Goals, 1)
	assert.Equal(t, "p3", got.Goals[0].AssisterID)
	assert.True(t, ts.Equal(got.Goals[0].Timestamp))
	require.Len(t, got.TeamChanges, 1)
	assert.Equal(t, domain.TeamColor, got.TeamChanges[0].NewTeam)
}

func TestGameRepository_UpdateRejectsDuplicateNumber(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	_, err := repo.Create(ctx)
	require.NoError(t, err)
	second, err := repo.Create(ctx)
	require.NoError(t, err)

	one := 1
	_, err = repo.Update(ctx, second.ID, domain.GameUpdate{GameNumber: &one})
	assert.ErrorIs(t, err, domain.ErrConflict)

	two := 2
	_, err = repo.Update(ctx, second.ID, domain.GameUpdate{GameNumber: &two})
	assert.NoError(t, err)

	_, err = repo.Update(ctx, "missing", domain.GameUpdate{GameNumber: &two})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGameRepository_ListNewestFirst(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	n1, n2 := 1, 2
	older := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC)
	require.NoError(t, repo.InsertBatch(ctx, []domain.Game{
		{GameNumber: &n1, CreatedAt: older},
		{GameNumber: &n2, CreatedAt: newer},
	}))

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, 2, *games[0].GameNumber)
	assert.Equal(t, 1, *games[1].GameNumber)
	assert.NotEmpty(t, games[0].ID)
}

func TestGameRepository_InsertBatchIsAtomic(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	n := 7
	err := repo.InsertBatch(ctx, []domain.Game{{GameNumber: &n}, {GameNumber: &n}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	games, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGameRepository_SaveEventsKeepsNumber(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	game, err := repo.Create(ctx)
	require.NoError(t, err)

	game.TeamAssignments["p1"] = domain.TeamWhite
	game.GameNumber = nil
	require.NoError(t, repo.SaveEvents(ctx, *game))

	got, err := repo.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TeamWhite, got.TeamAssignments["p1"])
	require.NotNil(t, got.GameNumber)
	assert.Equal(t, 1, *got.GameNumber)

	require.NoError(t, repo.Delete(ctx, game.ID))
	assert.ErrorIs(t, repo.SaveEvents(ctx, *game), domain.ErrNotFound)
}

func TestAuthRepository_Sessions(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewAuthRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	user, err := repo.UpsertUser(ctx, domain.User{Email: "ref@example.com", Name: "Ref", Role: domain.RoleRegular})
	require.NoError(t, err)

	again, err := repo.UpsertUser(ctx, domain.User{Email: "ref@example.com", Name: "Referee", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Referee", again.Name)
	assert.True(t, again.IsAdmin())

	session, err := repo.CreateSession(ctx, user.ID, time.Hour, 32)
	require.NoError(t, err)
	assert.Len(t, session.Token, 32)

	resolved, err := repo.SessionUser(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "ref@example.com", resolved.Email)

	require.NoError(t, repo.DeleteSession(ctx, session.Token))
	_, err = repo.SessionUser(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthRepository_ExpiredSessionIsRemoved(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	repo := NewAuthRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	user, err := repo.UpsertUser(ctx, domain.User{Email: "old@example.com", Role: domain.RoleRegular})
	require.NoError(t, err)
	session, err := repo.CreateSession(ctx, user.ID, -time.Minute, 32)
	require.NoError(t, err)

	_, err = repo.SessionUser(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := repo.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

package autosave

import (
	"awty-football/internal/domain"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu    sync.Mutex
	saved []domain.Game
	fails int
	err   error
}

func (r *recordingStore) save(ctx context.Context, game domain.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fails > 0 {
		r.fails--
		return r.err
	}
	r.saved = append(r.saved, game)
	return nil
}

func (r *recordingStore) calls() []domain.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Game{}, r.saved...)
}

func gameWithGoals(n int) domain.Game {
	g := domain.Game{ID: "g1", TeamAssignments: map[string]domain.Team{}}
	for i := 0; i < n; i++ {
		g.Goals = append(g.Goals, domain.Goal{ScorerID: "p", Timestamp: time.Unix(int64(i+1), 0)})
	}
	return g
}

func TestSchedule_CoalescesBurst(t *testing.T) {
	store := &recordingStore{}
	s := New("g1", store.save, Options{Delay: 30 * time.Millisecond, Retry: NoRetry()}, zerolog.Nop())

	for i := 1; i <= 5; i++ {
		s.Schedule(gameWithGoals(i))
	}
	assert.Equal(t, StatePending, s.Status().State)
	assert.True(t, s.Status().Unsaved())

	require.Eventually(t, func() bool { return len(store.calls()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	calls := store.calls()
	require.Len(t, calls, 1)
	assert.Len(t, calls[0].Goals, 5)
	assert.Equal(t, StateSaved, s.Status().State)
	assert.False(t, s.Status().LastSaved.IsZero())
}

func TestSchedule_SnapshotIsIsolated(t *testing.T) {
	store := &recordingStore{}
	s := New("g1", store.save, Options{Delay: time.Hour, Retry: NoRetry()}, zerolog.Nop())

	g := gameWithGoals(1)
	s.Schedule(g)
	g.Goals[0].ScorerID = "mutated"

	require.NoError(t, s.Flush(context.Background()))
	require.Len(t, store.calls(), 1)
	assert.Equal(t, "p", store.calls()[0].Goals[0].ScorerID)
}

func TestFlush_NothingPending(t *testing.T) {
	store := &recordingStore{}
	s := New("g1", store.save, Options{Retry: NoRetry()}, zerolog.Nop())

	require.NoError(t, s.Flush(context.Background()))
	assert.Empty(t, store.calls())
	assert.Equal(t, StateSaved, s.Status().State)
}

func TestFlush_RetriesTransientFailures(t *testing.T) {
	store := &recordingStore{fails: 2, err: errors.New("database is locked")}
	s := New("g1", store.save, Options{Delay: time.Hour, Retry: ExponentialRetry(3)}, zerolog.Nop())

	s.Schedule(gameWithGoals(2))
	require.NoError(t, s.Flush(context.Background()))

	assert.Len(t, store.calls(), 1)
	assert.Equal(t, StateSaved, s.Status().State)
}

func TestFlush_FailureIsReportedInStatus(t *testing.T) {
	store := &recordingStore{fails: 10, err: errors.New("disk full")}
	s := New("g1", store.save, Options{Delay: time.Hour, Retry: ExponentialRetry(1)}, zerolog.Nop())

	s.Schedule(gameWithGoals(1))
	err := s.Flush(context.Background())
	require.Error(t, err)

	status := s.Status()
	assert.Equal(t, StateFailed, status.State)
	assert.Contains(t, status.LastError, "disk full")
	assert.True(t, status.Unsaved())

	// the snapshot is kept and goes out on the next flush
	store.mu.Lock()
	store.fails = 0
	store.mu.Unlock()
	require.NoError(t, s.Flush(context.Background()))
	assert.Len(t, store.calls(), 1)
	assert.Equal(t, StateSaved, s.Status().State)
}

func TestFlush_NotFoundIsNotRetried(t *testing.T) {
	store := &recordingStore{fails: 5, err: domain.ErrNotFound}
	s := New("g1", store.save, Options{Delay: time.Hour, Retry: ExponentialRetry(3)}, zerolog.Nop())

	s.Schedule(gameWithGoals(1))
	err := s.Flush(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.mu.Lock()
	assert.Equal(t, 4, store.fails)
	store.mu.Unlock()
}

func TestDiscard(t *testing.T) {
	store := &recordingStore{}
	s := New("g1", store.save, Options{Delay: 20 * time.Millisecond, Retry: NoRetry()}, zerolog.Nop())

	s.Schedule(gameWithGoals(1))
	s.Discard()
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, store.calls())
	assert.Equal(t, StateSaved, s.Status().State)
}

func TestClose_FlushesAndRejectsLaterSchedules(t *testing.T) {
	store := &recordingStore{}
	s := New("g1", store.save, Options{Delay: time.Hour, Retry: NoRetry()}, zerolog.Nop())

	s.Schedule(gameWithGoals(3))
	require.NoError(t, s.Close(context.Background()))
	require.Len(t, store.calls(), 1)

	s.Schedule(gameWithGoals(4))
	require.NoError(t, s.Flush(context.Background()))
	assert.Len(t, store.calls(), 1)
}

package service

import (
	"awty-football/internal/autosave"
	"awty-football/internal/config"
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"awty-football/internal/ledger"
	"awty-football/internal/repository"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Action string

const (
	ActionAssign Action = "assign"
	ActionSwap   Action = "swap"
	ActionLeave  Action = "leave"
	ActionReturn Action = "return"
	ActionRemove Action = "remove"
)

type Command struct {
	Action   Action      `json:"action"`
	PlayerID string      `json:"playerId"`
	Team     domain.Team `json:"team,omitempty"`
}

type LedgerView struct {
	Game     domain.Game     `json:"game"`
	Score    ledger.Score    `json:"score"`
	Roster   ledger.Roster   `json:"roster"`
	Timeline []ledger.Event  `json:"timeline"`
	Save     autosave.Status `json:"save"`
}

// ConfirmationError is returned by an unconfirmed goal deletion. It carries
// the goal that would be removed.
type ConfirmationError struct {
	Index int
	Goal  domain.Goal
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("deleting goal %d requires confirmation", e.Index)
}

func (e *ConfirmationError) Unwrap() error {
	return ledger.ErrConfirmationRequired
}

type ledgerSession struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	saver    *autosave.Scheduler
	deletion *ledger.Deletion
	pending  int
	lastUsed time.Time
}

// LedgerService keeps one in-memory ledger per game being edited. Every
// mutation schedules a debounced save of the whole game.
type LedgerService struct {
	games   *repository.GameRepository
	players *repository.PlayerRepository
	opts    autosave.Options
	now     func() time.Time
	logger  zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*ledgerSession
}

func NewLedgerService(games *repository.GameRepository, players *repository.PlayerRepository, cfg *config.Config, logger zerolog.Logger) *LedgerService {
	return &LedgerService{
		games:   games,
		players: players,
		opts: autosave.Options{
			Delay: cfg.AutosaveDelay,
			Retry: autosave.ExponentialRetry(uint64(cfg.AutosaveMaxRetries)),
		},
		now:      time.Now,
		logger:   logger.With().Str("component", "ledger").Logger(),
		sessions: make(map[string]*ledgerSession),
	}
}

func (s *LedgerService) session(ctx context.Context, gameID string) (*ledgerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[gameID]; ok {
		sess.lastUsed = s.now()
		return sess, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	game, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess := &ledgerSession{
		ledger:   ledger.New(*game, s.now),
		saver:    autosave.New(gameID, s.games.SaveEvents, s.opts, s.logger),
		lastUsed: s.now(),
	}
	s.sessions[gameID] = sess
	s.logger.Debug().Str("game_id", gameID).Msg("ledger session opened")
	return sess, nil
}

// mutate runs fn against the game's ledger and schedules a save when it
// succeeds.
func (s *LedgerService) mutate(ctx context.Context, gameID string, fn func(l *ledger.Ledger) error) (*LedgerView, error) {
	sess, err := s.session(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess.ledger); err != nil {
		return nil, err
	}
	sess.saver.Schedule(sess.ledger.Game())
	return s.view(sess, ledger.AllEvents()), nil
}

func (s *LedgerService) view(sess *ledgerSession, filter ledger.Filter) *LedgerView {
	return &LedgerView{
		Game:     sess.ledger.Game(),
		Score:    sess.ledger.Score(),
		Roster:   sess.ledger.Roster(),
		Timeline: sess.ledger.Timeline(filter),
		Save:     sess.saver.Status(),
	}
}

func (s *LedgerService) View(ctx context.Context, gameID string, filter ledger.Filter) (*LedgerView, error) {
	sess, err := s.session(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess, filter), nil
}

func (s *LedgerService) Apply(ctx context.Context, gameID string, cmd Command) (*LedgerView, error) {
	if cmd.PlayerID == "" {
		return nil, domain.NewValidationError("playerId", "is required")
	}

	if cmd.Action == ActionAssign {
		if _, err := s.players.Get(ctx, cmd.PlayerID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("playerId", "unknown player %s", cmd.PlayerID)
			}
			return nil, err
		}
	}

	view, err := s.mutate(ctx, gameID, func(l *ledger.Ledger) error {
		switch cmd.Action {
		case ActionAssign:
			return l.Assign(cmd.PlayerID, cmd.Team)
		case ActionSwap:
			return l.Swap(cmd.PlayerID)
		case ActionLeave:
			return l.Leave(cmd.PlayerID)
		case ActionReturn:
			return l.Return(cmd.PlayerID)
		case ActionRemove:
			return l.Remove(cmd.PlayerID)
		}
		return domain.NewValidationError("action", "unknown action %q", cmd.Action)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("game_id", gameID).
		Str("action", string(cmd.Action)).
		Str("player_id", cmd.PlayerID).
		Msg("ledger command applied")
	return view, nil
}

func (s *LedgerService) AssistCandidates(ctx context.Context, gameID, scorerID string) ([]string, error) {
	sess, err := s.session(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.ledger.AssistCandidates(scorerID)
}

// RecordGoal adds a goal for scorerID; an empty assisterID records it
// unassisted. It returns the index of the new goal.
func (s *LedgerService) RecordGoal(ctx context.Context, gameID, scorerID, assisterID string) (int, *LedgerView, error) {
	index := -1
	view, err := s.mutate(ctx, gameID, func(l *ledger.Ledger) error {
		var err error
		index, err = l.RecordGoal(scorerID, assisterID)
		return err
	})
	if err != nil {
		return -1, nil, err
	}
	return index, view, nil
}

func (s *LedgerService) EditGoal(ctx context.Context, gameID string, index int, edit ledger.GoalEdit) (*LedgerView, error) {
	return s.mutate(ctx, gameID, func(l *ledger.Ledger) error {
		return l.EditGoal(index, edit)
	})
}

// DeleteGoal removes a goal in two steps. The unconfirmed call returns a
// *ConfirmationError describing the goal; the confirmed call removes it,
// failing if the goal changed in between.
func (s *LedgerService) DeleteGoal(ctx context.Context, gameID string, index int, confirmed bool) (*LedgerView, error) {
	sess, err := s.session(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		sess.mu.Lock()
		defer sess.mu.Unlock()

		d, err := sess.ledger.RequestGoalDeletion(index)
		if err != nil {
			return nil, err
		}
		sess.deletion = d
		sess.pending = index
		return nil, &ConfirmationError{Index: index, Goal: d.Goal()}
	}

	return s.mutate(ctx, gameID, func(l *ledger.Ledger) error {
		d := sess.deletion
		sess.deletion = nil
		if d != nil && sess.pending == index {
			return d.Confirm()
		}
		return l.DeleteGoal(index, true)
	})
}

// Flush saves the game now and reports the save status.
func (s *LedgerService) Flush(ctx context.Context, gameID string) (autosave.Status, error) {
	s.mu.Lock()
	sess, ok := s.sessions[gameID]
	s.mu.Unlock()
	if !ok {
		if _, err := s.games.Get(ctx, gameID); err != nil {
			return autosave.Status{}, err
		}
		return autosave.Status{State: autosave.StateSaved}, nil
	}

	err := sess.saver.Flush(ctx)
	return sess.saver.Status(), err
}

// Evict drops the session of a game, discarding any unsaved edits.
func (s *LedgerService) Evict(gameID string) {
	s.mu.Lock()
	sess, ok := s.sessions[gameID]
	delete(s.sessions, gameID)
	s.mu.Unlock()

	if ok {
		sess.saver.Discard()
		s.logger.Info().Str("game_id", gameID).Msg("ledger session discarded")
	}
}

// EvictIdle saves and drops sessions nobody touched for idle. A session
// whose save fails stays open so its edits can be retried. It returns the
// number of sessions dropped.
func (s *LedgerService) EvictIdle(ctx context.Context, idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	idleSessions := make(map[string]*ledgerSession)
	for id, sess := range s.sessions {
		if !sess.lastUsed.After(cutoff) {
			idleSessions[id] = sess
		}
	}
	s.mu.Unlock()

	evicted := 0
	for id, sess := range idleSessions {
		flushCtx, cancel := context.WithTimeout(ctx, constants.AutosaveTimeout)
		err := sess.saver.Flush(flushCtx)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Str("game_id", id).Msg("idle ledger session kept after failed save")
			continue
		}

		s.mu.Lock()
		sess.mu.Lock()
		if s.sessions[id] == sess && !sess.lastUsed.After(cutoff) && !sess.saver.Status().Unsaved() {
			delete(s.sessions, id)
			evicted++
		}
		sess.mu.Unlock()
		s.mu.Unlock()
	}

	if evicted > 0 {
		s.logger.Debug().Int("sessions", evicted).Msg("idle ledger sessions closed")
	}
	return evicted
}

// Close flushes every open session. Later edits are ignored.
func (s *LedgerService) Close(ctx context.Context) error {
	s.mu.Lock()
	sessions := make(map[string]*ledgerSession, len(s.sessions))
	for id, sess := range s.sessions {
		sessions[id] = sess
	}
	s.mu.Unlock()

	var errs []error
	for id, sess := range sessions {
		if err := sess.saver.Close(ctx); err != nil {
			s.logger.Error().Err(err).Str("game_id", id).Msg("failed to flush ledger session")
			errs = append(errs, fmt.Errorf("failed to flush game %s: %w", id, err))
		}
	}
	s.logger.Info().Int("sessions", len(sessions)).Msg("ledger sessions flushed")
	return errors.Join(errs...)
}

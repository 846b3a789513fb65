// Package autosave debounces whole-game writes. A newer Schedule call
// supersedes a pending one, so a burst of edits produces a single save.
package autosave

import (
	"awty-football/internal/constants"
	"awty-football/internal/domain"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

type SaveFunc func(ctx context.Context, game domain.Game) error

// RetryPolicy returns a fresh backoff for every save attempt sequence.
type RetryPolicy func() retry.Backoff

func ExponentialRetry(maxRetries uint64) RetryPolicy {
	return func() retry.Backoff {
		b := retry.NewExponential(constants.AutosaveRetryBase)
		b = retry.WithCappedDuration(constants.AutosaveRetryCap, b)
		return retry.WithMaxRetries(maxRetries, b)
	}
}

func NoRetry() RetryPolicy {
	return ExponentialRetry(0)
}

type State string

const (
	StateSaved   State = "saved"
	StatePending State = "pending"
	StateSaving  State = "saving"
	StateFailed  State = "failed"
)

type Status struct {
	State     State     `json:"state"`
	LastSaved time.Time `json:"lastSaved,omitempty"`
	LastError string    `json:"lastError,omitempty"`
}

// Unsaved reports whether local edits may not have reached the store.
func (s Status) Unsaved() bool {
	return s.State != StateSaved
}

type Options struct {
	Delay   time.Duration
	Retry   RetryPolicy
	Timeout time.Duration
}

type Scheduler struct {
	gameID string
	save   SaveFunc
	opts   Options
	logger zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *domain.Game
	seq     uint64
	status  Status
	closed  bool

	saveMu sync.Mutex
}

func New(gameID string, save SaveFunc, opts Options, logger zerolog.Logger) *Scheduler {
	if opts.Delay <= 0 {
		opts.Delay = constants.AutosaveDelay
	}
	if opts.Retry == nil {
		opts.Retry = ExponentialRetry(constants.AutosaveMaxRetries)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = constants.AutosaveTimeout
	}
	return &Scheduler{
		gameID: gameID,
		save:   save,
		opts:   opts,
		logger: logger.With().Str("game_id", gameID).Logger(),
		status: Status{State: StateSaved},
	}
}

// Schedule queues game for saving after the debounce delay.
func (s *Scheduler) Schedule(game domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.logger.Warn().Msg("autosave scheduled after close, ignoring")
		return
	}

	snapshot := game.Clone()
	s.pending = &snapshot
	s.seq++
	s.status.State = StatePending

	if s.timer != nil {
		s.timer.Stop()
	}
	seq := s.seq
	s.timer = time.AfterFunc(s.opts.Delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.Timeout)
		defer cancel()
		if err := s.flush(ctx, seq); err != nil {
			s.logger.Error().Err(err).Msg("autosave failed")
		}
	})
}

// Flush saves the pending snapshot now, if any.
func (s *Scheduler) Flush(ctx context.Context) error {
	return s.flush(ctx, 0)
}

// Discard drops the pending snapshot without saving it.
func (s *Scheduler) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.pending != nil {
		s.logger.Debug().Msg("discarding pending autosave")
	}
	s.pending = nil
	s.seq++
	s.status.State = StateSaved
	s.status.LastError = ""
}

// Close flushes and rejects later Schedule calls.
func (s *Scheduler) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return err
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// flush writes the pending snapshot. A timer callback passes its sequence
// number and gives up if a newer Schedule replaced it; seq 0 always flushes.
func (s *Scheduler) flush(ctx context.Context, seq uint64) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.pending == nil || (seq != 0 && seq != s.seq) {
		s.mu.Unlock()
		return nil
	}
	game := *s.pending
	taken := s.seq
	s.pending = nil
	s.status.State = StateSaving
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	attempts := 0
	err := retry.Do(ctx, s.opts.Retry(), func(ctx context.Context) error {
		attempts++
		if err := s.save(ctx, game); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return err
			}
			s.logger.Warn().Err(err).Int("attempt", attempts).Msg("autosave attempt failed")
			return retry.RetryableError(err)
		}
		return nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// keep the failed snapshot unless a newer one arrived meanwhile
		if s.pending == nil {
			s.pending = &game
		}
		s.status.State = StateFailed
		s.status.LastError = err.Error()
		s.logger.Error().Err(err).Int("attempts", attempts).Msg("autosave gave up")
		return err
	}

	s.status.LastSaved = time.Now()
	s.status.LastError = ""
	if s.seq == taken && s.pending == nil {
		s.status.State = StateSaved
	} else {
		s.status.State = StatePending
	}
	s.logger.Debug().Int("attempts", attempts).Int("goals", len(game.Goals)).Msg("game autosaved")
	return nil
}

package ledger

import (
	"awty-football/internal/domain"
	"fmt"
	"sort"
	"time"
)

// GoalDraft is an open goal waiting for an assister choice. The scoring side
// and the timestamp are fixed when the draft is started.
type GoalDraft struct {
	l         *Ledger
	scorerID  string
	team      domain.Team
	timestamp time.Time
	done      bool
}

func (l *Ledger) StartGoal(scorerID string) (*GoalDraft, error) {
	m := l.members[scorerID]
	if m.Status != Active {
		return nil, fmt.Errorf("%w: scorer %s is %s", ErrUnknownPlayer, scorerID, m.Status)
	}
	return &GoalDraft{l: l, scorerID: scorerID, team: m.Team, timestamp: l.now()}, nil
}

func (d *GoalDraft) ScorerID() string  { return d.scorerID }
func (d *GoalDraft) Team() domain.Team { return d.team }

// Candidates lists the scorer's active teammates, sorted by id.
func (d *GoalDraft) Candidates() []string {
	return d.l.teammates(d.scorerID, d.team)
}

func (d *GoalDraft) Assist(assisterID string) (int, error) {
	if assisterID == d.scorerID {
		return 0, ErrSelfAssist
	}
	m := d.l.members[assisterID]
	if m.Status != Active || m.Team != d.team {
		return 0, fmt.Errorf("%w: %s is not on %s", ErrInvalidAssister, assisterID, d.team)
	}
	return d.commit(assisterID)
}

func (d *GoalDraft) Skip() (int, error) {
	return d.commit("")
}

func (d *GoalDraft) commit(assisterID string) (int, error) {
	if d.done {
		return 0, ErrDraftClosed
	}
	d.done = true
	d.l.game.Goals = append(d.l.game.Goals, domain.Goal{
		ScorerID:   d.scorerID,
		AssisterID: assisterID,
		Timestamp:  d.timestamp,
		Team:       d.team,
	})
	return len(d.l.game.Goals) - 1, nil
}

// RecordGoal starts a draft and completes it in one step; an empty
// assisterID records an unassisted goal. It returns the new goal's index.
func (l *Ledger) RecordGoal(scorerID, assisterID string) (int, error) {
	draft, err := l.StartGoal(scorerID)
	if err != nil {
		return 0, err
	}
	if assisterID == "" {
		return draft.Skip()
	}
	return draft.Assist(assisterID)
}

// AssistCandidates is the assister list shown after picking a scorer.
func (l *Ledger) AssistCandidates(scorerID string) ([]string, error) {
	draft, err := l.StartGoal(scorerID)
	if err != nil {
		return nil, err
	}
	return draft.Candidates(), nil
}

func (l *Ledger) teammates(playerID string, team domain.Team) []string {
	out := []string{}
	for id, m := range l.members {
		if id != playerID && m.Status == Active && m.Team == team {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// GoalEdit changes an existing goal. Nil fields keep their current value;
// an empty AssisterID clears the assist.
type GoalEdit struct {
	ScorerID   *string    `json:"scorerId,omitempty"`
	AssisterID *string    `json:"assisterId,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

// EditGoal applies the edit atomically. Changing the scorer recaptures the
// goal's team from the new scorer and drops the assist unless a new one is
// given in the same edit.
func (l *Ledger) EditGoal(index int, edit GoalEdit) error {
	goal, err := l.goalAt(index)
	if err != nil {
		return err
	}
	updated := goal
	revalidate := false

	if edit.ScorerID != nil && *edit.ScorerID != goal.ScorerID {
		m := l.members[*edit.ScorerID]
		if m.Status == Unassigned {
			return fmt.Errorf("%w: scorer %s", ErrUnknownPlayer, *edit.ScorerID)
		}
		updated.ScorerID = *edit.ScorerID
		updated.Team = m.Team
		updated.AssisterID = ""
	}
	if edit.AssisterID != nil {
		updated.AssisterID = *edit.AssisterID
		revalidate = true
	}
	if updated.AssisterID != "" && revalidate {
		if updated.AssisterID == updated.ScorerID {
			return ErrSelfAssist
		}
		team := updated.Team
		if team == "" {
			team = l.members[updated.ScorerID].Team
		}
		m := l.members[updated.AssisterID]
		if m.Status == Unassigned || m.Team != team {
			return fmt.Errorf("%w: %s is not on %s", ErrInvalidAssister, updated.AssisterID, team)
		}
	}
	if edit.Timestamp != nil {
		if edit.Timestamp.IsZero() {
			return ErrInvalidTimestamp
		}
		updated.Timestamp = *edit.Timestamp
	}

	l.game.Goals[index] = updated
	return nil
}

func (l *Ledger) goalAt(index int) (domain.Goal, error) {
	if index < 0 || index >= len(l.game.Goals) {
		return domain.Goal{}, fmt.Errorf("%w: %d", ErrGoalIndex, index)
	}
	return l.game.Goals[index], nil
}

// Deletion is a pending goal removal that takes effect on Confirm.
type Deletion struct {
	l     *Ledger
	index int
	goal  domain.Goal
}

func (l *Ledger) RequestGoalDeletion(index int) (*Deletion, error) {
	goal, err := l.goalAt(index)
	if err != nil {
		return nil, err
	}
	return &Deletion{l: l, index: index, goal: goal}, nil
}

func (d *Deletion) Goal() domain.Goal {
	return d.goal
}

// Confirm removes the goal, refusing if the log changed under the request.
func (d *Deletion) Confirm() error {
	current, err := d.l.goalAt(d.index)
	if err != nil || !sameGoal(current, d.goal) {
		return ErrStaleDeletion
	}
	goals := d.l.game.Goals
	d.l.game.Goals = append(goals[:d.index:d.index], goals[d.index+1:]...)
	return nil
}

// DeleteGoal is the one-shot form used by callers that collected the
// confirmation themselves.
func (l *Ledger) DeleteGoal(index int, confirmed bool) error {
	d, err := l.RequestGoalDeletion(index)
	if err != nil {
		return err
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	return d.Confirm()
}

func sameGoal(a, b domain.Goal) bool {
	return a.ScorerID == b.ScorerID &&
		a.AssisterID == b.AssisterID &&
		a.Team == b.Team &&
		a.Timestamp.Equal(b.Timestamp)
}

package ledger

import (
	"awty-football/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fiveAside(t *testing.T) (*Ledger, *tickingClock) {
	return newLedger(t, map[string]domain.Team{
		"ana":  domain.TeamColor,
		"ben":  domain.TeamColor,
		"cris": domain.TeamColor,
		"dani": domain.TeamWhite,
		"eli":  domain.TeamWhite,
	})
}

func TestGoalDraft_CandidatesAreActiveTeammates(t *testing.T) {
	l, _ := fiveAside(t)
	require.NoError(t, l.Leave("cris"))

	draft, err := l.StartGoal("ana")
	require.NoError(t, err)
	assert.Equal(t, domain.TeamColor, draft.Team())
	assert.Equal(t, []string{"ben"}, draft.Candidates())

	idx, err := draft.Assist("ben")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = draft.Skip()
	assert.ErrorIs(t, err, ErrDraftClosed)

	goals := l.Game().Goals
	require.Len(t, goals, 1)
	assert.Equal(t, "ana", goals[0].ScorerID)
	assert.Equal(t, "ben", goals[0].AssisterID)
	assert.Equal(t, domain.TeamColor, goals[0].Team)
}

func TestRecordGoal_Validation(t *testing.T) {
	l, _ := fiveAside(t)

	_, err := l.RecordGoal("ana", "ana")
	assert.ErrorIs(t, err, ErrSelfAssist)
	assert.True(t, domain.IsValidation(err))

	_, err = l.RecordGoal("ana", "dani")
	assert.ErrorIs(t, err, ErrInvalidAssister)

	_, err = l.RecordGoal("stranger", "")
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	require.NoError(t, l.Leave("eli"))
	_, err = l.RecordGoal("eli", "")
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	assert.Empty(t, l.Game().Goals)
}

func TestRecordGoal_SkipRecordsUnassisted(t *testing.T) {
	l, _ := fiveAside(t)

	idx, err := l.RecordGoal("dani", "")
	require.NoError(t, err)

	goal := l.Game().Goals[idx]
	assert.Empty(t, goal.AssisterID)
	assert.Equal(t, domain.TeamWhite, goal.Team)
}

func TestRecordGoal_TeamIsNotRecomputedAfterSwap(t *testing.T) {
	l, _ := fiveAside(t)

	_, err := l.RecordGoal("ana", "")
	require.NoError(t, err)
	require.NoError(t, l.Swap("ana"))
	_, err = l.RecordGoal("ana", "dani")
	require.NoError(t, err)

	goals := l.Game().Goals
	assert.Equal(t, domain.TeamColor, goals[0].Team)
	assert.Equal(t, domain.TeamWhite, goals[1].Team)
	assert.Equal(t, Score{Color: 1, White: 1}, l.Score())
}

func TestAssistCandidates(t *testing.T) {
	l, _ := fiveAside(t)

	candidates, err := l.AssistCandidates("dani")
	require.NoError(t, err)
	assert.Equal(t, []string{"eli"}, candidates)

	_, err = l.AssistCandidates("nobody")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestEditGoal_ChangeAssisterKeepsTimestamp(t *testing.T) {
	l, _ := fiveAside(t)
	idx, err := l.RecordGoal("ana", "ben")
	require.NoError(t, err)
	original := l.Game().Goals[idx].Timestamp

	require.NoError(t, l.EditGoal(idx, GoalEdit{AssisterID: strPtr("cris")}))

	goal := l.Game().Goals[idx]
	assert.Equal(t, "cris", goal.AssisterID)
	assert.True(t, goal.Timestamp.Equal(original))

	require.NoError(t, l.EditGoal(idx, GoalEdit{AssisterID: strPtr("")}))
	assert.Empty(t, l.Game().Goals[idx].AssisterID)
}

func TestEditGoal_ChangeScorerRecapturesTeam(t *testing.T) {
	l, _ := fiveAside(t)
	idx, err := l.RecordGoal("ana", "ben")
	require.NoError(t, err)

	require.NoError(t, l.EditGoal(idx, GoalEdit{ScorerID: strPtr("dani")}))
	goal := l.Game().Goals[idx]
	assert.Equal(t, "dani", goal.ScorerID)
	assert.Equal(t, domain.TeamWhite, goal.Team)
	assert.Empty(t, goal.AssisterID)

	require.NoError(t, l.EditGoal(idx, GoalEdit{ScorerID: strPtr("ben"), AssisterID: strPtr("ana")}))
	goal = l.Game().Goals[idx]
	assert.Equal(t, "ben", goal.ScorerID)
	assert.Equal(t, "ana", goal.AssisterID)
	assert.Equal(t, domain.TeamColor, goal.Team)
}

func TestEditGoal_Rejections(t *testing.T) {
	l, _ := fiveAside(t)
	idx, err := l.RecordGoal("ana", "ben")
	require.NoError(t, err)

	assert.ErrorIs(t, l.EditGoal(idx, GoalEdit{AssisterID: strPtr("ana")}), ErrSelfAssist)
	assert.ErrorIs(t, l.EditGoal(idx, GoalEdit{AssisterID: strPtr("eli")}), ErrInvalidAssister)
	assert.ErrorIs(t, l.EditGoal(idx, GoalEdit{ScorerID: strPtr("ghost")}), ErrUnknownPlayer)
	assert.ErrorIs(t, l.EditGoal(idx, GoalEdit{Timestamp: &time.Time{}}), ErrInvalidTimestamp)
	assert.ErrorIs(t, l.EditGoal(5, GoalEdit{}), ErrGoalIndex)

	// rejected edits leave the goal untouched
	goal := l.Game().Goals[idx]
	assert.Equal(t, "ana", goal.ScorerID)
	assert.Equal(t, "ben", goal.AssisterID)
}

func TestEditGoal_Timestamp(t *testing.T) {
	l, _ := fiveAside(t)
	idx, err := l.RecordGoal("eli", "")
	require.NoError(t, err)

	at := time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC)
	require.NoError(t, l.EditGoal(idx, GoalEdit{Timestamp: &at}))
	assert.True(t, l.Game().Goals[idx].Timestamp.Equal(at))
}

func TestDeleteGoal_RequiresConfirmation(t *testing.T) {
	l, _ := fiveAside(t)
	_, err := l.RecordGoal("ana", "")
	require.NoError(t, err)
	_, err = l.RecordGoal("dani", "")
	require.NoError(t, err)

	assert.ErrorIs(t, l.DeleteGoal(0, false), ErrConfirmationRequired)
	assert.Len(t, l.Game().Goals, 2)

	require.NoError(t, l.DeleteGoal(0, true))
	goals := l.Game().Goals
	require.Len(t, goals, 1)
	assert.Equal(t, "dani", goals[0].ScorerID)

	assert.ErrorIs(t, l.DeleteGoal(3, true), ErrGoalIndex)
}

func TestDeletion_StaleConfirmIsRejected(t *testing.T) {
	l, _ := fiveAside(t)
	_, err := l.RecordGoal("ana", "")
	require.NoError(t, err)
	_, err = l.RecordGoal("dani", "")
	require.NoError(t, err)

	pending, err := l.RequestGoalDeletion(1)
	require.NoError(t, err)
	assert.Equal(t, "dani", pending.Goal().ScorerID)

	require.NoError(t, l.DeleteGoal(0, true))
	assert.ErrorIs(t, pending.Confirm(), ErrStaleDeletion)
	assert.Len(t, l.Game().Goals, 1)
}

func TestTimeline_MergedAndFiltered(t *testing.T) {
	l, _ := fiveAside(t)

	_, err := l.RecordGoal("ana", "")
	require.NoError(t, err)
	require.NoError(t, l.Swap("ben"))
	_, err = l.RecordGoal("dani", "ben")
	require.NoError(t, err)
	require.NoError(t, l.Leave("eli"))

	all := l.Timeline(AllEvents())
	require.Len(t, all, 4)
	kinds := make([]EventKind, len(all))
	for i, e := range all {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []EventKind{EventLeave, EventGoal, EventSwap, EventGoal}, kinds)
	assert.Equal(t, 1, all[1].Index)
	assert.Equal(t, "dani", all[1].Goal.ScorerID)

	goalsOnly := l.Timeline(ParseFilter("goals"))
	require.Len(t, goalsOnly, 2)
	assert.Equal(t, EventGoal, goalsOnly[0].Kind)

	changes := l.Timeline(ParseFilter("swaps, leaves"))
	require.Len(t, changes, 2)
	assert.Equal(t, EventLeave, changes[0].Kind)

	assert.Empty(t, l.Timeline(Filter{}))
}

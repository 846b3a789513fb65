package domain

import "fmt"

func ValidateAssignments(assignments map[string]Team) error {
	for playerID, team := range assignments {
		if playerID == "" {
			return NewValidationError("teamAssignments", "player id is required")
		}
		if !team.Valid() {
			return NewValidationError("teamAssignments", "invalid team %q for player %s", team, playerID)
		}
	}
	return nil
}

func ValidateGoals(goals []Goal) error {
	for i, g := range goals {
		field := fmt.Sprintf("goals[%d]", i)
		if g.ScorerID == "" {
			return NewValidationError(field, "scorerId is required")
		}
		if g.AssisterID != "" && g.AssisterID == g.ScorerID {
			return NewValidationError(field, "a player cannot assist their own goal")
		}
		if g.Team != "" && !g.Team.Valid() {
			return NewValidationError(field, "invalid team %q", g.Team)
		}
		if g.Timestamp.IsZero() {
			return NewValidationError(field, "timestamp is required")
		}
	}
	return nil
}

func ValidateTeamChanges(changes []TeamChange) error {
	for i, c := range changes {
		field := fmt.Sprintf("teamChanges[%d]", i)
		if c.PlayerID == "" {
			return NewValidationError(field, "playerId is required")
		}
		if c.Type != TeamChangeLeave && c.Type != TeamChangeSwap {
			return NewValidationError(field, "invalid type %q", c.Type)
		}
		if !c.Team.Valid() {
			return NewValidationError(field, "invalid team %q", c.Team)
		}
		if c.Type == TeamChangeSwap && (!c.PreviousTeam.Valid() || !c.NewTeam.Valid()) {
			return NewValidationError(field, "swap requires previousTeam and newTeam")
		}
		if c.Timestamp.IsZero() {
			return NewValidationError(field, "timestamp is required")
		}
	}
	return nil
}

func (u GameUpdate) Validate() error {
	if u.TeamAssignments != nil {
		if err := ValidateAssignments(*u.TeamAssignments); err != nil {
			return err
		}
	}
	if u.Goals != nil {
		if err := ValidateGoals(*u.Goals); err != nil {
			return err
		}
	}
	if u.TeamChanges != nil {
		if err := ValidateTeamChanges(*u.TeamChanges); err != nil {
			return err
		}
	}
	if u.GameNumber != nil && *u.GameNumber <= 0 {
		return NewValidationError("gameNumber", "must be a positive integer")
	}
	if u.CreatedAt != nil && u.CreatedAt.IsZero() {
		return NewValidationError("createdAt", "must be a valid timestamp")
	}
	return nil
}

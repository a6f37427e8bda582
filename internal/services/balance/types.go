package balance

import "github.com/KirkDiggler/riftcustoms/internal/models"

// BalanceInput contains the roster and the skill data used to split it
type BalanceInput struct {
	Method models.BalanceMethod

	// Participants in roster order
	Participants []*models.Participant

	// Players holds registered profiles keyed by user ID. Missing players score
	// as unranked level 0.
	Players map[string]*models.Player
}

// BalanceOutput holds both teams in assignment order
type BalanceOutput struct {
	TeamA []*models.Participant
	TeamB []*models.Participant
}

// Team returns the team the user was assigned to
func (o *BalanceOutput) Team(userID string) models.Team {
	for _, p := range o.TeamA {
		if p.UserID == userID {
			return models.TeamA
		}
	}
	for _, p := range o.TeamB {
		if p.UserID == userID {
			return models.TeamB
		}
	}
	return models.TeamNone
}

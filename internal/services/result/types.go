package result

import (
	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/services/identity"
)

// ResolveInput contains parameters for resolving a game
type ResolveInput struct {
	GameID string
}

// ResolveOutput is the summary of a resolved game
type ResolveOutput struct {
	// Game is the game after it moved to COMPLETED
	Game *models.Game

	// Participants is the roster in join order
	Participants []*models.Participant

	// Result is the stored match outcome, nil when degraded
	Result *models.MatchResult

	// Lines holds one entry per reported participant in report order
	Lines []*SummaryLine

	// Degraded is set when the match could not be fetched
	Degraded bool

	// Reason explains a degraded summary
	Reason error
}

// SummaryLine is one reported participant as it should be displayed
type SummaryLine struct {
	Identity identity.Resolution

	ChampionName string
	Side         models.Side
	Position     string

	Win     bool
	Kills   int
	Deaths  int
	Assists int
}

// Side returns the lines reported on one side, in report order
func (o *ResolveOutput) Side(side models.Side) []*SummaryLine {
	var lines []*SummaryLine
	for _, line := range o.Lines {
		if line.Side == side {
			lines = append(lines, line)
		}
	}
	return lines
}

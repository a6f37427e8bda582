package result

import "github.com/KirkDiggler/riftcustoms/internal/models"

// SaveMatchResultInput contains parameters for saving a match outcome
type SaveMatchResultInput struct {
	Result *models.MatchResult
}

// SavePlayerPerformanceInput contains parameters for saving a performance
type SavePlayerPerformanceInput struct {
	Performance *models.PlayerPerformance
}

// GetMatchResultInput contains parameters for retrieving a match outcome
type GetMatchResultInput struct {
	MatchID string
}

// GetPlayerPerformancesInput contains parameters for retrieving a match's performances
type GetPlayerPerformancesInput struct {
	MatchID string
}

// GetPlayerStatsInput contains parameters for aggregating a player's results.
// An empty GuildID aggregates across every guild.
type GetPlayerStatsInput struct {
	UserID  string
	GuildID string
}

// GetTopChampionsInput contains parameters for a player's champion pool
type GetTopChampionsInput struct {
	UserID string
	Limit  int
}

// GetGuildHistoryInput contains parameters for a guild's recent results
type GetGuildHistoryInput struct {
	GuildID string
	Limit   int
}

// GetGuildHistoryOutput contains recent results, newest first, and totals
type GetGuildHistoryOutput struct {
	Results []*models.MatchResult
	Summary models.GuildSummary
}

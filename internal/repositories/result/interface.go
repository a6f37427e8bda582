package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/riftcustoms/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// Repository defines the interface for completed match persistence.
// Saves are upserts keyed by match ID and (match ID, user ID).
type Repository interface {
	// SaveMatchResult upserts the outcome of a match
	SaveMatchResult(ctx context.Context, input *SaveMatchResultInput) error

	// SavePlayerPerformance upserts one player's stats for a match
	SavePlayerPerformance(ctx context.Context, input *SavePlayerPerformanceInput) error

	// GetMatchResult retrieves a match outcome
	GetMatchResult(ctx context.Context, input *GetMatchResultInput) (*models.MatchResult, error)

	// GetPlayerPerformances retrieves every stored performance for a match
	GetPlayerPerformances(ctx context.Context, input *GetPlayerPerformancesInput) ([]*models.PlayerPerformance, error)

	// GetPlayerStats aggregates a player's performances
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// GetTopChampions returns a player's most played champions
	GetTopChampions(ctx context.Context, input *GetTopChampionsInput) ([]*models.ChampionStats, error)

	// GetGuildHistory returns recent results for a guild with side totals
	GetGuildHistory(ctx context.Context, input *GetGuildHistoryInput) (*GetGuildHistoryOutput, error)
}

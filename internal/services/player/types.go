package player

import "github.com/KirkDiggler/riftcustoms/internal/models"

// RegisterInput contains parameters for linking a Riot account
type RegisterInput struct {
	UserID string

	// RiotID is the game name, or name#tag when Tagline is empty
	RiotID  string
	Tagline string

	// Region is the platform region, e.g. jp1
	Region string
}

// RegisterOutput contains the stored registration
type RegisterOutput struct {
	Player *models.Player

	// Relinked is set when the user was already registered
	Relinked bool
}

// UnregisterInput contains parameters for removing a registration
type UnregisterInput struct {
	UserID string
}

// UnregisterOutput contains the result of removing a registration
type UnregisterOutput struct {
}

// RefreshInput contains parameters for reloading a registration
type RefreshInput struct {
	UserID string
}

// RefreshOutput contains the reloaded registration
type RefreshOutput struct {
	Player *models.Player
}

// GetProfileInput contains parameters for a profile lookup
type GetProfileInput struct {
	UserID string

	// GuildID limits stats to one server; empty means every server
	GuildID string
}

// GetProfileOutput contains a registration with its stats
type GetProfileOutput struct {
	Player       *models.Player
	Stats        *models.PlayerStats
	TopChampions []*models.ChampionStats
}

// GetGuildHistoryInput contains parameters for a server's results
type GetGuildHistoryInput struct {
	GuildID string
	Limit   int
}

// GetGuildHistoryOutput contains recent results, newest first, and side totals
type GetGuildHistoryOutput struct {
	Results []*models.MatchResult
	Summary models.GuildSummary
}

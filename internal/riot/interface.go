package riot

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/riftcustoms/internal/riot Client

import "context"

// Client is the narrow slice of the Riot API the bot consumes. Every method
// returns an error matching ErrNotFound for 404 responses.
type Client interface {
	// GetAccountByPUUID resolves the current Riot ID for an account
	GetAccountByPUUID(ctx context.Context, puuid string) (*AccountResponse, error)

	// GetAccountByRiotID resolves an account from gameName#tagLine
	GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*AccountResponse, error)

	// GetSummonerByPUUID returns level and icon for an account on a platform
	GetSummonerByPUUID(ctx context.Context, region, puuid string) (*SummonerResponse, error)

	// GetLeagueEntries returns ranked standings for an account on a platform
	GetLeagueEntries(ctx context.Context, region, puuid string) ([]LeagueEntryResponse, error)

	// GetActiveGame returns the live match the account is in
	GetActiveGame(ctx context.Context, region, puuid string) (*ActiveGameResponse, error)

	// GetRecentMatchIDs returns the most recent completed match IDs, newest first
	GetRecentMatchIDs(ctx context.Context, puuid, region string, count int) ([]string, error)

	// GetMatch returns full details for a completed match
	GetMatch(ctx context.Context, matchID, region string) (*MatchResponse, error)
}

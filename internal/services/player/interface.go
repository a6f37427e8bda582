package player

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/riftcustoms/internal/services/player Service

import "context"

// Service links Discord users to Riot accounts and reports their stats
type Service interface {
	// Register links a user to a Riot account, replacing any earlier link
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Unregister removes a user's link
	Unregister(ctx context.Context, input *UnregisterInput) (*UnregisterOutput, error)

	// Refresh reloads name, level and rank for a registered user
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// GetProfile returns a user's registration with their custom game stats
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// GetGuildHistory returns a server's recent results
	GetGuildHistory(ctx context.Context, input *GetGuildHistoryInput) (*GetGuildHistoryOutput, error)
}

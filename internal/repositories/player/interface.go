package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/riftcustoms/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// Repository defines the interface for registered player persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by Discord user ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayers retrieves every registered player among the given user IDs
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// GetPlayerByPUUID retrieves a player by Riot account
	GetPlayerByPUUID(ctx context.Context, input *GetPlayerByPUUIDInput) (*models.Player, error)

	// DeletePlayer removes a registration
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error
}

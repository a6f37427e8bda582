package player

import "github.com/KirkDiggler/riftcustoms/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	UserID string
}

// GetPlayersInput contains parameters for retrieving several players at once
type GetPlayersInput struct {
	UserIDs []string
}

// GetPlayersOutput holds the registered players keyed by user ID.
// Unregistered IDs are absent.
type GetPlayersOutput struct {
	Players map[string]*models.Player
}

// GetPlayerByPUUIDInput contains parameters for a Riot account lookup
type GetPlayerByPUUIDInput struct {
	PUUID string
}

// DeletePlayerInput contains parameters for removing a registration
type DeletePlayerInput struct {
	UserID string
}

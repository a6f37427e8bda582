package game

import (
	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
)

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// GameID is optional; a UUID is generated when empty
	GameID    string
	GuildID   string
	ChannelID string
	CreatorID string

	// BalanceMethod defaults to random
	BalanceMethod models.BalanceMethod
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByChannelInput contains parameters for retrieving a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameOutput contains a game and its roster in join order
type GetGameOutput struct {
	Game         *models.Game
	Participants []*models.Participant
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameID string
	UserID string

	// Lane defaults to FILL
	Lane models.Lane
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game        *models.Game
	Participant *models.Participant
}

// LeaveGameInput contains parameters for leaving a game
type LeaveGameInput struct {
	GameID string
	UserID string
}

// LeaveGameOutput contains the result of leaving a game
type LeaveGameOutput struct {
	Game *models.Game
}

// SelectLaneInput contains parameters for picking a lane
type SelectLaneInput struct {
	GameID string
	UserID string
	Lane   models.Lane
}

// SelectLaneOutput contains the result of picking a lane
type SelectLaneOutput struct {
	Game *models.Game
	Lane models.Lane
}

// SetBalanceMethodInput contains parameters for choosing a balance method
type SetBalanceMethodInput struct {
	GameID string
	Method models.BalanceMethod
}

// SetBalanceMethodOutput contains the updated game
type SetBalanceMethodOutput struct {
	Game *models.Game
}

// BalanceTeamsInput contains parameters for splitting the roster
type BalanceTeamsInput struct {
	GameID string
}

// BalanceTeamsOutput contains both teams in assignment order
type BalanceTeamsOutput struct {
	Game   *models.Game
	Method models.BalanceMethod
	TeamA  []*models.Participant
	TeamB  []*models.Participant

	// Players holds the profiles the split was scored on
	Players map[string]*models.Player
}

// StartTrackingInput contains parameters for tracking a game's live match
type StartTrackingInput struct {
	GameID string
}

// StartTrackingOutput contains the tracked game
type StartTrackingOutput struct {
	Game            *models.Game
	Observation     *models.MatchObservation
	AlreadyTracking bool
}

// EndGameInput contains parameters for force-ending a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput contains the completed game and its roster
type EndGameOutput struct {
	Game         *models.Game
	Participants []*models.Participant
}

// ShowResultInput contains parameters for resolving a game's result
type ShowResultInput struct {
	GameID string
}

// ShowResultOutput contains the resolved summary
type ShowResultOutput struct {
	Result *result.ResolveOutput
}

// UpdateGameMessageInput contains parameters for recording the game message
type UpdateGameMessageInput struct {
	GameID    string
	ChannelID string
	MessageID string
}

// UpdateGameMessageOutput contains the result of recording the game message
type UpdateGameMessageOutput struct {
}

// ListActiveGamesInput contains parameters for listing active games
type ListActiveGamesInput struct {
	// GuildID limits the list to one server when set
	GuildID string
}

// ListActiveGamesOutput contains the active games, oldest first
type ListActiveGamesOutput struct {
	Games []*models.Game
}

package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/riftcustoms/internal/services/game Service

import (
	"context"
)

// Service defines the interface for custom game operations.
// Roster changes are only accepted while a game is WAITING; in any other state
// they fail with ErrStateConflict and change nothing.
type Service interface {
	// CreateGame opens a new game in a channel
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game with its roster
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel retrieves the latest game opened in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameOutput, error)

	// JoinGame adds a registered player to the roster
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player from the roster
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	// SelectLane sets a player's lane preference
	SelectLane(ctx context.Context, input *SelectLaneInput) (*SelectLaneOutput, error)

	// SetBalanceMethod chooses how teams are split
	SetBalanceMethod(ctx context.Context, input *SetBalanceMethodInput) (*SetBalanceMethodOutput, error)

	// BalanceTeams splits the roster into team A and team B
	BalanceTeams(ctx context.Context, input *BalanceTeamsInput) (*BalanceTeamsOutput, error)

	// StartTracking finds the roster's live match and starts polling it
	StartTracking(ctx context.Context, input *StartTrackingInput) (*StartTrackingOutput, error)

	// EndGame force-ends a game from any state and stops its polling
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// ShowResult resolves the last match of the roster and completes the game
	ShowResult(ctx context.Context, input *ShowResultInput) (*ShowResultOutput, error)

	// UpdateGameMessage records where the game is displayed
	UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error)

	// ListActiveGames returns every WAITING and TRACKING game
	ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error)
}

package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/riftcustoms/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// Repository defines the interface for game and roster persistence.
// All writes are upserts and safe to repeat.
type Repository interface {
	// CreateGame persists a new game, failing with ErrGameExists if the ID is taken
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByChannel retrieves the latest game opened in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error)

	// UpdateStatus advances a game's status, rejecting backwards transitions
	UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*models.Game, error)

	// UpdateBalanceMethod sets the balancing strategy
	UpdateBalanceMethod(ctx context.Context, input *UpdateBalanceMethodInput) error

	// UpdateSpectatorInfo records the remote match being tracked
	UpdateSpectatorInfo(ctx context.Context, input *UpdateSpectatorInfoInput) error

	// UpdateMessage records the presentation handles for a game
	UpdateMessage(ctx context.Context, input *UpdateMessageInput) error

	// GetActiveGames retrieves all WAITING and TRACKING games
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)

	// GetParticipants returns the roster in join order
	GetParticipants(ctx context.Context, input *GetParticipantsInput) ([]*models.Participant, error)

	// AddParticipant upserts a participant, keeping the original join position
	AddParticipant(ctx context.Context, input *AddParticipantInput) error

	// RemoveParticipant removes a participant from the roster
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) error

	// IsParticipant reports whether the user is on the roster
	IsParticipant(ctx context.Context, input *IsParticipantInput) (bool, error)

	// UpdateParticipantTeam assigns a participant to a team
	UpdateParticipantTeam(ctx context.Context, input *UpdateParticipantTeamInput) error

	// UpdateParticipantLane sets a participant's lane preference
	UpdateParticipantLane(ctx context.Context, input *UpdateParticipantLaneInput) error
}

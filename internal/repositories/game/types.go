package game

import (
	"time"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

type CreateGameInput struct {
	Game *models.Game
}

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameByChannelInput struct {
	ChannelID string
}

type UpdateStatusInput struct {
	GameID string
	Status models.GameStatus
	Now    time.Time
}

type UpdateBalanceMethodInput struct {
	GameID string
	Method models.BalanceMethod
	Now    time.Time
}

type UpdateSpectatorInfoInput struct {
	GameID  string
	MatchID string
	Region  string
	Now     time.Time
}

type UpdateMessageInput struct {
	GameID    string
	ChannelID string
	MessageID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}

type GetParticipantsInput struct {
	GameID string
}

type AddParticipantInput struct {
	Participant *models.Participant
}

type RemoveParticipantInput struct {
	GameID string
	UserID string
}

type IsParticipantInput struct {
	GameID string
	UserID string
}

type UpdateParticipantTeamInput struct {
	GameID string
	UserID string
	Team   models.Team
}

type UpdateParticipantLaneInput struct {
	GameID string
	UserID string
	Lane   models.Lane
}

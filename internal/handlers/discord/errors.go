package discord

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/riftcustoms/internal/riot"
	"github.com/KirkDiggler/riftcustoms/internal/services/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/player"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking"
)

var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrEmptyToken        = errors.New("token cannot be empty")
	ErrNilSession        = errors.New("session cannot be nil")
	ErrNilMessenger      = errors.New("messenger cannot be nil")
	ErrNilGameRepo       = errors.New("game repository cannot be nil")
	ErrNilGameService    = errors.New("game service cannot be nil")
	ErrNilPlayerService  = errors.New("player service cannot be nil")
	errUnknownSubcommand = errors.New("unknown subcommand")
)

const genericMessage = "Something went wrong. Please try again in a moment."

// userMessage turns a service error into a short message for the channel
func userMessage(err error) string {
	var apiErr *riot.APIError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrStateConflict):
		return "The roster is locked once a game is being tracked or has ended."
	case errors.Is(err, game.ErrGameNotFound), errors.Is(err, result.ErrGameNotFound), errors.Is(err, tracking.ErrGameNotFound):
		return "That game no longer exists. Start a new one with `/customs create`."
	case errors.Is(err, game.ErrGameAlreadyExists):
		return "A game is already open in this channel."
	case errors.Is(err, game.ErrNotParticipant):
		return "You are not in this game."
	case errors.Is(err, game.ErrAlreadyJoined):
		return "You are already in this game."
	case errors.Is(err, game.ErrPlayerNotRegistered), errors.Is(err, player.ErrPlayerNotRegistered):
		return "Link your Riot account first with `/customs register`."
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return "At least two players are needed to balance teams."
	case errors.Is(err, game.ErrNoParticipants), errors.Is(err, result.ErrNoParticipants), errors.Is(err, tracking.ErrNoParticipants):
		return "Nobody has joined this game yet."
	case errors.Is(err, game.ErrInvalidBalanceMethod):
		return "That balance method is not supported."
	case errors.Is(err, game.ErrNoActiveMatch), errors.Is(err, tracking.ErrNoActiveMatch):
		return "No live match found for this roster. Try again once the game has loaded."
	case errors.Is(err, result.ErrNoTrackedPlayer):
		return "Nobody on the roster has a linked Riot account."
	case errors.Is(err, result.ErrNoRecentMatch):
		return "No finished match was found for this roster."
	case errors.Is(err, player.ErrAccountNotFound):
		return "No Riot account with that name and tag was found."
	case errors.Is(err, player.ErrInvalidRiotID):
		return "Riot IDs look like `name#tag`."
	case errors.Is(err, player.ErrInvalidRegion):
		return "That region is not supported."
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return "The Riot API is rate limiting us. Please wait a minute."
		}
		return "The Riot API is unavailable right now."
	default:
		return genericMessage
	}
}

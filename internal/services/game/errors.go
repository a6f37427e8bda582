package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound         GameError = "game not found"
	ErrGameAlreadyExists    GameError = "a game is already open in this channel"
	ErrStateConflict        GameError = "operation not allowed in the current game state"
	ErrNotParticipant       GameError = "player not in game"
	ErrAlreadyJoined        GameError = "player already in game"
	ErrPlayerNotRegistered  GameError = "player has not registered a riot account"
	ErrNoParticipants       GameError = "game has no participants"
	ErrNotEnoughPlayers     GameError = "at least two players are needed to balance teams"
	ErrInvalidBalanceMethod GameError = "invalid balance method"
	ErrNoActiveMatch        GameError = "no active match found for this roster"
	ErrInvalidInput         GameError = "invalid input"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilGameRepo          GameError = "game repository cannot be nil"
	ErrNilPlayerRepo        GameError = "player repository cannot be nil"
	ErrNilBalancer          GameError = "balancer cannot be nil"
	ErrNilTracker           GameError = "tracker cannot be nil"
	ErrNilResolver          GameError = "resolver cannot be nil"
	ErrNilClock             GameError = "clock cannot be nil"
	ErrNilUUIDGenerator     GameError = "UUID generator cannot be nil"
)

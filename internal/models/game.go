package models

import (
	"errors"
	"fmt"
	"time"
)

// GameStatus represents the current state of a custom game
type GameStatus string

const (
	// GameStatusWaiting indicates the roster is open for joins, leaves and lane picks
	GameStatusWaiting GameStatus = "WAITING"

	// GameStatusTracking indicates the live match is being polled
	GameStatusTracking GameStatus = "TRACKING"

	// GameStatusCompleted indicates the game has ended; terminal
	GameStatusCompleted GameStatus = "COMPLETED"
)

// ErrInvalidTransition is returned when a status change would move a game backwards
var ErrInvalidTransition = errors.New("invalid game status transition")

// IsWaiting reports whether the roster can still be changed
func (s GameStatus) IsWaiting() bool {
	return s == GameStatusWaiting
}

// IsTracking reports whether the live match is being polled
func (s GameStatus) IsTracking() bool {
	return s == GameStatusTracking
}

// IsCompleted reports whether the game has ended
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle monotonic.
// TRACKING and COMPLETED may be re-affirmed.
func (s GameStatus) CanTransitionTo(next GameStatus) bool {
	switch s {
	case GameStatusWaiting:
		return next == GameStatusTracking || next == GameStatusCompleted
	case GameStatusTracking:
		return next == GameStatusTracking || next == GameStatusCompleted
	case GameStatusCompleted:
		return next == GameStatusCompleted
	default:
		return false
	}
}

// BalanceMethod selects the team balancing strategy for a game
type BalanceMethod string

const (
	BalanceMethodRandom  BalanceMethod = "random"
	BalanceMethodLevel   BalanceMethod = "level"
	BalanceMethodRank    BalanceMethod = "rank"
	BalanceMethodWinrate BalanceMethod = "winrate"
	BalanceMethodLane    BalanceMethod = "lane"
)

// BalanceMethods lists every supported method in display order
var BalanceMethods = []BalanceMethod{
	BalanceMethodRandom,
	BalanceMethodWinrate,
	BalanceMethodLevel,
	BalanceMethodRank,
	BalanceMethodLane,
}

// IsValid reports whether m is a known balancing method
func (m BalanceMethod) IsValid() bool {
	for _, known := range BalanceMethods {
		if m == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human readable name of the method
func (m BalanceMethod) DisplayName() string {
	switch m {
	case BalanceMethodWinrate:
		return "Winrate balance"
	case BalanceMethodLevel:
		return "Level balance"
	case BalanceMethodRank:
		return "Rank balance"
	case BalanceMethodLane:
		return "Lane strength"
	default:
		return "Random"
	}
}

// Game represents a custom game session
type Game struct {
	// ID is the caller supplied identifier for the game
	ID string

	// GuildID is the Discord server the game belongs to
	GuildID string

	// ChannelID is the Discord channel where the game is being organised
	ChannelID string

	// MessageID is the ID of the main game message in Discord
	MessageID string

	// CreatorID is the Discord user ID of whoever opened the roster
	CreatorID string

	// Status is the current state of the game
	Status GameStatus

	// BalanceMethod is the strategy used when teams are split
	BalanceMethod BalanceMethod

	// SpectatorMatchID is the remote match being tracked, empty until discovered
	SpectatorMatchID string

	// SpectatorRegion is the platform region of the tracked match
	SpectatorRegion string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time

	// FinishedAt is when the game reached COMPLETED
	FinishedAt *time.Time
}

// HasSpectatorInfo reports whether a remote match has been recorded
func (g *Game) HasSpectatorInfo() bool {
	return g.SpectatorMatchID != "" && g.SpectatorRegion != ""
}

// Advance moves the game to next, stamping UpdatedAt, and FinishedAt on the first
// entry into COMPLETED.
func (g *Game) Advance(next GameStatus, now time.Time) error {
	if !g.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.Status, next)
	}

	g.Status = next
	g.UpdatedAt = now
	if next == GameStatusCompleted && g.FinishedAt == nil {
		finished := now
		g.FinishedAt = &finished
	}

	return nil
}

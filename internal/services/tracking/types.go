package tracking

import "github.com/KirkDiggler/riftcustoms/internal/models"

// StartTrackingInput contains parameters for starting to track a game
type StartTrackingInput struct {
	GameID string
}

// StartTrackingOutput contains the tracked game
type StartTrackingOutput struct {
	Game *models.Game

	// Observation is the live match found by discovery, nil when the game was
	// already tracking
	Observation *models.MatchObservation

	// AlreadyTracking is set when the game was in TRACKING before the call
	AlreadyTracking bool
}

// StopTrackingInput contains parameters for stopping a polling loop
type StopTrackingInput struct {
	GameID string
}

// StopTrackingOutput reports whether a loop was running
type StopTrackingOutput struct {
	Stopped bool
}

// ResumeActiveInput contains parameters for resuming polling after a restart
type ResumeActiveInput struct {
}

// ResumeActiveOutput lists the games whose polling was restarted
type ResumeActiveOutput struct {
	GameIDs []string
}

// TickOutcome is what a single poll decided
type TickOutcome int

const (
	// TickContinue means the loop polls again next interval
	TickContinue TickOutcome = iota

	// TickStopped means the loop ended without resolving a result
	TickStopped

	// TickHandedOff means the match ended and result resolution ran
	TickHandedOff
)

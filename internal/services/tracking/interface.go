package tracking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/riftcustoms/internal/services/tracking Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/riftcustoms/internal/services/tracking Notifier
//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/riftcustoms/internal/services/tracking Scheduler

import (
	"context"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/scheduler"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
)

// Service finds the live match a roster is playing and polls it until it ends
type Service interface {
	// StartTracking discovers the roster's match and starts polling it.
	// Calling it again for a game already being tracked starts nothing new.
	StartTracking(ctx context.Context, input *StartTrackingInput) (*StartTrackingOutput, error)

	// StopTracking ends the polling loop for a game, if any
	StopTracking(ctx context.Context, input *StopTrackingInput) (*StopTrackingOutput, error)

	// IsTracking reports whether a polling loop is active for a game
	IsTracking(gameID string) bool

	// ResumeActive restarts polling for every TRACKING game, used on boot
	ResumeActive(ctx context.Context, input *ResumeActiveInput) (*ResumeActiveOutput, error)
}

// Notifier receives tracking events for presentation. Calls are made from the
// polling goroutines and must not block for long.
type Notifier interface {
	// GameUpdated is called after a game moves to TRACKING
	GameUpdated(ctx context.Context, game *models.Game)

	// ObservationUpdated is called on every tick that sees the match still live
	ObservationUpdated(ctx context.Context, game *models.Game, observation *models.MatchObservation)

	// ResultReady is called once the finished match has been resolved
	ResultReady(ctx context.Context, output *result.ResolveOutput)

	// TrackingFailed is called when the game could not be resolved at all
	TrackingFailed(ctx context.Context, game *models.Game, reason error)
}

// Scheduler runs at most one polling loop per key
type Scheduler interface {
	Start(key string, fn scheduler.TickFunc) bool
	Stop(key string) bool
	IsActive(key string) bool
}

package tracking

// TrackingError is a custom error type for tracking errors
type TrackingError string

// Error implements the error interface
func (e TrackingError) Error() string {
	return string(e)
}

const (
	ErrGameNotFound   TrackingError = "game not found"
	ErrGameCompleted  TrackingError = "game has already ended"
	ErrNoParticipants TrackingError = "game has no participants"

	// ErrNoActiveMatch is returned when no roster member is in a live match
	ErrNoActiveMatch TrackingError = "no active match found for this roster"

	ErrNilConfig     TrackingError = "config cannot be nil"
	ErrNilGameRepo   TrackingError = "game repository cannot be nil"
	ErrNilPlayerRepo TrackingError = "player repository cannot be nil"
	ErrNilRiotClient TrackingError = "riot client cannot be nil"
	ErrNilScheduler  TrackingError = "scheduler cannot be nil"
	ErrNilResolver   TrackingError = "resolver cannot be nil"
	ErrNilClock      TrackingError = "clock cannot be nil"
)

package player

// PlayerError is a custom error type for registration errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

const (
	ErrPlayerNotRegistered PlayerError = "player has not registered a riot account"
	ErrAccountNotFound     PlayerError = "riot account not found"
	ErrInvalidRiotID       PlayerError = "riot ID must look like name#tag"
	ErrInvalidRegion       PlayerError = "unknown region"
	ErrInvalidInput        PlayerError = "invalid input"
	ErrNilConfig           PlayerError = "config cannot be nil"
	ErrNilPlayerRepo       PlayerError = "player repository cannot be nil"
	ErrNilResultRepo       PlayerError = "result repository cannot be nil"
	ErrNilRiotClient       PlayerError = "riot client cannot be nil"
	ErrNilClock            PlayerError = "clock cannot be nil"
)

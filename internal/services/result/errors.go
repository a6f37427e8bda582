package result

// ResultError is a custom error type for result resolution errors
type ResultError string

// Error implements the error interface
func (e ResultError) Error() string {
	return string(e)
}

const (
	ErrGameNotFound    ResultError = "game not found"
	ErrNoParticipants  ResultError = "game has no participants"
	ErrNoTrackedPlayer ResultError = "no participant with a linked riot account"
	ErrNoRecentMatch   ResultError = "no recent match found"

	ErrNilConfig     ResultError = "config cannot be nil"
	ErrNilGameRepo   ResultError = "game repository cannot be nil"
	ErrNilPlayerRepo ResultError = "player repository cannot be nil"
	ErrNilResultRepo ResultError = "result repository cannot be nil"
	ErrNilRiotClient ResultError = "riot client cannot be nil"
	ErrNilClock      ResultError = "clock cannot be nil"
)

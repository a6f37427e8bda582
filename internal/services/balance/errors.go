package balance

// BalanceError represents a balancing error
type BalanceError string

// Error implements the error interface
func (e BalanceError) Error() string {
	return string(e)
}

const (
	// ErrNotEnoughPlayers is returned when fewer than two players are on the roster
	ErrNotEnoughPlayers BalanceError = "at least two players are needed to balance teams"

	// ErrUnknownMethod is returned for an unsupported balance method
	ErrUnknownMethod BalanceError = "unknown balance method"
)

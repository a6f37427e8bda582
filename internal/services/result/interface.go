package result

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/riftcustoms/internal/services/result Service

import "context"

// Service resolves a finished custom game into a stored match result
type Service interface {
	// Resolve fetches the completed match, persists what it can and moves the game
	// to COMPLETED. The summary is degraded rather than an error when the match
	// cannot be fetched.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

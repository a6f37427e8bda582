package balance

//go:generate mockgen -package=mocks -destination=mocks/mock_balancer.go github.com/KirkDiggler/riftcustoms/internal/services/balance Balancer

// Balancer partitions a roster into two teams
type Balancer interface {
	// Balance splits the roster using the requested method
	Balance(input *BalanceInput) (*BalanceOutput, error)
}

package balance

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler permutes n elements through swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ShufflerConfig for the seeded shuffler
type ShufflerConfig struct {
	// Optional seed for testing
	Seed int64
}

// randomShuffler is a uniform Fisher-Yates shuffle over a seeded source
type randomShuffler struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewShuffler creates a new shuffler, seeded from the clock unless a seed is given
func NewShuffler(cfg *ShufflerConfig) *randomShuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomShuffler{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle implements Shuffler
func (r *randomShuffler) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}

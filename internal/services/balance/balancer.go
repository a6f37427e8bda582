package balance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// Config holds configuration for the balancer
type Config struct {
	// Shuffler drives the random method; a clock seeded one is used when nil
	Shuffler Shuffler
}

type balancer struct {
	shuffler Shuffler
}

// New creates a new balancer
func New(cfg *Config) (*balancer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	shuffler := cfg.Shuffler
	if shuffler == nil {
		shuffler = NewShuffler(nil)
	}

	return &balancer{
		shuffler: shuffler,
	}, nil
}

// scored pairs a participant with the value it is sorted on
type scored struct {
	participant *models.Participant
	score       float64
}

// Balance implements Balancer
func (b *balancer) Balance(input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Participants) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	players := input.Players
	if players == nil {
		players = map[string]*models.Player{}
	}

	switch input.Method {
	case models.BalanceMethodRandom, "":
		return b.byRandom(input.Participants), nil
	case models.BalanceMethodLevel:
		return byLevel(input.Participants, players), nil
	case models.BalanceMethodRank:
		return byScore(input.Participants, players, PlayerRankScore), nil
	case models.BalanceMethodWinrate:
		return byScore(input.Participants, players, WinrateScore), nil
	case models.BalanceMethodLane:
		return byLane(input.Participants, players), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, input.Method)
	}
}

// byRandom shuffles then splits at the midpoint, the extra player going to A
func (b *balancer) byRandom(participants []*models.Participant) *BalanceOutput {
	shuffled := make([]*models.Participant, len(participants))
	copy(shuffled, participants)

	b.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	half := (len(shuffled) + 1) / 2
	return &BalanceOutput{
		TeamA: shuffled[:half],
		TeamB: shuffled[half:],
	}
}

// byLevel sorts by level and deals A B B A in groups of four
func byLevel(participants []*models.Participant, players map[string]*models.Player) *BalanceOutput {
	sorted := sortByScore(participants, func(p *models.Participant) float64 {
		return float64(playerLevel(players[p.UserID]))
	})

	out := &BalanceOutput{}
	for i, s := range sorted {
		if i%4 == 0 || i%4 == 3 {
			out.TeamA = append(out.TeamA, s.participant)
		} else {
			out.TeamB = append(out.TeamB, s.participant)
		}
	}
	return out
}

// byScore forces the top two apart, then gives each next player to the weaker team
func byScore(participants []*models.Participant, players map[string]*models.Player, score func(*models.Player) float64) *BalanceOutput {
	sorted := sortByScore(participants, func(p *models.Participant) float64 {
		return score(players[p.UserID])
	})

	limit := teamLimit(len(sorted))
	out := &BalanceOutput{}
	var totalA, totalB float64

	for i, s := range sorted {
		var toA bool
		switch i {
		case 0:
			toA = true
		case 1:
		default:
			toA = totalA <= totalB
		}

		if toA && len(out.TeamA) >= limit {
			toA = false
		} else if !toA && len(out.TeamB) >= limit {
			toA = true
		}

		if toA {
			out.TeamA = append(out.TeamA, s.participant)
			totalA += s.score
		} else {
			out.TeamB = append(out.TeamB, s.participant)
			totalB += s.score
		}
	}

	return out
}

// byLane alternates each primary lane group A/B by solo rank, then fills the smaller team
func byLane(participants []*models.Participant, players map[string]*models.Player) *BalanceOutput {
	groups := make(map[models.Lane][]*models.Participant)
	for _, p := range participants {
		lane := models.ParseLane(string(p.Lane))
		groups[lane] = append(groups[lane], p)
	}

	limit := teamLimit(len(participants))
	out := &BalanceOutput{}

	for _, lane := range models.PrimaryLanes {
		sorted := sortByScore(groups[lane], func(p *models.Participant) float64 {
			return SoloRankScore(players[p.UserID])
		})

		for i, s := range sorted {
			toA := i%2 == 0
			if toA && len(out.TeamA) >= limit {
				toA = false
			} else if !toA && len(out.TeamB) >= limit {
				toA = true
			}

			if toA {
				out.TeamA = append(out.TeamA, s.participant)
			} else {
				out.TeamB = append(out.TeamB, s.participant)
			}
		}
	}

	for _, p := range groups[models.LaneFill] {
		if len(out.TeamA) <= len(out.TeamB) {
			out.TeamA = append(out.TeamA, p)
		} else {
			out.TeamB = append(out.TeamB, p)
		}
	}

	return out
}

// sortByScore orders participants by descending score, keeping roster order on ties
func sortByScore(participants []*models.Participant, score func(*models.Participant) float64) []scored {
	sorted := make([]scored, 0, len(participants))
	for _, p := range participants {
		sorted = append(sorted, scored{participant: p, score: score(p)})
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	return sorted
}

// teamLimit is the most players one team may hold
func teamLimit(n int) int {
	return (n + 1) / 2
}

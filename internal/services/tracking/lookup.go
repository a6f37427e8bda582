package tracking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
)

// maxElapsed is the largest in-game time accepted from the spectator endpoint
const maxElapsed = 10000 * time.Second

type lookupKind int

const (
	lookupActive lookupKind = iota
	lookupNotFound
	lookupFailed
)

// activeLookup is the outcome of asking whether an account is in a live match
type activeLookup struct {
	Kind lookupKind

	// Observation is set for lookupActive
	Observation *models.MatchObservation

	// Err is set for lookupFailed
	Err error
}

func (s *service) lookupActive(ctx context.Context, region, puuid string) activeLookup {
	game, err := s.riotClient.GetActiveGame(ctx, region, puuid)
	switch {
	case err == nil && game != nil:
		return activeLookup{Kind: lookupActive, Observation: game.ToObservation(region)}
	case err == nil, riot.IsNotFound(err):
		return activeLookup{Kind: lookupNotFound}
	default:
		return activeLookup{Kind: lookupFailed, Err: err}
	}
}

// matchVote counts the roster members seen in one live match
type matchVote struct {
	observation *models.MatchObservation
	count       int
}

// discover runs the majority vote: every participant with a linked account is
// looked up, and the match holding the most of them wins. Ties go to the match
// seen first.
func (s *service) discover(ctx context.Context, log *logrus.Entry, participants []*models.Participant, players map[string]*models.Player) (*models.MatchObservation, error) {
	var (
		votes    []*matchVote
		byID     = make(map[string]*matchVote)
		queried  int
		notFound int
	)

	for _, p := range participants {
		player, ok := players[p.UserID]
		if !ok || player == nil {
			continue
		}

		puuid := p.PUUID
		if puuid == "" {
			puuid = player.PUUID
		}
		if puuid == "" || player.Region == "" {
			continue
		}

		queried++
		lookup := s.lookupActive(ctx, player.Region, puuid)

		switch lookup.Kind {
		case lookupNotFound:
			notFound++
		case lookupFailed:
			log.WithError(lookup.Err).WithField("user_id", p.UserID).Warn("Active game lookup failed during discovery")
		case lookupActive:
			vote, seen := byID[lookup.Observation.MatchID]
			if !seen {
				vote = &matchVote{observation: lookup.Observation}
				byID[lookup.Observation.MatchID] = vote
				votes = append(votes, vote)
			}
			vote.count++
		}
	}

	if queried == 0 || notFound == queried || len(votes) == 0 {
		return nil, ErrNoActiveMatch
	}

	best := votes[0]
	for _, vote := range votes[1:] {
		if vote.count > best.count {
			best = vote
		}
	}

	log.WithFields(logrus.Fields{
		"match_id":  best.observation.MatchID,
		"region":    best.observation.Region,
		"votes":     best.count,
		"queried":   queried,
		"not_found": notFound,
	}).Info("Live match discovered")

	return best.observation, nil
}

// clampElapsed drops malformed in-game times to zero
func clampElapsed(elapsed time.Duration) time.Duration {
	if elapsed < 0 || elapsed > maxElapsed {
		return 0
	}
	return elapsed
}

// representative returns the account to poll: the first participant with a
// linked account and a registered profile
func representative(participants []*models.Participant, players map[string]*models.Player) string {
	for _, p := range participants {
		player, ok := players[p.UserID]
		if !ok || player == nil {
			continue
		}
		if p.PUUID != "" {
			return p.PUUID
		}
		if player.PUUID != "" {
			return player.PUUID
		}
	}
	return ""
}

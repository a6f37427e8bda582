package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/riftcustoms/internal/common/clock"
	"github.com/KirkDiggler/riftcustoms/internal/models"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/result"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
	"github.com/KirkDiggler/riftcustoms/internal/services/identity"
)

// positionUnknown is stored when the match reports no lane
const positionUnknown = "UNKNOWN"

// Config holds configuration for the result service
type Config struct {
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	ResultRepo resultRepo.Repository
	RiotClient riot.Client
	Clock      clock.Clock

	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
}

type service struct {
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	resultRepo resultRepo.Repository
	riotClient riot.Client
	clock      clock.Clock
	logger     *logrus.Logger
}

// New creates a new result service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}
	if cfg.RiotClient == nil {
		return nil, ErrNilRiotClient
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		playerRepo: cfg.PlayerRepo,
		resultRepo: cfg.ResultRepo,
		riotClient: cfg.RiotClient,
		clock:      cfg.Clock,
		logger:     logger,
	}, nil
}

// Resolve implements Service
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	log := s.logger.WithFields(logrus.Fields{
		"game_id":  game.ID,
		"guild_id": game.GuildID,
	})

	participants, err := s.gameRepo.GetParticipants(ctx, &gameRepo.GetParticipantsInput{
		GameID: game.ID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to load participants, completing without a roster")
		participants = nil
	}

	output := &ResolveOutput{
		Participants: participants,
	}

	players := s.loadPlayers(ctx, log, participants)
	roster := identity.NewRoster(participants, players)

	details, err := s.fetchMatch(ctx, game, roster, players)
	if err != nil {
		log.WithError(err).Warn("Match details unavailable, completing with a degraded summary")
		output.Degraded = true
		output.Reason = err
	} else {
		output.Result, output.Lines = s.record(ctx, log, game, roster, details)
	}

	output.Game = s.complete(ctx, log, game)

	return output, nil
}

// loadPlayers returns the registered profiles for the roster. A lookup failure
// leaves resolution with whatever the participants carry.
func (s *service) loadPlayers(ctx context.Context, log *logrus.Entry, participants []*models.Participant) map[string]*models.Player {
	if len(participants) == 0 {
		return map[string]*models.Player{}
	}

	userIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}

	out, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{
		UserIDs: userIDs,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to load player profiles")
		return map[string]*models.Player{}
	}

	return out.Players
}

// fetchMatch loads the most recent completed match of the first roster member
// with a linked account
func (s *service) fetchMatch(ctx context.Context, game *models.Game, roster *identity.Roster, players map[string]*models.Player) (*models.MatchDetails, error) {
	if len(roster.Members()) == 0 {
		return nil, ErrNoParticipants
	}

	puuid, region := representative(game, roster, players)
	if puuid == "" {
		return nil, ErrNoTrackedPlayer
	}

	ids, err := s.riotClient.GetRecentMatchIDs(ctx, puuid, region, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent matches: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNoRecentMatch
	}

	match, err := s.riotClient.GetMatch(ctx, ids[0], region)
	if err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", ids[0], err)
	}

	return match.ToDetails(), nil
}

// representative picks the first member with an account and a region to query.
// The tracked match region wins over the profile region.
func representative(game *models.Game, roster *identity.Roster, players map[string]*models.Player) (string, string) {
	for _, m := range roster.Members() {
		if m.PUUID == "" {
			continue
		}

		region := game.SpectatorRegion
		if region == "" {
			if profile, ok := players[m.UserID]; ok && profile != nil {
				region = profile.Region
			}
		}
		if region == "" {
			continue
		}

		return m.PUUID, region
	}

	return "", ""
}

// record resolves every reported participant and upserts the resolved ones.
// Save failures are logged and never stop the game completing.
func (s *service) record(ctx context.Context, log *logrus.Entry, game *models.Game, roster *identity.Roster, details *models.MatchDetails) (*models.MatchResult, []*SummaryLine) {
	log = log.WithField("match_id", details.MatchID)

	result := &models.MatchResult{
		MatchID:     details.MatchID,
		GameID:      game.ID,
		GuildID:     game.GuildID,
		WinningSide: details.WinningSide(),
		Duration:    details.Duration,
		PlayedAt:    details.CreatedAt,
	}

	lines := make([]*SummaryLine, 0, len(details.Participants))
	claimed := make(map[string]bool, len(details.Participants))
	recorded := 0

	for _, p := range details.Participants {
		resolution := roster.Resolve(p)
		line := &SummaryLine{
			Identity:     resolution,
			ChampionName: p.ChampionName,
			Side:         p.Side,
			Position:     position(p),
			Win:          p.Win,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Assists:      p.Assists,
		}
		lines = append(lines, line)

		if !resolution.Resolved {
			log.WithField("reported_name", p.DisplayName).Info("Participant not matched to the roster, skipping")
			continue
		}

		// A lane fallback can land two reported players on one FILL member
		if claimed[resolution.UserID] {
			log.WithFields(logrus.Fields{
				"user_id":       resolution.UserID,
				"reported_name": p.DisplayName,
			}).Warn("Participant already recorded for this match, skipping")
			continue
		}
		claimed[resolution.UserID] = true

		err := s.resultRepo.SavePlayerPerformance(ctx, &resultRepo.SavePlayerPerformanceInput{
			Performance: &models.PlayerPerformance{
				MatchID:      details.MatchID,
				UserID:       resolution.UserID,
				ChampionID:   p.ChampionID,
				ChampionName: p.ChampionName,
				Side:         p.Side,
				Position:     line.Position,
				Win:          p.Win,
				Kills:        p.Kills,
				Deaths:       p.Deaths,
				Assists:      p.Assists,
				GoldEarned:   p.GoldEarned,
				VisionScore:  p.VisionScore,
				CreepScore:   p.CreepScore,
			},
		})
		if err != nil {
			log.WithError(err).WithField("user_id", resolution.UserID).Error("Failed to save player performance")
			continue
		}
		recorded++
	}

	if err := s.resultRepo.SaveMatchResult(ctx, &resultRepo.SaveMatchResultInput{
		Result: result,
	}); err != nil {
		log.WithError(err).Error("Failed to save match result")
	}

	log.WithFields(logrus.Fields{
		"winning_side": result.WinningSide.Label(),
		"recorded":     recorded,
	}).Info("Match result recorded")

	return result, lines
}

// complete moves the game to COMPLETED. On a write failure the in-memory copy is
// advanced so the summary still renders as finished.
func (s *service) complete(ctx context.Context, log *logrus.Entry, game *models.Game) *models.Game {
	now := s.clock.Now()

	updated, err := s.gameRepo.UpdateStatus(ctx, &gameRepo.UpdateStatusInput{
		GameID: game.ID,
		Status: models.GameStatusCompleted,
		Now:    now,
	})
	if err != nil {
		log.WithError(err).Error("Failed to mark game completed")
		if advanceErr := game.Advance(models.GameStatusCompleted, now); advanceErr != nil {
			log.WithError(advanceErr).Error("Game cannot be completed")
		}
		return game
	}

	log.Info("Game completed")
	return updated
}

func position(p *models.MatchParticipant) string {
	if lane := identity.ReportedLane(p); lane != "" {
		return lane
	}
	return positionUnknown
}

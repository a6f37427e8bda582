package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/riftcustoms/internal/common/clock"
	"github.com/KirkDiggler/riftcustoms/internal/models"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/player"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
)

// Config holds configuration for the tracking service
type Config struct {
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	RiotClient riot.Client
	Scheduler  Scheduler
	Resolver   result.Service
	Clock      clock.Clock

	// Notifier defaults to dropping every event
	Notifier Notifier

	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
}

type service struct {
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	riotClient riot.Client
	scheduler  Scheduler
	resolver   result.Service
	notifier   Notifier
	clock      clock.Clock
	logger     *logrus.Logger

	// starts collapses concurrent StartTracking calls for one game
	starts singleflight.Group
}

// New creates a new tracking service
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
	if cfg.RiotClient == nil {
		return nil, ErrNilRiotClient
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = noopNotifier{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		playerRepo: cfg.PlayerRepo,
		riotClient: cfg.RiotClient,
		scheduler:  cfg.Scheduler,
		resolver:   cfg.Resolver,
		notifier:   notifier,
		clock:      cfg.Clock,
		logger:     logger,
	}, nil
}

// StartTracking implements Service
func (s *service) StartTracking(ctx context.Context, input *StartTrackingInput) (*StartTrackingOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrGameNotFound
	}

	v, err, _ := s.starts.Do(input.GameID, func() (interface{}, error) {
		return s.startTracking(ctx, input.GameID)
	})
	if err != nil {
		return nil, err
	}

	return v.(*StartTrackingOutput), nil
}

func (s *service) startTracking(ctx context.Context, gameID string) (*StartTrackingOutput, error) {
	log := s.logger.WithField("game_id", gameID)

	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.Status {
	case models.GameStatusCompleted:
		return nil, ErrGameCompleted
	case models.GameStatusTracking:
		if !s.scheduler.IsActive(gameID) {
			log.Info("Game is tracking without a loop, restarting polling")
			s.schedule(gameID)
		}
		return &StartTrackingOutput{
			Game:            game,
			AlreadyTracking: true,
		}, nil
	}

	participants, players, err := s.loadRoster(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	observation, err := s.discover(ctx, log, participants, players)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	observation.Elapsed = clampElapsed(observation.Elapsed)
	observation.StartedAt = now.Add(-observation.Elapsed)

	if err := s.gameRepo.UpdateSpectatorInfo(ctx, &gameRepo.UpdateSpectatorInfoInput{
		GameID:  gameID,
		MatchID: observation.MatchID,
		Region:  observation.Region,
		Now:     now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record tracked match: %w", err)
	}

	updated, err := s.gameRepo.UpdateStatus(ctx, &gameRepo.UpdateStatusInput{
		GameID: gameID,
		Status: models.GameStatusTracking,
		Now:    now,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return nil, ErrGameCompleted
		}
		return nil, fmt.Errorf("failed to start tracking: %w", err)
	}

	log.WithField("match_id", observation.MatchID).Info("Tracking started")

	s.notifier.GameUpdated(ctx, updated)
	s.schedule(gameID)

	return &StartTrackingOutput{
		Game:        updated,
		Observation: observation,
	}, nil
}

// StopTracking implements Service
func (s *service) StopTracking(ctx context.Context, input *StopTrackingInput) (*StopTrackingOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrGameNotFound
	}

	stopped := s.scheduler.Stop(input.GameID)
	if stopped {
		s.logger.WithField("game_id", input.GameID).Info("Tracking stopped")
	}

	return &StopTrackingOutput{
		Stopped: stopped,
	}, nil
}

// IsTracking implements Service
func (s *service) IsTracking(gameID string) bool {
	return s.scheduler.IsActive(gameID)
}

// ResumeActive implements Service
func (s *service) ResumeActive(ctx context.Context, input *ResumeActiveInput) (*ResumeActiveOutput, error) {
	out, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active games: %w", err)
	}

	resumed := make([]string, 0, len(out.Games))
	for _, game := range out.Games {
		if !game.Status.IsTracking() {
			continue
		}
		if s.schedule(game.ID) {
			resumed = append(resumed, game.ID)
		}
	}

	s.logger.WithField("games", len(resumed)).Info("Resumed tracking")

	return &ResumeActiveOutput{
		GameIDs: resumed,
	}, nil
}

// schedule starts the polling loop for a game, false if one is already running
func (s *service) schedule(gameID string) bool {
	return s.scheduler.Start(gameID, func(ctx context.Context) {
		s.Tick(ctx, gameID)
	})
}

// Tick runs one poll of a tracked game. The loop is stopped when the game left
// TRACKING or the match ended; anything else unexpected waits for the next tick.
func (s *service) Tick(ctx context.Context, gameID string) TickOutcome {
	log := s.logger.WithField("game_id", gameID)

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			log.Warn("Tracked game no longer exists, stopping")
			s.scheduler.Stop(gameID)
			return TickStopped
		}
		log.WithError(err).Warn("Failed to read tracked game")
		return TickContinue
	}

	if !game.Status.IsTracking() {
		log.WithField("status", game.Status).Info("Game left tracking, stopping")
		s.scheduler.Stop(gameID)
		return TickStopped
	}

	participants, players, err := s.loadRoster(ctx, gameID)
	if err != nil {
		log.WithError(err).Warn("Failed to read roster")
		return TickContinue
	}

	if !game.HasSpectatorInfo() {
		observation, err := s.discover(ctx, log, participants, players)
		if err != nil {
			log.WithError(err).Warn("Tracked match could not be recovered, resolving")
			return s.handOff(ctx, log, game)
		}

		if err := s.gameRepo.UpdateSpectatorInfo(ctx, &gameRepo.UpdateSpectatorInfoInput{
			GameID:  gameID,
			MatchID: observation.MatchID,
			Region:  observation.Region,
			Now:     s.clock.Now(),
		}); err != nil {
			log.WithError(err).Warn("Failed to record recovered match")
		}

		game.SpectatorMatchID = observation.MatchID
		game.SpectatorRegion = observation.Region
	}

	puuid := representative(participants, players)
	if puuid == "" {
		log.Warn("No participant can be polled, resolving")
		return s.handOff(ctx, log, game)
	}

	lookup := s.lookupActive(ctx, game.SpectatorRegion, puuid)

	switch lookup.Kind {
	case lookupActive:
		observation := lookup.Observation
		observation.Elapsed = clampElapsed(observation.Elapsed)
		observation.StartedAt = s.clock.Now().Add(-observation.Elapsed)

		if ctx.Err() != nil {
			return TickStopped
		}

		s.notifier.ObservationUpdated(ctx, game, observation)
		return TickContinue

	case lookupNotFound:
		log.Info("Match is over, resolving result")
		return s.handOff(ctx, log, game)

	default:
		log.WithError(lookup.Err).Warn("Active game lookup failed, retrying next tick")
		return TickContinue
	}
}

// handOff resolves the result and stops polling once it is settled. A resolve
// that fails for a reason other than a missing game leaves the loop running so
// the next tick tries again. It does nothing once the loop has been stopped
// from elsewhere.
func (s *service) handOff(ctx context.Context, log *logrus.Entry, game *models.Game) TickOutcome {
	if ctx.Err() != nil {
		return TickStopped
	}

	// Stopping cancels ctx; resolution still has to finish
	ctx = context.WithoutCancel(ctx)

	output, err := s.resolver.Resolve(ctx, &result.ResolveInput{
		GameID: game.ID,
	})
	if err != nil {
		if !errors.Is(err, result.ErrGameNotFound) {
			log.WithError(err).Warn("Failed to resolve result, retrying next tick")
			return TickContinue
		}

		log.WithError(err).Error("Failed to resolve result")
		s.scheduler.Stop(game.ID)
		s.notifier.TrackingFailed(ctx, game, err)
		return TickHandedOff
	}

	s.scheduler.Stop(game.ID)
	s.notifier.ResultReady(ctx, output)
	return TickHandedOff
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// loadRoster returns the participants in join order with their registered profiles
func (s *service) loadRoster(ctx context.Context, gameID string) ([]*models.Participant, map[string]*models.Player, error) {
	participants, err := s.gameRepo.GetParticipants(ctx, &gameRepo.GetParticipantsInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get participants: %w", err)
	}
	if len(participants) == 0 {
		return participants, map[string]*models.Player{}, nil
	}

	userIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}

	out, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{
		UserIDs: userIDs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get players: %w", err)
	}

	return participants, out.Players, nil
}

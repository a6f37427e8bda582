package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/riftcustoms/internal/common/clock"
	"github.com/KirkDiggler/riftcustoms/internal/common/uuid"
	"github.com/KirkDiggler/riftcustoms/internal/models"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/player"
	"github.com/KirkDiggler/riftcustoms/internal/services/balance"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking"
)

// teamWriters bounds the concurrent team assignment writes
const teamWriters = 4

// Config holds configuration for the game service
type Config struct {
	// GameRepo is the repository for game and roster state
	GameRepo gameRepo.Repository

	// PlayerRepo is the repository for registered players
	PlayerRepo playerRepo.Repository

	// Balancer splits rosters into teams
	Balancer balance.Balancer

	// Tracker discovers and polls live matches
	Tracker tracking.Service

	// Resolver turns a finished match into a result
	Resolver result.Service

	// Clock is used for timestamps
	Clock clock.Clock

	// UUIDGenerator is used for game IDs
	UUIDGenerator uuid.UUID

	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
}

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	balancer      balance.Balancer
	tracker       tracking.Service
	resolver      result.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *logrus.Logger
}

// New creates a new game service
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
	if cfg.Balancer == nil {
		return nil, ErrNilBalancer
	}
	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		balancer:      cfg.Balancer,
		tracker:       cfg.Tracker,
		resolver:      cfg.Resolver,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// CreateGame creates a new game session in a Discord channel
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	// Only one open game per channel
	existing, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}
	if err == nil && existing != nil && !existing.Status.IsCompleted() {
		return nil, ErrGameAlreadyExists
	}

	method := input.BalanceMethod
	if method == "" {
		method = models.BalanceMethodRandom
	}
	if !method.IsValid() {
		return nil, ErrInvalidBalanceMethod
	}

	gameID := input.GameID
	if gameID == "" {
		gameID = s.uuidGenerator.NewUUID()
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:            gameID,
		GuildID:       input.GuildID,
		ChannelID:     input.ChannelID,
		CreatorID:     input.CreatorID,
		Status:        models.GameStatusWaiting,
		BalanceMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Game: game,
	}); err != nil {
		if errors.Is(err, gameRepo.ErrGameExists) {
			return nil, ErrGameAlreadyExists
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"game_id":    game.ID,
		"channel_id": game.ChannelID,
		"creator_id": game.CreatorID,
	}).Info("Game created")

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame retrieves a game with its roster
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	participants, err := s.getParticipants(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:         game,
		Participants: participants,
	}, nil
}

// GetGameByChannel retrieves the latest game opened in a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	participants, err := s.getParticipants(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:         game,
		Participants: participants,
	}, nil
}

// JoinGame adds a registered player to the roster
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.requireWaiting(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotRegistered
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	joined, err := s.gameRepo.IsParticipant(ctx, &gameRepo.IsParticipantInput{
		GameID: game.ID,
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}
	if joined {
		return nil, ErrAlreadyJoined
	}

	participant := &models.Participant{
		GameID:   game.ID,
		UserID:   input.UserID,
		PUUID:    player.PUUID,
		RiotID:   player.RiotID,
		Tagline:  player.Tagline,
		Lane:     models.ParseLane(string(input.Lane)),
		JoinedAt: s.clock.Now(),
	}

	if err := s.gameRepo.AddParticipant(ctx, &gameRepo.AddParticipantInput{
		Participant: participant,
	}); err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"game_id": game.ID,
		"user_id": input.UserID,
		"lane":    participant.Lane,
	}).Info("Player joined game")

	return &JoinGameOutput{
		Game:        game,
		Participant: participant,
	}, nil
}

// LeaveGame removes a player from the roster
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.requireWaiting(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, game.ID, input.UserID); err != nil {
		return nil, err
	}

	if err := s.gameRepo.RemoveParticipant(ctx, &gameRepo.RemoveParticipantInput{
		GameID: game.ID,
		UserID: input.UserID,
	}); err != nil {
		return nil, fmt.Errorf("failed to remove participant: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"game_id": game.ID,
		"user_id": input.UserID,
	}).Info("Player left game")

	return &LeaveGameOutput{
		Game: game,
	}, nil
}

// SelectLane sets a player's lane preference
func (s *service) SelectLane(ctx context.Context, input *SelectLaneInput) (*SelectLaneOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.requireWaiting(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, game.ID, input.UserID); err != nil {
		return nil, err
	}

	lane := models.ParseLane(string(input.Lane))
	if err := s.gameRepo.UpdateParticipantLane(ctx, &gameRepo.UpdateParticipantLaneInput{
		GameID: game.ID,
		UserID: input.UserID,
		Lane:   lane,
	}); err != nil {
		if errors.Is(err, gameRepo.ErrParticipantNotFound) {
			return nil, ErrNotParticipant
		}
		return nil, fmt.Errorf("failed to update lane: %w", err)
	}

	return &SelectLaneOutput{
		Game: game,
		Lane: lane,
	}, nil
}

// SetBalanceMethod chooses how teams are split
func (s *service) SetBalanceMethod(ctx context.Context, input *SetBalanceMethodInput) (*SetBalanceMethodOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}
	if !input.Method.IsValid() {
		return nil, ErrInvalidBalanceMethod
	}

	game, err := s.requireWaiting(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.gameRepo.UpdateBalanceMethod(ctx, &gameRepo.UpdateBalanceMethodInput{
		GameID: game.ID,
		Method: input.Method,
		Now:    now,
	}); err != nil {
		return nil, fmt.Errorf("failed to update balance method: %w", err)
	}

	game.BalanceMethod = input.Method
	game.UpdatedAt = now

	return &SetBalanceMethodOutput{
		Game: game,
	}, nil
}

// BalanceTeams splits the roster with the game's balance method and stores the
// assignment
func (s *service) BalanceTeams(ctx context.Context, input *BalanceTeamsInput) (*BalanceTeamsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.requireWaiting(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	participants, err := s.getParticipants(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	if len(participants) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	userIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}

	players, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{
		UserIDs: userIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	method := game.BalanceMethod
	if method == "" {
		method = models.BalanceMethodRandom
	}

	teams, err := s.balancer.Balance(&balance.BalanceInput{
		Method:       method,
		Participants: participants,
		Players:      players.Players,
	})
	if err != nil {
		switch {
		case errors.Is(err, balance.ErrNotEnoughPlayers):
			return nil, ErrNotEnoughPlayers
		case errors.Is(err, balance.ErrUnknownMethod):
			return nil, ErrInvalidBalanceMethod
		}
		return nil, fmt.Errorf("failed to balance teams: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(teamWriters)

	assign := func(members []*models.Participant, team models.Team) {
		for _, p := range members {
			p.Team = team
			g.Go(func() error {
				if err := s.gameRepo.UpdateParticipantTeam(gCtx, &gameRepo.UpdateParticipantTeamInput{
					GameID: game.ID,
					UserID: p.UserID,
					Team:   team,
				}); err != nil {
					return fmt.Errorf("failed to assign %s to team %s: %w", p.UserID, team, err)
				}
				return nil
			})
		}
	}
	assign(teams.TeamA, models.TeamA)
	assign(teams.TeamB, models.TeamB)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"game_id": game.ID,
		"method":  method,
		"team_a":  len(teams.TeamA),
		"team_b":  len(teams.TeamB),
	}).Info("Teams balanced")

	return &BalanceTeamsOutput{
		Game:    game,
		Method:  method,
		TeamA:   teams.TeamA,
		TeamB:   teams.TeamB,
		Players: players.Players,
	}, nil
}

// StartTracking finds the roster's live match and starts polling it
func (s *service) StartTracking(ctx context.Context, input *StartTrackingInput) (*StartTrackingOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.tracker.StartTracking(ctx, &tracking.StartTrackingInput{
		GameID: input.GameID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrGameNotFound):
			return nil, ErrGameNotFound
		case errors.Is(err, tracking.ErrGameCompleted):
			return nil, fmt.Errorf("%w: game is %s", ErrStateConflict, models.GameStatusCompleted)
		case errors.Is(err, tracking.ErrNoParticipants):
			return nil, ErrNoParticipants
		case errors.Is(err, tracking.ErrNoActiveMatch):
			return nil, ErrNoActiveMatch
		}
		return nil, fmt.Errorf("failed to start tracking: %w", err)
	}

	return &StartTrackingOutput{
		Game:            out.Game,
		Observation:     out.Observation,
		AlreadyTracking: out.AlreadyTracking,
	}, nil
}

// EndGame force-ends a game from any state and stops its polling
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.getGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	if _, err := s.tracker.StopTracking(ctx, &tracking.StopTrackingInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, fmt.Errorf("failed to stop tracking: %w", err)
	}

	game, err := s.gameRepo.UpdateStatus(ctx, &gameRepo.UpdateStatusInput{
		GameID: input.GameID,
		Status: models.GameStatusCompleted,
		Now:    s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to end game: %w", err)
	}

	participants, err := s.getParticipants(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("game_id", game.ID).Info("Game ended")

	return &EndGameOutput{
		Game:         game,
		Participants: participants,
	}, nil
}

// ShowResult stops any polling and resolves the roster's last match
func (s *service) ShowResult(ctx context.Context, input *ShowResultInput) (*ShowResultOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.tracker.StopTracking(ctx, &tracking.StopTrackingInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, fmt.Errorf("failed to stop tracking: %w", err)
	}

	out, err := s.resolver.Resolve(ctx, &result.ResolveInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, result.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to resolve result: %w", err)
	}

	return &ShowResultOutput{
		Result: out,
	}, nil
}

// UpdateGameMessage records where the game is displayed
func (s *service) UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	if err := s.gameRepo.UpdateMessage(ctx, &gameRepo.UpdateMessageInput{
		GameID:    input.GameID,
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
	}); err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update game message: %w", err)
	}

	return &UpdateGameMessageOutput{}, nil
}

// ListActiveGames returns every WAITING and TRACKING game
func (s *service) ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error) {
	out, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active games: %w", err)
	}

	if input == nil || input.GuildID == "" {
		return &ListActiveGamesOutput{Games: out.Games}, nil
	}

	games := make([]*models.Game, 0, len(out.Games))
	for _, game := range out.Games {
		if game.GuildID == input.GuildID {
			games = append(games, game)
		}
	}

	return &ListActiveGamesOutput{
		Games: games,
	}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (s *service) getParticipants(ctx context.Context, gameID string) ([]*models.Participant, error) {
	participants, err := s.gameRepo.GetParticipants(ctx, &gameRepo.GetParticipantsInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	return participants, nil
}

// requireWaiting loads a game and rejects it unless the roster is still open
func (s *service) requireWaiting(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.Status.IsWaiting() {
		return nil, fmt.Errorf("%w: game is %s", ErrStateConflict, game.Status)
	}

	return game, nil
}

func (s *service) requireParticipant(ctx context.Context, gameID, userID string) error {
	joined, err := s.gameRepo.IsParticipant(ctx, &gameRepo.IsParticipantInput{
		GameID: gameID,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to check roster: %w", err)
	}
	if !joined {
		return ErrNotParticipant
	}
	return nil
}

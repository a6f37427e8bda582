package player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/riftcustoms/internal/common/clock"
	"github.com/KirkDiggler/riftcustoms/internal/models"
	playerRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/result"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
)

// topChampions is how many champions a profile shows
const topChampions = 3

// Config holds configuration for the player service
type Config struct {
	PlayerRepo playerRepo.Repository
	ResultRepo resultRepo.Repository
	RiotClient riot.Client
	Clock      clock.Clock

	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
}

type service struct {
	playerRepo playerRepo.Repository
	resultRepo resultRepo.Repository
	riotClient riot.Client
	clock      clock.Clock
	logger     *logrus.Logger
}

// New creates a new player service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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
		playerRepo: cfg.PlayerRepo,
		resultRepo: cfg.ResultRepo,
		riotClient: cfg.RiotClient,
		clock:      cfg.Clock,
		logger:     logger,
	}, nil
}

// Register implements Service
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	gameName, tagLine, err := splitRiotID(input.RiotID, input.Tagline)
	if err != nil {
		return nil, err
	}

	region := strings.ToLower(strings.TrimSpace(input.Region))
	if !riot.IsPlatformRegion(region) {
		return nil, ErrInvalidRegion
	}

	account, err := s.riotClient.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		if riot.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	existing, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		UserID: input.UserID,
	})
	if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	now := s.clock.Now()
	player := &models.Player{
		UserID:       input.UserID,
		PUUID:        account.PUUID,
		RiotID:       account.GameName,
		Tagline:      account.TagLine,
		Region:       region,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if existing != nil {
		player.RegisteredAt = existing.RegisteredAt
	}

	if err := s.loadProfile(ctx, player); err != nil {
		return nil, err
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": player.UserID,
		"riot_id": player.DisplayName(),
		"region":  player.Region,
	}).Info("Player registered")

	return &RegisterOutput{
		Player:   player,
		Relinked: existing != nil,
	}, nil
}

// Unregister implements Service
func (s *service) Unregister(ctx context.Context, input *UnregisterInput) (*UnregisterOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	if err := s.playerRepo.DeletePlayer(ctx, &playerRepo.DeletePlayerInput{
		UserID: input.UserID,
	}); err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotRegistered
		}
		return nil, fmt.Errorf("failed to delete player: %w", err)
	}

	s.logger.WithField("user_id", input.UserID).Info("Player unregistered")

	return &UnregisterOutput{}, nil
}

// Refresh implements Service
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	player, err := s.getPlayer(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Pick up name changes
	account, err := s.riotClient.GetAccountByPUUID(ctx, player.PUUID)
	if err != nil {
		if riot.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	player.RiotID = account.GameName
	player.Tagline = account.TagLine
	player.UpdatedAt = s.clock.Now()

	if err := s.loadProfile(ctx, player); err != nil {
		return nil, err
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	return &RefreshOutput{
		Player: player,
	}, nil
}

// GetProfile implements Service
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	player, err := s.getPlayer(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &GetProfileOutput{
		Player: player,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.resultRepo.GetPlayerStats(gCtx, &resultRepo.GetPlayerStatsInput{
			UserID:  input.UserID,
			GuildID: input.GuildID,
		})
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}
		output.Stats = stats
		return nil
	})

	g.Go(func() error {
		champions, err := s.resultRepo.GetTopChampions(gCtx, &resultRepo.GetTopChampionsInput{
			UserID: input.UserID,
			Limit:  topChampions,
		})
		if err != nil {
			return fmt.Errorf("failed to get champions: %w", err)
		}
		output.TopChampions = champions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return output, nil
}

// GetGuildHistory implements Service
func (s *service) GetGuildHistory(ctx context.Context, input *GetGuildHistoryInput) (*GetGuildHistoryOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.resultRepo.GetGuildHistory(ctx, &resultRepo.GetGuildHistoryInput{
		GuildID: input.GuildID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get guild history: %w", err)
	}

	return &GetGuildHistoryOutput{
		Results: out.Results,
		Summary: out.Summary,
	}, nil
}

// loadProfile fills level and ranks, fetching summoner and league data together
func (s *service) loadProfile(ctx context.Context, player *models.Player) error {
	var (
		summoner *riot.SummonerResponse
		entries  []riot.LeagueEntryResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summoner, err = s.riotClient.GetSummonerByPUUID(gCtx, player.Region, player.PUUID)
		if err != nil {
			return fmt.Errorf("failed to get summoner: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		entries, err = s.riotClient.GetLeagueEntries(gCtx, player.Region, player.PUUID)
		if err != nil {
			return fmt.Errorf("failed to get ranks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if riot.IsNotFound(err) {
			return ErrAccountNotFound
		}
		return err
	}

	player.Level = summoner.SummonerLevel
	player.ProfileIconID = summoner.ProfileIconID
	player.Solo = riot.ToRank(entries, riot.QueueRankedSolo)
	player.Flex = riot.ToRank(entries, riot.QueueRankedFlex)

	return nil
}

func (s *service) getPlayer(ctx context.Context, userID string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotRegistered
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// splitRiotID accepts either name and tag separately or name#tag in one string
func splitRiotID(riotID, tagline string) (string, string, error) {
	riotID = strings.TrimSpace(riotID)
	tagline = strings.TrimPrefix(strings.TrimSpace(tagline), "#")

	if tagline == "" {
		name, tag, ok := strings.Cut(riotID, "#")
		if !ok {
			return "", "", ErrInvalidRiotID
		}
		riotID, tagline = strings.TrimSpace(name), strings.TrimSpace(tag)
	}

	if riotID == "" || tagline == "" {
		return "", "", ErrInvalidRiotID
	}

	return riotID, tagline, nil
}

package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	puuidKeyPrefix  = "puuid:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	// Drop the index for a previously linked account
	existing, err := r.GetPlayer(ctx, &GetPlayerInput{UserID: player.UserID})
	if err != nil && !errors.Is(err, ErrPlayerNotFound) {
		return err
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, playerKeyPrefix+player.UserID, playerJSON, 0)

	if existing != nil && existing.PUUID != "" && existing.PUUID != player.PUUID {
		pipe.Del(ctx, puuidKeyPrefix+existing.PUUID)
	}

	if player.PUUID != "" {
		pipe.Set(ctx, puuidKeyPrefix+player.PUUID, player.UserID, 0)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by user ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKeyPrefix+input.UserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayers retrieves several players in one round trip
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetPlayersOutput{
		Players: make(map[string]*models.Player, len(input.UserIDs)),
	}

	if len(input.UserIDs) == 0 {
		return output, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd, len(input.UserIDs))

	for _, userID := range input.UserIDs {
		playerCommands[userID] = pipe.Get(ctx, playerKeyPrefix+userID)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	for userID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Not registered
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", userID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", userID, err)
		}

		output.Players[userID] = &player
	}

	return output, nil
}

// GetPlayerByPUUID retrieves a player by Riot account
func (r *redisRepository) GetPlayerByPUUID(ctx context.Context, input *GetPlayerByPUUIDInput) (*models.Player, error) {
	if input == nil || input.PUUID == "" {
		return nil, errors.New("input and puuid cannot be empty")
	}

	userID, err := r.client.Get(ctx, puuidKeyPrefix+input.PUUID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get user ID for puuid: %w", err)
	}

	return r.GetPlayer(ctx, &GetPlayerInput{UserID: userID})
}

// DeletePlayer removes a registration and its account index
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	player, err := r.GetPlayer(ctx, &GetPlayerInput{UserID: input.UserID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, playerKeyPrefix+input.UserID)
	if player.PUUID != "" {
		pipe.Del(ctx, puuidKeyPrefix+player.PUUID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

package game

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix    = "game:"
	channelKeyPrefix = "channel:"
	activeGamesKey   = "active_games"

	// Roster keys hang off the game key
	participantsSuffix = ":participants"
	rosterSuffix       = ":roster"

	// Attempts before a contended write gives up
	maxWatchRetries = 10
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrGameExists is returned when creating a game whose ID is taken
	ErrGameExists = errors.New("game already exists")

	// ErrParticipantNotFound is returned when a user is not on the roster
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrConcurrentUpdate is returned when a game keeps changing under a write
	ErrConcurrentUpdate = errors.New("game changed concurrently")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func participantsKey(gameID string) string {
	return gameKeyPrefix + gameID + participantsSuffix
}

func rosterKey(gameID string) string {
	return gameKeyPrefix + gameID + rosterSuffix
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return readGame(ctx, r.client, input.GameID)
}

// getter is satisfied by both the client and a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGame(ctx context.Context, cmd getter, gameID string) (*models.Game, error) {
	gameJSON, err := cmd.Get(ctx, gameKey(gameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByChannel retrieves a game by channel ID from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// CreateGame persists a new game and points its channel at it
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	key := gameKey(input.Game.ID)
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	return r.watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to check game: %w", err)
		}
		if exists > 0 {
			return ErrGameExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			if input.Game.ChannelID != "" {
				pipe.Set(ctx, channelKeyPrefix+input.Game.ChannelID, input.Game.ID, 0)
			}
			trackActive(ctx, pipe, input.Game)
			return nil
		})
		return err
	}, key)
}

// SaveGame overwrites a game. A write that would move a stored game
// backwards through its lifecycle is rejected.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	key := gameKey(input.Game.ID)
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	return r.watch(ctx, func(tx *redis.Tx) error {
		stored, err := readGame(ctx, tx, input.Game.ID)
		switch {
		case errors.Is(err, ErrGameNotFound):
		case err != nil:
			return err
		default:
			if err := checkTransition(stored.Status, input.Game.Status); err != nil {
				return err
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			trackActive(ctx, pipe, input.Game)
			return nil
		})
		return err
	}, key)
}

// UpdateStatus advances the game through its lifecycle
func (r *redisRepository) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return r.update(ctx, input.GameID, func(game *models.Game) error {
		return game.Advance(input.Status, input.Now)
	})
}

// UpdateBalanceMethod sets the balancing strategy for a game
func (r *redisRepository) UpdateBalanceMethod(ctx context.Context, input *UpdateBalanceMethodInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	_, err := r.update(ctx, input.GameID, func(game *models.Game) error {
		game.BalanceMethod = input.Method
		game.UpdatedAt = input.Now
		return nil
	})
	return err
}

// UpdateSpectatorInfo records the remote match handle for a game
func (r *redisRepository) UpdateSpectatorInfo(ctx context.Context, input *UpdateSpectatorInfoInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	_, err := r.update(ctx, input.GameID, func(game *models.Game) error {
		game.SpectatorMatchID = input.MatchID
		game.SpectatorRegion = input.Region
		game.UpdatedAt = input.Now
		return nil
	})
	return err
}

// UpdateMessage records the channel and message that render the game.
// The channel index keeps pointing wherever CreateGame put it.
func (r *redisRepository) UpdateMessage(ctx context.Context, input *UpdateMessageInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	_, err := r.update(ctx, input.GameID, func(game *models.Game) error {
		if input.ChannelID != "" {
			game.ChannelID = input.ChannelID
		}
		game.MessageID = input.MessageID
		return nil
	})
	return err
}

// update applies mutate to the stored game and writes it back only if
// nobody else wrote the game in between
func (r *redisRepository) update(ctx context.Context, gameID string, mutate func(*models.Game) error) (*models.Game, error) {
	key := gameKey(gameID)
	var updated *models.Game

	err := r.watch(ctx, func(tx *redis.Tx) error {
		game, err := readGame(ctx, tx, gameID)
		if err != nil {
			return err
		}

		before := game.Status
		if err := mutate(game); err != nil {
			return err
		}
		if err := checkTransition(before, game.Status); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			trackActive(ctx, pipe, game)
			return nil
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// watch runs fn under WATCH on keys, retrying when a watched key changes
// before EXEC
func (r *redisRepository) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}

	return ErrConcurrentUpdate
}

func checkTransition(from, to models.GameStatus) error {
	if from == to || from.CanTransitionTo(to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, from, to)
}

// Games stay in the active set until they complete
func trackActive(ctx context.Context, pipe redis.Pipeliner, game *models.Game) {
	if game.Status.IsCompleted() {
		pipe.SRem(ctx, activeGamesKey, game.ID)
	} else {
		pipe.SAdd(ctx, activeGamesKey, game.ID)
	}
}

// GetActiveGames retrieves all games that have not completed, oldest first
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetActiveGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))

	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKey(gameID))
	}

	// redis.Nil for a single key fails Exec; each command is checked below
	if _, err = pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		games = append(games, &game)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// GetParticipants returns the roster in join order
func (r *redisRepository) GetParticipants(ctx context.Context, input *GetParticipantsInput) ([]*models.Participant, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	userIDs, err := r.client.ZRange(ctx, rosterKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	if len(userIDs) == 0 {
		return []*models.Participant{}, nil
	}

	values, err := r.client.HMGet(ctx, participantsKey(input.GameID), userIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Roster entry without a record
			continue
		}

		var participant models.Participant
		if err := json.Unmarshal([]byte(raw), &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", userIDs[i], err)
		}
		participants = append(participants, &participant)
	}

	return participants, nil
}

// AddParticipant upserts a participant record
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.GameID == "" || p.UserID == "" {
		return errors.New("game ID and user ID cannot be empty")
	}

	if p.Lane == "" {
		p.Lane = models.LaneFill
	}

	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, participantsKey(p.GameID), p.UserID, participantJSON)
	// NX keeps the original join position on re-join
	pipe.ZAddNX(ctx, rosterKey(p.GameID), redis.Z{
		Score:  float64(p.JoinedAt.UnixNano()),
		Member: p.UserID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	return nil
}

// RemoveParticipant removes a participant from the roster
func (r *redisRepository) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("game ID and user ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	removed := pipe.HDel(ctx, participantsKey(input.GameID), input.UserID)
	pipe.ZRem(ctx, rosterKey(input.GameID), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	if removed.Val() == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// IsParticipant reports whether the user is on the roster
func (r *redisRepository) IsParticipant(ctx context.Context, input *IsParticipantInput) (bool, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return false, errors.New("game ID and user ID cannot be empty")
	}

	ok, err := r.client.HExists(ctx, participantsKey(input.GameID), input.UserID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}

	return ok, nil
}

// UpdateParticipantTeam assigns a participant to a team
func (r *redisRepository) UpdateParticipantTeam(ctx context.Context, input *UpdateParticipantTeamInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("game ID and user ID cannot be empty")
	}

	return r.updateParticipant(ctx, input.GameID, input.UserID, func(p *models.Participant) {
		p.Team = input.Team
	})
}

// UpdateParticipantLane sets a participant's lane preference
func (r *redisRepository) UpdateParticipantLane(ctx context.Context, input *UpdateParticipantLaneInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("game ID and user ID cannot be empty")
	}

	return r.updateParticipant(ctx, input.GameID, input.UserID, func(p *models.Participant) {
		p.Lane = input.Lane
	})
}

func (r *redisRepository) updateParticipant(ctx context.Context, gameID, userID string, mutate func(p *models.Participant)) error {
	key := participantsKey(gameID)

	raw, err := r.client.HGet(ctx, key, userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(raw), &participant); err != nil {
		return fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	mutate(&participant)

	participantJSON, err := json.Marshal(&participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	if err := r.client.HSet(ctx, key, userID, participantJSON).Err(); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

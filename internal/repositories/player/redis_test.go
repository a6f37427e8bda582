package player

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newPlayer(userID, puuid string) *models.Player {
	return &models.Player{
		UserID:       userID,
		PUUID:        puuid,
		RiotID:       "Alice",
		Tagline:      "JP1",
		Region:       "jp1",
		Level:        212,
		Solo:         models.Rank{Tier: "GOLD", Division: "II", LP: 40},
		Flex:         models.Rank{Tier: models.TierUnranked},
		RegisteredAt: s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newPlayer("user-1", "puuid-1")}))

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Alice#JP1", player.DisplayName())
	s.Equal(212, player.Level)
	s.Equal("GOLD II", player.Solo.String())
	s.False(player.Flex.IsRanked())

	byPUUID, err := s.repo.GetPlayerByPUUID(s.ctx, &GetPlayerByPUUIDInput{PUUID: "puuid-1"})
	s.Require().NoError(err)
	s.Equal("user-1", byPUUID.UserID)
}

func (s *RedisRepositoryTestSuite) TestGetMissingPlayer() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{UserID: "nope"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.repo.GetPlayerByPUUID(s.ctx, &GetPlayerByPUUIDInput{PUUID: "nope"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestRelinkingDropsOldAccountIndex() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newPlayer("user-1", "puuid-1")}))
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newPlayer("user-1", "puuid-2")}))

	_, err := s.repo.GetPlayerByPUUID(s.ctx, &GetPlayerByPUUIDInput{PUUID: "puuid-1"})
	s.ErrorIs(err, ErrPlayerNotFound)

	player, err := s.repo.GetPlayerByPUUID(s.ctx, &GetPlayerByPUUIDInput{PUUID: "puuid-2"})
	s.Require().NoError(err)
	s.Equal("user-1", player.UserID)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersSkipsUnregistered() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newPlayer("user-1", "puuid-1")}))
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newPlayer("user-2", "puuid-2")}))

	output, err := s.repo.GetPlayers(s.ctx, &GetPlayersInput{UserIDs: []string{"user-1", "ghost", "user-2"}})
	s.Require().NoError(err)
	s.Len(output.Players, 2)
	s.Contains(output.Players, "user-1")
	s.Contains(output.Players, "user-2")
	s.NotContains(output.Players, "ghost")

	empty, err := s.repo.GetPlayers(s.ctx, &GetPlayersInput{})
	s.Require().NoError(err)
	s.Empty(empty.Players)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayer() {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: s.newPlayer("user-1", "puuid-1")}))
	s.Require().NoError(s.repo.DeletePlayer(s.ctx, &DeletePlayerInput{UserID: "user-1"}))

	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{UserID: "user-1"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.repo.GetPlayerByPUUID(s.ctx, &GetPlayerByPUUIDInput{PUUID: "puuid-1"})
	s.ErrorIs(err, ErrPlayerNotFound)

	s.ErrorIs(s.repo.DeletePlayer(s.ctx, &DeletePlayerInput{UserID: "user-1"}), ErrPlayerNotFound)
}

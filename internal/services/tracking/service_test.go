package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/riftcustoms/internal/common/clock/mocks"
	"github.com/KirkDiggler/riftcustoms/internal/models"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/riftcustoms/internal/repositories/game/mocks"
	playerRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/riftcustoms/internal/repositories/player/mocks"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
	riotMocks "github.com/KirkDiggler/riftcustoms/internal/riot/mocks"
	"github.com/KirkDiggler/riftcustoms/internal/scheduler"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	resultMocks "github.com/KirkDiggler/riftcustoms/internal/services/result/mocks"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking/mocks"
)

type TrackingServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockRiot       *riotMocks.MockClient
	mockScheduler  *mocks.MockScheduler
	mockResolver   *resultMocks.MockService
	mockNotifier   *mocks.MockNotifier
	mockClock      *clockMocks.MockClock
	service        *service
	ctx            context.Context

	testTime     time.Time
	testGameID   string
	waitingGame  *models.Game
	trackingGame *models.Game
	participants []*models.Participant
	players      map[string]*models.Player
}

func (s *TrackingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockRiot = riotMocks.NewMockClient(s.mockCtrl)
	s.mockScheduler = mocks.NewMockScheduler(s.mockCtrl)
	s.mockResolver = resultMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.waitingGame = &models.Game{
		ID:        s.testGameID,
		GuildID:   "test-guild-id",
		ChannelID: "test-channel-id",
		Status:    models.GameStatusWaiting,
		CreatedAt: s.testTime.Add(-time.Hour),
		UpdatedAt: s.testTime.Add(-time.Hour),
	}

	s.trackingGame = &models.Game{
		ID:               s.testGameID,
		GuildID:          "test-guild-id",
		ChannelID:        "test-channel-id",
		Status:           models.GameStatusTracking,
		SpectatorMatchID: "1",
		SpectatorRegion:  "jp1",
		CreatedAt:        s.testTime.Add(-time.Hour),
		UpdatedAt:        s.testTime,
	}

	s.participants = []*models.Participant{
		{GameID: s.testGameID, UserID: "alice", PUUID: "P1", RiotID: "Alice", Lane: models.LaneTop},
		{GameID: s.testGameID, UserID: "bob", PUUID: "P2", RiotID: "Bob", Lane: models.LaneMid},
		{GameID: s.testGameID, UserID: "carl", RiotID: "Carl", Lane: models.LaneFill},
	}

	s.players = map[string]*models.Player{
		"alice": {UserID: "alice", PUUID: "P1", Region: "jp1"},
		"bob":   {UserID: "bob", PUUID: "P2", Region: "jp1"},
		"carl":  {UserID: "carl", PUUID: "P3", Region: "jp1"},
	}

	logger, _ := test.NewNullLogger()
	svc, err := New(&Config{
		GameRepo:   s.mockGameRepo,
		PlayerRepo: s.mockPlayerRepo,
		RiotClient: s.mockRiot,
		Scheduler:  s.mockScheduler,
		Resolver:   s.mockResolver,
		Notifier:   s.mockNotifier,
		Clock:      s.mockClock,
		Logger:     logger,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TrackingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingServiceTestSuite))
}

func activeGame(id, length int64) *riot.ActiveGameResponse {
	return &riot.ActiveGameResponse{
		GameID:     id,
		PlatformID: "JP1",
		GameLength: length,
	}
}

func notFound() error {
	return &riot.APIError{StatusCode: 404, Endpoint: "/lol/spectator/v5/active-games/by-summoner"}
}

func unavailable() error {
	return &riot.APIError{StatusCode: 503, Endpoint: "/lol/spectator/v5/active-games/by-summoner"}
}

func (s *TrackingServiceTestSuite) expectGame(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(game, nil)
}

func (s *TrackingServiceTestSuite) expectRoster() {
	s.mockGameRepo.EXPECT().
		GetParticipants(gomock.Any(), &gameRepo.GetParticipantsInput{GameID: s.testGameID}).
		Return(s.participants, nil)
	s.mockPlayerRepo.EXPECT().
		GetPlayers(gomock.Any(), &playerRepo.GetPlayersInput{UserIDs: []string{"alice", "bob", "carl"}}).
		Return(&playerRepo.GetPlayersOutput{Players: s.players}, nil)
}

func (s *TrackingServiceTestSuite) expectPromotion(matchID string) {
	s.mockGameRepo.EXPECT().
		UpdateSpectatorInfo(gomock.Any(), &gameRepo.UpdateSpectatorInfoInput{
			GameID:  s.testGameID,
			MatchID: matchID,
			Region:  "jp1",
			Now:     s.testTime,
		}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		UpdateStatus(gomock.Any(), &gameRepo.UpdateStatusInput{
			GameID: s.testGameID,
			Status: models.GameStatusTracking,
			Now:    s.testTime,
		}).
		Return(s.trackingGame, nil)
	s.mockNotifier.EXPECT().GameUpdated(gomock.Any(), s.trackingGame)
	s.mockScheduler.EXPECT().Start(s.testGameID, gomock.Any()).Return(true)
}

func (s *TrackingServiceTestSuite) TestDiscoveryPicksMajority() {
	s.expectGame(s.waitingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(activeGame(2, 300), nil)
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P2").Return(activeGame(1, 300), nil)
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P3").Return(activeGame(1, 300), nil)
	s.expectPromotion("1")

	output, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(output.AlreadyTracking)
	s.Equal(models.GameStatusTracking, output.Game.Status)
	s.Require().NotNil(output.Observation)
	s.Equal("1", output.Observation.MatchID)
	s.Equal(5*time.Minute, output.Observation.Elapsed)
	s.Equal(s.testTime.Add(-5*time.Minute), output.Observation.StartedAt)
}

func (s *TrackingServiceTestSuite) TestDiscoveryTieFavorsFirstSeen() {
	s.expectGame(s.waitingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(activeGame(2, 60), nil)
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P2").Return(activeGame(1, 60), nil)
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P3").Return(nil, notFound())
	s.expectPromotion("2")

	output, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal("2", output.Observation.MatchID)
}

func (s *TrackingServiceTestSuite) TestDiscoverySkipsNotFoundAndFailures() {
	s.expectGame(s.waitingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P2").Return(nil, unavailable())
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P3").Return(activeGame(1, 60), nil)
	s.expectPromotion("1")

	_, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
}

func (s *TrackingServiceTestSuite) TestAllNotFoundDoesNotTrack() {
	s.expectGame(s.waitingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P2").Return(nil, notFound())
	// A nil body without an error is also an absent match
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P3").Return(nil, nil)

	output, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.Nil(output)
	s.ErrorIs(err, ErrNoActiveMatch)
}

func (s *TrackingServiceTestSuite) TestNoVotesDoesNotTrack() {
	s.expectGame(s.waitingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", gomock.Any()).Return(nil, unavailable()).Times(3)

	_, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrNoActiveMatch)
}

func (s *TrackingServiceTestSuite) TestUnregisteredParticipantsAreNotQueried() {
	delete(s.players, "carl")

	s.expectGame(s.waitingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P2").Return(nil, notFound())

	_, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrNoActiveMatch)
}

func (s *TrackingServiceTestSuite) TestStartTrackingIsIdempotent() {
	s.expectGame(s.trackingGame)
	s.mockScheduler.EXPECT().IsActive(s.testGameID).Return(true)

	output, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(output.AlreadyTracking)
	s.Nil(output.Observation)
}

func (s *TrackingServiceTestSuite) TestStartTrackingRestartsLostLoop() {
	s.expectGame(s.trackingGame)
	s.mockScheduler.EXPECT().IsActive(s.testGameID).Return(false)
	s.mockScheduler.EXPECT().Start(s.testGameID, gomock.Any()).Return(true)

	output, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(output.AlreadyTracking)
}

func (s *TrackingServiceTestSuite) TestStartTrackingCompletedGame() {
	completed := *s.waitingGame
	completed.Status = models.GameStatusCompleted
	s.expectGame(&completed)

	_, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameCompleted)
}

func (s *TrackingServiceTestSuite) TestStartTrackingWithoutParticipants() {
	s.expectGame(s.waitingGame)
	s.mockGameRepo.EXPECT().
		GetParticipants(gomock.Any(), &gameRepo.GetParticipantsInput{GameID: s.testGameID}).
		Return([]*models.Participant{}, nil)

	_, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrNoParticipants)
}

func (s *TrackingServiceTestSuite) TestStartTrackingMissingGame() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.service.StartTracking(s.ctx, &StartTrackingInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *TrackingServiceTestSuite) TestTickStopsWhenNotTracking() {
	completed := *s.trackingGame
	completed.Status = models.GameStatusCompleted
	s.expectGame(&completed)
	s.mockScheduler.EXPECT().Stop(s.testGameID).Return(true)

	s.Equal(TickStopped, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickStopsWhenGameVanished() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(nil, gameRepo.ErrGameNotFound)
	s.mockScheduler.EXPECT().Stop(s.testGameID).Return(true)

	s.Equal(TickStopped, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickEmitsObservation() {
	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(activeGame(1, 754), nil)

	var observed *models.MatchObservation
	s.mockNotifier.EXPECT().
		ObservationUpdated(gomock.Any(), s.trackingGame, gomock.Any()).
		Do(func(_ context.Context, _ *models.Game, observation *models.MatchObservation) {
			observed = observation
		})

	s.Equal(TickContinue, s.service.Tick(s.ctx, s.testGameID))
	s.Require().NotNil(observed)
	s.Equal(754*time.Second, observed.Elapsed)
	s.Equal(s.testTime.Add(-754*time.Second), observed.StartedAt)
}

func (s *TrackingServiceTestSuite) TestTickClampsElapsed() {
	for _, length := range []int64{-5, 10001} {
		s.expectGame(s.trackingGame)
		s.expectRoster()
		s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(activeGame(1, length), nil)

		var observed *models.MatchObservation
		s.mockNotifier.EXPECT().
			ObservationUpdated(gomock.Any(), s.trackingGame, gomock.Any()).
			Do(func(_ context.Context, _ *models.Game, observation *models.MatchObservation) {
				observed = observation
			})

		s.Equal(TickContinue, s.service.Tick(s.ctx, s.testGameID))
		s.Require().NotNil(observed)
		s.Equal(time.Duration(0), observed.Elapsed, "length %d", length)
		s.Equal(s.testTime, observed.StartedAt)
	}

	s.Equal(10000*time.Second, clampElapsed(10000*time.Second))
}

func (s *TrackingServiceTestSuite) TestTickHandsOffWhenMatchEnds() {
	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())

	resolved := &result.ResolveOutput{Game: s.trackingGame}
	gomock.InOrder(
		s.mockResolver.EXPECT().
			Resolve(gomock.Any(), &result.ResolveInput{GameID: s.testGameID}).
			Return(resolved, nil),
		s.mockScheduler.EXPECT().Stop(s.testGameID).Return(true),
		s.mockNotifier.EXPECT().ResultReady(gomock.Any(), resolved),
	)

	s.Equal(TickHandedOff, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickReportsResolveFailure() {
	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())
	gomock.InOrder(
		s.mockResolver.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return(nil, result.ErrGameNotFound),
		s.mockScheduler.EXPECT().Stop(s.testGameID).Return(true),
		s.mockNotifier.EXPECT().TrackingFailed(gomock.Any(), s.trackingGame, result.ErrGameNotFound),
	)

	s.Equal(TickHandedOff, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickKeepsPollingWhenResolveFails() {
	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())
	s.mockResolver.EXPECT().
		Resolve(gomock.Any(), &result.ResolveInput{GameID: s.testGameID}).
		Return(nil, errors.New("connection refused"))

	// The loop stays registered so the next tick resolves again
	s.Equal(TickContinue, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickSwallowsTransientErrors() {
	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, unavailable())

	s.Equal(TickContinue, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickSwallowsRepositoryErrors() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(nil, errors.New("connection refused"))

	s.Equal(TickContinue, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickRecoversSpectatorInfo() {
	game := *s.trackingGame
	game.SpectatorMatchID = ""
	game.SpectatorRegion = ""

	s.expectGame(&game)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(activeGame(7, 60), nil).Times(2)
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P2").Return(activeGame(7, 60), nil)
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P3").Return(nil, notFound())
	s.mockGameRepo.EXPECT().
		UpdateSpectatorInfo(gomock.Any(), &gameRepo.UpdateSpectatorInfoInput{
			GameID:  s.testGameID,
			MatchID: "7",
			Region:  "jp1",
			Now:     s.testTime,
		}).
		Return(nil)
	s.mockNotifier.EXPECT().ObservationUpdated(gomock.Any(), gomock.Any(), gomock.Any())

	s.Equal(TickContinue, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestTickResolvesWhenRecoveryFails() {
	game := *s.trackingGame
	game.SpectatorMatchID = ""

	s.expectGame(&game)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", gomock.Any()).Return(nil, notFound()).Times(3)
	s.mockScheduler.EXPECT().Stop(s.testGameID).Return(true)
	s.mockResolver.EXPECT().
		Resolve(gomock.Any(), &result.ResolveInput{GameID: s.testGameID}).
		Return(&result.ResolveOutput{Degraded: true}, nil)
	s.mockNotifier.EXPECT().ResultReady(gomock.Any(), gomock.Any())

	s.Equal(TickHandedOff, s.service.Tick(s.ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestStoppedTickDoesNotEmit() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(activeGame(1, 60), nil)

	s.Equal(TickStopped, s.service.Tick(ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestStoppedTickDoesNotHandOff() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.expectGame(s.trackingGame)
	s.expectRoster()
	s.mockRiot.EXPECT().GetActiveGame(gomock.Any(), "jp1", "P1").Return(nil, notFound())

	s.Equal(TickStopped, s.service.Tick(ctx, s.testGameID))
}

func (s *TrackingServiceTestSuite) TestResumeActive() {
	waiting := &models.Game{ID: "g1", Status: models.GameStatusWaiting}
	tracking := &models.Game{ID: "g2", Status: models.GameStatusTracking}
	running := &models.Game{ID: "g3", Status: models.GameStatusTracking}

	s.mockGameRepo.EXPECT().
		GetActiveGames(gomock.Any(), &gameRepo.GetActiveGamesInput{}).
		Return(&gameRepo.GetActiveGamesOutput{Games: []*models.Game{waiting, tracking, running}}, nil)

	var tick scheduler.TickFunc
	s.mockScheduler.EXPECT().
		Start("g2", gomock.Any()).
		DoAndReturn(func(_ string, fn scheduler.TickFunc) bool {
			tick = fn
			return true
		})
	s.mockScheduler.EXPECT().Start("g3", gomock.Any()).Return(false)

	output, err := s.service.ResumeActive(s.ctx, &ResumeActiveInput{})
	s.Require().NoError(err)
	s.Equal([]string{"g2"}, output.GameIDs)

	// The scheduled tick polls the game it was started for
	s.Require().NotNil(tick)
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: "g2"}).
		Return(&models.Game{ID: "g2", Status: models.GameStatusCompleted}, nil)
	s.mockScheduler.EXPECT().Stop("g2").Return(true)
	tick(s.ctx)
}

func (s *TrackingServiceTestSuite) TestStopTracking() {
	s.mockScheduler.EXPECT().Stop(s.testGameID).Return(true)
	s.mockScheduler.EXPECT().Stop(s.testGameID).Return(false)

	output, err := s.service.StopTracking(s.ctx, &StopTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(output.Stopped)

	output, err = s.service.StopTracking(s.ctx, &StopTrackingInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(output.Stopped)
}

func (s *TrackingServiceTestSuite) TestNewDefaultsNotifier() {
	svc, err := New(&Config{
		GameRepo:   s.mockGameRepo,
		PlayerRepo: s.mockPlayerRepo,
		RiotClient: s.mockRiot,
		Scheduler:  s.mockScheduler,
		Resolver:   s.mockResolver,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.IsType(noopNotifier{}, svc.notifier)

	_, err = New(&Config{GameRepo: s.mockGameRepo, PlayerRepo: s.mockPlayerRepo})
	s.ErrorIs(err, ErrNilRiotClient)
}

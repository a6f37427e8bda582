package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/riftcustoms/internal/repositories/game/mocks"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking"
)

// fakeMessenger records writes and fails edits from a queue of errors
type fakeMessenger struct {
	editErrs []error
	edits    []*discordgo.MessageEdit
	sends    []*discordgo.MessageSend
	sendTo   []string
	sendErr  error
}

func (f *fakeMessenger) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, m)
	if len(f.editErrs) > 0 {
		err := f.editErrs[0]
		f.editErrs = f.editErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sendTo = append(f.sendTo, channelID)
	f.sends = append(f.sends, data)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &discordgo.Message{ID: "sent", ChannelID: channelID}, nil
}

type NotifierTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGameRepo *gameMocks.MockRepository
	messenger    *fakeMessenger
	notifier     *Notifier
	ctx          context.Context
	sleeps       []time.Duration

	game         *models.Game
	participants []*models.Participant
}

func (s *NotifierTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.messenger = &fakeMessenger{}
	s.ctx = context.Background()
	s.sleeps = nil

	logger, _ := test.NewNullLogger()
	notifier, err := NewNotifier(&NotifierConfig{
		Messenger: s.messenger,
		GameRepo:  s.mockGameRepo,
		Logger:    logger,
	})
	s.Require().NoError(err)
	notifier.editor.sleep = func(_ context.Context, d time.Duration) error {
		s.sleeps = append(s.sleeps, d)
		return nil
	}
	s.notifier = notifier

	s.game = &models.Game{
		ID:               "test-game-id",
		ChannelID:        "channel-1",
		MessageID:        "message-1",
		Status:           models.GameStatusTracking,
		BalanceMethod:    models.BalanceMethodRandom,
		SpectatorMatchID: "4242",
		SpectatorRegion:  "jp1",
	}
	s.participants = []*models.Participant{
		{GameID: "test-game-id", UserID: "u1", RiotID: "alice", Tagline: "JP1", Lane: models.LaneTop, Team: models.TeamA},
		{GameID: "test-game-id", UserID: "u2", RiotID: "bob", Tagline: "JP1", Lane: models.LaneMid, Team: models.TeamB},
	}
}

func (s *NotifierTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) expectRoster() {
	s.mockGameRepo.EXPECT().
		GetParticipants(s.ctx, &gameRepo.GetParticipantsInput{GameID: "test-game-id"}).
		Return(s.participants, nil)
}

func (s *NotifierTestSuite) TestEdit_FirstAttempt() {
	err := s.notifier.editor.Edit(s.ctx, &discordgo.MessageEdit{Channel: "c", ID: "m"})

	s.NoError(err)
	s.Len(s.messenger.edits, 1)
	s.Empty(s.sleeps)
}

func (s *NotifierTestSuite) TestEdit_RetriesWithFixedBackoff() {
	s.messenger.editErrs = []error{errors.New("502"), errors.New("502"), nil}

	err := s.notifier.editor.Edit(s.ctx, &discordgo.MessageEdit{Channel: "c", ID: "m"})

	s.NoError(err)
	s.Len(s.messenger.edits, 3)
	s.Equal([]time.Duration{time.Second, time.Second}, s.sleeps)
}

func (s *NotifierTestSuite) TestEdit_GivesUpAfterThreeAttempts() {
	last := errors.New("still down")
	s.messenger.editErrs = []error{errors.New("down"), errors.New("down"), last, nil}

	err := s.notifier.editor.Edit(s.ctx, &discordgo.MessageEdit{Channel: "c", ID: "m"})

	s.ErrorIs(err, last)
	s.Len(s.messenger.edits, 3)
	s.Len(s.sleeps, 2)
}

func (s *NotifierTestSuite) TestEdit_StopsWhenContextDone() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.notifier.editor.sleep = sleepContext
	s.messenger.editErrs = []error{errors.New("down"), nil}

	err := s.notifier.editor.Edit(ctx, &discordgo.MessageEdit{Channel: "c", ID: "m"})

	s.ErrorIs(err, context.Canceled)
	s.Len(s.messenger.edits, 1)
}

func (s *NotifierTestSuite) TestGameUpdated_EditsGameMessage() {
	s.expectRoster()

	s.notifier.GameUpdated(s.ctx, s.game)

	s.Require().Len(s.messenger.edits, 1)
	edit := s.messenger.edits[0]
	s.Equal("channel-1", edit.Channel)
	s.Equal("message-1", edit.ID)
	s.Require().NotNil(edit.Embeds)
	s.Equal("Custom game: match in progress", (*edit.Embeds)[0].Title)
	s.Empty(s.messenger.sends)
}

func (s *NotifierTestSuite) TestGameUpdated_WithoutMessageDoesNothing() {
	s.game.MessageID = ""

	s.notifier.GameUpdated(s.ctx, s.game)

	s.Empty(s.messenger.edits)
}

func (s *NotifierTestSuite) TestObservationUpdated_ShowsElapsed() {
	s.expectRoster()

	s.notifier.ObservationUpdated(s.ctx, s.game, &models.MatchObservation{
		MatchID: "4242",
		Elapsed: 754 * time.Second,
	})

	s.Require().Len(s.messenger.edits, 1)
	embed := (*s.messenger.edits[0].Embeds)[0]
	s.Contains(fieldValues(embed), "12:34")
}

func (s *NotifierTestSuite) TestObservationUpdated_RosterFailureStillEdits() {
	s.mockGameRepo.EXPECT().
		GetParticipants(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	s.notifier.ObservationUpdated(s.ctx, s.game, &models.MatchObservation{Elapsed: time.Minute})

	s.Len(s.messenger.edits, 1)
}

func (s *NotifierTestSuite) TestResultReady_RedrawsAndPosts() {
	finished := s.game
	finished.Status = models.GameStatusCompleted

	s.notifier.ResultReady(s.ctx, &result.ResolveOutput{
		Game:         finished,
		Participants: s.participants,
		Degraded:     true,
		Reason:       result.ErrNoRecentMatch,
	})

	s.Require().Len(s.messenger.edits, 1)
	s.Equal("Custom game: finished", (*s.messenger.edits[0].Embeds)[0].Title)
	s.Require().Len(s.messenger.sends, 1)
	s.Equal("channel-1", s.messenger.sendTo[0])
	s.Equal("Match result", s.messenger.sends[0].Embeds[0].Title)
}

func (s *NotifierTestSuite) TestResultReady_SendFailureIsSwallowed() {
	s.messenger.sendErr = errors.New("forbidden")

	s.NotPanics(func() {
		s.notifier.ResultReady(s.ctx, &result.ResolveOutput{Game: s.game, Degraded: true})
	})
	s.Len(s.messenger.sends, 1)
}

func (s *NotifierTestSuite) TestTrackingFailed_PostsReason() {
	s.expectRoster()

	s.notifier.TrackingFailed(s.ctx, s.game, tracking.ErrNoActiveMatch)

	s.Len(s.messenger.edits, 1)
	s.Require().Len(s.messenger.sends, 1)
	s.Equal(userMessage(tracking.ErrNoActiveMatch), s.messenger.sends[0].Embeds[0].Description)
}

func (s *NotifierTestSuite) TestNewNotifier_Validation() {
	_, err := NewNotifier(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewNotifier(&NotifierConfig{GameRepo: s.mockGameRepo})
	s.ErrorIs(err, ErrNilMessenger)

	_, err = NewNotifier(&NotifierConfig{Messenger: s.messenger})
	s.ErrorIs(err, ErrNilGameRepo)
}

func fieldValues(embed *discordgo.MessageEmbed) []string {
	values := make([]string, 0, len(embed.Fields))
	for _, field := range embed.Fields {
		values = append(values, field.Value)
	}
	return values
}

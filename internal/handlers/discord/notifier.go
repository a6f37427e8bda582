package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const (
	editAttempts = 3
	editBackoff  = time.Second
)

// Messenger is the part of the Discord session used to write game messages.
// *discordgo.Session satisfies it.
type Messenger interface {
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// sleepFunc waits for d or until ctx is done
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryingEditor edits a message, retrying failed writes with a fixed backoff
type retryingEditor struct {
	messenger Messenger
	attempts  int
	backoff   time.Duration
	sleep     sleepFunc
	logger    *logrus.Logger
}

func newRetryingEditor(messenger Messenger, logger *logrus.Logger) *retryingEditor {
	return &retryingEditor{
		messenger: messenger,
		attempts:  editAttempts,
		backoff:   editBackoff,
		sleep:     sleepContext,
		logger:    logger,
	}
}

// Edit applies the edit, giving up after the configured number of attempts
func (e *retryingEditor) Edit(ctx context.Context, edit *discordgo.MessageEdit) error {
	var err error
	for attempt := 1; attempt <= e.attempts; attempt++ {
		if _, err = e.messenger.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err == nil {
			return nil
		}

		e.logger.WithFields(logrus.Fields{
			"channel_id": edit.Channel,
			"message_id": edit.ID,
			"attempt":    attempt,
		}).WithError(err).Warn("Failed to edit game message")

		if attempt == e.attempts {
			break
		}
		if sleepErr := e.sleep(ctx, e.backoff); sleepErr != nil {
			return sleepErr
		}
	}

	return fmt.Errorf("failed to edit message after %d attempts: %w", e.attempts, err)
}

// NotifierConfig holds the dependencies of the tracking notifier
type NotifierConfig struct {
	Messenger Messenger
	GameRepo  gameRepo.Repository
	Logger    *logrus.Logger
}

// Notifier keeps the game message in sync with tracking progress
type Notifier struct {
	messenger Messenger
	editor    *retryingEditor
	gameRepo  gameRepo.Repository
	logger    *logrus.Logger
}

var _ tracking.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier that writes through the given messenger
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Notifier{
		messenger: cfg.Messenger,
		editor:    newRetryingEditor(cfg.Messenger, logger),
		gameRepo:  cfg.GameRepo,
		logger:    logger,
	}, nil
}

// GameUpdated redraws the game message after a status change
func (n *Notifier) GameUpdated(ctx context.Context, g *models.Game) {
	n.redraw(ctx, g, nil)
}

// ObservationUpdated redraws the game message with the live match clock
func (n *Notifier) ObservationUpdated(ctx context.Context, g *models.Game, observation *models.MatchObservation) {
	n.redraw(ctx, g, observation)
}

// ResultReady redraws the game message as finished and posts the summary
func (n *Notifier) ResultReady(ctx context.Context, output *result.ResolveOutput) {
	if output == nil || output.Game == nil {
		return
	}

	n.refresh(ctx, output.Game, output.Participants, nil)
	n.send(ctx, output.Game, renderResult(output))
}

// TrackingFailed posts the reason a game could not be resolved
func (n *Notifier) TrackingFailed(ctx context.Context, g *models.Game, reason error) {
	n.redraw(ctx, g, nil)
	n.send(ctx, g, &discordgo.MessageEmbed{
		Title:       "Tracking stopped",
		Description: userMessage(reason),
		Color:       colorError,
	})
}

// redraw refreshes the game message with the stored roster
func (n *Notifier) redraw(ctx context.Context, g *models.Game, observation *models.MatchObservation) {
	if !hasMessage(g) {
		return
	}
	n.refresh(ctx, g, n.participants(ctx, g.ID), observation)
}

func hasMessage(g *models.Game) bool {
	return g.MessageID != "" && g.ChannelID != ""
}

func (n *Notifier) participants(ctx context.Context, gameID string) []*models.Participant {
	participants, err := n.gameRepo.GetParticipants(ctx, &gameRepo.GetParticipantsInput{
		GameID: gameID,
	})
	if err != nil {
		n.logger.WithField("game_id", gameID).WithError(err).Warn("Failed to load roster for game message")
		return nil
	}
	return participants
}

func (n *Notifier) refresh(ctx context.Context, g *models.Game, participants []*models.Participant, observation *models.MatchObservation) {
	if !hasMessage(g) {
		return
	}

	if err := n.editor.Edit(ctx, renderGame(g, participants, observation).edit(g)); err != nil {
		n.logger.WithField("game_id", g.ID).WithError(err).Error("Giving up on game message refresh")
	}
}

func (n *Notifier) send(ctx context.Context, g *models.Game, embed *discordgo.MessageEmbed) {
	if g.ChannelID == "" {
		return
	}

	_, err := n.messenger.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		n.logger.WithField("game_id", g.ID).WithError(err).Error("Failed to post game summary")
	}
}

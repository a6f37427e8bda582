package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/services/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/player"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session       *discordgo.Session
	commands      map[string]CommandHandler
	commandIDs    map[string]string // Maps command name to command ID
	gameService   game.Service
	playerService player.Service
	config        *Config
	logger        *logrus.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	GameService   game.Service
	PlayerService player.Service

	Logger *logrus.Logger
}

// NewSession creates a Discord session for a bot token. The session is shared
// by the bot and the tracking notifier.
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Session == nil {
		return nil, ErrNilSession
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.PlayerService == nil {
		return nil, ErrNilPlayerService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	bot := &Bot{
		session:       cfg.Session,
		commands:      make(map[string]CommandHandler),
		commandIDs:    make(map[string]string),
		gameService:   cfg.GameService,
		playerService: cfg.PlayerService,
		config:        cfg,
		logger:        logger,
	}

	// Register the interaction handler
	bot.session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	customsCmd := NewCustomsCommand(b.gameService, b.playerService, b.logger)
	if err := b.RegisterCommand(customsCmd); err != nil {
		return fmt.Errorf("failed to register customs command: %w", err)
	}

	b.logger.Info("Bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		log := b.logger.WithFields(logrus.Fields{"command": cmdName, "command_id": cmdID})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warn("Failed to delete command")
		} else {
			log.Debug("Deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for one guild when a guild
// ID is configured and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.WithFields(logrus.Fields{
		"command":    cmd.GetName(),
		"command_id": createdCmd.ID,
		"guild_id":   b.config.GuildID,
	}).Info("Registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.WithField("command", name).WithError(err).Error("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.WithField("custom_id", i.MessageComponentData().CustomID).WithError(err).Error("Error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks and select menus on a game message
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	action, gameID := parseCustomID(data.CustomID)
	if gameID == "" {
		return RespondWithEphemeralMessage(s, i, "This control is no longer attached to a game.")
	}

	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	ctx := context.Background()
	log := b.logger.WithFields(logrus.Fields{
		"game_id": gameID,
		"user_id": user.ID,
		"action":  action,
	})

	var err error
	switch action {
	case ActionJoin:
		_, err = b.gameService.JoinGame(ctx, &game.JoinGameInput{GameID: gameID, UserID: user.ID})
	case ActionLeave:
		_, err = b.gameService.LeaveGame(ctx, &game.LeaveGameInput{GameID: gameID, UserID: user.ID})
	case ActionLane:
		_, err = b.gameService.SelectLane(ctx, &game.SelectLaneInput{
			GameID: gameID,
			UserID: user.ID,
			Lane:   models.ParseLane(firstValue(data.Values)),
		})
	case ActionMethod:
		_, err = b.gameService.SetBalanceMethod(ctx, &game.SetBalanceMethodInput{
			GameID: gameID,
			Method: models.BalanceMethod(firstValue(data.Values)),
		})
	case ActionBalance:
		return b.handleBalance(ctx, s, i, log, gameID)
	case ActionTrack:
		return b.handleTrack(ctx, s, i, log, gameID)
	case ActionEnd:
		return b.handleEnd(ctx, s, i, log, gameID)
	case ActionResult:
		return b.handleResult(ctx, s, i, log, gameID)
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown control: %s", action))
	}

	if err != nil {
		b.logFailure(log, err)
		return RespondWithError(s, i, err)
	}

	return b.respondWithGame(ctx, s, i, gameID)
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// logFailure logs errors users cannot act on at Error and the rest at Debug
func (b *Bot) logFailure(log *logrus.Entry, err error) {
	if userMessage(err) == genericMessage {
		log.WithError(err).Error("Interaction failed")
		return
	}
	log.WithError(err).Debug("Interaction rejected")
}

// respondWithGame redraws the game message the component belongs to
func (b *Bot) respondWithGame(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gameID string) error {
	out, err := b.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return RespondWithError(s, i, err)
	}

	return RespondWithUpdate(s, i, renderGame(out.Game, out.Participants, nil))
}

func (b *Bot) handleBalance(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, log *logrus.Entry, gameID string) error {
	out, err := b.gameService.BalanceTeams(ctx, &game.BalanceTeamsInput{GameID: gameID})
	if err != nil {
		b.logFailure(log, err)
		return RespondWithError(s, i, err)
	}

	participants := append(append([]*models.Participant{}, out.TeamA...), out.TeamB...)
	view := renderGame(out.Game, participants, nil)
	view.Embeds = append(view.Embeds, renderTeams(out))

	return RespondWithUpdate(s, i, view)
}

// handleTrack discovers the live match. Discovery makes one API call per
// roster member, so the response is deferred.
func (b *Bot) handleTrack(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, log *logrus.Entry, gameID string) error {
	if err := DeferUpdate(s, i); err != nil {
		return err
	}

	out, err := b.gameService.StartTracking(ctx, &game.StartTrackingInput{GameID: gameID})
	if err != nil {
		b.logFailure(log, err)
		return FollowupError(s, i, err)
	}

	if out.AlreadyTracking {
		_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: "This game is already being tracked.",
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return err
	}

	log.WithField("match_id", out.Game.SpectatorMatchID).Info("Tracking started")

	current, err := b.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return FollowupError(s, i, err)
	}
	return b.editResponse(s, i, renderGame(out.Game, current.Participants, out.Observation))
}

func (b *Bot) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, log *logrus.Entry, gameID string) error {
	out, err := b.gameService.EndGame(ctx, &game.EndGameInput{GameID: gameID})
	if err != nil {
		b.logFailure(log, err)
		return RespondWithError(s, i, err)
	}

	log.Info("Game ended")
	return RespondWithUpdate(s, i, renderGame(out.Game, out.Participants, nil))
}

// handleResult resolves the roster's last match and posts the summary
func (b *Bot) handleResult(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, log *logrus.Entry, gameID string) error {
	if err := DeferUpdate(s, i); err != nil {
		return err
	}

	out, err := b.gameService.ShowResult(ctx, &game.ShowResultInput{GameID: gameID})
	if err != nil {
		b.logFailure(log, err)
		return FollowupError(s, i, err)
	}

	res := out.Result
	if res.Degraded {
		log.WithError(res.Reason).Warn("Result shown without match details")
	}

	if err := b.editResponse(s, i, renderGame(res.Game, res.Participants, nil)); err != nil {
		log.WithError(err).Warn("Failed to redraw game message")
	}

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{renderResult(res)},
	})
	return err
}

// editResponse replaces the message a deferred component belongs to
func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, view *gameView) error {
	embeds := view.Embeds
	components := view.Components
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

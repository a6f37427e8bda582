package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/services/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/player"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const historyLimit = 10

// platformRegions are offered as choices when registering
var platformRegions = []string{"na1", "euw1", "eun1", "kr", "jp1", "br1", "la1", "la2", "oc1", "tr1", "ru"}

// CustomsCommand handles the /customs command
type CustomsCommand struct {
	BaseCommand
	gameService   game.Service
	playerService player.Service
	logger        *logrus.Logger
}

// NewCustomsCommand creates a new customs command handler
func NewCustomsCommand(gameService game.Service, playerService player.Service, logger *logrus.Logger) *CustomsCommand {
	methodChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.BalanceMethods))
	for _, method := range models.BalanceMethods {
		methodChoices = append(methodChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  method.DisplayName(),
			Value: string(method),
		})
	}

	regionChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(platformRegions))
	for _, region := range platformRegions {
		regionChoices = append(regionChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  strings.ToUpper(region),
			Value: region,
		})
	}

	return &CustomsCommand{
		BaseCommand: BaseCommand{
			Name:        "customs",
			Description: "League of Legends custom games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Open a custom game in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "method",
							Description: "How teams are balanced",
							Choices:     methodChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Link your Riot account",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "riot_id",
							Description: "Your Riot ID, e.g. Faker#KR1",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "region",
							Description: "Your server",
							Required:    true,
							Choices:     regionChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unregister",
					Description: "Remove your linked Riot account",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "refresh",
					Description: "Reload your Riot name, level and rank",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "profile",
					Description: "Show a player's custom game stats",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Defaults to you",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent custom games in this server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "games",
					Description: "List open custom games in this server",
				},
			},
		},
		gameService:   gameService,
		playerService: playerService,
		logger:        logger,
	}
}

// Handle processes a Discord interaction for the customs command
func (c *CustomsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	ctx := context.Background()
	sub := data.Options[0]
	options := optionMap(sub.Options)

	switch sub.Name {
	case "create":
		return c.handleCreate(ctx, s, i, user, options)
	case "register":
		return c.handleRegister(ctx, s, i, user, options)
	case "unregister":
		return c.handleUnregister(ctx, s, i, user)
	case "refresh":
		return c.handleRefresh(ctx, s, i, user)
	case "profile":
		return c.handleProfile(ctx, s, i, user, options)
	case "history":
		return c.handleHistory(ctx, s, i)
	case "games":
		return c.handleGames(ctx, s, i)
	default:
		return errUnknownSubcommand
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := options[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

// handleCreate opens a game, joins the creator when they are registered and
// records the game message
func (c *CustomsCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	created, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		GuildID:       i.GuildID,
		ChannelID:     i.ChannelID,
		CreatorID:     user.ID,
		BalanceMethod: models.BalanceMethod(stringOption(options, "method")),
	})
	if err != nil {
		return RespondWithError(s, i, err)
	}

	gameID := created.Game.ID
	log := c.logger.WithFields(logrus.Fields{"game_id": gameID, "channel_id": i.ChannelID})

	_, err = c.gameService.JoinGame(ctx, &game.JoinGameInput{GameID: gameID, UserID: user.ID})
	if err != nil && !errors.Is(err, game.ErrPlayerNotRegistered) {
		log.WithError(err).Warn("Failed to join creator to game")
	}

	current, err := c.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return RespondWithError(s, i, err)
	}

	view := renderGame(current.Game, current.Participants, nil)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     view.Embeds,
			Components: view.Components,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send game message: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.WithError(err).Warn("Failed to read game message")
		return nil
	}

	if _, err := c.gameService.UpdateGameMessage(ctx, &game.UpdateGameMessageInput{
		GameID:    gameID,
		ChannelID: i.ChannelID,
		MessageID: msg.ID,
	}); err != nil {
		log.WithError(err).Warn("Failed to record game message")
	}

	log.Info("Game created")
	return nil
}

// deferEphemeral acknowledges a command whose reply needs remote calls
func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func editContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

func (c *CustomsCommand) handleRegister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferEphemeral(s, i); err != nil {
		return err
	}

	out, err := c.playerService.Register(ctx, &player.RegisterInput{
		UserID: user.ID,
		RiotID: stringOption(options, "riot_id"),
		Region: stringOption(options, "region"),
	})
	if err != nil {
		return editContent(s, i, userMessage(err))
	}

	verb := "Linked"
	if out.Relinked {
		verb = "Relinked"
	}
	c.logger.WithFields(logrus.Fields{"user_id": user.ID, "region": out.Player.Region}).Info("Player registered")

	return editContent(s, i, fmt.Sprintf("%s **%s** (%s, solo %s).",
		verb, out.Player.DisplayName(), strings.ToUpper(out.Player.Region), out.Player.Solo))
}

func (c *CustomsCommand) handleUnregister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) error {
	if _, err := c.playerService.Unregister(ctx, &player.UnregisterInput{UserID: user.ID}); err != nil {
		return RespondWithError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "Your Riot account has been unlinked.")
}

func (c *CustomsCommand) handleRefresh(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) error {
	if err := deferEphemeral(s, i); err != nil {
		return err
	}

	out, err := c.playerService.Refresh(ctx, &player.RefreshInput{UserID: user.ID})
	if err != nil {
		return editContent(s, i, userMessage(err))
	}

	return editContent(s, i, fmt.Sprintf("Refreshed **%s**: level %d, solo %s, flex %s.",
		out.Player.DisplayName(), out.Player.Level, out.Player.Solo, out.Player.Flex))
}

func (c *CustomsCommand) handleProfile(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	userID := user.ID
	if opt, ok := options["user"]; ok {
		if target := opt.UserValue(nil); target != nil {
			userID = target.ID
		}
	}

	out, err := c.playerService.GetProfile(ctx, &player.GetProfileInput{
		UserID:  userID,
		GuildID: i.GuildID,
	})
	if err != nil {
		return RespondWithError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderProfile(out))
}

func (c *CustomsCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.playerService.GetGuildHistory(ctx, &player.GetGuildHistoryInput{
		GuildID: i.GuildID,
		Limit:   historyLimit,
	})
	if err != nil {
		return RespondWithError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderHistory(out))
}

func (c *CustomsCommand) handleGames(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.ListActiveGames(ctx, &game.ListActiveGamesInput{GuildID: i.GuildID})
	if err != nil {
		return RespondWithError(s, i, err)
	}

	return RespondWithEphemeralEmbed(s, i, renderActiveGames(out.Games))
}

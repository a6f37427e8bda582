package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/services/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/player"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/bwmarrin/discordgo"
)

const (
	colorWaiting   = 0x00ff00
	colorTracking  = 0x3498db
	colorCompleted = 0x95a5a6
	colorBlue      = 0x1f6feb
	colorRed       = 0xd73a49
	colorError     = 0xff0000
)

// Component actions, suffixed with ":<game id>" in custom IDs
const (
	ActionJoin    = "customs_join"
	ActionLeave   = "customs_leave"
	ActionBalance = "customs_balance"
	ActionTrack   = "customs_track"
	ActionEnd     = "customs_end"
	ActionResult  = "customs_result"
	ActionLane    = "customs_lane"
	ActionMethod  = "customs_method"
)

const emptyField = "None yet"

// gameView is the embed and component set of a game message
type gameView struct {
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

// edit turns the view into an edit of the game's message
func (v *gameView) edit(g *models.Game) *discordgo.MessageEdit {
	embeds := v.Embeds
	components := v.Components
	return &discordgo.MessageEdit{
		Channel:    g.ChannelID,
		ID:         g.MessageID,
		Embeds:     &embeds,
		Components: &components,
	}
}

// formatElapsed renders a match clock as m:ss
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

// renderGame renders the main game message. observation may be nil.
func renderGame(g *models.Game, participants []*models.Participant, observation *models.MatchObservation) *gameView {
	embed := &discordgo.MessageEmbed{
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: string(g.Status), Inline: true},
			{Name: "Balance", Value: g.BalanceMethod.DisplayName(), Inline: true},
			{Name: "Players", Value: fmt.Sprintf("%d", len(participants)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Game " + g.ID},
	}

	switch {
	case g.Status.IsWaiting():
		embed.Title = "Custom game: waiting for players"
		embed.Description = "Join with the button below, pick a lane, then balance teams. Start tracking once the match is loading."
		embed.Color = colorWaiting
	case g.Status.IsTracking():
		embed.Title = "Custom game: match in progress"
		embed.Color = colorTracking
	default:
		embed.Title = "Custom game: finished"
		embed.Color = colorCompleted
	}

	teamA, teamB, unassigned := splitTeams(participants)
	if len(teamA) > 0 || len(teamB) > 0 {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Team A", Value: rosterLines(teamA), Inline: true},
			&discordgo.MessageEmbedField{Name: "Team B", Value: rosterLines(teamB), Inline: true},
		)
		if len(unassigned) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Unassigned", Value: rosterLines(unassigned)})
		}
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Roster", Value: rosterLines(participants)})
	}

	if g.HasSpectatorInfo() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Match",
			Value:  fmt.Sprintf("%s (%s)", g.SpectatorMatchID, strings.ToUpper(g.SpectatorRegion)),
			Inline: true,
		})
	}
	if observation != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Elapsed",
			Value:  formatElapsed(observation.Elapsed),
			Inline: true,
		})
		if !observation.StartedAt.IsZero() {
			embed.Timestamp = observation.StartedAt.UTC().Format(time.RFC3339)
		}
	}

	return &gameView{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: gameComponents(g),
	}
}

func splitTeams(participants []*models.Participant) (teamA, teamB, unassigned []*models.Participant) {
	for _, p := range participants {
		switch p.Team {
		case models.TeamA:
			teamA = append(teamA, p)
		case models.TeamB:
			teamB = append(teamB, p)
		default:
			unassigned = append(unassigned, p)
		}
	}
	return teamA, teamB, unassigned
}

func rosterLines(participants []*models.Participant) string {
	if len(participants) == 0 {
		return emptyField
	}

	var b strings.Builder
	for _, p := range participants {
		fmt.Fprintf(&b, "`%-7s` %s %s\n", p.Lane, p.DisplayName(), mention(p.UserID))
	}
	return b.String()
}

// gameComponents returns the controls valid for the game's status. A finished
// game keeps the result button so the summary can be shown again.
func gameComponents(g *models.Game) []discordgo.MessageComponent {
	switch {
	case g.Status.IsWaiting():
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Join", Style: discordgo.SuccessButton, CustomID: customID(ActionJoin, g.ID)},
				discordgo.Button{Label: "Leave", Style: discordgo.SecondaryButton, CustomID: customID(ActionLeave, g.ID)},
				discordgo.Button{Label: "Balance", Style: discordgo.PrimaryButton, CustomID: customID(ActionBalance, g.ID)},
				discordgo.Button{Label: "Track", Style: discordgo.PrimaryButton, CustomID: customID(ActionTrack, g.ID)},
				discordgo.Button{Label: "End", Style: discordgo.DangerButton, CustomID: customID(ActionEnd, g.ID)},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{laneSelect(g.ID)}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{methodSelect(g)}},
		}
	case g.Status.IsTracking():
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Show result", Style: discordgo.PrimaryButton, CustomID: customID(ActionResult, g.ID)},
				discordgo.Button{Label: "End", Style: discordgo.DangerButton, CustomID: customID(ActionEnd, g.ID)},
			}},
		}
	default:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Show result", Style: discordgo.SecondaryButton, CustomID: customID(ActionResult, g.ID)},
			}},
		}
	}
}

func laneSelect(gameID string) discordgo.SelectMenu {
	lanes := append(append([]models.Lane{}, models.PrimaryLanes...), models.LaneFill)
	options := make([]discordgo.SelectMenuOption, 0, len(lanes))
	for _, lane := range lanes {
		options = append(options, discordgo.SelectMenuOption{
			Label: string(lane),
			Value: string(lane),
		})
	}

	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    customID(ActionLane, gameID),
		Placeholder: "Pick your lane",
		Options:     options,
	}
}

func methodSelect(g *models.Game) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(models.BalanceMethods))
	for _, method := range models.BalanceMethods {
		options = append(options, discordgo.SelectMenuOption{
			Label:   method.DisplayName(),
			Value:   string(method),
			Default: method == g.BalanceMethod,
		})
	}

	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    customID(ActionMethod, g.ID),
		Placeholder: "Balance method",
		Options:     options,
	}
}

// renderTeams renders a balancing result as an extra embed under the roster
func renderTeams(output *game.BalanceTeamsOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Teams (" + output.Method.DisplayName() + ")",
		Color: colorWaiting,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Team A", Value: teamLines(output.TeamA, output.Players), Inline: true},
			{Name: "Team B", Value: teamLines(output.TeamB, output.Players), Inline: true},
		},
	}
}

func teamLines(team []*models.Participant, players map[string]*models.Player) string {
	if len(team) == 0 {
		return emptyField
	}

	var b strings.Builder
	for _, p := range team {
		rank := models.TierUnranked
		if profile, ok := players[p.UserID]; ok {
			rank = profile.Solo.String()
		}
		fmt.Fprintf(&b, "%s `%s` %s\n", p.DisplayName(), p.Lane, rank)
	}
	return b.String()
}

// renderResult renders a resolved match. Unresolved participants are listed
// under their reported name without a mention.
func renderResult(output *result.ResolveOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Match result",
		Color: colorCompleted,
	}
	if output.Game != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Game " + output.Game.ID}
	}

	if output.Degraded || output.Result == nil {
		reason := "the match could not be loaded"
		if output.Reason != nil {
			reason = userMessage(output.Reason)
		}
		embed.Description = "The game is over but the result is unavailable: " + reason
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Roster", Value: rosterLines(output.Participants)},
		}
		return embed
	}

	switch output.Result.WinningSide {
	case models.SideBlue:
		embed.Description = "**Blue side wins**"
		embed.Color = colorBlue
	case models.SideRed:
		embed.Description = "**Red side wins**"
		embed.Color = colorRed
	default:
		embed.Description = "No winner was reported"
	}
	embed.Description += fmt.Sprintf(" in %s", formatElapsed(output.Result.Duration))
	if !output.Result.PlayedAt.IsZero() {
		embed.Timestamp = output.Result.PlayedAt.UTC().Format(time.RFC3339)
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Blue side", Value: resultLines(output.Side(models.SideBlue))},
		{Name: "Red side", Value: resultLines(output.Side(models.SideRed))},
	}
	return embed
}

func resultLines(lines []*result.SummaryLine) string {
	if len(lines) == 0 {
		return emptyField
	}

	var b strings.Builder
	for _, line := range lines {
		name := line.Identity.DisplayName
		if line.Identity.Resolved {
			name = fmt.Sprintf("**%s** %s", name, mention(line.Identity.UserID))
		}
		fmt.Fprintf(&b, "%s %s `%s` %d/%d/%d\n",
			name, line.ChampionName, line.Position, line.Kills, line.Deaths, line.Assists)
	}
	return b.String()
}

// renderProfile renders a registered player with their custom game stats
func renderProfile(output *player.GetProfileOutput) *discordgo.MessageEmbed {
	p := output.Player
	embed := &discordgo.MessageEmbed{
		Title: p.DisplayName(),
		Color: colorTracking,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Region", Value: strings.ToUpper(p.Region), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", p.Level), Inline: true},
			{Name: "Solo", Value: p.Solo.String(), Inline: true},
			{Name: "Flex", Value: p.Flex.String(), Inline: true},
		},
	}

	if stats := output.Stats; stats != nil && stats.Games > 0 {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Customs", Value: fmt.Sprintf("%d games, %.0f%% wins", stats.Games, stats.WinRate()), Inline: true},
			&discordgo.MessageEmbedField{Name: "KDA", Value: fmt.Sprintf("%.2f", stats.KDA()), Inline: true},
		)
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Customs", Value: "No games recorded"})
	}

	if len(output.TopChampions) > 0 {
		var b strings.Builder
		for _, champion := range output.TopChampions {
			fmt.Fprintf(&b, "%s: %d games, %d wins\n", champion.ChampionName, champion.Games, champion.Wins)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Top champions", Value: b.String()})
	}

	return embed
}

// renderHistory renders a server's recent results
func renderHistory(output *player.GetGuildHistoryOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent custom games",
		Color: colorCompleted,
		Description: fmt.Sprintf("%d games: blue %d, red %d",
			output.Summary.TotalGames, output.Summary.BlueWins, output.Summary.RedWins),
	}

	if len(output.Results) == 0 {
		embed.Description = "No custom games have been recorded here yet."
		return embed
	}

	var b strings.Builder
	for _, r := range output.Results {
		fmt.Fprintf(&b, "<t:%d:d> %s win in %s\n",
			r.PlayedAt.Unix(), capitalize(r.WinningSide.Label()), formatElapsed(r.Duration))
	}
	embed.Fields = []*discordgo.MessageEmbedField{{Name: "Results", Value: b.String()}}
	return embed
}

func capitalize(label string) string {
	if label == "" {
		return label
	}
	return label[:1] + strings.ToLower(label[1:])
}

// renderActiveGames lists open games with a link to their channel
func renderActiveGames(games []*models.Game) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Open custom games",
		Color: colorWaiting,
	}

	if len(games) == 0 {
		embed.Description = "No games are open. Start one with `/customs create`."
		return embed
	}

	var b strings.Builder
	for _, g := range games {
		fmt.Fprintf(&b, "<#%s> %s, opened by %s\n", g.ChannelID, g.Status, mention(g.CreatorID))
	}
	embed.Description = b.String()
	return embed
}

package discord

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
	"github.com/KirkDiggler/riftcustoms/internal/services/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/identity"
	"github.com/KirkDiggler/riftcustoms/internal/services/player"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking"
)

func TestFormatElapsed(t *testing.T) {
	cases := map[time.Duration]string{
		0:                  "0:00",
		9 * time.Second:    "0:09",
		754 * time.Second:  "12:34",
		3725 * time.Second: "62:05",
		-5 * time.Second:   "0:00",
	}

	for d, want := range cases {
		assert.Equal(t, want, formatElapsed(d), d.String())
	}
}

func TestCustomID_RoundTrip(t *testing.T) {
	action, gameID := parseCustomID(customID(ActionJoin, "abc-123"))
	assert.Equal(t, ActionJoin, action)
	assert.Equal(t, "abc-123", gameID)

	action, gameID = parseCustomID("join_game")
	assert.Equal(t, "join_game", action)
	assert.Empty(t, gameID)
}

func buttonIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, component := range components {
		row, ok := component.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			switch c := inner.(type) {
			case discordgo.Button:
				ids = append(ids, c.CustomID)
			case discordgo.SelectMenu:
				ids = append(ids, c.CustomID)
			}
		}
	}
	return ids
}

func TestGameComponents_FollowStatus(t *testing.T) {
	g := &models.Game{ID: "g1", Status: models.GameStatusWaiting, BalanceMethod: models.BalanceMethodRank}

	assert.Equal(t, []string{
		"customs_join:g1", "customs_leave:g1", "customs_balance:g1", "customs_track:g1", "customs_end:g1",
		"customs_lane:g1", "customs_method:g1",
	}, buttonIDs(gameComponents(g)))

	g.Status = models.GameStatusTracking
	assert.Equal(t, []string{"customs_result:g1", "customs_end:g1"}, buttonIDs(gameComponents(g)))

	g.Status = models.GameStatusCompleted
	assert.Equal(t, []string{"customs_result:g1"}, buttonIDs(gameComponents(g)))
}

func TestMethodSelect_MarksCurrentMethod(t *testing.T) {
	menu := methodSelect(&models.Game{ID: "g1", BalanceMethod: models.BalanceMethodLane})

	require.Len(t, menu.Options, len(models.BalanceMethods))
	for _, option := range menu.Options {
		assert.Equal(t, option.Value == string(models.BalanceMethodLane), option.Default, option.Value)
	}
}

func TestRenderGame_SplitsAssignedTeams(t *testing.T) {
	g := &models.Game{ID: "g1", Status: models.GameStatusWaiting, BalanceMethod: models.BalanceMethodRandom}
	participants := []*models.Participant{
		{UserID: "u1", RiotID: "alice", Tagline: "JP1", Lane: models.LaneTop, Team: models.TeamA},
		{UserID: "u2", RiotID: "bob", Lane: models.LaneFill, Team: models.TeamB},
	}

	view := renderGame(g, participants, nil)

	require.Len(t, view.Embeds, 1)
	fields := view.Embeds[0].Fields
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{"Status", "Balance", "Players", "Team A", "Team B"}, names)
	assert.Contains(t, fields[3].Value, "alice#JP1 <@u1>")
	assert.Contains(t, fields[4].Value, "bob <@u2>")
}

func TestRenderGame_EmptyRoster(t *testing.T) {
	view := renderGame(&models.Game{ID: "g1", Status: models.GameStatusWaiting}, nil, nil)

	last := view.Embeds[0].Fields[len(view.Embeds[0].Fields)-1]
	assert.Equal(t, "Roster", last.Name)
	assert.Equal(t, emptyField, last.Value)
}

func TestRenderResult_UnresolvedShowsRawName(t *testing.T) {
	out := &result.ResolveOutput{
		Game:   &models.Game{ID: "g1"},
		Result: &models.MatchResult{WinningSide: models.SideRed, Duration: 1834 * time.Second},
		Lines: []*result.SummaryLine{
			{
				Identity:     identity.Resolution{UserID: "u1", DisplayName: "alice#JP1", Resolved: true},
				ChampionName: "Ahri", Side: models.SideBlue, Position: "MID", Kills: 5, Deaths: 2, Assists: 7,
			},
			{
				Identity:     identity.Resolution{DisplayName: "Stranger"},
				ChampionName: "Garen", Side: models.SideRed, Position: "TOP", Win: true, Kills: 1, Deaths: 3,
			},
		},
	}

	embed := renderResult(out)

	assert.Equal(t, colorRed, embed.Color)
	assert.Equal(t, "**Red side wins** in 30:34", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "**alice#JP1** <@u1> Ahri `MID` 5/2/7\n", embed.Fields[0].Value)
	assert.Equal(t, "Stranger Garen `TOP` 1/3/0\n", embed.Fields[1].Value)
}

func TestRenderResult_Degraded(t *testing.T) {
	embed := renderResult(&result.ResolveOutput{
		Game:     &models.Game{ID: "g1"},
		Degraded: true,
		Reason:   &riot.APIError{StatusCode: 503, Endpoint: "match"},
		Participants: []*models.Participant{
			{UserID: "u1", RiotID: "alice", Lane: models.LaneMid},
		},
	})

	assert.True(t, strings.HasSuffix(embed.Description, "The Riot API is unavailable right now."))
	require.Len(t, embed.Fields, 1)
	assert.Contains(t, embed.Fields[0].Value, "alice <@u1>")
}

func TestRenderTeams_ShowsSoloRank(t *testing.T) {
	embed := renderTeams(&game.BalanceTeamsOutput{
		Method: models.BalanceMethodRank,
		TeamA:  []*models.Participant{{UserID: "u1", RiotID: "alice", Lane: models.LaneTop}},
		TeamB:  []*models.Participant{{UserID: "u2", RiotID: "bob", Lane: models.LaneMid}},
		Players: map[string]*models.Player{
			"u1": {UserID: "u1", Solo: models.Rank{Tier: "GOLD", Division: "II"}},
		},
	})

	assert.Equal(t, "Teams (Rank balance)", embed.Title)
	assert.Equal(t, "alice `TOP` GOLD II\n", embed.Fields[0].Value)
	assert.Equal(t, "bob `MID` UNRANKED\n", embed.Fields[1].Value)
}

func TestRenderProfile(t *testing.T) {
	embed := renderProfile(&player.GetProfileOutput{
		Player: &models.Player{RiotID: "alice", Tagline: "JP1", Region: "jp1", Level: 212},
		Stats:  &models.PlayerStats{Games: 4, Wins: 3, Kills: 20, Deaths: 5, Assists: 10},
		TopChampions: []*models.ChampionStats{
			{ChampionName: "Ahri", Games: 3, Wins: 2},
		},
	})

	assert.Equal(t, "alice#JP1", embed.Title)
	values := fieldValues(embed)
	assert.Contains(t, values, "JP1")
	assert.Contains(t, values, "4 games, 75% wins")
	assert.Contains(t, values, "6.00")
	assert.Contains(t, values, "Ahri: 3 games, 2 wins\n")
}

func TestRenderHistory(t *testing.T) {
	played := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	embed := renderHistory(&player.GetGuildHistoryOutput{
		Results: []*models.MatchResult{{WinningSide: models.SideBlue, Duration: 25 * time.Minute, PlayedAt: played}},
		Summary: models.GuildSummary{TotalGames: 1, BlueWins: 1},
	})

	assert.Equal(t, "1 games: blue 1, red 0", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, fmt.Sprintf("<t:%d:d> Blue win in 25:00\n", played.Unix()), embed.Fields[0].Value)

	empty := renderHistory(&player.GetGuildHistoryOutput{})
	assert.Empty(t, empty.Fields)
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: game is TRACKING", game.ErrStateConflict), "The roster is locked once a game is being tracked or has ended."},
		{game.ErrPlayerNotRegistered, "Link your Riot account first with `/customs register`."},
		{player.ErrPlayerNotRegistered, "Link your Riot account first with `/customs register`."},
		{tracking.ErrNoActiveMatch, "No live match found for this roster. Try again once the game has loaded."},
		{fmt.Errorf("register: %w", player.ErrInvalidRiotID), "Riot IDs look like `name#tag`."},
		{&riot.APIError{StatusCode: 429, Endpoint: "spectator"}, "The Riot API is rate limiting us. Please wait a minute."},
		{fmt.Errorf("lookup: %w", &riot.APIError{StatusCode: 500}), "The Riot API is unavailable right now."},
		{fmt.Errorf("redis: connection refused"), genericMessage},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, userMessage(tc.err), tc.err.Error())
	}
	assert.Empty(t, userMessage(nil))
}

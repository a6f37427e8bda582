package riot

import (
	"strconv"
	"time"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// ToObservation converts a spectator response into a live match snapshot.
// Elapsed is taken as reported; callers clamp it.
func (g *ActiveGameResponse) ToObservation(region string) *models.MatchObservation {
	observation := &models.MatchObservation{
		MatchID:      strconv.FormatInt(g.GameID, 10),
		Region:       region,
		Elapsed:      time.Duration(g.GameLength) * time.Second,
		QueueID:      g.GameQueueConfigID,
		Participants: make([]*models.ObservedParticipant, 0, len(g.Participants)),
	}

	for _, p := range g.Participants {
		observation.Participants = append(observation.Participants, &models.ObservedParticipant{
			PUUID:      p.PUUID,
			RiotID:     p.RiotID,
			ChampionID: p.ChampionID,
			Side:       models.Side(p.TeamID),
		})
	}

	return observation
}

// ToDetails converts a match-v5 response into completed match details
func (m *MatchResponse) ToDetails() *models.MatchDetails {
	details := &models.MatchDetails{
		MatchID:      m.Metadata.MatchID,
		GameType:     m.Info.GameType,
		CreatedAt:    time.UnixMilli(m.Info.GameCreation).UTC(),
		Duration:     time.Duration(m.Info.GameDuration) * time.Second,
		Teams:        make([]models.MatchTeam, 0, len(m.Info.Teams)),
		Participants: make([]*models.MatchParticipant, 0, len(m.Info.Participants)),
	}

	for _, t := range m.Info.Teams {
		details.Teams = append(details.Teams, models.MatchTeam{
			Side: models.Side(t.TeamID),
			Win:  t.Win,
		})
	}

	for _, p := range m.Info.Participants {
		name := p.RiotIDGameName
		if name == "" {
			name = p.SummonerName
		}

		details.Participants = append(details.Participants, &models.MatchParticipant{
			PUUID:        p.PUUID,
			DisplayName:  name,
			ChampionID:   p.ChampionID,
			ChampionName: p.ChampionName,
			Side:         models.Side(p.TeamID),
			Lane:         p.Lane,
			Role:         p.Role,
			TeamPosition: p.TeamPosition,
			Win:          p.Win,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Assists:      p.Assists,
			GoldEarned:   p.GoldEarned,
			VisionScore:  p.VisionScore,
			CreepScore:   p.TotalMinionsKilled,
		})
	}

	return details
}

// ToRank picks the entry for queue out of entries, UNRANKED when absent
func ToRank(entries []LeagueEntryResponse, queue string) models.Rank {
	for _, e := range entries {
		if e.QueueType == queue {
			return models.Rank{Tier: e.Tier, Division: e.Rank, LP: e.LeaguePoints}
		}
	}
	return models.Rank{Tier: models.TierUnranked}
}

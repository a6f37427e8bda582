package balance

import "github.com/KirkDiggler/riftcustoms/internal/models"

// unrankedWinrateScore keeps unranked players from clumping onto one team
const unrankedWinrateScore = 50.0

var tierScores = map[string]float64{
	"IRON":        1,
	"BRONZE":      2,
	"SILVER":      3,
	"GOLD":        4,
	"PLATINUM":    5,
	"EMERALD":     6,
	"DIAMOND":     7,
	"MASTER":      8,
	"GRANDMASTER": 9,
	"CHALLENGER":  10,
}

var divisionScores = map[string]float64{
	"I":   0.75,
	"II":  0.5,
	"III": 0.25,
	"IV":  0,
}

// RankScore returns tier value plus division fraction; unknown values score 0
func RankScore(rank models.Rank) float64 {
	return tierScores[rank.Tier] + divisionScores[rank.Division]
}

// PlayerRankScore is the better of the solo and flex scores. A nil player scores 0.
func PlayerRankScore(player *models.Player) float64 {
	if player == nil {
		return 0
	}

	solo := RankScore(player.Solo)
	flex := RankScore(player.Flex)
	if flex > solo {
		return flex
	}
	return solo
}

// SoloRankScore scores only the solo queue standing
func SoloRankScore(player *models.Player) float64 {
	if player == nil {
		return 0
	}
	return RankScore(player.Solo)
}

// WinrateScore is the solo score with LP as a continuous bonus. Players without a
// solo rank get a neutral 50.
func WinrateScore(player *models.Player) float64 {
	if player == nil || !player.Solo.IsRanked() {
		return unrankedWinrateScore
	}
	return RankScore(player.Solo) + float64(player.Solo.LP)/100
}

func playerLevel(player *models.Player) int {
	if player == nil {
		return 0
	}
	return player.Level
}

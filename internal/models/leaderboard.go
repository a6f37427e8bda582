package models

// PlayerStats aggregates a player's persisted performances in one guild
type PlayerStats struct {
	// UserID is the Discord user ID of the player
	UserID string

	Games   int
	Wins    int
	Kills   int
	Deaths  int
	Assists int
}

// WinRate returns wins over games as a percentage
func (s *PlayerStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games) * 100
}

// KDA returns (kills + assists) / deaths, treating zero deaths as one
func (s *PlayerStats) KDA() float64 {
	deaths := s.Deaths
	if deaths == 0 {
		deaths = 1
	}
	return float64(s.Kills+s.Assists) / float64(deaths)
}

// ChampionStats aggregates a player's performances on one champion
type ChampionStats struct {
	ChampionName string
	Games        int
	Wins         int
	Kills        int
	Deaths       int
	Assists      int
}

// GuildSummary counts side wins across a guild's results
type GuildSummary struct {
	TotalGames int
	BlueWins   int
	RedWins    int
}

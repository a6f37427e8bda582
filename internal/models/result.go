package models

import (
	"time"
)

// MatchResult is the resolved outcome of one completed remote match
type MatchResult struct {
	// MatchID is the remote match identifier
	MatchID string

	// GameID is the custom game the match belongs to
	GameID string

	// GuildID is the Discord server the game was played in
	GuildID string

	// WinningSide is the side that won, zero if unknown
	WinningSide Side

	// Duration is the match length
	Duration time.Duration

	// PlayedAt is when the result was recorded
	PlayedAt time.Time
}

// PlayerPerformance is one local player's stats in a completed match.
// Keyed by (MatchID, UserID).
type PlayerPerformance struct {
	MatchID string
	UserID  string

	ChampionID   int
	ChampionName string

	// Side is the remote side the player was on
	Side Side

	// Position is the resolved lane, UNKNOWN when not reported
	Position string

	Win     bool
	Kills   int
	Deaths  int
	Assists int

	// Optional economy and vision stats
	GoldEarned  *int
	VisionScore *int
	CreepScore  *int
}

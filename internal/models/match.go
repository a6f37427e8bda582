package models

import (
	"time"
)

// Side is the remote team side identifier
type Side int

const (
	SideBlue Side = 100
	SideRed  Side = 200
)

// Team maps a remote side to the local team letter. Unknown sides map to TeamNone.
func (s Side) Team() Team {
	switch s {
	case SideBlue:
		return TeamA
	case SideRed:
		return TeamB
	default:
		return TeamNone
	}
}

// Label returns BLUE or RED, or UNKNOWN for anything else
func (s Side) Label() string {
	switch s {
	case SideBlue:
		return "BLUE"
	case SideRed:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

// MatchObservation is a snapshot of a live match. It is never persisted.
type MatchObservation struct {
	// MatchID is the remote match identifier
	MatchID string

	// Region is the platform region the match was observed in
	Region string

	// Elapsed is the in-game time reported by the spectator endpoint
	Elapsed time.Duration

	// StartedAt is the inferred match start
	StartedAt time.Time

	// QueueID identifies the game mode
	QueueID int

	// Participants are every player in the match, both sides
	Participants []*ObservedParticipant
}

// ObservedParticipant is a player inside a live match
type ObservedParticipant struct {
	PUUID      string
	RiotID     string
	ChampionID int
	Side       Side
}

// MatchParticipant is a player as reported by the completed match details
type MatchParticipant struct {
	// PUUID is the remote account identifier, possibly empty
	PUUID string

	// DisplayName is the reported in-game name
	DisplayName string

	ChampionID   int
	ChampionName string
	Side         Side

	// Lane is the reported lane, e.g. TOP or BOTTOM
	Lane string

	// Role is the reported role, e.g. DUO_SUPPORT
	Role string

	// TeamPosition is the reported position, e.g. UTILITY
	TeamPosition string

	Win     bool
	Kills   int
	Deaths  int
	Assists int

	GoldEarned  *int
	VisionScore *int
	CreepScore  *int
}

// MatchDetails is a completed match as reported by the match endpoint
type MatchDetails struct {
	MatchID      string
	GameType     string
	CreatedAt    time.Time
	Duration     time.Duration
	Teams        []MatchTeam
	Participants []*MatchParticipant
}

// MatchTeam records whether a side won
type MatchTeam struct {
	Side Side
	Win  bool
}

// WinningSide returns the side reported as the winner, or zero if neither won
func (d *MatchDetails) WinningSide() Side {
	for _, team := range d.Teams {
		if team.Win {
			return team.Side
		}
	}
	return 0
}

package models

import (
	"strings"
	"time"
)

// Lane represents a positional preference on the map
type Lane string

const (
	LaneTop     Lane = "TOP"
	LaneJungle  Lane = "JUNGLE"
	LaneMid     Lane = "MID"
	LaneBottom  Lane = "BOTTOM"
	LaneSupport Lane = "SUPPORT"

	// LaneFill is the wildcard preference
	LaneFill Lane = "FILL"
)

// PrimaryLanes are the five positions in map order
var PrimaryLanes = []Lane{LaneTop, LaneJungle, LaneMid, LaneBottom, LaneSupport}

// ParseLane normalises a lane value, mapping anything unknown to FILL
func ParseLane(value string) Lane {
	lane := Lane(strings.ToUpper(strings.TrimSpace(value)))
	switch lane {
	case LaneTop, LaneJungle, LaneMid, LaneBottom, LaneSupport:
		return lane
	default:
		return LaneFill
	}
}

// Team is a local team letter
type Team string

const (
	// TeamNone is used until a balancing operation has run
	TeamNone Team = ""
	TeamA    Team = "A"
	TeamB    Team = "B"
)

// Participant represents a player's membership in one game
type Participant struct {
	// GameID is the ID of the game the player is participating in
	GameID string

	// UserID is the Discord user ID of the player
	UserID string

	// PUUID is the remote account identity, empty until known
	PUUID string

	// RiotID is the game name part of the Riot ID
	RiotID string

	// Tagline is the tag part of the Riot ID
	Tagline string

	// Lane is the player's preferred lane
	Lane Lane

	// Team is the assigned team, TeamNone before balancing
	Team Team

	// JoinedAt is when the player joined the roster
	JoinedAt time.Time
}

// DisplayName returns the Riot ID in name#tag form
func (p *Participant) DisplayName() string {
	if p.Tagline == "" {
		return p.RiotID
	}
	return p.RiotID + "#" + p.Tagline
}

package models

import (
	"time"
)

// Player is a registered Discord user linked to a Riot account
type Player struct {
	// UserID is the Discord user ID of the player
	UserID string

	// PUUID is the Riot account identifier
	PUUID string

	// RiotID is the game name part of the Riot ID
	RiotID string

	// Tagline is the tag part of the Riot ID
	Tagline string

	// Region is the platform region, e.g. jp1 or na1
	Region string

	// Level is the summoner level
	Level int

	// ProfileIconID is the summoner icon
	ProfileIconID int

	// Solo is the RANKED_SOLO_5x5 standing
	Solo Rank

	// Flex is the RANKED_FLEX_SR standing
	Flex Rank

	// RegisteredAt is when the player first registered
	RegisteredAt time.Time

	// UpdatedAt is when the profile was last refreshed
	UpdatedAt time.Time
}

// DisplayName returns the Riot ID in name#tag form
func (p *Player) DisplayName() string {
	if p.Tagline == "" {
		return p.RiotID
	}
	return p.RiotID + "#" + p.Tagline
}

// Rank is a queue specific standing
type Rank struct {
	// Tier is IRON..CHALLENGER or UNRANKED
	Tier string

	// Division is I..IV, empty for apex tiers
	Division string

	// LP is league points
	LP int
}

// TierUnranked is the tier used when no league entry exists
const TierUnranked = "UNRANKED"

// IsRanked reports whether the rank has a real tier
func (r Rank) IsRanked() bool {
	return r.Tier != "" && r.Tier != TierUnranked
}

// String formats the rank for display
func (r Rank) String() string {
	if !r.IsRanked() {
		return TierUnranked
	}
	if r.Division == "" {
		return r.Tier
	}
	return r.Tier + " " + r.Division
}

// Package identity maps participants reported by the match API back to the
// local roster.
package identity

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// Member is one local roster entry with everything resolution can key on
type Member struct {
	UserID  string
	PUUID   string
	RiotID  string
	Tagline string
	Lane    models.Lane
	Team    models.Team

	normalized string
}

// DisplayName returns the Riot ID in name#tag form
func (m *Member) DisplayName() string {
	if m.Tagline == "" {
		return m.RiotID
	}
	return m.RiotID + "#" + m.Tagline
}

// Roster is the lookup context for one resolution pass. Build a fresh one from
// the current participants each time; it holds no state beyond them.
type Roster struct {
	members []*Member
	byPUUID map[string]*Member
	byName  map[string]*Member
}

// NewRoster builds a roster from participants in roster order. Account fields
// missing on a participant are taken from its registered profile, if any.
func NewRoster(participants []*models.Participant, players map[string]*models.Player) *Roster {
	r := &Roster{
		members: make([]*Member, 0, len(participants)),
		byPUUID: make(map[string]*Member, len(participants)),
		byName:  make(map[string]*Member, len(participants)),
	}

	for _, p := range participants {
		m := &Member{
			UserID:  p.UserID,
			PUUID:   p.PUUID,
			RiotID:  p.RiotID,
			Tagline: p.Tagline,
			Lane:    p.Lane,
			Team:    p.Team,
		}

		if profile, ok := players[p.UserID]; ok && profile != nil {
			if m.PUUID == "" {
				m.PUUID = profile.PUUID
			}
			if m.RiotID == "" {
				m.RiotID = profile.RiotID
				m.Tagline = profile.Tagline
			}
		}

		m.normalized = Normalize(m.RiotID)
		r.members = append(r.members, m)

		if m.PUUID != "" {
			r.byPUUID[m.PUUID] = m
		}
		if m.normalized != "" {
			if _, taken := r.byName[m.normalized]; !taken {
				r.byName[m.normalized] = m
			}
		}
	}

	return r
}

// Members returns the roster in order
func (r *Roster) Members() []*Member {
	return r.members
}

// Lookup returns the member registered under a user ID
func (r *Roster) Lookup(userID string) (*Member, bool) {
	for _, m := range r.members {
		if m.UserID == userID {
			return m, true
		}
	}
	return nil, false
}

// Normalize lower-cases a name and strips all whitespace
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

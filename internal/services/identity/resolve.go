package identity

import (
	"strings"

	"github.com/KirkDiggler/riftcustoms/internal/models"
)

// minNameScore is the lowest similarity accepted as a name match
const minNameScore = 3

// Method records which tier produced a resolution
type Method string

const (
	MethodPUUID Method = "puuid"
	MethodName  Method = "name"
	MethodFuzzy Method = "fuzzy"
	MethodLane  Method = "lane"

	// MethodNone means the participant could not be matched
	MethodNone Method = ""
)

// Resolution is the identity chosen for one reported participant
type Resolution struct {
	// UserID is the local player, empty when unresolved
	UserID string

	// DisplayName is the local name#tag, or the raw reported name when unresolved
	DisplayName string

	// Resolved is false when no tier matched. Unresolved participants must not be persisted.
	Resolved bool

	Method Method
}

// Resolve matches a reported participant against the roster, stopping at the
// first tier that succeeds: account ID, normalized name, then team and lane.
func (r *Roster) Resolve(p *models.MatchParticipant) Resolution {
	if p.PUUID != "" {
		if m, ok := r.byPUUID[p.PUUID]; ok {
			return resolved(m, MethodPUUID)
		}
	}

	if reported := Normalize(p.DisplayName); reported != "" {
		if m, ok := r.byName[reported]; ok {
			return resolved(m, MethodName)
		}

		if m := r.bestNameMatch(reported); m != nil {
			return resolved(m, MethodFuzzy)
		}
	}

	if m := r.laneMatch(p); m != nil {
		return resolved(m, MethodLane)
	}

	return Resolution{
		DisplayName: p.DisplayName,
		Method:      MethodNone,
	}
}

func resolved(m *Member, method Method) Resolution {
	return Resolution{
		UserID:      m.UserID,
		DisplayName: m.DisplayName(),
		Resolved:    true,
		Method:      method,
	}
}

// bestNameMatch returns the highest scoring member at or above minNameScore.
// Ties keep the earlier member.
func (r *Roster) bestNameMatch(reported string) *Member {
	var (
		best      *Member
		bestScore int
	)

	for _, m := range r.members {
		if m.normalized == "" {
			continue
		}

		score := NameScore(reported, m.normalized)
		if score > bestScore {
			best = m
			bestScore = score
		}
	}

	if bestScore < minNameScore {
		return nil
	}
	return best
}

// NameScore rates how alike two normalized names are
func NameScore(reported, local string) int {
	score := 0
	if strings.Contains(reported, local) {
		score += 3
	}
	if strings.Contains(local, reported) {
		score += 2
	}
	if strings.HasPrefix(reported, local) || strings.HasPrefix(local, reported) {
		score += 2
	}

	diff := len([]rune(reported)) - len([]rune(local))
	if diff < 0 {
		diff = -diff
	}
	if diff <= 2 {
		score++
	}

	return score
}

// laneMatch finds the first member on the reported side's team whose lane
// matches, treating FILL as a wildcard
func (r *Roster) laneMatch(p *models.MatchParticipant) *Member {
	team := p.Side.Team()
	if team == models.TeamNone {
		return nil
	}

	lane := ReportedLane(p)
	if lane == "" {
		return nil
	}

	for _, m := range r.members {
		if m.Team != team {
			continue
		}

		local := strings.ToUpper(string(m.Lane))
		if local == "" {
			local = string(models.LaneFill)
		}

		if local == lane || local == string(models.LaneFill) {
			return m
		}
	}

	return nil
}

// ReportedLane returns the reported lane upper-cased in local terms. BOTTOM is
// read as SUPPORT when the role says so, MIDDLE as MID. Empty when unreported.
func ReportedLane(p *models.MatchParticipant) string {
	lane := strings.ToUpper(strings.TrimSpace(p.Lane))
	switch lane {
	case "BOTTOM":
		if strings.Contains(strings.ToUpper(p.Role), "SUPPORT") {
			return string(models.LaneSupport)
		}
	case "MIDDLE":
		return string(models.LaneMid)
	}
	return lane
}

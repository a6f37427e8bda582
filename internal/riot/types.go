package riot

// AccountResponse represents the response from /riot/account/v1/accounts
type AccountResponse struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerResponse represents the response from /lol/summoner/v4/summoners/by-puuid
type SummonerResponse struct {
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntryResponse represents a ranked league entry from /lol/league/v4/entries/by-puuid
type LeagueEntryResponse struct {
	QueueType    string `json:"queueType"` // RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

const (
	QueueRankedSolo = "RANKED_SOLO_5x5"
	QueueRankedFlex = "RANKED_FLEX_SR"
)

// ActiveGameResponse represents the response from /lol/spectator/v5/active-games/by-summoner
type ActiveGameResponse struct {
	GameID            int64                   `json:"gameId"`
	PlatformID        string                  `json:"platformId"`
	GameMode          string                  `json:"gameMode"`
	GameType          string                  `json:"gameType"`
	GameQueueConfigID int                     `json:"gameQueueConfigId"`
	GameLength        int64                   `json:"gameLength"` // seconds
	GameStartTime     int64                   `json:"gameStartTime"`
	Participants      []ActiveGameParticipant `json:"participants"`
}

type ActiveGameParticipant struct {
	PUUID      string `json:"puuid"`
	RiotID     string `json:"riotId"`
	ChampionID int    `json:"championId"`
	TeamID     int    `json:"teamId"`
}

// MatchResponse represents the response from /lol/match/v5/matches/{matchId}
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"` // epoch millis
	GameDuration int64              `json:"gameDuration"` // seconds
	GameType     string             `json:"gameType"`
	QueueID      int                `json:"queueId"`
	Teams        []MatchTeam        `json:"teams"`
	Participants []MatchParticipant `json:"participants"`
}

type MatchTeam struct {
	TeamID int  `json:"teamId"`
	Win    bool `json:"win"`
}

type MatchParticipant struct {
	PUUID              string `json:"puuid"`
	SummonerName       string `json:"summonerName"`
	RiotIDGameName     string `json:"riotIdGameName"`
	RiotIDTagline      string `json:"riotIdTagline"`
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	TeamID             int    `json:"teamId"`
	Lane               string `json:"lane"`
	Role               string `json:"role"`
	TeamPosition       string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	Win                bool   `json:"win"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	GoldEarned         *int   `json:"goldEarned"`
	VisionScore        *int   `json:"visionScore"`
	TotalMinionsKilled *int   `json:"totalMinionsKilled"`
}

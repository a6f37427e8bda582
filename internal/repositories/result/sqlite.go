package result

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/riftcustoms/internal/models"

	_ "modernc.org/sqlite"
)

const defaultLimit = 5

// ErrResultNotFound is returned when no result exists for a match
var ErrResultNotFound = errors.New("match result not found")

const schema = `
	CREATE TABLE IF NOT EXISTS match_results (
		match_id TEXT PRIMARY KEY,
		game_id TEXT NOT NULL,
		guild_id TEXT NOT NULL DEFAULT '',
		winning_side INTEGER NOT NULL DEFAULT 0,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		played_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_match_results_guild ON match_results (guild_id, played_at);

	CREATE TABLE IF NOT EXISTS player_performances (
		match_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		champion_id INTEGER NOT NULL DEFAULT 0,
		champion_name TEXT NOT NULL DEFAULT '',
		side INTEGER NOT NULL DEFAULT 0,
		position TEXT NOT NULL DEFAULT 'UNKNOWN',
		win INTEGER NOT NULL DEFAULT 0,
		kills INTEGER NOT NULL DEFAULT 0,
		deaths INTEGER NOT NULL DEFAULT 0,
		assists INTEGER NOT NULL DEFAULT 0,
		gold_earned INTEGER,
		vision_score INTEGER,
		creep_score INTEGER,
		PRIMARY KEY (match_id, user_id)
	);

	CREATE INDEX IF NOT EXISTS idx_player_performances_user ON player_performances (user_id);
`

// Config holds configuration for the SQLite result repository
type Config struct {
	// DB is an open handle using the "sqlite" driver
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// Open opens the database file at path with the modernc driver
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer; in-memory databases are per connection
	db.SetMaxOpenConns(1)

	return db, nil
}

// NewSQLite creates a new SQLite-backed result repository and applies the schema
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	if _, err := cfg.DB.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// SaveMatchResult upserts the outcome of a match
func (r *sqliteRepository) SaveMatchResult(ctx context.Context, input *SaveMatchResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	res := input.Result
	if res.MatchID == "" {
		return errors.New("match ID cannot be empty")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO match_results (match_id, game_id, guild_id, winning_side, duration_seconds, played_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_id) DO UPDATE SET
			game_id = excluded.game_id,
			guild_id = excluded.guild_id,
			winning_side = excluded.winning_side,
			duration_seconds = excluded.duration_seconds,
			played_at = excluded.played_at`,
		res.MatchID, res.GameID, res.GuildID, int(res.WinningSide),
		int64(res.Duration/time.Second), res.PlayedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

// SavePlayerPerformance upserts one player's stats for a match
func (r *sqliteRepository) SavePlayerPerformance(ctx context.Context, input *SavePlayerPerformanceInput) error {
	if input == nil || input.Performance == nil {
		return errors.New("input and performance cannot be nil")
	}

	p := input.Performance
	if p.MatchID == "" || p.UserID == "" {
		return errors.New("match ID and user ID cannot be empty")
	}

	position := p.Position
	if position == "" {
		position = "UNKNOWN"
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO player_performances (
			match_id, user_id, champion_id, champion_name, side, position, win,
			kills, deaths, assists, gold_earned, vision_score, creep_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_id, user_id) DO UPDATE SET
			champion_id = excluded.champion_id,
			champion_name = excluded.champion_name,
			side = excluded.side,
			position = excluded.position,
			win = excluded.win,
			kills = excluded.kills,
			deaths = excluded.deaths,
			assists = excluded.assists,
			gold_earned = excluded.gold_earned,
			vision_score = excluded.vision_score,
			creep_score = excluded.creep_score`,
		p.MatchID, p.UserID, p.ChampionID, p.ChampionName, int(p.Side), position, p.Win,
		p.Kills, p.Deaths, p.Assists,
		nullInt(p.GoldEarned), nullInt(p.VisionScore), nullInt(p.CreepScore),
	)
	if err != nil {
		return fmt.Errorf("failed to save player performance: %w", err)
	}

	return nil
}

// GetMatchResult retrieves a match outcome
func (r *sqliteRepository) GetMatchResult(ctx context.Context, input *GetMatchResultInput) (*models.MatchResult, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT match_id, game_id, guild_id, winning_side, duration_seconds, played_at
		FROM match_results WHERE match_id = ?`, input.MatchID)

	res, err := scanMatchResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	return res, nil
}

// GetPlayerPerformances retrieves every stored performance for a match
func (r *sqliteRepository) GetPlayerPerformances(ctx context.Context, input *GetPlayerPerformancesInput) ([]*models.PlayerPerformance, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, user_id, champion_id, champion_name, side, position, win,
			kills, deaths, assists, gold_earned, vision_score, creep_score
		FROM player_performances WHERE match_id = ?
		ORDER BY side, user_id`, input.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performances: %w", err)
	}
	defer rows.Close()

	performances := []*models.PlayerPerformance{}
	for rows.Next() {
		var (
			p                        models.PlayerPerformance
			side                     int
			gold, vision, creepScore sql.NullInt64
		)
		if err := rows.Scan(&p.MatchID, &p.UserID, &p.ChampionID, &p.ChampionName, &side, &p.Position, &p.Win,
			&p.Kills, &p.Deaths, &p.Assists, &gold, &vision, &creepScore); err != nil {
			return nil, fmt.Errorf("failed to scan performance: %w", err)
		}
		p.Side = models.Side(side)
		p.GoldEarned = intPtr(gold)
		p.VisionScore = intPtr(vision)
		p.CreepScore = intPtr(creepScore)
		performances = append(performances, &p)
	}

	return performances, rows.Err()
}

// GetPlayerStats aggregates a player's performances
func (r *sqliteRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	stats := &models.PlayerStats{UserID: input.UserID}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(p.win), 0), COALESCE(SUM(p.kills), 0),
			COALESCE(SUM(p.deaths), 0), COALESCE(SUM(p.assists), 0)
		FROM player_performances p
		JOIN match_results m ON m.match_id = p.match_id
		WHERE p.user_id = ? AND (? = '' OR m.guild_id = ?)`,
		input.UserID, input.GuildID, input.GuildID,
	).Scan(&stats.Games, &stats.Wins, &stats.Kills, &stats.Deaths, &stats.Assists)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return stats, nil
}

// GetTopChampions returns a player's most played champions
func (r *sqliteRepository) GetTopChampions(ctx context.Context, input *GetTopChampionsInput) ([]*models.ChampionStats, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT champion_name, COUNT(*) AS games, SUM(win) AS wins,
			SUM(kills), SUM(deaths), SUM(assists)
		FROM player_performances
		WHERE user_id = ?
		GROUP BY champion_name
		ORDER BY games DESC, wins DESC, champion_name
		LIMIT ?`, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top champions: %w", err)
	}
	defer rows.Close()

	champions := []*models.ChampionStats{}
	for rows.Next() {
		var c models.ChampionStats
		if err := rows.Scan(&c.ChampionName, &c.Games, &c.Wins, &c.Kills, &c.Deaths, &c.Assists); err != nil {
			return nil, fmt.Errorf("failed to scan champion stats: %w", err)
		}
		champions = append(champions, &c)
	}

	return champions, rows.Err()
}

// GetGuildHistory returns recent results for a guild with side totals
func (r *sqliteRepository) GetGuildHistory(ctx context.Context, input *GetGuildHistoryInput) (*GetGuildHistoryOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	output := &GetGuildHistoryOutput{Results: []*models.MatchResult{}}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN winning_side = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winning_side = ? THEN 1 ELSE 0 END), 0)
		FROM match_results WHERE guild_id = ?`,
		int(models.SideBlue), int(models.SideRed), input.GuildID,
	).Scan(&output.Summary.TotalGames, &output.Summary.BlueWins, &output.Summary.RedWins)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild summary: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, game_id, guild_id, winning_side, duration_seconds, played_at
		FROM match_results WHERE guild_id = ?
		ORDER BY played_at DESC, match_id
		LIMIT ?`, input.GuildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query guild history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		res, err := scanMatchResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		output.Results = append(output.Results, res)
	}

	return output, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatchResult(row scanner) (*models.MatchResult, error) {
	var (
		res      models.MatchResult
		side     int
		duration int64
		playedAt int64
	)
	if err := row.Scan(&res.MatchID, &res.GameID, &res.GuildID, &side, &duration, &playedAt); err != nil {
		return nil, err
	}

	res.WinningSide = models.Side(side)
	res.Duration = time.Duration(duration) * time.Second
	res.PlayedAt = time.Unix(playedAt, 0).UTC()

	return &res, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

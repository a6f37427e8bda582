package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

var keys = []string{
	"DISCORD_TOKEN", "APPLICATION_ID", "GUILD_ID", "RIOT_API_KEY", "REDIS_ADDR",
	"REDIS_PASSWORD", "RESULTS_DB_PATH", "TRACKING_INTERVAL", "LOG_LEVEL",
}

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	// t.Setenv restores the previous value; Unsetenv gives each test a clean slate
	for _, key := range keys {
		s.T().Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) missing() string {
	return filepath.Join(s.dir, "missing.env")
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("RIOT_API_KEY", "RGAPI-test")

	cfg, err := Load(s.missing())
	s.Require().NoError(err)

	s.Equal("token", cfg.DiscordToken)
	s.Equal("RGAPI-test", cfg.RiotAPIKey)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("riftcustoms.sqlite", cfg.ResultsDBPath)
	s.Equal(15*time.Second, cfg.TrackingInterval)
	s.Equal(logrus.InfoLevel, cfg.LogLevel)
	s.Empty(cfg.GuildID)
}

func (s *ConfigTestSuite) TestReadsDotEnv() {
	file := filepath.Join(s.dir, ".env")
	s.Require().NoError(os.WriteFile(file, []byte(
		"DISCORD_TOKEN=from-file\nRIOT_API_KEY=key\nTRACKING_INTERVAL=30s\nLOG_LEVEL=debug\nGUILD_ID=123\n",
	), 0o600))

	// Values already in the environment are not overridden
	s.T().Setenv("DISCORD_TOKEN", "from-env")

	cfg, err := Load(file)
	s.Require().NoError(err)

	s.Equal("from-env", cfg.DiscordToken)
	s.Equal("key", cfg.RiotAPIKey)
	s.Equal(30*time.Second, cfg.TrackingInterval)
	s.Equal(logrus.DebugLevel, cfg.LogLevel)
	s.Equal("123", cfg.GuildID)
}

func (s *ConfigTestSuite) TestRequiresTokens() {
	_, err := Load(s.missing())
	s.ErrorContains(err, "DISCORD_TOKEN")

	s.T().Setenv("DISCORD_TOKEN", "token")
	_, err = Load(s.missing())
	s.ErrorContains(err, "RIOT_API_KEY")
}

func (s *ConfigTestSuite) TestRejectsBadValues() {
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("RIOT_API_KEY", "key")

	s.T().Setenv("TRACKING_INTERVAL", "soon")
	_, err := Load(s.missing())
	s.ErrorContains(err, "TRACKING_INTERVAL")

	s.T().Setenv("TRACKING_INTERVAL", "-5s")
	_, err = Load(s.missing())
	s.ErrorContains(err, "TRACKING_INTERVAL")

	s.T().Setenv("TRACKING_INTERVAL", "")
	s.T().Setenv("LOG_LEVEL", "loud")
	_, err = Load(s.missing())
	s.ErrorContains(err, "LOG_LEVEL")
}

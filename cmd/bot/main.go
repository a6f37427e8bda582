package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/riftcustoms/internal/common/clock"
	"github.com/KirkDiggler/riftcustoms/internal/common/uuid"
	"github.com/KirkDiggler/riftcustoms/internal/config"
	"github.com/KirkDiggler/riftcustoms/internal/handlers/discord"
	gameRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/riftcustoms/internal/repositories/result"
	"github.com/KirkDiggler/riftcustoms/internal/riot"
	"github.com/KirkDiggler/riftcustoms/internal/scheduler"
	"github.com/KirkDiggler/riftcustoms/internal/services/balance"
	"github.com/KirkDiggler/riftcustoms/internal/services/game"
	"github.com/KirkDiggler/riftcustoms/internal/services/player"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
	"github.com/KirkDiggler/riftcustoms/internal/services/tracking"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	// Create Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.WithError(err).WithField("addr", cfg.RedisAddr).Fatal("Failed to connect to Redis")
	}

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create game repository")
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create player repository")
	}

	db, err := resultRepo.Open(cfg.ResultsDBPath)
	if err != nil {
		logger.WithError(err).WithField("path", cfg.ResultsDBPath).Fatal("Failed to open results database")
	}
	defer db.Close()

	results, err := resultRepo.NewSQLite(&resultRepo.Config{DB: db})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create result repository")
	}

	riotClient, err := riot.New(&riot.Config{APIKey: cfg.RiotAPIKey})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Riot client")
	}

	sched, err := scheduler.New(&scheduler.Config{
		Interval: cfg.TrackingInterval,
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create scheduler")
	}

	balancer, err := balance.New(&balance.Config{Shuffler: balance.NewShuffler(nil)})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create balancer")
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Discord session")
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Messenger: session,
		GameRepo:  games,
		Logger:    logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create notifier")
	}

	realClock := clock.New()

	resolver, err := result.New(&result.Config{
		GameRepo:   games,
		PlayerRepo: players,
		ResultRepo: results,
		RiotClient: riotClient,
		Clock:      realClock,
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create result service")
	}

	tracker, err := tracking.New(&tracking.Config{
		GameRepo:   games,
		PlayerRepo: players,
		RiotClient: riotClient,
		Scheduler:  sched,
		Resolver:   resolver,
		Clock:      realClock,
		Notifier:   notifier,
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create tracking service")
	}

	gameService, err := game.New(&game.Config{
		GameRepo:      games,
		PlayerRepo:    players,
		Balancer:      balancer,
		Tracker:       tracker,
		Resolver:      resolver,
		Clock:         realClock,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create game service")
	}

	playerService, err := player.New(&player.Config{
		PlayerRepo: players,
		ResultRepo: results,
		RiotClient: riotClient,
		Clock:      realClock,
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create player service")
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   gameService,
		PlayerService: playerService,
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create bot")
	}

	if err := bot.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start bot")
	}

	// Pick up games that were being tracked before a restart
	resumed, err := tracker.ResumeActive(context.Background(), &tracking.ResumeActiveInput{})
	if err != nil {
		logger.WithError(err).Error("Failed to resume tracked games")
	} else if len(resumed.GameIDs) > 0 {
		logger.WithField("games", resumed.GameIDs).Info("Resumed tracking")
	}

	// Wait for a signal to exit
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	sched.StopAll()
	if err := bot.Stop(); err != nil {
		logger.WithError(err).Error("Error stopping bot")
	}
}

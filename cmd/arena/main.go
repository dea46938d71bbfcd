package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/duelarena/internal/common/clock"
	"github.com/KirkDiggler/duelarena/internal/common/uuid"
	"github.com/KirkDiggler/duelarena/internal/config"
	"github.com/KirkDiggler/duelarena/internal/gate"
	"github.com/KirkDiggler/duelarena/internal/handlers/discord"
	duelRepo "github.com/KirkDiggler/duelarena/internal/repositories/duel"
	eventRepo "github.com/KirkDiggler/duelarena/internal/repositories/event"
	ledgerRepo "github.com/KirkDiggler/duelarena/internal/repositories/stake_ledger"
	duelService "github.com/KirkDiggler/duelarena/internal/services/duel"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// A missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	duels, err := duelRepo.NewRedis(&duelRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create duel repository")
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create stake ledger repository")
	}

	events, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create event repository")
	}

	// Initialize the duel service
	duelSvc, err := duelService.New(&duelService.Config{
		MinStake:      cfg.MinStake,
		MaxStake:      cfg.MaxStake,
		RoundTimeout:  cfg.RoundTimeout,
		AdminAccount:  cfg.AdminAccount,
		DuelRepo:      duels,
		LedgerRepo:    ledger,
		EventRepo:     events,
		Gate:          gate.New(),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create duel service")
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		DuelService:   duelSvc,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}

	logger.Info().Msg("bot has been shut down")
}

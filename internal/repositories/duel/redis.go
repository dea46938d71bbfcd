package duel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/duelarena/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	duelKeyPrefix  = "duel:"
	duelCounterKey = "duel_counter"
	openDuelsKey   = "open_duels"
)

// ErrDuelNotFound is returned when a duel is not found
var ErrDuelNotFound = errors.New("duel not found")

// Config holds configuration for the Redis duel repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed duel repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// NextDuelID allocates the next duel id via an atomic counter
func (r *redisRepository) NextDuelID(ctx context.Context) (uint64, error) {
	id, err := r.client.Incr(ctx, duelCounterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate duel id: %w", err)
	}
	return uint64(id), nil
}

// SaveDuel persists a duel to Redis
func (r *redisRepository) SaveDuel(ctx context.Context, input *SaveDuelInput) error {
	if input == nil || input.Duel == nil {
		return errors.New("input and duel cannot be nil")
	}

	if input.Duel.ID == 0 {
		return errors.New("duel ID cannot be zero")
	}

	// Marshal the duel to JSON
	duelJSON, err := json.Marshal(input.Duel)
	if err != nil {
		return fmt.Errorf("failed to marshal duel: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the duel
	duelKey := fmt.Sprintf("%s%d", duelKeyPrefix, input.Duel.ID)
	pipe.Set(ctx, duelKey, duelJSON, 0)

	// Keep the open-duel index in sync with the status
	if input.Duel.Status == models.DuelStatusOpen {
		pipe.ZAdd(ctx, openDuelsKey, redis.Z{
			Score:  float64(input.Duel.CreatedAt.UnixNano()),
			Member: input.Duel.ID,
		})
	} else {
		pipe.ZRem(ctx, openDuelsKey, input.Duel.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save duel: %w", err)
	}

	return nil
}

// GetDuel retrieves a duel by ID from Redis
func (r *redisRepository) GetDuel(ctx context.Context, input *GetDuelInput) (*models.Duel, error) {
	if input == nil || input.DuelID == 0 {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	duelKey := fmt.Sprintf("%s%d", duelKeyPrefix, input.DuelID)
	duelJSON, err := r.client.Get(ctx, duelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to get duel: %w", err)
	}

	var duel models.Duel
	if err := json.Unmarshal([]byte(duelJSON), &duel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duel: %w", err)
	}

	return &duel, nil
}

// ListOpenDuels retrieves duels waiting for a challenger, oldest first
func (r *redisRepository) ListOpenDuels(ctx context.Context, input *ListOpenDuelsInput) (*ListOpenDuelsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	ids, err := r.client.ZRange(ctx, openDuelsKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list open duels: %w", err)
	}

	if len(ids) == 0 {
		return &ListOpenDuelsOutput{
			Duels: []*models.Duel{},
		}, nil
	}

	// Fetch all duels in one pipeline round trip
	pipe := r.client.Pipeline()
	duelCommands := make([]*redis.StringCmd, 0, len(ids))

	for _, id := range ids {
		duelKey := fmt.Sprintf("%s%s", duelKeyPrefix, id)
		duelCommands = append(duelCommands, pipe.Get(ctx, duelKey))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch open duels: %w", err)
	}

	duels := make([]*models.Duel, 0, len(ids))
	for _, cmd := range duelCommands {
		duelJSON, err := cmd.Result()
		if err != nil {
			// Index entries can outlive the duel record; skip them
			continue
		}

		var duel models.Duel
		if err := json.Unmarshal([]byte(duelJSON), &duel); err != nil {
			return nil, fmt.Errorf("failed to unmarshal duel: %w", err)
		}

		duels = append(duels, &duel)
	}

	return &ListOpenDuelsOutput{
		Duels: duels,
	}, nil
}

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/duelarena/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// eventStreamKey is the single append-only stream all duel events
	// land on, in operation order
	eventStreamKey = "duel_events"
)

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis Streams
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

// AppendEvent appends an event to the stream
func (r *redisRepository) AppendEvent(ctx context.Context, input *AppendEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	if input.Event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: eventStreamKey,
		Values: map[string]interface{}{
			"type":    string(input.Event.Type),
			"duel_id": strconv.FormatUint(input.Event.DuelID, 10),
			"payload": string(eventJSON),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	return nil
}

// ListEvents retrieves events in append order, optionally filtered to
// one duel
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	entries, err := r.client.XRange(ctx, eventStreamKey, "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read event stream: %w", err)
	}

	events := make([]*models.Event, 0, len(entries))
	for _, entry := range entries {
		payload, ok := entry.Values["payload"].(string)
		if !ok {
			return nil, fmt.Errorf("event %s has no payload", entry.ID)
		}

		var ev models.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", entry.ID, err)
		}

		if input.DuelID != 0 && ev.DuelID != input.DuelID {
			continue
		}

		events = append(events, &ev)
		if input.Limit > 0 && len(events) == input.Limit {
			break
		}
	}

	return &ListEventsOutput{
		Events: events,
	}, nil
}

package stake_ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	potKeyPrefix     = "duel_pot:"
	paidKeyPrefix    = "duel_paid:"
	balanceKeyPrefix = "account_balance:"
)

// ErrAlreadyPaid is returned when a pot is paid out a second time. This
// is the invariant that prevents double-spend of a single pot.
var ErrAlreadyPaid = errors.New("duel pot already paid out")

// Config holds configuration for the Redis stake ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stake ledger repository
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

// Deposit adds a side's stake to the duel's pot
func (r *redisRepository) Deposit(ctx context.Context, input *DepositInput) error {
	if input == nil || input.DuelID == 0 || input.Account == "" {
		return errors.New("input, duel ID and account cannot be empty")
	}

	if input.Amount == 0 {
		return errors.New("deposit amount cannot be zero")
	}

	potKey := fmt.Sprintf("%s%d", potKeyPrefix, input.DuelID)
	if err := r.client.IncrBy(ctx, potKey, int64(input.Amount)).Err(); err != nil {
		return fmt.Errorf("failed to deposit stake: %w", err)
	}

	return nil
}

// GetPot retrieves the current pot balance for a duel. A missing pot
// reads as zero.
func (r *redisRepository) GetPot(ctx context.Context, input *GetPotInput) (uint64, error) {
	if input == nil || input.DuelID == 0 {
		return 0, errors.New("input and duel ID cannot be empty")
	}

	potKey := fmt.Sprintf("%s%d", potKeyPrefix, input.DuelID)
	val, err := r.client.Get(ctx, potKey).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get pot: %w", err)
	}

	pot, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse pot balance: %w", err)
	}

	return pot, nil
}

// Payout transfers the full pot to one account. The paid marker is
// guarded with a WATCH transaction so a concurrent second payout for the
// same duel fails with ErrAlreadyPaid instead of draining the pot twice.
func (r *redisRepository) Payout(ctx context.Context, input *PayoutInput) (*PayoutOutput, error) {
	if input == nil || input.DuelID == 0 || input.Account == "" {
		return nil, errors.New("input, duel ID and account cannot be empty")
	}

	var amount uint64
	err := r.payOnce(ctx, input.DuelID, func(pot uint64, pipe redis.Pipeliner) error {
		amount = pot
		balanceKey := fmt.Sprintf("%s%s", balanceKeyPrefix, input.Account)
		pipe.IncrBy(ctx, balanceKey, int64(pot))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PayoutOutput{
		Amount: amount,
	}, nil
}

// PayoutSplit transfers half the pot to each account. The pot is always
// twice the per-side stake, so the split leaves no remainder.
func (r *redisRepository) PayoutSplit(ctx context.Context, input *PayoutSplitInput) (*PayoutSplitOutput, error) {
	if input == nil || input.DuelID == 0 || input.AccountA == "" || input.AccountB == "" {
		return nil, errors.New("input, duel ID and accounts cannot be empty")
	}

	var half uint64
	err := r.payOnce(ctx, input.DuelID, func(pot uint64, pipe redis.Pipeliner) error {
		if pot%2 != 0 {
			return fmt.Errorf("pot %d is not evenly splittable", pot)
		}
		half = pot / 2
		pipe.IncrBy(ctx, fmt.Sprintf("%s%s", balanceKeyPrefix, input.AccountA), int64(half))
		pipe.IncrBy(ctx, fmt.Sprintf("%s%s", balanceKeyPrefix, input.AccountB), int64(half))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PayoutSplitOutput{
		AmountEach: half,
	}, nil
}

// payOnce drains the pot under the once-only paid marker. The credit
// function queues balance increments on the transaction pipeline.
func (r *redisRepository) payOnce(ctx context.Context, duelID uint64, credit func(pot uint64, pipe redis.Pipeliner) error) error {
	potKey := fmt.Sprintf("%s%d", potKeyPrefix, duelID)
	paidKey := fmt.Sprintf("%s%d", paidKeyPrefix, duelID)

	txn := func(tx *redis.Tx) error {
		paid, err := tx.Exists(ctx, paidKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check paid marker: %w", err)
		}
		if paid > 0 {
			return ErrAlreadyPaid
		}

		val, err := tx.Get(ctx, potKey).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.New("no pot recorded for duel")
			}
			return fmt.Errorf("failed to get pot: %w", err)
		}

		pot, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse pot balance: %w", err)
		}
		if pot == 0 {
			return errors.New("pot is empty")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := credit(pot, pipe); err != nil {
				return err
			}
			pipe.Set(ctx, potKey, "0", 0)
			pipe.Set(ctx, paidKey, "1", 0)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txn, paidKey, potKey)
	if err == redis.TxFailedErr {
		// A concurrent payout won the race
		return ErrAlreadyPaid
	}
	if err != nil {
		if errors.Is(err, ErrAlreadyPaid) {
			return ErrAlreadyPaid
		}
		return fmt.Errorf("failed to pay out pot: %w", err)
	}

	return nil
}

// GetBalance retrieves the paid-out balance of an account. A missing
// balance reads as zero.
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (uint64, error) {
	if input == nil || input.Account == "" {
		return 0, errors.New("input and account cannot be empty")
	}

	balanceKey := fmt.Sprintf("%s%s", balanceKeyPrefix, input.Account)
	val, err := r.client.Get(ctx, balanceKey).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	balance, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance: %w", err)
	}

	return balance, nil
}

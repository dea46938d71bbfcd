package stake_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/duelarena/internal/repositories/stake_ledger Repository

import "context"

// Repository defines the interface for stake escrow accounting. It owns
// per-duel pots and per-account balances; it trusts the duel service to
// call Deposit once per side and enforces itself that a pot is drained
// at most once.
type Repository interface {
	// Deposit adds a side's stake to the duel's pot
	Deposit(ctx context.Context, input *DepositInput) error

	// GetPot retrieves the current pot balance for a duel
	GetPot(ctx context.Context, input *GetPotInput) (uint64, error)

	// Payout transfers the full pot to one account, exactly once
	Payout(ctx context.Context, input *PayoutInput) (*PayoutOutput, error)

	// PayoutSplit transfers half the pot to each account, exactly once
	PayoutSplit(ctx context.Context, input *PayoutSplitInput) (*PayoutSplitOutput, error)

	// GetBalance retrieves the paid-out balance of an account
	GetBalance(ctx context.Context, input *GetBalanceInput) (uint64, error)
}

package duel

import "context"

// Service defines the interface for duel operations
type Service interface {
	// CreateDuel opens a new duel and escrows the initiator's stake
	CreateDuel(ctx context.Context, input *CreateDuelInput) (*CreateDuelOutput, error)

	// JoinDuel adds a challenger to an open duel and escrows their stake
	JoinDuel(ctx context.Context, input *JoinDuelInput) (*JoinDuelOutput, error)

	// CommitMove stores a side's hidden move commitment for the current round
	CommitMove(ctx context.Context, input *CommitMoveInput) (*CommitMoveOutput, error)

	// RevealMove opens a side's commitment; the second reveal of a round
	// resolves it and may settle the duel and pay the pot
	RevealMove(ctx context.Context, input *RevealMoveInput) (*RevealMoveOutput, error)

	// GetDuel retrieves a duel record; open to any caller
	GetDuel(ctx context.Context, input *GetDuelInput) (*GetDuelOutput, error)

	// ListOpenDuels retrieves duels waiting for a challenger
	ListOpenDuels(ctx context.Context, input *ListOpenDuelsInput) (*ListOpenDuelsOutput, error)

	// CancelDuel cancels an open duel and refunds the initiator's stake
	CancelDuel(ctx context.Context, input *CancelDuelInput) (*CancelDuelOutput, error)

	// ClaimForfeit resolves an active duel whose round deadline passed
	// in favor of the participant who kept playing
	ClaimForfeit(ctx context.Context, input *ClaimForfeitInput) (*ClaimForfeitOutput, error)

	// GetBalance retrieves an account's paid-out balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// Pause blocks new duel creation and joining; admin only
	Pause(ctx context.Context, input *PauseInput) error

	// Unpause lifts the pause; admin only
	Unpause(ctx context.Context, input *UnpauseInput) error
}

package duel

import (
	"time"

	"github.com/KirkDiggler/duelarena/internal/common/clock"
	"github.com/KirkDiggler/duelarena/internal/common/uuid"
	"github.com/KirkDiggler/duelarena/internal/gate"
	"github.com/KirkDiggler/duelarena/internal/models"
	duelRepo "github.com/KirkDiggler/duelarena/internal/repositories/duel"
	eventRepo "github.com/KirkDiggler/duelarena/internal/repositories/event"
	ledgerRepo "github.com/KirkDiggler/duelarena/internal/repositories/stake_ledger"
)

const (
	// DefaultMinStake is 0.001 coin in base units
	DefaultMinStake uint64 = 1_000_000

	// DefaultMaxStake is 10 coins in base units
	DefaultMaxStake uint64 = 10_000_000_000

	// DefaultRoundTimeout is how long a round may sit unfinished before
	// the opponent can claim a forfeiture
	DefaultRoundTimeout = 24 * time.Hour
)

// Config holds configuration for the duel service
type Config struct {
	// MinStake is the inclusive lower stake bound in base units
	MinStake uint64

	// MaxStake is the inclusive upper stake bound in base units
	MaxStake uint64

	// RoundTimeout is the per-round deadline for forfeiture claims
	RoundTimeout time.Duration

	// AdminAccount may pause the arena and cancel open duels
	AdminAccount string

	// Repository dependencies
	DuelRepo   duelRepo.Repository
	LedgerRepo ledgerRepo.Repository
	EventRepo  eventRepo.Repository

	// Service dependencies
	Gate          *gate.Gate
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateDuelInput contains parameters for creating a new duel
type CreateDuelInput struct {
	// CallerID is the account creating the duel
	CallerID string

	// TotalRounds is the odd round count, one of 3, 5 or 7
	TotalRounds int

	// Stake is the per-side stake in base units
	Stake uint64
}

// CreateDuelOutput contains the result of creating a new duel
type CreateDuelOutput struct {
	// DuelID is the identifier of the created duel
	DuelID uint64
}

// JoinDuelInput contains parameters for joining an open duel
type JoinDuelInput struct {
	// DuelID is the duel to join
	DuelID uint64

	// CallerID is the account joining as challenger
	CallerID string

	// Stake must equal the duel's stake exactly
	Stake uint64
}

// JoinDuelOutput contains the result of joining a duel
type JoinDuelOutput struct {
	// Duel is the updated duel record
	Duel *models.Duel
}

// CommitMoveInput contains parameters for committing a hidden move
type CommitMoveInput struct {
	// DuelID is the duel being played
	DuelID uint64

	// CallerID is the participant committing
	CallerID string

	// Digest is the 32-byte commitment digest
	Digest []byte
}

// CommitMoveOutput contains the result of committing a move
type CommitMoveOutput struct {
	// Round is the round the commitment applies to
	Round int

	// BothCommitted indicates the round is ready for reveals
	BothCommitted bool
}

// RevealMoveInput contains parameters for revealing a committed move
type RevealMoveInput struct {
	// DuelID is the duel being played
	DuelID uint64

	// CallerID is the participant revealing
	CallerID string

	// Move is the claimed move
	Move models.Move

	// Secret is the hex-encoded 128-bit secret used at commit time
	Secret string
}

// RevealMoveOutput contains the result of revealing a move
type RevealMoveOutput struct {
	// Round is the round the reveal applied to
	Round int

	// RoundComplete indicates both sides revealed and the round resolved
	RoundComplete bool

	// RoundWinner is the side that won the round; empty on a tie or an
	// unresolved round
	RoundWinner models.Side

	// Scores is the score line after any resolution
	Scores models.Scores

	// Settled indicates the duel reached a terminal state
	Settled bool

	// Winner is the winning side when settled; empty on an even split
	Winner models.Side

	// PotPaid is the total amount paid out when settled
	PotPaid uint64
}

// GetDuelInput contains parameters for fetching a duel
type GetDuelInput struct {
	DuelID uint64
}

// GetDuelOutput contains the fetched duel
type GetDuelOutput struct {
	Duel *models.Duel
}

// ListOpenDuelsInput contains parameters for listing open duels
type ListOpenDuelsInput struct {
	// Limit caps the number of duels returned; zero means no cap
	Limit int
}

// ListOpenDuelsOutput contains the open duels, oldest first
type ListOpenDuelsOutput struct {
	Duels []*models.Duel
}

// CancelDuelInput contains parameters for cancelling an open duel
type CancelDuelInput struct {
	DuelID uint64

	// CallerID must be the initiator or the admin account
	CallerID string
}

// CancelDuelOutput contains the result of cancelling a duel
type CancelDuelOutput struct {
	// Refunded is the amount returned to the initiator
	Refunded uint64
}

// ClaimForfeitInput contains parameters for claiming a forfeiture
type ClaimForfeitInput struct {
	DuelID uint64

	// CallerID is the participant claiming the forfeiture
	CallerID string
}

// ClaimForfeitOutput contains the result of a forfeiture claim
type ClaimForfeitOutput struct {
	// Won indicates the claimant took the whole pot; false means both
	// sides were idle and the stakes were split back
	Won bool

	// Amount is what the claimant received
	Amount uint64
}

// GetBalanceInput contains parameters for a balance lookup
type GetBalanceInput struct {
	Account string
}

// GetBalanceOutput contains the account balance in base units
type GetBalanceOutput struct {
	Balance uint64
}

// PauseInput identifies the caller of a pause request
type PauseInput struct {
	CallerID string
}

// UnpauseInput identifies the caller of an unpause request
type UnpauseInput struct {
	CallerID string
}

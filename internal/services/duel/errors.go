package duel

// DuelError is a custom error type for duel-related errors
type DuelError string

// Error implements the error interface
func (e DuelError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidStake        DuelError = "stake amount out of bounds"
	ErrInvalidRoundCount   DuelError = "round count must be 3, 5 or 7"
	ErrDuelNotFound        DuelError = "duel not found"
	ErrSelfJoin            DuelError = "cannot join your own duel"
	ErrStakeMismatch       DuelError = "stake must match the duel stake exactly"
	ErrInvalidState        DuelError = "duel is not in a valid state for this operation"
	ErrNotAParticipant     DuelError = "caller is not a participant in this duel"
	ErrAlreadyCommitted    DuelError = "move already committed for this round"
	ErrNotCommitted        DuelError = "no commitment stored for this round"
	ErrAlreadyRevealed     DuelError = "move already revealed for this round"
	ErrInvalidReveal       DuelError = "revealed move and secret do not match the commitment"
	ErrInvalidDigest       DuelError = "commitment digest must be 32 bytes"
	ErrInvalidMove         DuelError = "unknown move"
	ErrAlreadyPaid         DuelError = "duel pot already paid out"
	ErrPaused              DuelError = "arena is paused"
	ErrUnauthorized        DuelError = "caller is not authorized for this operation"
	ErrDeadlineNotPassed   DuelError = "round deadline has not passed"
	ErrForfeitNotClaimable DuelError = "caller is not entitled to a forfeiture claim"
	ErrNilConfig           DuelError = "config cannot be nil"
	ErrNilDuelRepo         DuelError = "duel repository cannot be nil"
	ErrNilLedgerRepo       DuelError = "stake ledger repository cannot be nil"
	ErrNilEventRepo        DuelError = "event repository cannot be nil"
	ErrNilGate             DuelError = "gate cannot be nil"
	ErrNilClock            DuelError = "clock cannot be nil"
	ErrNilUUIDGenerator    DuelError = "UUID generator cannot be nil"
)

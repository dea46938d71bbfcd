package models

import (
	"time"
)

// DuelStatus represents the current state of a duel
type DuelStatus string

const (
	// DuelStatusOpen indicates a duel is waiting for a challenger
	DuelStatusOpen DuelStatus = "open"

	// DuelStatusActive indicates a duel is in progress
	DuelStatusActive DuelStatus = "active"

	// DuelStatusSettled indicates a duel finished and the pot was paid
	DuelStatusSettled DuelStatus = "settled"

	// DuelStatusCancelled indicates a duel was cancelled and stakes refunded
	DuelStatusCancelled DuelStatus = "cancelled"
)

// Terminal reports whether the status permits no further mutation
func (s DuelStatus) Terminal() bool {
	return s == DuelStatusSettled || s == DuelStatusCancelled
}

// Side identifies one of the two duel participants
type Side string

const (
	// SideInitiator is the account that created the duel
	SideInitiator Side = "initiator"

	// SideChallenger is the account that joined the duel
	SideChallenger Side = "challenger"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideInitiator {
		return SideChallenger
	}
	return SideInitiator
}

// SideRecord holds one side's commitment and reveal for a single round
type SideRecord struct {
	// Commitment is the 32-byte digest binding the hidden move, set once
	Commitment []byte

	// Move is the revealed move; meaningless until Revealed is true
	Move Move

	// Revealed indicates the side has opened its commitment this round
	Revealed bool
}

// Committed reports whether a commitment has been stored
func (r *SideRecord) Committed() bool {
	return len(r.Commitment) > 0
}

// RoundRecord holds both sides' records for a single round
type RoundRecord struct {
	Initiator  SideRecord
	Challenger SideRecord
}

// BySide returns a pointer to the record for the given side
func (r *RoundRecord) BySide(side Side) *SideRecord {
	if side == SideInitiator {
		return &r.Initiator
	}
	return &r.Challenger
}

// Scores tracks round wins per side
type Scores struct {
	Initiator  int
	Challenger int
}

// Duel represents one staked match between two accounts
type Duel struct {
	// ID is the monotonically increasing duel identifier, starting at 1.
	// Zero is reserved as "no duel".
	ID uint64

	// Initiator is the account that created the duel
	Initiator string

	// Challenger is the account that joined; empty while the duel is open
	Challenger string

	// StakeAmount is the per-side stake in base units, fixed at creation
	StakeAmount uint64

	// TotalRounds is the odd round count, one of 3, 5 or 7
	TotalRounds int

	// CurrentRound is the round being played, starting at 1. It never
	// exceeds TotalRounds and only advances after both sides reveal.
	CurrentRound int

	// Status is the current lifecycle state
	Status DuelStatus

	// Scores holds round wins per side
	Scores Scores

	// Rounds holds commit/reveal records, indexed by round-1
	Rounds []RoundRecord

	// RoundDeadline is when the current round becomes forfeitable
	RoundDeadline time.Time

	// Winner is the winning side once settled; empty on a split or cancel
	Winner Side `json:",omitempty"`

	// CreatedAt is when the duel was created
	CreatedAt time.Time

	// UpdatedAt is when the duel was last updated
	UpdatedAt time.Time
}

// IsParticipant reports whether the account is one of the two players
func (d *Duel) IsParticipant(account string) bool {
	return account == d.Initiator || (d.Challenger != "" && account == d.Challenger)
}

// SideOf returns which side the account plays. The caller must have
// checked IsParticipant first; unknown accounts map to the challenger
// side only if they match it.
func (d *Duel) SideOf(account string) Side {
	if account == d.Initiator {
		return SideInitiator
	}
	return SideChallenger
}

// AccountOf returns the account playing the given side
func (d *Duel) AccountOf(side Side) string {
	if side == SideInitiator {
		return d.Initiator
	}
	return d.Challenger
}

// Round returns the record for the given 1-based round number
func (d *Duel) Round(n int) *RoundRecord {
	return &d.Rounds[n-1]
}

package models

import (
	"time"
)

// EventType identifies an entry in the duel event stream
type EventType string

const (
	// EventDuelCreated is emitted when a duel is created
	EventDuelCreated EventType = "duel_created"

	// EventDuelJoined is emitted when a challenger joins
	EventDuelJoined EventType = "duel_joined"

	// EventMoveCommitted is emitted when a side stores a commitment
	EventMoveCommitted EventType = "move_committed"

	// EventMoveRevealed is emitted when a side opens its commitment
	EventMoveRevealed EventType = "move_revealed"

	// EventRoundResolved is emitted when both reveals land and the round scores
	EventRoundResolved EventType = "round_resolved"

	// EventDuelSettled is emitted when the pot is paid out
	EventDuelSettled EventType = "duel_settled"

	// EventDuelCancelled is emitted when a duel is cancelled and refunded
	EventDuelCancelled EventType = "duel_cancelled"
)

// Event is one append-only entry in the duel event stream. The stream is
// the only way the external stats/leaderboard service learns of outcomes,
// so entries carry enough to reconstruct a duel's history.
type Event struct {
	// ID is the unique identifier for the event record
	ID string

	// Type is the event kind
	Type EventType

	// DuelID is the duel the event belongs to
	DuelID uint64

	// Actor is the account that triggered the event, if any
	Actor string `json:",omitempty"`

	// Side is the side the actor played, for commit/reveal events
	Side Side `json:",omitempty"`

	// Move is the revealed move, for move_revealed events
	Move *Move `json:",omitempty"`

	// Stake is the per-side stake, for duel_created events
	Stake uint64 `json:",omitempty"`

	// TotalRounds is the round count, for duel_created events
	TotalRounds int `json:",omitempty"`

	// Round is the round number, for round_resolved events
	Round int `json:",omitempty"`

	// Winner is the winning side for round_resolved and duel_settled
	// events; empty means a tie or an even split
	Winner Side `json:",omitempty"`

	// Pot is the total amount paid out, for duel_settled events
	Pot uint64 `json:",omitempty"`

	// Timestamp is when the event was recorded
	Timestamp time.Time
}

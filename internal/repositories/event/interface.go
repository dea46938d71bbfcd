package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/duelarena/internal/repositories/event Repository

import (
	"context"
)

// Repository defines the interface for the append-only duel event log.
// The log is ordered and is the sole feed for the external stats and
// leaderboard service.
type Repository interface {
	// AppendEvent appends an event to the log
	AppendEvent(ctx context.Context, input *AppendEventInput) error

	// ListEvents retrieves events in append order
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
}

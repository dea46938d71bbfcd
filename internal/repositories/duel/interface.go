package duel

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/duelarena/internal/repositories/duel Repository

import (
	"context"

	"github.com/KirkDiggler/duelarena/internal/models"
)

// Repository defines the interface for duel data persistence
type Repository interface {
	// NextDuelID allocates the next duel id. Ids are monotonically
	// increasing from 1 and never reused.
	NextDuelID(ctx context.Context) (uint64, error)

	// SaveDuel persists a duel
	SaveDuel(ctx context.Context, input *SaveDuelInput) error

	// GetDuel retrieves a duel by ID
	GetDuel(ctx context.Context, input *GetDuelInput) (*models.Duel, error)

	// ListOpenDuels retrieves duels waiting for a challenger
	ListOpenDuels(ctx context.Context, input *ListOpenDuelsInput) (*ListOpenDuelsOutput, error)
}

package duel

import "github.com/KirkDiggler/duelarena/internal/models"

type SaveDuelInput struct {
	Duel *models.Duel
}

type GetDuelInput struct {
	DuelID uint64
}

type ListOpenDuelsInput struct {
	// Limit caps the number of duels returned; zero means no cap
	Limit int
}

type ListOpenDuelsOutput struct {
	Duels []*models.Duel
}

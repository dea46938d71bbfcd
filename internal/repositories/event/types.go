package event

import "github.com/KirkDiggler/duelarena/internal/models"

type AppendEventInput struct {
	Event *models.Event
}

type ListEventsInput struct {
	// DuelID filters the log to one duel; zero returns all events
	DuelID uint64

	// Limit caps the number of events returned; zero means no cap
	Limit int
}

type ListEventsOutput struct {
	Events []*models.Event
}

package repository

import (
	"context"
	"errors"

	"github.com/al-qunnut/TicketFlow/internal/models"
)

// ErrNotFound is returned when no ticket matches the given id.
var ErrNotFound = errors.New("ticket not found")

// TicketRepository owns the persisted ticket collection. Implementations read
// the collection fresh on every call and write it back whole on mutation; no
// copy is cached across calls.
type TicketRepository interface {
	List(ctx context.Context) ([]models.Ticket, error)
	// Get returns (nil, nil) when no ticket has the given id.
	Get(ctx context.Context, id string) (*models.Ticket, error)
	Insert(ctx context.Context, t models.Ticket) error
	// Replace swaps the stored ticket with the same ID; ErrNotFound if absent.
	Replace(ctx context.Context, t models.Ticket) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.Stats, error)
}

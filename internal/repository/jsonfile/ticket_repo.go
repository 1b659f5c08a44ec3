// Package jsonfile persists the ticket collection as a single JSON array on
// disk. Every operation reloads the whole document and mutations rewrite it
// wholesale; a store-scoped mutex serializes the read-modify-write cycle so
// concurrent requests within this process cannot interleave. Concurrent
// writers in other processes still race (last write wins).
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/repository"
)

type TicketRepo struct {
	path string
	mu   sync.Mutex
}

// New opens (and if necessary creates) the collection file at path.
func New(path string) (*TicketRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("create data file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return &TicketRepo{path: path}, nil
}

func (r *TicketRepo) load() ([]models.Ticket, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	tickets := []models.Ticket{}
	if len(data) == 0 {
		return tickets, nil
	}
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return tickets, nil
}

func (r *TicketRepo) save(tickets []models.Ticket) error {
	data, err := json.MarshalIndent(tickets, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *TicketRepo) List(ctx context.Context) ([]models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *TicketRepo) Get(ctx context.Context, id string) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tickets, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, nil
}

func (r *TicketRepo) Insert(ctx context.Context, t models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tickets, err := r.load()
	if err != nil {
		return err
	}
	tickets = append(tickets, t)
	return r.save(tickets)
}

func (r *TicketRepo) Replace(ctx context.Context, t models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tickets, err := r.load()
	if err != nil {
		return err
	}
	for i := range tickets {
		if tickets[i].ID == t.ID {
			tickets[i] = t
			return r.save(tickets)
		}
	}
	return repository.ErrNotFound
}

func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tickets, err := r.load()
	if err != nil {
		return err
	}
	kept := tickets[:0]
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tickets) {
		return repository.ErrNotFound
	}
	return r.save(kept)
}

func (r *TicketRepo) Stats(ctx context.Context) (models.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tickets, err := r.load()
	if err != nil {
		return models.Stats{}, err
	}
	s := models.Stats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case models.StatusOpen:
			s.Open++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusClosed:
			s.Closed++
		}
	}
	s.Resolved = s.Closed
	return s, nil
}

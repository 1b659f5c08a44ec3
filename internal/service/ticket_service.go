package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/repository"
	"github.com/al-qunnut/TicketFlow/internal/validation"
)

// Result is the uniform outcome shape consumed by the HTTP boundary. Exactly
// one of FieldErrors or Errors is set on failure; the returned Go error is
// reserved for storage faults.
type Result struct {
	Success     bool
	Ticket      *models.Ticket
	FieldErrors map[string]string
	Errors      []string
}

func failNotFound() Result {
	return Result{Errors: []string{"Ticket not found"}}
}

// TicketService composes the validator and the repository into the CRUD and
// stats operations. It holds no ticket state of its own.
type TicketService struct {
	repo repository.TicketRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewTicketService(repo repository.TicketRepository, log zerolog.Logger) *TicketService {
	return &TicketService{repo: repo, log: log, now: time.Now}
}

// WithClock overrides the timestamp source. Intended for tests.
func (s *TicketService) WithClock(now func() time.Time) *TicketService {
	s.now = now
	return s
}

func newTicketID(now time.Time) string {
	// timestamp plus random suffix: unique across restarts, opaque to callers
	return fmt.Sprintf("ticket_%d_%s", now.UnixNano(), uuid.NewString()[:8])
}

func (s *TicketService) Create(ctx context.Context, p validation.TicketPayload) (Result, error) {
	if errs := validation.Ticket(p); len(errs) > 0 {
		return Result{FieldErrors: errs}, nil
	}
	now := s.now()
	stamp := now.Format(models.TimeLayout)
	t := models.Ticket{
		ID:          newTicketID(now),
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return Result{}, err
	}
	s.log.Debug().Str("id", t.ID).Msg("ticket created")
	return Result{Success: true, Ticket: &t}, nil
}

func (s *TicketService) Update(ctx context.Context, id string, p validation.TicketPayload) (Result, error) {
	if errs := validation.Ticket(p); len(errs) > 0 {
		return Result{FieldErrors: errs}, nil
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if existing == nil {
		return failNotFound(), nil
	}
	t := models.Ticket{
		ID:          existing.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.now().Format(models.TimeLayout),
	}
	if err := s.repo.Replace(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failNotFound(), nil
		}
		return Result{}, err
	}
	s.log.Debug().Str("id", t.ID).Msg("ticket updated")
	return Result{Success: true, Ticket: &t}, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) (Result, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failNotFound(), nil
		}
		return Result{}, err
	}
	s.log.Debug().Str("id", id).Msg("ticket deleted")
	return Result{Success: true}, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*models.Ticket, error) {
	return s.repo.Get(ctx, id)
}

func (s *TicketService) List(ctx context.Context) ([]models.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketService) Stats(ctx context.Context) (models.Stats, error) {
	return s.repo.Stats(ctx)
}

package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/repository/jsonfile"
	"github.com/al-qunnut/TicketFlow/internal/service"
	"github.com/al-qunnut/TicketFlow/internal/validation"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(t *testing.T) (*service.TicketService, *fakeClock) {
	t.Helper()
	repo, err := jsonfile.New(filepath.Join(t.TempDir(), "tickets.json"))
	require.NoError(t, err)
	clk := &fakeClock{t: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}
	return service.NewTicketService(repo, zerolog.Nop()).WithClock(clk.Now), clk
}

func TestCreateReturnsInputFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, validation.TicketPayload{
		Title:       "Printer broken",
		Description: "3rd floor printer jams",
		Status:      models.StatusOpen,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Ticket)

	tk := res.Ticket
	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, "Printer broken", tk.Title)
	assert.Equal(t, "3rd floor printer jams", tk.Description)
	assert.Equal(t, models.StatusOpen, tk.Status)
	assert.Equal(t, models.PriorityHigh, tk.Priority)
	assert.Equal(t, "2026-08-30 10:00:00", tk.CreatedAt)
	assert.Equal(t, tk.CreatedAt, tk.UpdatedAt)
}

// The absent-field default is applied at the form boundary; by the time a
// payload reaches the service an empty priority means one was posted empty,
// and it is rejected the same way the other enum violations are.
func TestCreateRejectsEmptyPriority(t *testing.T) {
	svc, _ := newTestService(t)
	res, err := svc.Create(context.Background(), validation.TicketPayload{Title: "abc", Status: models.StatusOpen, Priority: ""})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Priority must be one of: low, medium, high", res.FieldErrors["priority"])

	tickets, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestCreateThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, validation.TicketPayload{Title: "abc", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	require.True(t, res.Success)

	got, err := svc.Get(ctx, res.Ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *res.Ticket, *got)
}

func TestCreateValidationFailureLeavesCollectionUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validation.TicketPayload{Title: "seed", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	before, err := svc.List(ctx)
	require.NoError(t, err)

	res, err := svc.Create(ctx, validation.TicketPayload{Title: "ab", Status: "pending", Priority: models.PriorityMedium})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, map[string]string{
		"title":  "Title must be at least 3 characters long",
		"status": "Status must be one of: open, in_progress, closed",
	}, res.FieldErrors)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdate(t *testing.T) {
	svc, clk := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validation.TicketPayload{Title: "Printer broken", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	require.True(t, created.Success)
	id := created.Ticket.ID

	clk.Advance(time.Second)
	res, err := svc.Update(ctx, id, validation.TicketPayload{Title: "Printer fixed", Status: models.StatusClosed, Priority: models.PriorityMedium})
	require.NoError(t, err)
	require.True(t, res.Success)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Printer fixed", got.Title)
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.Equal(t, created.Ticket.CreatedAt, got.CreatedAt)
	assert.Greater(t, got.UpdatedAt, created.Ticket.UpdatedAt)
}

func TestUpdateValidationFailureLeavesTicketUnchanged(t *testing.T) {
	svc, clk := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validation.TicketPayload{Title: "Printer broken", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	id := created.Ticket.ID

	clk.Advance(time.Second)
	res, err := svc.Update(ctx, id, validation.TicketPayload{Title: "", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Title is required", res.FieldErrors["title"])

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, *created.Ticket, *got)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	res, err := svc.Update(context.Background(), "ghost", validation.TicketPayload{Title: "abc", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"Ticket not found"}, res.Errors)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validation.TicketPayload{Title: "abc", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	id := created.Ticket.ID

	res, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.Success)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	res, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"Ticket not found"}, res.Errors)
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	statuses := []string{
		models.StatusOpen, models.StatusOpen,
		models.StatusInProgress,
		models.StatusClosed, models.StatusClosed, models.StatusClosed,
	}
	for _, st := range statuses {
		res, err := svc.Create(ctx, validation.TicketPayload{Title: "Ticket", Status: st, Priority: models.PriorityMedium})
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Total: 6, Open: 2, InProgress: 1, Closed: 3, Resolved: 3}, stats)
}

// Mirrors the full lifecycle: create, update, delete.
func TestTicketLifecycle(t *testing.T) {
	svc, clk := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validation.TicketPayload{Title: "Printer broken", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, models.PriorityMedium, created.Ticket.Priority)
	assert.Equal(t, "", created.Ticket.Description)
	assert.NotEmpty(t, created.Ticket.ID)
	assert.Equal(t, created.Ticket.CreatedAt, created.Ticket.UpdatedAt)

	clk.Advance(2 * time.Second)
	updated, err := svc.Update(ctx, created.Ticket.ID, validation.TicketPayload{Title: "Printer fixed", Status: models.StatusClosed, Priority: models.PriorityMedium})
	require.NoError(t, err)
	require.True(t, updated.Success)
	assert.Greater(t, updated.Ticket.UpdatedAt, created.Ticket.UpdatedAt)
	assert.Equal(t, created.Ticket.CreatedAt, updated.Ticket.CreatedAt)

	deleted, err := svc.Delete(ctx, created.Ticket.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	got, err := svc.Get(ctx, created.Ticket.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

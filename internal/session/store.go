// Package session provides the server-side session store. A session is keyed
// by an opaque id; the authenticated identity and the opaque auth token both
// live server-side, never in the cookie.
package session

import (
	"context"
	"time"

	"github.com/al-qunnut/TicketFlow/internal/models"
)

// TTL is how long a session stays valid after creation.
const TTL = 24 * time.Hour

// Flash is a one-shot message consumed by the next rendered page.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Record is the server-side session state. A caller is authenticated only
// when both Token and User are present.
type Record struct {
	Token     string          `json:"token"`
	User      models.Identity `json:"user"`
	Flash     *Flash          `json:"flash,omitempty"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Store is a server-side session store.
type Store interface {
	// Create starts a session for user and returns its id.
	Create(ctx context.Context, user models.Identity) (string, error)
	// Get returns (nil, nil) for unknown or expired session ids.
	Get(ctx context.Context, id string) (*Record, error)
	Destroy(ctx context.Context, id string) error
	SetFlash(ctx context.Context, id string, f Flash) error
	// PopFlash returns the pending flash, if any, and clears it.
	PopFlash(ctx context.Context, id string) (*Flash, error)
}

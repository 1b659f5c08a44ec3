package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/utils"
)

// ErrEmailTaken is returned by Register when the email is already in use.
var ErrEmailTaken = errors.New("email is already registered")

// CredentialStore verifies and registers login credentials. Injected so the
// authentication policy is swappable without touching routing logic.
type CredentialStore interface {
	Verify(email, password string) (models.Identity, bool)
	Register(email, name, password string) error
}

type credential struct {
	name string
	hash string
}

// MemoryCredentials is a process-lifetime credential store with bcrypt-hashed
// passwords, keyed by lower-cased email.
type MemoryCredentials struct {
	mu    sync.RWMutex
	users map[string]credential
}

func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{users: map[string]credential{}}
}

func (c *MemoryCredentials) Register(email, name, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	key := strings.ToLower(strings.TrimSpace(email))
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.users[key]; exists {
		return ErrEmailTaken
	}
	c.users[key] = credential{name: name, hash: hash}
	return nil
}

func (c *MemoryCredentials) Verify(email, password string) (models.Identity, bool) {
	key := strings.ToLower(strings.TrimSpace(email))
	c.mu.RLock()
	cred, ok := c.users[key]
	c.mu.RUnlock()
	if !ok || !utils.CheckPassword(cred.hash, password) {
		return models.Identity{}, false
	}
	return models.Identity{Email: key, Name: cred.name}, true
}

package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	creds    CredentialStore
	sessions session.Store
}

func NewAuthService(creds CredentialStore, sessions session.Store) *AuthService {
	return &AuthService{creds: creds, sessions: sessions}
}

// Login verifies credentials and starts a session, returning its id.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, models.Identity, error) {
	user, ok := a.creds.Verify(email, password)
	if !ok {
		return "", models.Identity{}, ErrInvalidCredentials
	}
	sid, err := a.sessions.Create(ctx, user)
	if err != nil {
		return "", models.Identity{}, err
	}
	return sid, user, nil
}

// SignupInput is the raw signup form.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func validateSignup(in SignupInput) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "Invalid email format"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if utf8.RuneCountInString(in.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if in.Password != in.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs
}

// Signup registers the account and starts a session. Field errors are
// returned as a map; a non-nil error means a system fault.
func (a *AuthService) Signup(ctx context.Context, in SignupInput) (string, models.Identity, map[string]string, error) {
	if errs := validateSignup(in); len(errs) > 0 {
		return "", models.Identity{}, errs, nil
	}
	if err := a.creds.Register(in.Email, strings.TrimSpace(in.Name), in.Password); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return "", models.Identity{}, map[string]string{"email": "Email is already registered"}, nil
		}
		return "", models.Identity{}, nil, err
	}
	user, ok := a.creds.Verify(in.Email, in.Password)
	if !ok {
		return "", models.Identity{}, nil, errors.New("registered account failed verification")
	}
	sid, err := a.sessions.Create(ctx, user)
	if err != nil {
		return "", models.Identity{}, nil, err
	}
	return sid, user, nil, nil
}

func (a *AuthService) Logout(ctx context.Context, sessionID string) error {
	return a.sessions.Destroy(ctx, sessionID)
}

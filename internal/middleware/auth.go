package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/al-qunnut/TicketFlow/internal/config"
	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/session"
	"github.com/al-qunnut/TicketFlow/internal/utils"
)

type ctxKey string

const (
	CtxSessionID ctxKey = "sid"
	ctxIdentity  ctxKey = "identity"
)

// Identity returns the authenticated user placed in ctx by WithSession.
func Identity(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(models.Identity)
	return id, ok
}

// WithSession resolves the session cookie to a server-side record and puts
// the identity and session id in the request context. Requests without a
// valid session pass through unauthenticated; the gates below decide.
func WithSession(log zerolog.Logger, cfg config.Config, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie("session")
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := utils.ParseJWT(cfg.SessionSecret, c.Value)
			if err != nil {
				// clear broken/expired cookie so it stops being sent
				clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			rec, err := sessions.Get(r.Context(), claims.SessionID)
			if err != nil {
				log.Error().Err(err).Msg("session lookup failed")
				next.ServeHTTP(w, r)
				return
			}
			if rec == nil || rec.Token == "" {
				clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxSessionID, claims.SessionID)
			ctx = context.WithValue(ctx, ctxIdentity, rec.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePage redirects unauthenticated requests to the login page.
func RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Identity(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAPI rejects unauthenticated requests with a JSON 401.
func RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Identity(r.Context()); !ok {
			utils.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

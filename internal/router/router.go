package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/al-qunnut/TicketFlow/internal/config"
	"github.com/al-qunnut/TicketFlow/internal/handlers"
	"github.com/al-qunnut/TicketFlow/internal/middleware"
	"github.com/al-qunnut/TicketFlow/internal/repository"
	"github.com/al-qunnut/TicketFlow/internal/service"
	"github.com/al-qunnut/TicketFlow/internal/session"
	"github.com/al-qunnut/TicketFlow/web"
)

// New builds the routing table once at startup.
func New(log zerolog.Logger, cfg config.Config, tickets repository.TicketRepository, sessions session.Store, creds service.CredentialStore) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithSession(log, cfg, sessions))

	// Services + handlers
	render := handlers.NewRenderer()
	ticketSvc := service.NewTicketService(tickets, log)
	authSvc := service.NewAuthService(creds, sessions)
	ah := handlers.NewAuthHTTP(authSvc, sessions, render, cfg, log)
	th := handlers.NewTicketHTTP(ticketSvc, sessions, render, log)

	r.Get("/healthz", handlers.Health())
	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))

	// Public pages
	r.Get("/", ah.Landing())
	r.Get("/login", ah.LoginPage())
	r.Post("/login", ah.Login())
	r.Get("/signup", ah.SignupPage())
	r.Post("/signup", ah.Signup())
	r.Get("/logout", ah.Logout())

	// Authenticated pages redirect to /login when no session is present
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePage)
		r.Get("/dashboard", th.Dashboard())
		r.Get("/tickets", th.ListPage())
		r.Get("/tickets/create", th.CreatePage())
		r.Get("/tickets/{id}/edit", th.EditPage())
	})

	// JSON endpoints answer 401 instead
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAPI)
		r.Post("/tickets/create", th.Create())
		r.Post("/tickets/{id}/update", th.Update())
		r.Post("/tickets/{id}/delete", th.Delete())
		r.Get("/api/tickets", th.APITickets())
		r.Get("/api/stats", th.APIStats())
	})

	r.NotFound(ah.Landing())

	return r
}

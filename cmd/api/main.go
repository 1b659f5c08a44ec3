package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/al-qunnut/TicketFlow/internal/config"
	"github.com/al-qunnut/TicketFlow/internal/repository/jsonfile"
	"github.com/al-qunnut/TicketFlow/internal/router"
	"github.com/al-qunnut/TicketFlow/internal/service"
	"github.com/al-qunnut/TicketFlow/internal/session"
	"github.com/al-qunnut/TicketFlow/pkg/logger"
)

// Demo accounts seeded at startup; replace the credential store to plug in a
// real user backend.
var demoUsers = []struct {
	email, name, password string
}{
	{"admin@ticketapp.com", "Admin User", "admin123"},
	{"user@ticketapp.com", "Demo User", "user123"},
}

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// storage
	tickets, err := jsonfile.New(cfg.DataFile)
	if err != nil {
		l.Fatal().Err(err).Msg("open ticket store failed")
	}

	// sessions
	sessions, err := session.Open(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("open session store failed")
	}

	// credentials
	creds := service.NewMemoryCredentials()
	for _, u := range demoUsers {
		if err := creds.Register(u.email, u.name, u.password); err != nil {
			l.Fatal().Err(err).Str("email", u.email).Msg("seed demo user failed")
		}
	}

	// http
	r := router.New(l, cfg, tickets, sessions, creds)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}

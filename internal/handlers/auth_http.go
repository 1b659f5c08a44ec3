package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/al-qunnut/TicketFlow/internal/config"
	"github.com/al-qunnut/TicketFlow/internal/middleware"
	"github.com/al-qunnut/TicketFlow/internal/service"
	"github.com/al-qunnut/TicketFlow/internal/session"
	"github.com/al-qunnut/TicketFlow/internal/utils"
)

type AuthHTTP struct {
	svc      *service.AuthService
	sessions session.Store
	render   *Renderer
	cfg      config.Config
	log      zerolog.Logger
}

func NewAuthHTTP(svc *service.AuthService, sessions session.Store, render *Renderer, cfg config.Config, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: svc, sessions: sessions, render: render, cfg: cfg, log: log}
}

// Landing serves the public landing page.
func (h *AuthHTTP) Landing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			h.render.Page(w, http.StatusNotFound, "404", basePage(r, h.sessions))
			return
		}
		h.render.Page(w, http.StatusOK, "landing", basePage(r, h.sessions))
	}
}

func (h *AuthHTTP) LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.Identity(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		h.render.Page(w, http.StatusOK, "login", basePage(r, h.sessions))
	}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		sid, _, err := h.svc.Login(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "Invalid email or password. Please try again.")
				return
			}
			h.log.Error().Err(err).Msg("login failed")
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if err := h.setSessionCookie(w, sid); err != nil {
			h.log.Error().Err(err).Msg("sign session cookie")
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "redirect": "/dashboard"})
	}
}

func (h *AuthHTTP) SignupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.Identity(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		h.render.Page(w, http.StatusOK, "signup", basePage(r, h.sessions))
	}
}

func (h *AuthHTTP) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		in := service.SignupInput{
			Name:            r.PostForm.Get("name"),
			Email:           r.PostForm.Get("email"),
			Password:        r.PostForm.Get("password"),
			ConfirmPassword: r.PostForm.Get("confirm_password"),
		}
		sid, _, fieldErrs, err := h.svc.Signup(r.Context(), in)
		if err != nil {
			h.log.Error().Err(err).Msg("signup failed")
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if len(fieldErrs) > 0 {
			utils.FieldErrors(w, http.StatusBadRequest, fieldErrs)
			return
		}
		if err := h.setSessionCookie(w, sid); err != nil {
			h.log.Error().Err(err).Msg("sign session cookie")
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "redirect": "/dashboard"})
	}
}

func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := utils.GetString(r.Context(), middleware.CtxSessionID); ok && sid != "" {
			if err := h.svc.Logout(r.Context(), sid); err != nil {
				h.log.Error().Err(err).Msg("destroy session")
			}
		}
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (h *AuthHTTP) setSessionCookie(w http.ResponseWriter, sid string) error {
	tok, err := utils.SignJWT(h.cfg.SessionSecret, sid, session.TTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Set true behind HTTPS in prod
		Secure:  false,
		Expires: time.Now().Add(session.TTL),
	})
	return nil
}

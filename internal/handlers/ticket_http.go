package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/al-qunnut/TicketFlow/internal/middleware"
	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/service"
	"github.com/al-qunnut/TicketFlow/internal/session"
	"github.com/al-qunnut/TicketFlow/internal/utils"
	"github.com/al-qunnut/TicketFlow/internal/validation"
)

// TicketHTTP wires the ticket pages, form endpoints and JSON API to the
// ticket service.
type TicketHTTP struct {
	svc      *service.TicketService
	sessions session.Store
	render   *Renderer
	log      zerolog.Logger
}

func NewTicketHTTP(svc *service.TicketService, sessions session.Store, render *Renderer, log zerolog.Logger) *TicketHTTP {
	return &TicketHTTP{svc: svc, sessions: sessions, render: render, log: log}
}

// ticketForm reads the submitted fields. Absent status and priority take the
// form defaults; posted values, even empty ones, pass through to validation.
func ticketForm(r *http.Request) (validation.TicketPayload, error) {
	if err := r.ParseForm(); err != nil {
		return validation.TicketPayload{}, err
	}
	p := validation.TicketPayload{
		Title:       r.PostForm.Get("title"),
		Description: r.PostForm.Get("description"),
		Status:      r.PostForm.Get("status"),
		Priority:    r.PostForm.Get("priority"),
	}
	if _, ok := r.PostForm["status"]; !ok {
		p.Status = models.StatusOpen
	}
	if _, ok := r.PostForm["priority"]; !ok {
		p.Priority = models.PriorityMedium
	}
	return p, nil
}

func (h *TicketHTTP) writeResult(w http.ResponseWriter, res service.Result, redirect string) {
	switch {
	case res.Success && redirect != "":
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "redirect": redirect})
	case res.Success:
		utils.JSON(w, http.StatusOK, map[string]any{"success": true})
	case len(res.FieldErrors) > 0:
		utils.FieldErrors(w, http.StatusBadRequest, res.FieldErrors)
	default:
		utils.JSON(w, http.StatusBadRequest, map[string]any{"success": false, "errors": res.Errors})
	}
}

func (h *TicketHTTP) flash(r *http.Request, message string) {
	sid, ok := utils.GetString(r.Context(), middleware.CtxSessionID)
	if !ok || sid == "" {
		return
	}
	if err := h.sessions.SetFlash(r.Context(), sid, session.Flash{Type: "success", Message: message}); err != nil {
		h.log.Error().Err(err).Msg("set flash")
	}
}

func (h *TicketHTTP) storageError(w http.ResponseWriter, err error, op string) {
	h.log.Error().Err(err).Str("op", op).Msg("ticket storage failure")
	utils.Error(w, http.StatusInternalServerError, "internal error")
}

// -----------------------------------------------------------------------------
// Pages
// -----------------------------------------------------------------------------

func (h *TicketHTTP) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.svc.Stats(r.Context())
		if err != nil {
			h.storageError(w, err, "stats")
			return
		}
		pd := basePage(r, h.sessions)
		pd.Stats = &stats
		h.render.Page(w, http.StatusOK, "dashboard", pd)
	}
}

func (h *TicketHTTP) ListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := h.svc.List(r.Context())
		if err != nil {
			h.storageError(w, err, "list")
			return
		}
		pd := basePage(r, h.sessions)
		pd.Tickets = tickets
		h.render.Page(w, http.StatusOK, "tickets_list", pd)
	}
}

func (h *TicketHTTP) CreatePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render.Page(w, http.StatusOK, "ticket_create", basePage(r, h.sessions))
	}
}

// EditPage renders the edit form, or the 404 page for an unknown id.
func (h *TicketHTTP) EditPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.storageError(w, err, "get")
			return
		}
		if t == nil {
			h.render.Page(w, http.StatusNotFound, "404", basePage(r, h.sessions))
			return
		}
		pd := basePage(r, h.sessions)
		pd.Ticket = t
		h.render.Page(w, http.StatusOK, "ticket_edit", pd)
	}
}

// -----------------------------------------------------------------------------
// Form endpoints (AJAX, url-encoded in, JSON out)
// -----------------------------------------------------------------------------

func (h *TicketHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ticketForm(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		res, err := h.svc.Create(r.Context(), form)
		if err != nil {
			h.storageError(w, err, "create")
			return
		}
		if res.Success {
			h.flash(r, "Ticket created")
		}
		h.writeResult(w, res, "/tickets")
	}
}

func (h *TicketHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ticketForm(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		res, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), form)
		if err != nil {
			h.storageError(w, err, "update")
			return
		}
		if res.Success {
			h.flash(r, "Ticket updated")
		}
		h.writeResult(w, res, "/tickets")
	}
}

func (h *TicketHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.storageError(w, err, "delete")
			return
		}
		h.writeResult(w, res, "")
	}
}

// -----------------------------------------------------------------------------
// JSON API
// -----------------------------------------------------------------------------

func (h *TicketHTTP) APITickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := h.svc.List(r.Context())
		if err != nil {
			h.storageError(w, err, "list")
			return
		}
		utils.JSON(w, http.StatusOK, tickets)
	}
}

func (h *TicketHTTP) APIStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.svc.Stats(r.Context())
		if err != nil {
			h.storageError(w, err, "stats")
			return
		}
		utils.JSON(w, http.StatusOK, stats)
	}
}

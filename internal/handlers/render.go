package handlers

import (
	"html/template"
	"net/http"

	"github.com/al-qunnut/TicketFlow/internal/middleware"
	"github.com/al-qunnut/TicketFlow/internal/models"
	"github.com/al-qunnut/TicketFlow/internal/session"
	"github.com/al-qunnut/TicketFlow/internal/utils"
	"github.com/al-qunnut/TicketFlow/web"
)

// Renderer executes the embedded page templates.
type Renderer struct {
	t *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{t: template.Must(template.ParseFS(web.Templates, "templates/*.tmpl"))}
}

func (re *Renderer) Page(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = re.t.ExecuteTemplate(w, name, data)
}

type pageData struct {
	Authenticated bool
	User          *models.Identity
	Flash         *session.Flash
	Stats         *models.Stats
	Tickets       []models.Ticket
	Ticket        *models.Ticket
}

// basePage builds the template data shared by every page: the authenticated
// identity and any pending flash message (consumed here).
func basePage(r *http.Request, sessions session.Store) pageData {
	pd := pageData{}
	if user, ok := middleware.Identity(r.Context()); ok {
		pd.Authenticated = true
		pd.User = &user
	}
	if sid, ok := utils.GetString(r.Context(), middleware.CtxSessionID); ok && sid != "" {
		if f, err := sessions.PopFlash(r.Context(), sid); err == nil {
			pd.Flash = f
		}
	}
	return pd
}

package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/server"
	"github.com/desertthunder/onboard/internal/wizard"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// Server renders the wizard for browser sessions.
type Server struct {
	sessions    *Sessions
	topics      models.Dataset
	newsletters models.Dataset
	logger      *log.Logger
}

// NewServer creates a Server over the loaded datasets; opts apply to every session's controller.
func NewServer(topics, newsletters models.Dataset, logger *log.Logger, opts ...wizard.Option) *Server {
	return &Server{
		sessions:    NewSessions(topics, newsletters, opts...),
		topics:      topics,
		newsletters: newsletters,
		logger:      logger,
	}
}

// Sessions returns the session store.
func (s *Server) Sessions() *Sessions { return s.sessions }

// Mount registers every route on r.
func (s *Server) Mount(r server.Router) {
	r.Handle(http.MethodGet, "/{$}", http.HandlerFunc(s.index))
	r.Handle(http.MethodPost, "/next", http.HandlerFunc(s.next))
	r.Handle(http.MethodPost, "/back", http.HandlerFunc(s.back))
	r.Handle(http.MethodPost, "/toggle", http.HandlerFunc(s.toggle))
	r.Handle(http.MethodPost, "/reset", http.HandlerFunc(s.reset))
	r.Handle(http.MethodGet, "/api/view", http.HandlerFunc(s.view))
	r.Handler(&datasets{server: s})
	r.Handle(http.MethodGet, "/healthz", http.HandlerFunc(healthz))
}

// Handler returns a router with the standard middleware stack and every route mounted.
func (s *Server) Handler(rateLimit float64, burst int) http.Handler {
	r := server.NewBasicRouter()
	r.Use(server.Recover(s.logger), server.Logging(s.logger), server.RateLimit(rateLimit, burst))
	s.Mount(r)
	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	var v wizard.View
	s.sessions.With(w, r, func(c *wizard.Controller) { v = c.View() })

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "index.html", v); err != nil {
		s.logger.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) next(w http.ResponseWriter, r *http.Request) {
	s.sessions.With(w, r, func(c *wizard.Controller) { c.Next() })
	redirectHome(w, r)
}

func (s *Server) back(w http.ResponseWriter, r *http.Request) {
	s.sessions.With(w, r, func(c *wizard.Controller) { c.Back() })
	redirectHome(w, r)
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	s.sessions.With(w, r, func(c *wizard.Controller) { c.Reset() })
	redirectHome(w, r)
}

func (s *Server) toggle(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")

	known := true
	s.sessions.With(w, r, func(c *wizard.Controller) {
		if !c.Step().Selectable() {
			return
		}
		if known = c.Known(id); known {
			c.Toggle(id)
		}
	})

	if !known {
		http.Error(w, "unknown choice id", http.StatusBadRequest)
		return
	}
	redirectHome(w, r)
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	var v wizard.View
	s.sessions.With(w, r, func(c *wizard.Controller) { v = c.View() })
	s.writeJSON(w, v)
}

// datasets serves the loaded topics and newsletters as JSON.
type datasets struct {
	server *Server
}

func (d *datasets) Routes() []string {
	return []string{"GET /data/topics.json", "GET /data/newsletters.json"}
}

func (d *datasets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/data/topics.json":
		d.server.writeJSON(w, d.server.topics)
	case "/data/newsletters.json":
		d.server.writeJSON(w, d.server.newsletters)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to marshal JSON", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

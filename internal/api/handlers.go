// Package api exposes HTTP handlers for the activity directory.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry *domain.Registry
}

// NewHandler builds a Handler.
func NewHandler(registry *domain.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the landing path to the static index page.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, h.registry.List())
}

// rosterAction dispatches /activities/{name}/signup and /activities/{name}/remove.
// The name segment is matched exactly and case-sensitively against directory
// keys; the server has already percent-decoded it, so spaces are fine.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name, action, ok := strings.Cut(rest, "/")
	if !ok || name == "" {
		http.NotFound(w, r)
		return
	}

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "remove":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.remove(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	message, already, err := h.registry.Signup(name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if already {
		observability.RecordDuplicateSignup(name)
	} else {
		observability.RecordSignup(name)
		if size, ok := h.registry.RosterSize(name); ok {
			observability.SetRosterSize(name, size)
		}
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	message, err := h.registry.Remove(name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	observability.RecordRemoval(name)
	if size, ok := h.registry.RosterSize(name); ok {
		observability.SetRosterSize(name, size)
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

// messageResponse is the success body for roster mutations.
type messageResponse struct {
	Message string `json:"message"`
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound, "Participant not found in this activity")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

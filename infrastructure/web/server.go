// Package web serves the panel page, its JSON and SSE endpoints, and the call
// backend routes the first prototype exposed.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"partyline/contract"
	"partyline/domain/persona"
	pErrors "partyline/errors"
	"partyline/observability"
	"partyline/services"

	"github.com/gorilla/mux"
)

type Server struct {
	log     *slog.Logger
	catalog *persona.Catalog
	panel   services.IPanelService
	calls   services.ICallService
	fetcher contract.PageFetcher
	metrics *observability.Metrics
}

// NewServer wires the handlers. calls and fetcher may be nil when the call
// service runs in another process: the backend routes are then not mounted.
func NewServer(
	log *slog.Logger,
	catalog *persona.Catalog,
	panel services.IPanelService,
	calls services.ICallService,
	fetcher contract.PageFetcher,
	metrics *observability.Metrics,
) *Server {
	return &Server{log: log, catalog: catalog, panel: panel, calls: calls, fetcher: fetcher, metrics: metrics}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	r.HandleFunc("/personas", s.listPersonas).Methods(http.MethodGet)

	if s.calls != nil {
		r.HandleFunc("/call", s.createCall).Methods(http.MethodPost)
		r.HandleFunc("/add_to_call", s.addToCall).Methods(http.MethodPost)
		r.HandleFunc("/remove_from_call", s.removeFromCall).Methods(http.MethodPost)
		r.HandleFunc("/calls", s.listCalls).Methods(http.MethodGet)
		r.HandleFunc("/calls/{id}", s.getCall).Methods(http.MethodGet)
	}
	if s.fetcher != nil {
		r.HandleFunc("/scrape", s.scrape).Methods(http.MethodPost)
	}

	r.HandleFunc("/", s.page).Methods(http.MethodGet)
	r.HandleFunc("/panel", s.panelView).Methods(http.MethodGet)
	r.HandleFunc("/panel/events", s.panelEvents).Methods(http.MethodGet)
	r.HandleFunc("/panel/url", s.panelSetURL).Methods(http.MethodPost)
	r.HandleFunc("/panel/call-button", s.panelCallButton).Methods(http.MethodPost)
	r.HandleFunc("/panel/reset", s.panelReset).Methods(http.MethodPost)
	r.HandleFunc("/panel/personas/{id}/toggle", s.panelToggle).Methods(http.MethodPost)
	r.HandleFunc("/panel/personas/{id}/add", s.panelAdd).Methods(http.MethodPost)
	r.HandleFunc("/panel/personas/{id}/hangup", s.panelHangup).Methods(http.MethodPost)
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps server-sent events working behind the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := pErrors.HTTPStatus(err)
	message := err.Error()
	if errors.Is(err, pErrors.ErrCallNotFound) {
		message = "Invalid call ID"
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Status: "error", Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(pErrors.ErrInvalidPayload, err)
	}
	return nil
}

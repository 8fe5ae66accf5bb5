package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"partyline/domain/panel"
	"partyline/domain/persona"

	"github.com/gorilla/mux"
)

const streamBuffer = 32

func (s *Server) panelView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.panel.View())
}

// panelSetURL accepts {"url": "..."} or a form field named url.
func (s *Server) panelSetURL(w http.ResponseWriter, r *http.Request) {
	var url string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			URL string `json:"url"`
		}
		if err := decodeJSON(r, &body); err != nil {
			s.writeError(w, err)
			return
		}
		url = body.URL
	} else {
		url = r.FormValue("url")
	}
	s.panel.SetURL(r.Context(), strings.TrimSpace(url))
	s.respondView(w, r, nil)
}

func (s *Server) panelCallButton(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, s.panel.PressCallButton(r.Context()))
}

func (s *Server) panelReset(w http.ResponseWriter, r *http.Request) {
	s.panel.Reset(r.Context())
	s.respondView(w, r, nil)
}

func (s *Server) panelToggle(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, s.panel.Toggle(r.Context(), personaFromPath(r)))
}

func (s *Server) panelAdd(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, s.panel.AddToCall(r.Context(), personaFromPath(r)))
}

func (s *Server) panelHangup(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, s.panel.RemoveFromCall(r.Context(), personaFromPath(r)))
}

// respondView answers browsers posting a form with a redirect to the page and
// API clients with the current view, or the error.
func (s *Server) respondView(w http.ResponseWriter, r *http.Request, err error) {
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.panel.View())
}

// panelEvents streams render diffs as server-sent events. The first event is
// the full view; a "view" event is sent again whenever the client fell behind
// and diffs were lost. Diffs still queued at that point predate the view and
// are discarded.
func (s *Server) panelEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	stream := newChangeStream(streamBuffer)
	unsubscribe := s.panel.Subscribe(stream)
	defer unsubscribe()

	if err := writeEvent(w, "view", s.panel.View()); err != nil {
		return
	}
	flusher.Flush()

	for {
		var err error
		select {
		case <-r.Context().Done():
			return
		case changes := <-stream.changes:
			err = writeEvent(w, "changes", changes)
		case <-stream.overflow:
			dropped := stream.drain()
			s.log.Debug("Panel stream fell behind, resending view", "dropped", dropped)
			err = writeEvent(w, "view", s.panel.View())
		}
		if err != nil {
			return
		}
		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}

// changeStream is the ChangeSink of one SSE client. Render never blocks the
// panel: when the buffer is full the diff is dropped and overflow is raised.
type changeStream struct {
	changes  chan []panel.Change
	overflow chan struct{}
}

func newChangeStream(size int) *changeStream {
	return &changeStream{changes: make(chan []panel.Change, size), overflow: make(chan struct{}, 1)}
}

func (c *changeStream) Render(changes []panel.Change) {
	select {
	case c.changes <- changes:
	default:
		select {
		case c.overflow <- struct{}{}:
		default:
		}
	}
}

// drain discards the queued diffs and returns how many there were.
func (c *changeStream) drain() int {
	n := 0
	for {
		select {
		case <-c.changes:
			n++
		default:
			return n
		}
	}
}

func personaFromPath(r *http.Request) persona.ID {
	return persona.ID(mux.Vars(r)["id"])
}

func wantsHTML(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}

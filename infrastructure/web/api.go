package web

import (
	"context"
	"net/http"
	"strconv"

	"partyline/domain/call"
	"partyline/domain/persona"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

type createCallRequest struct {
	URL      string       `json:"url"`
	Personas []persona.ID `json:"personas"`
}

type membershipRequest struct {
	ID      call.ID    `json:"id"`
	Persona persona.ID `json:"persona"`
}

type personaResponse struct {
	ID          persona.ID `json:"id"`
	Emoji       string     `json:"emoji"`
	Description string     `json:"description"`
}

func (s *Server) createCall(w http.ResponseWriter, r *http.Request) {
	var body createCallRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	c, err := s.calls.CreateCall(r.Context(), call.CreateCallCommand{URL: body.URL, Personas: body.Personas})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]call.ID{"id": c.ID})
}

func (s *Server) addToCall(w http.ResponseWriter, r *http.Request) {
	s.membership(w, r, s.calls.AddToCall)
}

func (s *Server) removeFromCall(w http.ResponseWriter, r *http.Request) {
	s.membership(w, r, s.calls.RemoveFromCall)
}

func (s *Server) membership(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, cmd call.MembershipCommand) (call.Call, error)) {
	var body membershipRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	if _, err := apply(r.Context(), call.MembershipCommand{CallID: body.ID, Persona: body.Persona}); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) listCalls(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Message: "limit must be a positive integer"})
			return
		}
		limit = n
	}
	calls, err := s.calls.ListCalls(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if calls == nil {
		calls = []call.Call{}
	}
	writeJSON(w, http.StatusOK, calls)
}

func (s *Server) getCall(w http.ResponseWriter, r *http.Request) {
	c, err := s.calls.GetCall(r.Context(), call.ID(mux.Vars(r)["id"]))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) scrape(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	if body.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "URL is required"})
		return
	}
	result, err := s.fetcher.Fetch(r.Context(), body.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

func (s *Server) listPersonas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, lo.Map(s.catalog.All(), func(p persona.Persona, _ int) personaResponse {
		return personaResponse{ID: p.ID, Emoji: p.Emoji, Description: p.Description}
	}))
}

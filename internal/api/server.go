// Package api exposes the simulator pipeline over HTTP. Every endpoint
// is stateless; a round exists only for the duration of one request.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saminadamn/bp-debate-simulator/internal/anthropic"
	"github.com/saminadamn/bp-debate-simulator/internal/events"
)

type Server struct {
	router       *chi.Mux
	port         int
	ai           *anthropic.Client
	publisher    *events.Publisher
	defaultSkill string
}

// NewServer wires all routes. Both ai and publisher may be nil; the
// template pipeline covers every endpoint on its own.
func NewServer(port int, defaultSkill string, ai *anthropic.Client, publisher *events.Publisher) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:       router,
		port:         port,
		ai:           ai,
		publisher:    publisher,
		defaultSkill: defaultSkill,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/bpsim/status", s.status)

	router.Post("/adjudicate", s.adjudicate)
	router.Post("/comprehensive-feedback", s.comprehensiveFeedback)
	router.Post("/generate-poi", s.generatePOI)
	router.Post("/generate-speech", s.generateSpeech)
	router.Post("/generate-speech-with-engagement", s.generateEngagedSpeech)
	router.Post("/process-prep-notes", s.processPrepNotes)
	router.Post("/structure-notes", s.structureNotes)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{
		"agent":  "bpsim",
		"status": "ready",
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, map[string]string{"error": msg})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return false
	}
	return true
}

package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/caliq/internal/generator"
	"github.com/claude/caliq/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *storage.Store
	gen    *generator.Generator
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *storage.Store, gen *generator.Generator, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		gen:    gen,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/workouts/generate", s.handleGenerateWorkout)
		r.Get("/workouts/{id}", s.handleGetWorkout)

		r.Post("/users", s.handleCreateUser)
		r.Get("/users/{userID}", s.handleGetUser)

		r.Post("/profiles", s.handleCreateProfile)
		r.Get("/profiles/{userID}", s.handleGetProfile)

		r.Post("/sessions", s.handleCreateSession)
		r.Get("/sessions/{userID}", s.handleListSessions)
		r.Get("/sessions/{userID}/recent", s.handleRecentSessions)

		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Get("/schedule", s.handleSchedule)

		r.Get("/progress/{userID}", s.handleProgress)
	})
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/caliq/internal/catalog"
	"github.com/claude/caliq/internal/generator"
	"github.com/claude/caliq/internal/models"
	"github.com/claude/caliq/internal/progress"
	"github.com/claude/caliq/internal/storage"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.UserProfile == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user profile is required"})
		return
	}

	userID := req.UserProfile.UserID
	if userID == "" {
		userID = "anonymous"
	}

	// The training week advances with the user's persisted session count.
	completed, err := s.store.SessionCount(r.Context(), userID)
	if err != nil {
		s.log.Warn("session count unavailable, defaulting to week 1", "user", userID, "error", err)
		completed = 0
	}

	workout, err := s.gen.Generate(req, generator.TrainingWeek(completed))
	if err != nil {
		if errors.Is(err, generator.ErrInvalidProfile) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("workout generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate workout"})
		return
	}

	workout.UserID = userID
	saved, err := s.store.CreateWorkout(r.Context(), *workout)
	if err != nil {
		s.log.Error("saving workout failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate workout"})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := s.store.GetWorkout(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if u.Username == "" || u.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		return
	}
	saved, err := s.store.CreateUser(r.Context(), u)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.store.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := validateProfile(p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if p.UserID == "" {
		p.UserID = "anonymous"
	}
	saved, err := s.store.CreateProfile(r.Context(), p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetProfile(r.Context(), chi.URLParam(r, "userID"))
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var sess models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if sess.ExercisesCompleted == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercisesCompleted is required"})
		return
	}
	switch sess.Feedback {
	case "", "positive", "negative":
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "feedback must be positive or negative"})
		return
	}
	if sess.UserID == "" {
		sess.UserID = "anonymous"
	}
	// completedAt is server-assigned
	sess.CompletedAt = time.Time{}
	saved, err := s.store.CreateSession(r.Context(), sess)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.SessionsByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sessions == nil {
		sessions = []models.WorkoutSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	sessions, err := s.store.RecentSessions(r.Context(), chi.URLParam(r, "userID"), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sessions == nil {
		sessions = []models.WorkoutSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	out := catalog.All()
	if typ := r.URL.Query().Get("type"); typ != "" {
		out = catalog.ByType(typ)
	} else if diff := r.URL.Query().Get("difficulty"); diff != "" {
		out = catalog.ByDifficulty(diff)
	}
	if out == nil {
		out = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	ex, ok := catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	type day struct {
		Day      string `json:"day"`
		Focus    string `json:"focus"`
		Duration int    `json:"duration"`
	}
	out := make([]day, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		sched := catalog.Schedule(d)
		out = append(out, day{Day: d.String(), Focus: sched.Focus, Duration: sched.Duration})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	period := progress.Period(r.URL.Query().Get("period"))
	switch period {
	case "":
		period = progress.PeriodWeek
	case progress.PeriodWeek, progress.PeriodMonth, progress.PeriodYear:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "period must be week, month, or year"})
		return
	}
	sessions, err := s.store.SessionsByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, progress.Compute(sessions, period, time.Now()))
}

func validateProfile(p models.UserProfile) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	switch p.FitnessLevel {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
	default:
		return errors.New("fitnessLevel must be beginner, intermediate, or advanced")
	}
	if p.DailyTimeAvailable <= 0 {
		return errors.New("dailyTimeAvailable must be positive")
	}
	if p.Goals == nil {
		return errors.New("goals is required")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

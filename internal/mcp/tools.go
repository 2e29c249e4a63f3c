package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/claude/caliq/internal/catalog"
	"github.com/claude/caliq/internal/generator"
	"github.com/claude/caliq/internal/models"
	"github.com/claude/caliq/internal/progress"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate a personalized bodyweight workout. Reps scale with fitness level; exercise selection follows the weekly focus and the user's training week."),
	mcp.WithString("fitness_level", mcp.Required(), mcp.Description("Fitness level"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("goals", mcp.Description("Comma-separated training goals (e.g. 'strength,endurance'). Defaults to strength.")),
	mcp.WithNumber("duration", mcp.Description("Target workout length in minutes. Defaults to 30.")),
	mcp.WithString("type", mcp.Description("Preferred workout type"), mcp.Enum("strength", "endurance", "flexibility", "mixed")),
	mcp.WithString("user_id", mcp.Description("User whose history determines the training week. Defaults to 'anonymous'.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog, optionally filtered by difficulty or type."),
	mcp.WithString("difficulty", mcp.Description("Filter by difficulty"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("type", mcp.Description("Filter by exercise type"), mcp.Enum("strength", "endurance", "warmup", "mobility")),
)

var toolGetExercise = mcp.NewTool("get_exercise",
	mcp.WithDescription("Get one exercise with full instructions and form tips."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Exercise ID (e.g. push-normal, squat-pistol)")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Get a user's progress stats: totals, estimated calories, streaks, personal bests, and a training heatmap."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
	mcp.WithString("period", mcp.Description("Aggregation window for the totals. Defaults to week."), mcp.Enum("week", "month", "year")),
)

var toolGetRecentSessions = mcp.NewTool("get_recent_sessions",
	mcp.WithDescription("Get a user's most recent completed workout sessions, newest first."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions. Defaults to 10.")),
)

// --- Tool handlers ---

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := req.RequireString("fitness_level")
	if err != nil {
		return mcp.NewToolResultError("fitness_level parameter is required"), nil
	}

	goals := splitGoals(req.GetString("goals", "strength"))
	duration := req.GetInt("duration", 30)
	userID := req.GetString("user_id", "anonymous")

	completed, err := h.store.SessionCount(ctx, userID)
	if err != nil {
		h.log.Warn("mcp generate_workout: session count", "error", err)
		completed = 0
	}

	workout, err := h.gen.Generate(models.GenerateRequest{
		UserProfile: &models.UserProfile{
			UserID:             userID,
			Name:               userID,
			FitnessLevel:       level,
			Goals:              goals,
			DailyTimeAvailable: duration,
		},
		WorkoutType: req.GetString("type", ""),
		Duration:    duration,
	}, generator.TrainingWeek(completed))
	if err != nil {
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	workout.UserID = userID
	saved, err := h.store.CreateWorkout(ctx, *workout)
	if err != nil {
		h.log.Error("mcp generate_workout: save", "error", err)
		return mcp.NewToolResultError("saving workout failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(saved)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises := catalog.All()
	if diff := req.GetString("difficulty", ""); diff != "" {
		exercises = catalog.ByDifficulty(diff)
	}
	if typ := req.GetString("type", ""); typ != "" {
		filtered := exercises[:0:0]
		for _, ex := range exercises {
			if ex.Type == typ {
				filtered = append(filtered, ex)
			}
		}
		exercises = filtered
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	ex, ok := catalog.ByID(id)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + id), nil
	}
	result, err := mcp.NewToolResultJSON(ex)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}
	period := progress.Period(req.GetString("period", "week"))

	sessions, err := h.store.SessionsByUser(ctx, userID)
	if err != nil {
		h.log.Error("mcp get_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(progress.Compute(sessions, period, time.Now()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecentSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}
	limit := req.GetInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	sessions, err := h.store.RecentSessions(ctx, userID, limit)
	if err != nil {
		h.log.Error("mcp get_recent_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func splitGoals(s string) []string {
	parts := strings.Split(s, ",")
	goals := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			goals = append(goals, p)
		}
	}
	if len(goals) == 0 {
		goals = []string{"strength"}
	}
	return goals
}

package mcp

import (
	"log/slog"

	"github.com/claude/caliq/internal/generator"
	"github.com/claude/caliq/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(store *storage.Store, gen *generator.Generator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("CaliQ", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("CaliQ calisthenics coaching server. Generate bodyweight workouts, browse the exercise catalog, and query a user's training history and progress."),
	)

	h := &handlers{store: store, gen: gen, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateWorkout, Handler: h.generateWorkout},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetExercise, Handler: h.getExercise},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolGetRecentSessions, Handler: h.getRecentSessions},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resWeeklySchedule, Handler: h.weeklySchedule},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store *storage.Store
	gen   *generator.Generator
	log   *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"caliq://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All bodyweight exercises with instructions, form tips, muscle groups, and difficulty"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklySchedule = mcp.NewResource(
	"caliq://weekly_schedule",
	"Weekly Schedule",
	mcp.WithResourceDescription("The weekly training focus per day, including the Sunday rest day"),
	mcp.WithMIMEType("application/json"),
)

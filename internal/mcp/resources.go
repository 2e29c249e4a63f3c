package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/caliq/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(catalog.All())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) weeklySchedule(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type day struct {
		Day      string `json:"day"`
		Focus    string `json:"focus"`
		Duration int    `json:"duration"`
	}
	days := make([]day, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		sched := catalog.Schedule(d)
		days = append(days, day{Day: d.String(), Focus: sched.Focus, Duration: sched.Duration})
	}

	data, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

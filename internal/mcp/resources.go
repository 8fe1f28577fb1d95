// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides liftlog://today and liftlog://exercises resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// liftlog://today - Everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://today",
		Name:        "Today's Workout",
		Description: "All exercises and sets logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// liftlog://exercises - The exercise catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://exercises",
		Name:        "Exercise Catalog",
		Description: "All exercise definitions grouped by category",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now()
	entries, err := s.store.EntriesForDate(today)
	if err != nil {
		return nil, fmt.Errorf("failed to load today: %w", err)
	}

	setCount := 0
	for _, e := range entries {
		setCount += len(e.Sets)
	}

	result := map[string]interface{}{
		"date":    today.Format(models.DateFormat),
		"entries": entries,
		"counts": map[string]int{
			"exercises": len(entries),
			"sets":      setCount,
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises, err := s.store.ListExercises(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	byCategory := make(map[string][]interface{})
	for _, e := range exercises {
		byCategory[e.Category] = append(byCategory[e.Category], map[string]interface{}{
			"id":   e.ID.String()[:8],
			"name": e.Name,
			"type": string(e.Type),
			"unit": e.Unit,
		})
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"categories":   byCategory,
		"total":        len(exercises),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://exercises",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

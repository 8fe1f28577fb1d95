// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Covers exercise catalog, set logging, history, and personal bests.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise definition to the catalog",
	}, s.handleAddExercise)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercise definitions, optionally filtered by category",
	}, s.handleListExercises)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Record one set of an exercise on a date (defaults to today)",
	}, s.handleLogSet)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get all exercises and sets logged on a date",
	}, s.handleGetDay)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "Get per-day history with sets for an exercise",
	}, s.handleGetHistory)

	// get_personal_best
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_personal_best",
		Description: "Get the best set ever recorded for an exercise",
	}, s.handleGetPersonalBest)

	// delete_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_set",
		Description: "Delete a set by ID or ID prefix",
	}, s.handleDeleteSet)
}

// Tool input/output types

// Input fields without omitempty are marked required in the generated
// schema; the jsonschema tag carries the plain description text.

type addExerciseInput struct {
	Name        string `json:"name" jsonschema:"exercise name, unique"`
	Category    string `json:"category" jsonschema:"grouping label (Chest, Legs, Cardio, ...)"`
	Type        string `json:"type" jsonschema:"exercise type: weight_reps, weight_distance, weight_time, weight_only, reps_only, reps_distance, reps_time, distance_only, distance_time, time_duration or time_speed"`
	Unit        string `json:"unit" jsonschema:"display unit (kg, km, s, reps)"`
	Description string `json:"description,omitempty" jsonschema:"optional description"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type listExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"filter by category"`
}

type logSetInput struct {
	Exercise    string   `json:"exercise" jsonschema:"exercise name"`
	Date        string   `json:"date,omitempty" jsonschema:"calendar date (YYYY-MM-DD), defaults to today"`
	Weight      *float64 `json:"weight,omitempty" jsonschema:"weight, for types that record it"`
	Reps        *int     `json:"reps,omitempty" jsonschema:"repetitions, for types that record them"`
	Distance    *float64 `json:"distance,omitempty" jsonschema:"distance, for types that record it"`
	TimeSeconds *float64 `json:"time_seconds,omitempty" jsonschema:"elapsed or held time in seconds"`
	Notes       string   `json:"notes,omitempty" jsonschema:"optional notes"`
}

type logSetOutput struct {
	SetID          string `json:"set_id"`
	Exercise       string `json:"exercise"`
	Date           string `json:"date"`
	IsPersonalBest bool   `json:"is_personal_best"`
	Message        string `json:"message"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"calendar date (YYYY-MM-DD), defaults to today"`
}

type getHistoryInput struct {
	Exercise string `json:"exercise" jsonschema:"exercise name"`
	Limit    int    `json:"limit,omitempty" jsonschema:"most recent N days (default 10)"`
}

type getPersonalBestInput struct {
	Exercise string `json:"exercise" jsonschema:"exercise name"`
}

type deleteSetInput struct {
	ID string `json:"id" jsonschema:"set ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if !models.IsValidExerciseType(input.Type) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown exercise type: %s", input.Type)
	}

	e := models.NewExerciseDefinition(input.Name, input.Category,
		models.ExerciseType(input.Type), input.Unit)
	if input.Description != "" {
		e.WithDescription(input.Description)
	}

	if err := s.store.CreateExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      e.ID.String()[:8],
		Name:    e.Name,
		Type:    string(e.Type),
		Message: fmt.Sprintf("Added %s (%s, ID: %s)", e.Name, e.Type, e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var category *string
	if input.Category != "" {
		category = &input.Category
	}

	exercises, err := s.store.ListExercises(category)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	date := time.Now()
	if input.Date != "" {
		t, err := time.Parse(models.DateFormat, input.Date)
		if err != nil {
			return nil, logSetOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		date = t
	}

	def, err := s.store.GetExerciseByName(input.Exercise)
	if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("exercise not found: %s", input.Exercise)
	}

	// Personal-best check runs against history before this set lands.
	priorBest, err := s.store.PersonalBestForExercise(def.Name, nil)
	if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to check personal best: %w", err)
	}

	entry, err := s.store.FindEntry(def.ID, date)
	if err == storage.ErrNotFound {
		entry = models.NewWorkoutEntry(def.ID, date)
		if err := s.store.CreateEntry(entry); err != nil {
			return nil, logSetOutput{}, fmt.Errorf("failed to create entry: %w", err)
		}
	} else if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to find entry: %w", err)
	}

	set := models.NewSet(entry.ID)
	if input.Weight != nil {
		set.WithWeight(*input.Weight)
	}
	if input.Reps != nil {
		set.WithReps(*input.Reps)
	}
	if input.Distance != nil {
		set.WithDistance(*input.Distance)
	}
	if input.TimeSeconds != nil {
		set.WithTime(*input.TimeSeconds)
	}
	if input.Notes != "" {
		set.WithNotes(input.Notes)
	}

	if err := s.store.AddSet(set); err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to add set: %w", err)
	}

	isPB := models.IsNewPersonalBest(set, priorBest, def.Type)
	msg := fmt.Sprintf("Logged set for %s on %s", def.Name, date.Format(models.DateFormat))
	if isPB {
		msg += " — new personal best"
	}

	return nil, logSetOutput{
		SetID:          set.ID.String()[:8],
		Exercise:       def.Name,
		Date:           date.Format(models.DateFormat),
		IsPersonalBest: isPB,
		Message:        msg,
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, any, error) {
	date := time.Now()
	if input.Date != "" {
		t, err := time.Parse(models.DateFormat, input.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		date = t
	}

	entries, err := s.store.EntriesForDate(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load day: %w", err)
	}
	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "Nothing logged on " + date.Format(models.DateFormat)}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input getHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	days, err := s.store.ExerciseHistoryWithSets(input.Exercise, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(days) == 0 {
		return nil, map[string]interface{}{"message": "No history for " + input.Exercise}, nil
	}
	return nil, days, nil
}

func (s *Server) handleGetPersonalBest(ctx context.Context, req *mcp.CallToolRequest, input getPersonalBestInput) (*mcp.CallToolResult, any, error) {
	best, err := s.store.PersonalBestForExercise(input.Exercise, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find personal best: %w", err)
	}
	if best == nil {
		return nil, map[string]interface{}{"message": "No sets recorded for " + input.Exercise}, nil
	}
	return nil, best, nil
}

func (s *Server) handleDeleteSet(ctx context.Context, req *mcp.CallToolRequest, input deleteSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteSet(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete set: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted set: %s", input.ID),
	}, nil
}

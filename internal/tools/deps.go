// Package tools provides MCP tool handlers and registration.
package tools

import (
	"context"
	"log/slog"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// API is the surface of the eRegulations client the handlers consume.
// Narrowed to an interface so tests can fake upstream behavior.
type API interface {
	Procedures(ctx context.Context) ([]models.ProcedureSummary, error)
	ProcedureByID(ctx context.Context, id int) (*models.ProcedureDetail, error)
	Step(ctx context.Context, procedureID, stepID int) (*models.Step, error)
	Search(ctx context.Context, keyword string) ([]models.ProcedureSummary, error)
}

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	API    API
	Logger *slog.Logger
}

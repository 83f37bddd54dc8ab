package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/unctad-ai/eregulations-mcp-server/internal/eregulations"
	"github.com/unctad-ai/eregulations-mcp-server/internal/format"
)

// GetProcedureStepInput defines the input schema for the
// get_procedure_step tool.
type GetProcedureStepInput struct {
	ProcedureID int  `json:"procedure_id" jsonschema:"required,Procedure ID the step belongs to"`
	StepID      int  `json:"step_id" jsonschema:"required,Step ID from the procedure's step outline"`
	IncludeData bool `json:"include_data,omitempty" jsonschema:"Append the minimal structured data payload"`
}

// NewGetProcedureStepHandler creates the get_procedure_step tool handler.
// Retrieves one step with its requirements, costs, timeframe and contacts.
func NewGetProcedureStepHandler(deps *Dependencies) mcp.ToolHandlerFor[GetProcedureStepInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetProcedureStepInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProcedureID <= 0 {
			return ErrorResult(
				"procedure_id must be a positive integer",
				"Use list_procedures to find valid procedure IDs",
			), nil, nil
		}
		if input.StepID <= 0 {
			return ErrorResult(
				"step_id must be a positive integer",
				"Use get_procedure_details first to find valid step IDs",
			), nil, nil
		}

		step, err := deps.API.Step(ctx, input.ProcedureID, input.StepID)
		if err != nil {
			if errors.Is(err, eregulations.ErrNotFound) {
				return ErrorResult(
					fmt.Sprintf("Step not found: %d in procedure %d", input.StepID, input.ProcedureID),
					"Use get_procedure_details first to find valid step IDs",
				), nil, nil
			}
			deps.Logger.Error("get_procedure_step failed",
				"procedure_id", input.ProcedureID, "step_id", input.StepID, "error", err)
			return ErrorResult(
				fmt.Sprintf("Failed to retrieve step %d: %v", input.StepID, err),
				"The eRegulations API may be unavailable",
			), nil, nil
		}

		out := format.FormatStep(step, format.StepOptions{IncludeData: input.IncludeData})

		text := out.Text
		if input.IncludeData {
			text = withData(text, out.Data)
		}

		deps.Logger.Info("get_procedure_step completed",
			"procedure_id", input.ProcedureID, "step_id", input.StepID)
		return TextResult(text), nil, nil
	}
}

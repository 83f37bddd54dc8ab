package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/unctad-ai/eregulations-mcp-server/internal/eregulations"
	"github.com/unctad-ai/eregulations-mcp-server/internal/format"
)

// GetProcedureDetailsInput defines the input schema for the
// get_procedure_details tool.
type GetProcedureDetailsInput struct {
	ProcedureID int  `json:"procedure_id" jsonschema:"required,Procedure ID from list_procedures or search_procedures"`
	MaxLength   int  `json:"max_length,omitempty" jsonschema:"Truncate the description to this many characters (0 = full text)"`
	IncludeData bool `json:"include_data,omitempty" jsonschema:"Append the minimal structured data payload"`
}

// NewGetProcedureDetailsHandler creates the get_procedure_details tool
// handler. Retrieves the full procedure record with its step outline.
func NewGetProcedureDetailsHandler(deps *Dependencies) mcp.ToolHandlerFor[GetProcedureDetailsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetProcedureDetailsInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProcedureID <= 0 {
			return ErrorResult(
				"procedure_id must be a positive integer",
				"Use list_procedures to find valid procedure IDs",
			), nil, nil
		}

		detail, err := deps.API.ProcedureByID(ctx, input.ProcedureID)
		if err != nil {
			if errors.Is(err, eregulations.ErrNotFound) {
				return ErrorResult(
					fmt.Sprintf("Procedure not found: %d", input.ProcedureID),
					"Use list_procedures first to find valid procedure IDs",
				), nil, nil
			}
			deps.Logger.Error("get_procedure_details failed", "id", input.ProcedureID, "error", err)
			return ErrorResult(
				fmt.Sprintf("Failed to retrieve procedure %d: %v", input.ProcedureID, err),
				"The eRegulations API may be unavailable",
			), nil, nil
		}

		out := format.FormatProcedureDetails(detail, format.DetailOptions{
			IncludeData: input.IncludeData,
			MaxLength:   input.MaxLength,
		})

		text := out.Text
		if input.IncludeData {
			text = withData(text, out.Data)
		}

		deps.Logger.Info("get_procedure_details completed", "id", input.ProcedureID)
		return TextResult(text), nil, nil
	}
}

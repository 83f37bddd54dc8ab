package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/unctad-ai/eregulations-mcp-server/internal/format"
)

// ListProceduresInput defines the input schema for the list_procedures tool.
type ListProceduresInput struct {
	MaxItems    int  `json:"max_items,omitempty" jsonschema:"Max entries rendered in the text (0 = all)"`
	MaxLength   int  `json:"max_length,omitempty" jsonschema:"Truncate each description to this many characters (0 = full text)"`
	IncludeData bool `json:"include_data,omitempty" jsonschema:"Append the minimal structured data payload"`
}

// NewListProceduresHandler creates the list_procedures tool handler.
// Fetches all procedure summaries (cache-backed) and renders them as a
// bounded numbered list.
func NewListProceduresHandler(deps *Dependencies) mcp.ToolHandlerFor[ListProceduresInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListProceduresInput) (
		*mcp.CallToolResult, any, error,
	) {
		// Validate bounds
		if input.MaxItems < 0 {
			return ErrorResult("max_items cannot be negative", "Use 0 to render all procedures"), nil, nil
		}
		if input.MaxLength < 0 {
			return ErrorResult("max_length cannot be negative", "Use 0 to keep full descriptions"), nil, nil
		}

		items, err := deps.API.Procedures(ctx)
		if err != nil {
			deps.Logger.Error("list_procedures failed", "error", err)
			return ErrorResult(
				fmt.Sprintf("Failed to retrieve procedures: %v", err),
				"The eRegulations API may be unavailable",
			), nil, nil
		}

		out := format.FormatProcedureList(items, format.ListOptions{
			IncludeData: input.IncludeData,
			MaxItems:    input.MaxItems,
			MaxLength:   input.MaxLength,
		})

		text := out.Text
		if input.IncludeData {
			text = withData(text, out.Data)
		}

		deps.Logger.Info("list_procedures completed", "results", len(items))
		return TextResult(text), nil, nil
	}
}

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/unctad-ai/eregulations-mcp-server/internal/format"
)

// SearchProceduresInput defines the input schema for the search_procedures
// tool.
type SearchProceduresInput struct {
	Keyword     string `json:"keyword" jsonschema:"required,Keyword to match against procedure names and descriptions"`
	MaxItems    int    `json:"max_items,omitempty" jsonschema:"Max entries rendered in the text (0 = all)"`
	MaxLength   int    `json:"max_length,omitempty" jsonschema:"Truncate each description to this many characters (0 = full text)"`
	IncludeData bool   `json:"include_data,omitempty" jsonschema:"Append the minimal structured data payload"`
}

// NewSearchProceduresHandler creates the search_procedures tool handler.
func NewSearchProceduresHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchProceduresInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchProceduresInput) (
		*mcp.CallToolResult, any, error,
	) {
		keyword := strings.TrimSpace(input.Keyword)
		if keyword == "" {
			return ErrorResult("Keyword cannot be empty", "Provide a search keyword"), nil, nil
		}
		if input.MaxItems < 0 || input.MaxLength < 0 {
			return ErrorResult("max_items and max_length cannot be negative", "Use 0 for no limit"), nil, nil
		}

		items, err := deps.API.Search(ctx, keyword)
		if err != nil {
			deps.Logger.Error("search_procedures failed", "keyword", keyword, "error", err)
			return ErrorResult(
				fmt.Sprintf("Failed to search procedures: %v", err),
				"The eRegulations API may be unavailable",
			), nil, nil
		}

		out := format.FormatSearchResults(keyword, items, format.ListOptions{
			IncludeData: input.IncludeData,
			MaxItems:    input.MaxItems,
			MaxLength:   input.MaxLength,
		})

		text := out.Text
		if input.IncludeData {
			text = withData(text, out.Data)
		}

		deps.Logger.Info("search_procedures completed", "keyword", keyword, "results", len(items))
		return TextResult(text), nil, nil
	}
}

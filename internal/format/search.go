package format

import (
	"fmt"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// FormatSearchResults renders keyword search hits. Rendering rules match
// FormatProcedureList; only the header and empty-result message differ so
// the LLM can tell a filtered search from a full listing.
func FormatSearchResults(keyword string, items []models.ProcedureSummary, opts ListOptions) Formatted[[]ProcedureItem] {
	if len(items) == 0 {
		out := Formatted[[]ProcedureItem]{
			Text: fmt.Sprintf("No procedures found matching '%s'", keyword),
		}
		if opts.IncludeData {
			out.Data = []ProcedureItem{}
		}
		return out
	}

	header := fmt.Sprintf("Found %d procedures matching '%s':", len(items), keyword)
	return Formatted[[]ProcedureItem]{
		Text: renderList(header, items, opts),
		Data: listData(items, opts),
	}
}

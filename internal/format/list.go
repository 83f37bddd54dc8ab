package format

import (
	"fmt"
	"strings"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// FormatProcedureList renders a collection of procedure summaries as a
// numbered list. An empty or nil collection is a normal result, not an
// error.
func FormatProcedureList(items []models.ProcedureSummary, opts ListOptions) Formatted[[]ProcedureItem] {
	if len(items) == 0 {
		out := Formatted[[]ProcedureItem]{Text: "No procedures available"}
		if opts.IncludeData {
			out.Data = []ProcedureItem{}
		}
		return out
	}

	header := fmt.Sprintf("Found %d procedures:", len(items))
	return Formatted[[]ProcedureItem]{
		Text: renderList(header, items, opts),
		Data: listData(items, opts),
	}
}

// renderList assembles the header, the (possibly capped) item lines and
// the trailing "more" summary.
func renderList(header string, items []models.ProcedureSummary, opts ListOptions) string {
	shown := len(items)
	if opts.MaxItems > 0 && shown > opts.MaxItems {
		shown = opts.MaxItems
	}

	lines := make([]string, 0, shown+2)
	lines = append(lines, header)
	for i := 0; i < shown; i++ {
		lines = append(lines, summaryLine(i, items[i], opts.MaxLength))
	}
	if remaining := len(items) - shown; remaining > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more.", remaining))
	}
	return strings.Join(lines, "\n")
}

// listData maps the full collection when data was requested, regardless of
// any MaxItems cap on the text.
func listData(items []models.ProcedureSummary, opts ListOptions) []ProcedureItem {
	if !opts.IncludeData {
		return nil
	}
	return procedureItems(items)
}

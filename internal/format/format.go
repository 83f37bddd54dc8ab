// Package format condenses raw eRegulations records into bounded,
// LLM-consumable text plus an optional minimal data payload. Upstream
// records are large and deeply nested; each formatter applies a fixed
// projection keeping the decision-relevant fields (online availability,
// required documents, costs, timeframes) and dropping the rest.
//
// Formatters are pure: they never mutate their input and never fail.
// Missing scalar fields render as "N/A" or "Unknown"; missing optional
// groups are simply omitted from the output.
package format

import (
	"fmt"
	"strconv"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// Formatted pairs the human-readable rendering of a record with its
// machine-usable subset. Data is populated only when the caller asked for
// it, to spare context budget.
type Formatted[T any] struct {
	Text string
	Data T
}

// ListOptions controls list and search rendering.
type ListOptions struct {
	// IncludeData emits the minimal structured payload alongside the text.
	IncludeData bool
	// MaxItems bounds how many entries the text renders; 0 renders all.
	// The data payload always covers the full collection.
	MaxItems int
	// MaxLength truncates each description to this many characters with a
	// trailing ellipsis; 0 keeps full descriptions.
	MaxLength int
}

// ProcedureItem is the minimal machine-usable projection of a procedure
// summary.
type ProcedureItem struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	IsOnline   bool    `json:"isOnline"`
	ParentName *string `json:"parentName,omitempty"`
}

// DetailItem is the minimal machine-usable projection of a procedure
// detail, including the step outline for chaining into step lookups.
type DetailItem struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	IsOnline   bool          `json:"isOnline"`
	ParentName *string       `json:"parentName,omitempty"`
	Steps      []StepRefItem `json:"steps,omitempty"`
}

// StepRefItem identifies one step within a procedure outline.
type StepRefItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsOnline bool   `json:"isOnline,omitempty"`
}

// StepItem is the minimal machine-usable projection of a step record.
// Nested groups are reduced to counts; only the online URL survives
// verbatim since the LLM may need to hand it to the user.
type StepItem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	ProcedureID      int    `json:"procedureId,omitempty"`
	IsOnline         bool   `json:"isOnline"`
	IsOptional       bool   `json:"isOptional,omitempty"`
	IsCertified      bool   `json:"isCertified,omitempty"`
	IsParallel       bool   `json:"isParallel,omitempty"`
	OnlineURL        string `json:"onlineUrl,omitempty"`
	RequirementCount int    `json:"requirementCount,omitempty"`
	ResultCount      int    `json:"resultCount,omitempty"`
	CostCount        int    `json:"costCount,omitempty"`
	LawCount         int    `json:"lawCount,omitempty"`
}

// idString renders a record ID, falling back to "N/A" when the upstream
// never assigned one.
func idString(id int) string {
	if id == 0 {
		return "N/A"
	}
	return strconv.Itoa(id)
}

// truncate shortens s to maxLen runes with a trailing ellipsis. A maxLen
// of 0 disables truncation; it is opt-in.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// onlineTag renders the marker appended to online-capable entries.
func onlineTag(isOnline bool) string {
	if isOnline {
		return " [ONLINE]"
	}
	return ""
}

// procedureItems maps the full collection to its minimal data projection.
func procedureItems(items []models.ProcedureSummary) []ProcedureItem {
	data := make([]ProcedureItem, len(items))
	for i, p := range items {
		item := ProcedureItem{
			ID:       p.ID,
			Name:     p.DisplayName(),
			IsOnline: p.IsOnline,
		}
		if p.ParentName != nil {
			item.ParentName = p.ParentName
		}
		data[i] = item
	}
	return data
}

// summaryLine renders one numbered list entry, with the description on its
// own indented line when present.
func summaryLine(index int, p models.ProcedureSummary, maxLength int) string {
	line := fmt.Sprintf("%d. %s%s (ID:%s)", index+1, p.DisplayName(), onlineTag(p.IsOnline), idString(p.ID))
	if p.ExplanatoryText != "" {
		line += "\n   " + truncate(p.ExplanatoryText, maxLength)
	}
	return line
}

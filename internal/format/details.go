package format

import (
	"fmt"
	"strings"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// DetailOptions controls procedure detail rendering.
type DetailOptions struct {
	// IncludeData emits the minimal structured payload alongside the text.
	IncludeData bool
	// MaxLength truncates the description; 0 keeps the full text.
	MaxLength int
}

// FormatProcedureDetails renders a full procedure record: title line,
// description, upstream totals, portal URL and the step outline. Each
// section appears only when the corresponding group is present on the raw
// record.
func FormatProcedureDetails(detail *models.ProcedureDetail, opts DetailOptions) Formatted[*DetailItem] {
	if detail == nil {
		return Formatted[*DetailItem]{Text: "No procedure details available"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Procedure: %s%s (ID:%s)",
		detail.DisplayName(), onlineTag(detail.IsOnline), idString(detail.ID))

	if detail.ParentName != nil && *detail.ParentName != "" {
		fmt.Fprintf(&b, "\nPart of: %s", *detail.ParentName)
	}

	if detail.ExplanatoryText != "" {
		fmt.Fprintf(&b, "\n\nDescription:\n   %s", truncate(detail.ExplanatoryText, opts.MaxLength))
	}

	if r := detail.Resume; r != nil {
		b.WriteString("\n\nOverview:")
		fmt.Fprintf(&b, "\n- Steps: %d", r.StepCount)
		fmt.Fprintf(&b, "\n- Institutions: %d", r.InstitutionCount)
		fmt.Fprintf(&b, "\n- Requirements: %d", r.RequirementCount)
	}

	if detail.Data != nil && detail.Data.URL != "" {
		fmt.Fprintf(&b, "\n\nOnline portal: %s", detail.Data.URL)
	}

	steps := stepRefs(detail)
	if len(steps) > 0 {
		b.WriteString("\n\nSteps:")
		for _, s := range steps {
			name := s.Name
			if name == "" {
				name = "Unknown"
			}
			fmt.Fprintf(&b, "\n%s. %s%s", idString(s.ID), name, onlineTag(s.IsOnline))
			if s.IsOptional {
				b.WriteString(" [OPTIONAL]")
			}
		}
	}

	return Formatted[*DetailItem]{
		Text: b.String(),
		Data: detailData(detail, steps, opts),
	}
}

// stepRefs flattens the block outline into a single step sequence,
// preserving upstream order.
func stepRefs(detail *models.ProcedureDetail) []models.StepRef {
	if detail.Data == nil {
		return nil
	}
	var refs []models.StepRef
	for _, block := range detail.Data.Blocks {
		refs = append(refs, block.Steps...)
	}
	return refs
}

func detailData(detail *models.ProcedureDetail, steps []models.StepRef, opts DetailOptions) *DetailItem {
	if !opts.IncludeData {
		return nil
	}
	item := &DetailItem{
		ID:       detail.ID,
		Name:     detail.DisplayName(),
		IsOnline: detail.IsOnline,
	}
	if detail.ParentName != nil {
		item.ParentName = detail.ParentName
	}
	for _, s := range steps {
		item.Steps = append(item.Steps, StepRefItem{
			ID:       s.ID,
			Name:     s.Name,
			IsOnline: s.IsOnline,
		})
	}
	return item
}

package format

import (
	"fmt"
	"strings"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

// StepOptions controls step rendering.
type StepOptions struct {
	// IncludeData emits the minimal structured payload alongside the text.
	IncludeData bool
}

// FormatStep renders a full step record. The header names the step and its
// flags; each nested group (contact, requirements, results, timeframe,
// costs, laws, extra notes) gets a section only when present on the raw
// record. A step with no optional groups still renders a complete header.
func FormatStep(step *models.Step, opts StepOptions) Formatted[*StepItem] {
	if step == nil {
		return Formatted[*StepItem]{Text: "No step details available"}
	}

	var b strings.Builder
	name := step.Name
	if name == "" {
		name = "Unknown"
	}
	fmt.Fprintf(&b, "Step: %s (ID:%s", name, idString(step.ID))
	if step.ProcedureID != 0 {
		fmt.Fprintf(&b, ", Procedure:%d", step.ProcedureID)
	}
	b.WriteString(")")
	b.WriteString(stepFlags(step))

	if step.Online != nil && step.Online.URL != "" {
		fmt.Fprintf(&b, "\n\nComplete online: %s", step.Online.URL)
	}

	writeContact(&b, step.Contact)
	writeRequirements(&b, step.Requirements)

	if len(step.Results) > 0 {
		b.WriteString("\n\nResults:")
		for _, r := range step.Results {
			fmt.Fprintf(&b, "\n- %s", fallback(r.Name))
		}
	}

	writeTimeframe(&b, step.Timeframe)

	if len(step.Costs) > 0 {
		b.WriteString("\n\nCosts:")
		for _, c := range step.Costs {
			fmt.Fprintf(&b, "\n- %s", costLine(c))
		}
	}

	if len(step.Laws) > 0 {
		b.WriteString("\n\nLegal basis:")
		for _, l := range step.Laws {
			fmt.Fprintf(&b, "\n- %s", fallback(l.Name))
		}
	}

	if step.AdditionalInfo != nil && step.AdditionalInfo.Text != "" {
		fmt.Fprintf(&b, "\n\nAdditional information:\n   %s", step.AdditionalInfo.Text)
	}

	return Formatted[*StepItem]{
		Text: b.String(),
		Data: stepData(step, opts),
	}
}

// stepFlags renders the bracketed status tags after the step header.
func stepFlags(step *models.Step) string {
	var tags []string
	if step.IsOptional {
		tags = append(tags, "[OPTIONAL]")
	}
	if step.IsCertified {
		tags = append(tags, "[CERTIFIED]")
	}
	if step.IsParallel {
		tags = append(tags, "[PARALLEL]")
	}
	if step.IsOnline {
		tags = append(tags, "[ONLINE]")
	}
	if len(tags) == 0 {
		return ""
	}
	return " " + strings.Join(tags, " ")
}

func writeContact(b *strings.Builder, contact *models.Contact) {
	if contact == nil {
		return
	}
	wrote := false
	header := func() {
		if !wrote {
			b.WriteString("\n\nContact:")
			wrote = true
		}
	}
	if e := contact.EntityInCharge; e != nil && e.Name != "" {
		header()
		fmt.Fprintf(b, "\n- Entity: %s%s", e.Name, entityDetails(e))
	}
	if u := contact.UnitInCharge; u != nil && u.Name != "" {
		header()
		fmt.Fprintf(b, "\n- Unit: %s%s", u.Name, entityDetails(u))
	}
	if p := contact.PersonInCharge; p != nil && p.Name != "" {
		header()
		fmt.Fprintf(b, "\n- Person: %s%s", p.Name, entityDetails(p))
	}
}

// entityDetails renders the parenthesized phone/email suffix for a contact
// entity, or nothing when neither is known.
func entityDetails(e *models.Entity) string {
	var parts []string
	if e.FirstPhone != "" {
		parts = append(parts, e.FirstPhone)
	}
	if e.FirstEmail != "" {
		parts = append(parts, e.FirstEmail)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func writeRequirements(b *strings.Builder, reqs []models.Requirement) {
	if len(reqs) == 0 {
		return
	}
	b.WriteString("\n\nRequirements:")
	for _, r := range reqs {
		fmt.Fprintf(b, "\n- %s%s", fallback(r.Name), requirementCounts(r))
	}
}

// requirementCounts renders how many originals/copies/authenticated copies
// a requirement demands, when the upstream specified any.
func requirementCounts(r models.Requirement) string {
	var parts []string
	if r.NbOriginal > 0 {
		parts = append(parts, fmt.Sprintf("%d original", r.NbOriginal))
	}
	if r.NbCopy > 0 {
		parts = append(parts, fmt.Sprintf("%d copy", r.NbCopy))
	}
	if r.NbAuthenticated > 0 {
		parts = append(parts, fmt.Sprintf("%d authenticated", r.NbAuthenticated))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func writeTimeframe(b *strings.Builder, tf *models.Timeframe) {
	if tf == nil {
		return
	}
	var parts []string
	if s := estimate(tf.TimeSpentAtCounter); s != "" {
		parts = append(parts, "at counter: "+s)
	}
	if s := estimate(tf.WaitingTimeInLine); s != "" {
		parts = append(parts, "waiting in line: "+s)
	}
	if s := estimate(tf.WaitingTimeUntilNextStep); s != "" {
		parts = append(parts, "until next step: "+s)
	}
	if len(parts) == 0 && tf.Comments == "" {
		return
	}
	b.WriteString("\n\nTimeframe:")
	for _, p := range parts {
		fmt.Fprintf(b, "\n- %s", p)
	}
	if tf.Comments != "" {
		fmt.Fprintf(b, "\n- %s", tf.Comments)
	}
}

// estimate renders a time estimate in whichever unit the upstream used.
func estimate(te *models.TimeEstimate) string {
	if te == nil {
		return ""
	}
	switch {
	case te.Minutes != nil && te.Minutes.Max > 0:
		return fmt.Sprintf("up to %g min", te.Minutes.Max)
	case te.Hours != nil && te.Hours.Max > 0:
		return fmt.Sprintf("up to %g hours", te.Hours.Max)
	case te.Days != nil && te.Days.Max > 0:
		return fmt.Sprintf("up to %g days", te.Days.Max)
	}
	return ""
}

// costLine renders a single fee entry, tolerating missing amounts.
func costLine(c models.Cost) string {
	var s string
	switch {
	case c.Value > 0 && c.Unit != "":
		s = fmt.Sprintf("%g %s", c.Value, c.Unit)
	case c.Value > 0:
		s = fmt.Sprintf("%g", c.Value)
	default:
		s = "N/A"
	}
	if c.Operator != "" && c.Parameter != "" {
		s += fmt.Sprintf(" (%s %s)", c.Operator, c.Parameter)
	}
	if c.Comments != "" {
		s += " - " + c.Comments
	}
	return s
}

// fallback substitutes "Unknown" for empty names.
func fallback(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

func stepData(step *models.Step, opts StepOptions) *StepItem {
	if !opts.IncludeData {
		return nil
	}
	item := &StepItem{
		ID:               step.ID,
		Name:             step.Name,
		ProcedureID:      step.ProcedureID,
		IsOnline:         step.IsOnline,
		IsOptional:       step.IsOptional,
		IsCertified:      step.IsCertified,
		IsParallel:       step.IsParallel,
		RequirementCount: len(step.Requirements),
		ResultCount:      len(step.Results),
		CostCount:        len(step.Costs),
		LawCount:         len(step.Laws),
	}
	if step.Online != nil {
		item.OnlineURL = step.Online.URL
	}
	return item
}

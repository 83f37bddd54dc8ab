// Package models defines data structures for eRegulations API records.
package models

// ProcedureSummary is the lightweight procedure representation returned by
// list and search endpoints. Fields the upstream omits are left at their
// zero value; formatters treat that as "not specified".
type ProcedureSummary struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"fullName,omitempty"`
	IsOnline        bool    `json:"isOnline,omitempty"`
	ParentName      *string `json:"parentName,omitempty"`
	ExplanatoryText string  `json:"explanatoryText,omitempty"`
}

// DisplayName returns the most specific name available for a procedure.
func (p ProcedureSummary) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.Name != "" {
		return p.Name
	}
	return "Unknown"
}

// ProcedureDetail is the full procedure record with the nested block/step
// structure. One logical entity per ID.
type ProcedureDetail struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	FullName        string           `json:"fullName,omitempty"`
	IsOnline        bool             `json:"isOnline,omitempty"`
	ParentName      *string          `json:"parentName,omitempty"`
	ExplanatoryText string           `json:"explanatoryText,omitempty"`
	Data            *ProcedureData   `json:"data,omitempty"`
	Resume          *ProcedureResume `json:"resume,omitempty"`
}

// DisplayName returns the most specific name available for a procedure.
func (p ProcedureDetail) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.Name != "" {
		return p.Name
	}
	return "Unknown"
}

// ProcedureData holds the nested block structure of a procedure.
type ProcedureData struct {
	ID     int     `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	URL    string  `json:"url,omitempty"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block groups consecutive steps of a procedure.
type Block struct {
	Name  string    `json:"name,omitempty"`
	Steps []StepRef `json:"steps,omitempty"`
}

// StepRef is the abbreviated step entry inside a procedure's block outline.
// The full Step record is fetched separately.
type StepRef struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsOnline   bool   `json:"isOnline,omitempty"`
	IsOptional bool   `json:"isOptional,omitempty"`
}

// ProcedureResume carries the per-procedure totals the upstream computes.
type ProcedureResume struct {
	StepCount        int `json:"nbSteps,omitempty"`
	InstitutionCount int `json:"nbInstitutions,omitempty"`
	RequirementCount int `json:"nbRequirements,omitempty"`
}

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

func TestDetailsNilRecord(t *testing.T) {
	out := FormatProcedureDetails(nil, DetailOptions{IncludeData: true})

	assert.Equal(t, "No procedure details available", out.Text)
	assert.Nil(t, out.Data)
}

func TestDetailsBareRecord(t *testing.T) {
	detail := &models.ProcedureDetail{ID: 12, Name: "Import license"}
	out := FormatProcedureDetails(detail, DetailOptions{IncludeData: true})

	assert.Equal(t, "Procedure: Import license (ID:12)", out.Text)
	assert.NotContains(t, out.Text, "Description:")
	assert.NotContains(t, out.Text, "Overview:")
	assert.NotContains(t, out.Text, "Steps:")

	require.NotNil(t, out.Data)
	assert.Equal(t, 12, out.Data.ID)
	assert.Equal(t, "Import license", out.Data.Name)
	assert.Empty(t, out.Data.Steps)
}

func TestDetailsFullRecord(t *testing.T) {
	parent := "Trade procedures"
	detail := &models.ProcedureDetail{
		ID:              12,
		Name:            "Import license",
		FullName:        "Apply for an import license",
		IsOnline:        true,
		ParentName:      &parent,
		ExplanatoryText: "How to obtain an import license.",
		Resume: &models.ProcedureResume{
			StepCount:        3,
			InstitutionCount: 2,
			RequirementCount: 5,
		},
		Data: &models.ProcedureData{
			URL: "https://example.org/procedures/12",
			Blocks: []models.Block{
				{Steps: []models.StepRef{
					{ID: 101, Name: "Submit application", IsOnline: true},
					{ID: 102, Name: "Pay fee", IsOptional: true},
				}},
				{Steps: []models.StepRef{
					{ID: 103, Name: "Collect license"},
				}},
			},
		},
	}

	out := FormatProcedureDetails(detail, DetailOptions{IncludeData: true})

	assert.True(t, strings.HasPrefix(out.Text, "Procedure: Apply for an import license [ONLINE] (ID:12)"))
	assert.Contains(t, out.Text, "Part of: Trade procedures")
	assert.Contains(t, out.Text, "Description:\n   How to obtain an import license.")
	assert.Contains(t, out.Text, "Overview:\n- Steps: 3\n- Institutions: 2\n- Requirements: 5")
	assert.Contains(t, out.Text, "Online portal: https://example.org/procedures/12")
	assert.Contains(t, out.Text, "Steps:\n101. Submit application [ONLINE]\n102. Pay fee [OPTIONAL]\n103. Collect license")

	require.NotNil(t, out.Data)
	assert.Equal(t, "Apply for an import license", out.Data.Name)
	require.Len(t, out.Data.Steps, 3)
	assert.Equal(t, StepRefItem{ID: 101, Name: "Submit application", IsOnline: true}, out.Data.Steps[0])
}

func TestDetailsDescriptionTruncation(t *testing.T) {
	detail := &models.ProcedureDetail{
		ID:              1,
		Name:            "P",
		ExplanatoryText: strings.Repeat("a", 40),
	}

	out := FormatProcedureDetails(detail, DetailOptions{MaxLength: 8})
	assert.Contains(t, out.Text, strings.Repeat("a", 8)+"...")
	assert.NotContains(t, out.Text, strings.Repeat("a", 9))
}

func TestDetailsDataOmittedByDefault(t *testing.T) {
	out := FormatProcedureDetails(&models.ProcedureDetail{ID: 1, Name: "P"}, DetailOptions{})
	assert.Nil(t, out.Data)
}

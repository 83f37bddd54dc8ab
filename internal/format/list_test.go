package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unctad-ai/eregulations-mcp-server/internal/models"
)

func sampleProcedures(n int) []models.ProcedureSummary {
	items := make([]models.ProcedureSummary, n)
	names := []string{"Import license", "Export permit", "Business registration", "Tax clearance", "Work permit"}
	for i := range items {
		items[i] = models.ProcedureSummary{
			ID:   i + 1,
			Name: names[i%len(names)],
		}
	}
	return items
}

func TestListEmptyCollection(t *testing.T) {
	out := FormatProcedureList(nil, ListOptions{IncludeData: true})

	assert.Equal(t, "No procedures available", out.Text)
	require.NotNil(t, out.Data)
	assert.Empty(t, out.Data)

	out = FormatProcedureList([]models.ProcedureSummary{}, ListOptions{IncludeData: true})
	assert.Equal(t, "No procedures available", out.Text)
	assert.Empty(t, out.Data)
}

func TestListEmptyWithoutData(t *testing.T) {
	out := FormatProcedureList(nil, ListOptions{})

	assert.Equal(t, "No procedures available", out.Text)
	assert.Nil(t, out.Data)
}

func TestListRendersAllItemsByDefault(t *testing.T) {
	out := FormatProcedureList(sampleProcedures(3), ListOptions{})

	assert.True(t, strings.HasPrefix(out.Text, "Found 3 procedures:"))
	assert.Contains(t, out.Text, "1. Import license (ID:1)")
	assert.Contains(t, out.Text, "2. Export permit (ID:2)")
	assert.Contains(t, out.Text, "3. Business registration (ID:3)")
	assert.NotContains(t, out.Text, "more.")
}

func TestListMaxItemsCap(t *testing.T) {
	out := FormatProcedureList(sampleProcedures(5), ListOptions{MaxItems: 2})

	assert.Contains(t, out.Text, "Found 5 procedures:")
	assert.Contains(t, out.Text, "1. Import license")
	assert.Contains(t, out.Text, "2. Export permit")
	assert.NotContains(t, out.Text, "3. Business registration")
	assert.Contains(t, out.Text, "... and 3 more.")
}

func TestListDataCoversFullCollectionDespiteCap(t *testing.T) {
	out := FormatProcedureList(sampleProcedures(5), ListOptions{IncludeData: true, MaxItems: 2})

	assert.Len(t, out.Data, 5)
}

func TestListOnlineTag(t *testing.T) {
	items := []models.ProcedureSummary{
		{ID: 1, Name: "Online one", IsOnline: true},
		{ID: 2, Name: "Offline one"},
	}
	out := FormatProcedureList(items, ListOptions{})

	assert.Contains(t, out.Text, "1. Online one [ONLINE] (ID:1)")
	assert.Contains(t, out.Text, "2. Offline one (ID:2)")
}

func TestListDisplayNamePrecedence(t *testing.T) {
	items := []models.ProcedureSummary{
		{ID: 1, Name: "Short", FullName: "Full display name"},
		{ID: 2, Name: "Only short"},
		{ID: 3},
	}
	out := FormatProcedureList(items, ListOptions{})

	assert.Contains(t, out.Text, "1. Full display name (ID:1)")
	assert.Contains(t, out.Text, "2. Only short (ID:2)")
	assert.Contains(t, out.Text, "3. Unknown (ID:N/A)")
}

func TestListDescriptionTruncationOptIn(t *testing.T) {
	text := strings.Repeat("x", 50)
	items := []models.ProcedureSummary{{ID: 1, Name: "P", ExplanatoryText: text}}

	// No MaxLength: full description.
	out := FormatProcedureList(items, ListOptions{})
	assert.Contains(t, out.Text, "\n   "+text)
	assert.NotContains(t, out.Text, "...")

	// MaxLength 10: first 10 characters plus ellipsis.
	out = FormatProcedureList(items, ListOptions{MaxLength: 10})
	assert.Contains(t, out.Text, "\n   "+strings.Repeat("x", 10)+"...")
	assert.NotContains(t, out.Text, strings.Repeat("x", 11))
}

func TestListDescriptionOmittedWhenAbsent(t *testing.T) {
	out := FormatProcedureList([]models.ProcedureSummary{{ID: 1, Name: "P"}}, ListOptions{})

	assert.Equal(t, "Found 1 procedures:\n1. P (ID:1)", out.Text)
}

func TestListDataProjection(t *testing.T) {
	parent := "Trade"
	items := []models.ProcedureSummary{
		{ID: 1, Name: "Short", FullName: "Full", IsOnline: true, ParentName: &parent, ExplanatoryText: "desc"},
		{ID: 2, Name: "Bare"},
	}
	out := FormatProcedureList(items, ListOptions{IncludeData: true})

	require.Len(t, out.Data, 2)
	assert.Equal(t, ProcedureItem{ID: 1, Name: "Full", IsOnline: true, ParentName: &parent}, out.Data[0])
	assert.Equal(t, ProcedureItem{ID: 2, Name: "Bare", IsOnline: false}, out.Data[1])
}

func TestListDoesNotMutateInput(t *testing.T) {
	parent := "Trade"
	items := []models.ProcedureSummary{{ID: 1, Name: "P", ParentName: &parent}}
	FormatProcedureList(items, ListOptions{IncludeData: true, MaxItems: 1, MaxLength: 1})

	assert.Equal(t, models.ProcedureSummary{ID: 1, Name: "P", ParentName: &parent}, items[0])
}

package models

import (
	"encoding/json"
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		p    ProcedureSummary
		want string
	}{
		{"full name preferred", ProcedureSummary{Name: "Short", FullName: "Long form"}, "Long form"},
		{"name fallback", ProcedureSummary{Name: "Short"}, "Short"},
		{"unknown fallback", ProcedureSummary{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStepDecodingIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"id": 101,
		"name": "Submit",
		"isOnline": true,
		"unknownUpstreamField": {"deeply": ["nested"]},
		"requirements": [{"name": "Passport", "nbOriginal": 1, "extra": true}]
	}`

	var step Step
	if err := json.Unmarshal([]byte(raw), &step); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if step.ID != 101 || !step.IsOnline {
		t.Errorf("unexpected step: %+v", step)
	}
	if len(step.Requirements) != 1 || step.Requirements[0].Name != "Passport" {
		t.Errorf("unexpected requirements: %+v", step.Requirements)
	}
}

package itinerary

import (
	"testing"

	"tripweaver/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestValidateCreate(t *testing.T) {
	valid := createInput{
		Title:       "Trip",
		Destination: "Rome",
		Duration:    intPtr(3),
		Budget:      floatPtr(900),
	}

	tests := []struct {
		name    string
		mutate  func(*createInput)
		wantErr bool
	}{
		{"valid", func(in *createInput) {}, false},
		{"zero budget is valid", func(in *createInput) { in.Budget = floatPtr(0) }, false},
		{"missing title", func(in *createInput) { in.Title = "" }, true},
		{"whitespace title", func(in *createInput) { in.Title = "   " }, true},
		{"missing destination", func(in *createInput) { in.Destination = "" }, true},
		{"missing duration", func(in *createInput) { in.Duration = nil }, true},
		{"zero duration", func(in *createInput) { in.Duration = intPtr(0) }, true},
		{"negative duration", func(in *createInput) { in.Duration = intPtr(-2) }, true},
		{"missing budget", func(in *createInput) { in.Budget = nil }, true},
		{"negative budget", func(in *createInput) { in.Budget = floatPtr(-1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			msg := validateCreate(in)
			if tt.wantErr && msg == "" {
				t.Error("expected a validation message, got none")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("expected no validation message, got %q", msg)
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	tests := []struct {
		name    string
		in      patchInput
		wantErr bool
	}{
		{"empty patch", patchInput{}, false},
		{"title only", patchInput{Title: strPtr("New Title")}, false},
		{"empty title", patchInput{Title: strPtr("")}, true},
		{"empty destination", patchInput{Destination: strPtr(" ")}, true},
		{"bad duration", patchInput{Duration: intPtr(0)}, true},
		{"bad budget", patchInput{Budget: floatPtr(-5)}, true},
		{"bad time slot in days", patchInput{Days: &[]models.Day{
			{DayNumber: 1, Places: []models.PlaceAssignment{{PlaceID: "p1", TimeSlot: "midnight"}}},
		}}, true},
		{"valid days", patchInput{Days: &[]models.Day{
			{DayNumber: 1, Places: []models.PlaceAssignment{{PlaceID: "p1", TimeSlot: "morning"}}},
		}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validatePatch(tt.in)
			if tt.wantErr && msg == "" {
				t.Error("expected a validation message, got none")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("expected no validation message, got %q", msg)
			}
		})
	}
}

// The $set document must contain exactly the fields the client sent, so
// untouched fields keep their stored values.
func TestBuildPatchOnlySuppliedFields(t *testing.T) {
	set := buildPatch(patchInput{Title: strPtr("New Title")})

	if len(set) != 1 {
		t.Fatalf("expected exactly one field in $set, got %d: %v", len(set), set)
	}
	if set["title"] != "New Title" {
		t.Errorf("expected title=New Title, got %v", set["title"])
	}

	set = buildPatch(patchInput{Budget: floatPtr(1200), IsPublic: boolPtr(true)})
	if len(set) != 2 {
		t.Fatalf("expected two fields in $set, got %d: %v", len(set), set)
	}
	if set["budget"] != float64(1200) || set["is_public"] != true {
		t.Errorf("unexpected $set contents: %v", set)
	}
}

func boolPtr(v bool) *bool { return &v }

func TestGenerateDays(t *testing.T) {
	days := generateDays(3)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, day := range days {
		if day.DayNumber != i+1 {
			t.Errorf("day %d: expected dayNumber %d, got %d", i, i+1, day.DayNumber)
		}
		if day.Places == nil || len(day.Places) != 0 {
			t.Errorf("day %d: expected empty places, got %v", i, day.Places)
		}
	}
}

func TestNormalizeDaysDefaults(t *testing.T) {
	days := normalizeDays([]models.Day{
		{DayNumber: 1, Places: []models.PlaceAssignment{
			{PlaceID: "p1", TimeSlot: "morning"},              // no duration: defaults to 2
			{PlaceID: "p2", TimeSlot: "evening", Duration: 4}, // explicit duration kept
		}},
		{DayNumber: 2}, // nil places becomes empty slice
	})

	if days[0].Places[0].Duration != defaultAssignmentHours {
		t.Errorf("expected default duration %d, got %v", defaultAssignmentHours, days[0].Places[0].Duration)
	}
	if days[0].Places[1].Duration != 4 {
		t.Errorf("expected explicit duration kept, got %v", days[0].Places[1].Duration)
	}
	if days[1].Places == nil {
		t.Error("expected nil places normalized to empty slice")
	}

	if got := normalizeDays(nil); got == nil || len(got) != 0 {
		t.Errorf("expected nil days normalized to empty slice, got %v", got)
	}
}

package itinerary

import (
	"fmt"
	"strings"

	"tripweaver/models"

	"go.mongodb.org/mongo-driver/bson"
)

const defaultAssignmentHours = 2

var timeSlots = map[string]bool{
	"morning":   true,
	"afternoon": true,
	"evening":   true,
}

// createInput is the create request body. Duration and budget are
// pointers so "missing" and "zero" stay distinguishable. Any owner field
// in the payload is ignored; ownership always comes from the token.
type createInput struct {
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Destination      string       `json:"destination"`
	Duration         *int         `json:"duration"`
	Budget           *float64     `json:"budget"`
	StartDate        string       `json:"startDate"`
	EndDate          string       `json:"endDate"`
	IsPublic         bool         `json:"isPublic"`
	Days             []models.Day `json:"days"`
	AutoGenerateDays bool         `json:"autoGenerateDays"`
}

// patchInput carries only the fields the client wants changed. Nil means
// "leave alone", which keeps PUT a partial update.
type patchInput struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Destination *string       `json:"destination"`
	Duration    *int          `json:"duration"`
	Budget      *float64      `json:"budget"`
	StartDate   *string       `json:"startDate"`
	EndDate     *string       `json:"endDate"`
	IsPublic    *bool         `json:"isPublic"`
	Days        *[]models.Day `json:"days"`
}

func validateCreate(in createInput) string {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Destination) == "" || in.Duration == nil || in.Budget == nil {
		return "Title, destination, duration, and budget are required"
	}
	if *in.Duration < 1 {
		return "Duration must be at least 1 day"
	}
	if *in.Budget < 0 {
		return "Budget cannot be negative"
	}
	return ""
}

func validatePatch(in patchInput) string {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return "Title cannot be empty"
	}
	if in.Destination != nil && strings.TrimSpace(*in.Destination) == "" {
		return "Destination cannot be empty"
	}
	if in.Duration != nil && *in.Duration < 1 {
		return "Duration must be at least 1 day"
	}
	if in.Budget != nil && *in.Budget < 0 {
		return "Budget cannot be negative"
	}
	if in.Days != nil {
		if msg := validateDays(*in.Days); msg != "" {
			return msg
		}
	}
	return ""
}

// validateDays checks nested place assignments. Day numbers are stored
// as sent; they are not forced contiguous or into [1,duration].
func validateDays(days []models.Day) string {
	for _, day := range days {
		for _, assignment := range day.Places {
			if !timeSlots[assignment.TimeSlot] {
				return "Time slot must be morning, afternoon, or evening"
			}
			if assignment.Duration < 0 {
				return "Place duration cannot be negative"
			}
		}
	}
	return ""
}

// normalizeDays fills defaults on embedded days: nil slices become empty
// and an unset assignment duration becomes 2 hours.
func normalizeDays(days []models.Day) []models.Day {
	if days == nil {
		return []models.Day{}
	}
	for i := range days {
		if days[i].Places == nil {
			days[i].Places = []models.PlaceAssignment{}
			continue
		}
		for j := range days[i].Places {
			if days[i].Places[j].Duration == 0 {
				days[i].Places[j].Duration = defaultAssignmentHours
			}
		}
	}
	return days
}

// generateDays materializes empty days 1..n for autoGenerateDays.
func generateDays(n int) []models.Day {
	days := make([]models.Day, n)
	for i := range days {
		days[i] = models.Day{
			DayNumber: i + 1,
			Title:     fmt.Sprintf("Day %d", i+1),
			Places:    []models.PlaceAssignment{},
		}
	}
	return days
}

// buildPatch turns a patch into a $set document holding only the fields
// the client actually sent.
func buildPatch(in patchInput) bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Destination != nil {
		set["destination"] = *in.Destination
	}
	if in.Duration != nil {
		set["duration"] = *in.Duration
	}
	if in.Budget != nil {
		set["budget"] = *in.Budget
	}
	if in.StartDate != nil {
		set["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		set["end_date"] = *in.EndDate
	}
	if in.IsPublic != nil {
		set["is_public"] = *in.IsPublic
	}
	if in.Days != nil {
		set["days"] = normalizeDays(*in.Days)
	}
	return set
}

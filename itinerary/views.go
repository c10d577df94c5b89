package itinerary

import (
	"context"
	"time"

	"tripweaver/models"
)

// AssignmentView is a place assignment with its weak reference resolved.
// Place is null when the catalog entry has been removed; that is normal,
// not an error.
type AssignmentView struct {
	Place    *models.Place `json:"place"`
	TimeSlot string        `json:"timeSlot"`
	Duration float64       `json:"duration"`
}

type DayView struct {
	DayNumber   int              `json:"dayNumber"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Budget      float64          `json:"budget"`
	Places      []AssignmentView `json:"places"`
}

// View is the read shape of an itinerary: the stored aggregate with
// every place reference swapped for its resolved catalog entry.
type View struct {
	ItineraryID string    `json:"itineraryid"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Destination string    `json:"destination"`
	Duration    int       `json:"duration"`
	Budget      float64   `json:"budget"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	IsPublic    bool      `json:"isPublic"`
	Days        []DayView `json:"days"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// buildView resolves all place references in one itinerary, deduping
// lookups across days.
func (h *Handler) buildView(ctx context.Context, it models.Itinerary) (View, error) {
	resolved := make(map[string]*models.Place)

	view := View{
		ItineraryID: it.ItineraryID,
		UserID:      it.UserID,
		Title:       it.Title,
		Description: it.Description,
		Destination: it.Destination,
		Duration:    it.Duration,
		Budget:      it.Budget,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		IsPublic:    it.IsPublic,
		Days:        make([]DayView, 0, len(it.Days)),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}

	for _, day := range it.Days {
		dayView := DayView{
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
			Budget:      day.Budget,
			Places:      make([]AssignmentView, 0, len(day.Places)),
		}
		for _, assignment := range day.Places {
			place, seen := resolved[assignment.PlaceID]
			if !seen {
				var err error
				place, err = h.Resolver.Resolve(ctx, assignment.PlaceID)
				if err != nil {
					return View{}, err
				}
				resolved[assignment.PlaceID] = place
			}
			dayView.Places = append(dayView.Places, AssignmentView{
				Place:    place,
				TimeSlot: assignment.TimeSlot,
				Duration: assignment.Duration,
			})
		}
		view.Days = append(view.Days, dayView)
	}

	return view, nil
}

func (h *Handler) buildViews(ctx context.Context, its []models.Itinerary) ([]View, error) {
	views := make([]View, 0, len(its))
	for _, it := range its {
		view, err := h.buildView(ctx, it)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

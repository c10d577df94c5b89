package models

import "time"

// Itinerary is the travel plan aggregate. Days and their place
// assignments are embedded; user_id is the owning user and is only ever
// set from a verified token, never from client input.
type Itinerary struct {
	ItineraryID string    `json:"itineraryid" bson:"itineraryid"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Destination string    `json:"destination" bson:"destination"`
	Duration    int       `json:"duration" bson:"duration"` // days, >= 1
	Budget      float64   `json:"budget" bson:"budget"`
	StartDate   string    `json:"startDate" bson:"start_date"`
	EndDate     string    `json:"endDate" bson:"end_date"`
	IsPublic    bool      `json:"isPublic" bson:"is_public"`
	Days        []Day     `json:"days" bson:"days"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

type Day struct {
	DayNumber   int               `json:"dayNumber" bson:"day_number"`
	Title       string            `json:"title" bson:"title"`
	Description string            `json:"description" bson:"description"`
	Budget      float64           `json:"budget" bson:"budget"`
	Places      []PlaceAssignment `json:"places" bson:"places"`
}

// PlaceAssignment holds a weak reference to a catalog place. The id is
// lookup-only; when the place is gone from the catalog the reference
// resolves to null on read instead of erroring.
type PlaceAssignment struct {
	PlaceID  string  `json:"place" bson:"place"`
	TimeSlot string  `json:"timeSlot" bson:"time_slot"` // morning/afternoon/evening
	Duration float64 `json:"duration" bson:"duration"`  // hours, default 2
}

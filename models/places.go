package models

import "time"

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type Place struct {
	PlaceID     string      `json:"placeid" bson:"placeid"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Image       string      `json:"image" bson:"image"`
	Location    string      `json:"location" bson:"location"`
	Category    string      `json:"category" bson:"category"`     // attraction/restaurant/hotel/activity/landmark
	PriceRange  string      `json:"priceRange" bson:"priceRange"` // budget/moderate/luxury
	Rating      float64     `json:"rating" bson:"rating"`         // 1..5
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

var PlaceCategories = []string{"attraction", "restaurant", "hotel", "activity", "landmark"}
var PlacePriceRanges = []string{"budget", "moderate", "luxury"}

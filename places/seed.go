package places

import (
	"context"
	"log"
	"time"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SamplePlaces is the starter catalog. Ids are stable so reseeding is an
// upsert, not a duplicate insert.
var SamplePlaces = []models.Place{
	{
		PlaceID:     "pl-eiffel-tower",
		Name:        "Eiffel Tower",
		Description: "Iconic iron lattice tower and symbol of Paris, offering breathtaking city views from its observation decks.",
		Image:       "https://images.unsplash.com/photo-1511739001486-6bfe10ce785f?auto=format&fit=crop&w=800&q=60",
		Location:    "Paris, France",
		Category:    "landmark",
		PriceRange:  "moderate",
		Rating:      4.8,
		Coordinates: models.Coordinates{Lat: 48.8584, Lng: 2.2945},
	},
	{
		PlaceID:     "pl-santorini-sunset",
		Name:        "Santorini Sunset View",
		Description: "Breathtaking sunset views from the famous white-washed buildings overlooking the Aegean Sea.",
		Image:       "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?auto=format&fit=crop&w=800&q=60",
		Location:    "Santorini, Greece",
		Category:    "attraction",
		PriceRange:  "luxury",
		Rating:      4.9,
		Coordinates: models.Coordinates{Lat: 36.3932, Lng: 25.4615},
	},
	{
		PlaceID:     "pl-tokyo-street-food",
		Name:        "Tokyo Street Food Tour",
		Description: "Experience authentic Japanese cuisine through guided street food tours in Tokyo's vibrant districts.",
		Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=60",
		Location:    "Tokyo, Japan",
		Category:    "restaurant",
		PriceRange:  "budget",
		Rating:      4.6,
		Coordinates: models.Coordinates{Lat: 35.6762, Lng: 139.6503},
	},
	{
		PlaceID:     "pl-swiss-alps-hiking",
		Name:        "Swiss Alps Hiking",
		Description: "Scenic hiking trails through the majestic Swiss Alps with panoramic mountain views and fresh alpine air.",
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=800&q=60",
		Location:    "Swiss Alps, Switzerland",
		Category:    "activity",
		PriceRange:  "moderate",
		Rating:      4.7,
		Coordinates: models.Coordinates{Lat: 46.5197, Lng: 6.6323},
	},
	{
		PlaceID:     "pl-bali-beach-resort",
		Name:        "Bali Beach Resort",
		Description: "Luxurious beachfront resort with traditional Balinese architecture and world-class spa services.",
		Image:       "https://images.unsplash.com/photo-1571896349842-33c89424de2d?auto=format&fit=crop&w=800&q=60",
		Location:    "Bali, Indonesia",
		Category:    "hotel",
		PriceRange:  "luxury",
		Rating:      4.8,
		Coordinates: models.Coordinates{Lat: -8.3405, Lng: 115.0920},
	},
	{
		PlaceID:     "pl-colosseum-tour",
		Name:        "Colosseum Tour",
		Description: "Ancient Roman amphitheater with guided tours revealing the history of gladiatorial combat and Roman architecture.",
		Image:       "https://images.unsplash.com/photo-1552832230-c0197dd311b5?auto=format&fit=crop&w=800&q=60",
		Location:    "Rome, Italy",
		Category:    "landmark",
		PriceRange:  "moderate",
		Rating:      4.5,
		Coordinates: models.Coordinates{Lat: 41.8902, Lng: 12.4922},
	},
	{
		PlaceID:     "pl-central-park",
		Name:        "New York Central Park",
		Description: "Urban oasis in the heart of Manhattan, perfect for walking, cycling, and enjoying nature in the city.",
		Image:       "https://images.unsplash.com/photo-1502602898536-47ad22581b52?auto=format&fit=crop&w=800&q=60",
		Location:    "New York, USA",
		Category:    "attraction",
		PriceRange:  "budget",
		Rating:      4.4,
		Coordinates: models.Coordinates{Lat: 40.7829, Lng: -73.9654},
	},
	{
		PlaceID:     "pl-dubai-desert-safari",
		Name:        "Dubai Desert Safari",
		Description: "Thrilling desert adventure with camel rides, sandboarding, and traditional Bedouin camp experience.",
		Image:       "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?auto=format&fit=crop&w=800&q=60",
		Location:    "Dubai, UAE",
		Category:    "activity",
		PriceRange:  "moderate",
		Rating:      4.6,
		Coordinates: models.Coordinates{Lat: 25.2048, Lng: 55.2708},
	},
}

// Seed upserts the starter catalog. Safe to run on every boot.
func Seed(ctx context.Context) error {
	var writes []mongo.WriteModel
	now := time.Now()
	for _, place := range SamplePlaces {
		place.CreatedAt = now
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"placeid": place.PlaceID}).
			SetReplacement(place).
			SetUpsert(true))
	}

	result, err := db.PlacesCollection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return err
	}
	log.Printf("places: seeded catalog (%d upserted, %d updated)", result.UpsertedCount, result.ModifiedCount)

	// drop the stale listing cache so reads pick up the fresh catalog
	if rdx.Conn != nil {
		if err := rdx.RdxDel(placesCacheKey); err != nil {
			log.Printf("places: cache invalidation failed: %v", err)
		}
	}
	return nil
}

package places

import (
	"context"
	"errors"

	"tripweaver/db"
	"tripweaver/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Resolver looks up catalog places for the itinerary store. The
// itinerary side holds only weak references, so an id that no longer
// exists resolves to nil rather than an error.
type Resolver struct{}

func (Resolver) Resolve(ctx context.Context, placeID string) (*models.Place, error) {
	if placeID == "" {
		return nil, nil
	}
	var place models.Place
	err := db.PlacesCollection.FindOne(ctx, bson.M{"placeid": placeID}).Decode(&place)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

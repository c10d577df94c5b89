package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client              *mongo.Client
	UserCollection      *mongo.Collection
	ItineraryCollection *mongo.Collection
	PlacesCollection    *mongo.Collection
)

// Connect opens the Mongo client and binds the collection handles.
// Called once from main; handlers only see ready collections.
func Connect(ctx context.Context, uri, dbName string) error {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return err
	}

	Client = client
	UserCollection = client.Database(dbName).Collection("users")
	ItineraryCollection = client.Database(dbName).Collection("itineraries")
	PlacesCollection = client.Database(dbName).Collection("places")

	return ensureIndexes(ctx)
}

// ensureIndexes creates the unique email index that backs the
// one-user-per-normalized-email invariant. A concurrent duplicate signup
// that slips past the application check fails here with a duplicate-key
// error instead of producing a second user.
func ensureIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = ItineraryCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

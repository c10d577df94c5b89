package places

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/rdx"
	"tripweaver/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	placesCacheKey = "places"
	placesCacheTTL = 10 * time.Minute
)

// BuildFilter maps catalog query params to a Mongo filter. Location is a
// case-insensitive substring match, the rest are exact.
func BuildFilter(category, priceRange, location string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if priceRange != "" {
		filter["priceRange"] = priceRange
	}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}
	return filter
}

// GET /api/places
func GetPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter := BuildFilter(query.Get("category"), query.Get("priceRange"), query.Get("location"))

	// Only the unfiltered listing is cached; it is the hot path the
	// frontend hits on every browse.
	if len(filter) == 0 && rdx.Conn != nil {
		if cached, err := rdx.RdxGet(placesCacheKey); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	places, err := utils.FindAndDecode[models.Place](r.Context(), db.PlacesCollection, filter,
		options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
	if err != nil {
		log.Printf("places: list error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting places")
		return
	}
	if places == nil {
		places = []models.Place{}
	}

	if len(filter) == 0 && rdx.Conn != nil {
		if data, err := json.Marshal(utils.M{"places": places}); err == nil {
			if err := rdx.SetWithExpiry(placesCacheKey, string(data), placesCacheTTL); err != nil {
				log.Printf("places: cache write failed: %v", err)
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"places": places})
}

// GET /api/places/:id
func GetPlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var place models.Place
	err := db.PlacesCollection.FindOne(r.Context(), bson.M{"placeid": id}).Decode(&place)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Place not found")
			return
		}
		log.Printf("places: get error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting place")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"place": place})
}

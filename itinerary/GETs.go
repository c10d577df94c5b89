package itinerary

import (
	"errors"
	"log"
	"net/http"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/itineraries
func (h *Handler) GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraries, err := utils.FindAndDecode[models.Itinerary](
		r.Context(),
		db.ItineraryCollection,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}), // newest first
	)
	if err != nil {
		log.Printf("itinerary: list error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting itineraries")
		return
	}

	views, err := h.buildViews(r.Context(), itineraries)
	if err != nil {
		log.Printf("itinerary: resolve error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"itineraries": views})
}

// GET /api/itineraries/:id
// Optional-auth route: an anonymous caller has an empty id, which the
// visibility filter handles by matching public itineraries only.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r) // may be "" on this route

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(r.Context(), ownedOrPublic(ps.ByName("id"), userID)).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("itinerary: get error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting itinerary")
		return
	}

	view, err := h.buildView(r.Context(), itinerary)
	if err != nil {
		log.Printf("itinerary: resolve error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"itinerary": view})
}

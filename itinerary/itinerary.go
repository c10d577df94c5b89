package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/mq"
	"tripweaver/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceResolver resolves weak place references on read. A missing place
// comes back as (nil, nil); only infrastructure failures return an error.
type PlaceResolver interface {
	Resolve(ctx context.Context, placeID string) (*models.Place, error)
}

// Handler owns the ownership-scoped itinerary endpoints. Every operation
// takes the caller identity from the request context, put there by the
// authentication gate.
type Handler struct {
	Resolver PlaceResolver
	BaseURL  string // public origin used for share links
}

func NewHandler(resolver PlaceResolver, baseURL string) *Handler {
	return &Handler{Resolver: resolver, BaseURL: baseURL}
}

// ownedOrPublic matches an itinerary the caller may read: their own, or
// anyone's public one. Absent and not-owned are indistinguishable to the
// caller by construction of this single filter.
func ownedOrPublic(itineraryID, callerID string) bson.M {
	return bson.M{
		"itineraryid": itineraryID,
		"$or": []bson.M{
			{"user_id": callerID},
			{"is_public": true},
		},
	}
}

// owned matches an itinerary for mutation: id and owner in one filter,
// evaluated atomically by the store. Never split into read-then-check.
func owned(itineraryID, callerID string) bson.M {
	return bson.M{"itineraryid": itineraryID, "user_id": callerID}
}

// POST /api/itineraries
func (h *Handler) CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input createInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if msg := validateCreate(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	var days []models.Day
	if input.AutoGenerateDays {
		days = generateDays(*input.Duration)
	} else {
		if msg := validateDays(input.Days); msg != "" {
			utils.RespondWithError(w, http.StatusBadRequest, msg)
			return
		}
		days = normalizeDays(input.Days)
	}

	now := time.Now()
	itinerary := models.Itinerary{
		ItineraryID: utils.GetUUID(),
		UserID:      userID, // owner comes from the verified token, whatever the body says
		Title:       input.Title,
		Description: input.Description,
		Destination: input.Destination,
		Duration:    *input.Duration,
		Budget:      *input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsPublic:    input.IsPublic,
		Days:        days,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.ItineraryCollection.InsertOne(r.Context(), itinerary); err != nil {
		log.Printf("itinerary: insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error creating itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-created", mq.Index{EntityType: "itinerary", Method: "POST", EntityId: itinerary.ItineraryID, UserId: userID})

	view, err := h.buildView(r.Context(), itinerary)
	if err != nil {
		log.Printf("itinerary: resolve error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error creating itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":   "Itinerary created successfully",
		"itinerary": view,
	})
}

// PUT /api/itineraries/:id
func (h *Handler) UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input patchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if msg := validatePatch(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	set := buildPatch(input)
	set["updated_at"] = time.Now()

	// Single atomic update: the owner check lives inside the filter, so
	// there is no window between checking ownership and writing.
	itineraryID := ps.ByName("id")
	var updated models.Itinerary
	err := db.ItineraryCollection.FindOneAndUpdate(
		r.Context(),
		owned(itineraryID, userID),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("itinerary: update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error updating itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-updated", mq.Index{EntityType: "itinerary", Method: "PUT", EntityId: itineraryID, UserId: userID})

	view, err := h.buildView(r.Context(), updated)
	if err != nil {
		log.Printf("itinerary: resolve error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error updating itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":   "Itinerary updated successfully",
		"itinerary": view,
	})
}

// DELETE /api/itineraries/:id
func (h *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := ps.ByName("id")
	err := db.ItineraryCollection.FindOneAndDelete(r.Context(), owned(itineraryID, userID)).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same body for "no such itinerary" and "not yours"; nothing
			// was deleted in either case.
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("itinerary: delete error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error deleting itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-deleted", mq.Index{EntityType: "itinerary", Method: "DELETE", EntityId: itineraryID, UserId: userID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted successfully"})
}

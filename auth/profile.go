package auth

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
)

// GET /api/users/profile
// The caller id always comes from a verified token, never from client
// input; it can still dangle when the account no longer resolves.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("profile: lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error getting profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user})
}

package itinerary

import (
	"errors"
	"log"
	"net/http"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /api/itineraries/:id/qr
// PNG QR code pointing at the public share URL. Sits behind OptionalAuth
// so a public itinerary's QR works without a token; non-public ones are
// only visible to their owner and 404 for everyone else.
func (h *Handler) ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")
	userID := utils.GetUserIDFromRequest(r) // may be "" on this route

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(r.Context(), ownedOrPublic(itineraryID, userID)).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("itinerary: qr lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error generating QR code")
		return
	}

	png, err := qrcode.Encode(h.BaseURL+"/itineraries/"+itinerary.ItineraryID, qrcode.Medium, 256)
	if err != nil {
		log.Printf("itinerary: qr encode error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error generating QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

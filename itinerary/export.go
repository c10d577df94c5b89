package itinerary

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /api/itineraries/:id/export
// Renders the day-by-day plan as a PDF. Same visibility rule as reads:
// owner or public, anything else is the collapsed 404.
func (h *Handler) ExportItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(r.Context(), ownedOrPublic(ps.ByName("id"), userID)).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("itinerary: export lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error exporting itinerary")
		return
	}

	view, err := h.buildView(r.Context(), itinerary)
	if err != nil {
		log.Printf("itinerary: resolve error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error exporting itinerary")
		return
	}

	pdf := renderPDF(view)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", itinerary.ItineraryID+".pdf"))
	if err := pdf.Output(w); err != nil {
		log.Printf("itinerary: pdf output error: %v", err)
	}
}

func renderPDF(view View) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, view.Title, "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s  |  %d days  |  Budget %.2f", view.Destination, view.Duration, view.Budget), "", "L", false)
	if view.StartDate != "" || view.EndDate != "" {
		pdf.MultiCell(0, 6, fmt.Sprintf("%s - %s", view.StartDate, view.EndDate), "", "L", false)
	}
	if view.Description != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, view.Description, "", "L", false)
	}

	for _, day := range view.Days {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 13)
		header := fmt.Sprintf("Day %d", day.DayNumber)
		if day.Title != "" {
			header += " - " + day.Title
		}
		pdf.MultiCell(0, 7, header, "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		if day.Description != "" {
			pdf.MultiCell(0, 5, day.Description, "", "L", false)
		}
		for _, assignment := range day.Places {
			name := "(removed from catalog)"
			if assignment.Place != nil {
				name = fmt.Sprintf("%s, %s", assignment.Place.Name, assignment.Place.Location)
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("  %s: %s (%.0fh)", assignment.TimeSlot, name, assignment.Duration), "", "L", false)
		}
	}

	return pdf
}

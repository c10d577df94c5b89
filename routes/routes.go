package routes

import (
	"tripweaver/auth"
	"tripweaver/itinerary"
	"tripweaver/middleware"
	"tripweaver/places"
	"tripweaver/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddUserRoutes(router *httprouter.Router, authHandler *auth.Handler, gate *middleware.Auth, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/users/signup", rateLimiter.Limit(authHandler.Signup))
	router.POST("/api/users/authenticate", rateLimiter.Limit(authHandler.Authenticate))
	router.GET("/api/users/profile", gate.Authenticate(authHandler.GetProfile))
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler, gate *middleware.Auth) {
	router.GET("/api/itineraries", gate.Authenticate(h.GetItineraries))   // Fetch the caller's itineraries
	router.POST("/api/itineraries", gate.Authenticate(h.CreateItinerary)) // Create a new itinerary

	// Single-itinerary reads are optional-auth so a shared public
	// itinerary (and its QR link) works without a token. The visibility
	// filter inside the handler still hides private ones.
	router.GET("/api/itineraries/:id", gate.OptionalAuth(h.GetItinerary))

	router.PUT("/api/itineraries/:id", gate.Authenticate(h.UpdateItinerary))        // Update an itinerary
	router.DELETE("/api/itineraries/:id", gate.Authenticate(h.DeleteItinerary))     // Delete an itinerary
	router.GET("/api/itineraries/:id/export", gate.Authenticate(h.ExportItinerary)) // PDF export
	router.GET("/api/itineraries/:id/qr", gate.OptionalAuth(h.ShareQR))             // Public share QR
}

func AddPlaceRoutes(router *httprouter.Router) {
	router.GET("/api/places", places.GetPlaces)
	router.GET("/api/places/:id", places.GetPlace)
}

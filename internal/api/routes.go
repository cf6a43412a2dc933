package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the API surface. Reads are public; writes sit behind
// the auth middleware so every mutation has a principal.
func SetupRoutes(router *gin.Engine, h *Handler, auth gin.HandlerFunc) {
	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		api.GET("/listings", h.ListListings)
		api.GET("/listings/nearby", h.ListNearbyListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/reviews", h.ListListingReviews)
		api.GET("/reviews/:id", h.GetReview)
	}

	protected := api.Group("")
	protected.Use(auth)
	{
		protected.POST("/listings", h.CreateListing)
		protected.PUT("/listings/:id", h.UpdateListing)
		protected.DELETE("/listings/:id", h.DeleteListing)
		protected.GET("/listings/:id/bookings", h.ListListingBookings)

		protected.POST("/bookings", h.CreateBooking)
		protected.GET("/bookings", h.ListMyBookings)
		protected.GET("/bookings/:id", h.GetBooking)
		protected.PUT("/bookings/:id", h.UpdateBooking)
		protected.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		protected.DELETE("/bookings/:id", h.DeleteBooking)

		protected.POST("/reviews", h.CreateReview)
		protected.PUT("/reviews/:id", h.UpdateReview)
		protected.DELETE("/reviews/:id", h.DeleteReview)
	}
}

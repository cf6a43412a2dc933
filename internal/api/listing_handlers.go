package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
)

func (h *Handler) ListListings(c *gin.Context) {
	var q dto.ListListingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondBindingError(c, err)
		return
	}
	listings, err := h.listings.List(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) ListNearbyListings(c *gin.Context) {
	var q dto.NearbyListingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondBindingError(c, err)
		return
	}
	listings, err := h.listings.ListNearby(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) GetListing(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	listing, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *Handler) CreateListing(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var in dto.CreateListingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	listing, err := h.listings.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *Handler) UpdateListing(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	listing, err := h.listings.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *Handler) DeleteListing(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.listings.Delete(c.Request.Context(), principal, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListListingReviews(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	reviews, err := h.reviews.ListForListing(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) ListListingBookings(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	bookings, err := h.bookings.ListForListing(c.Request.Context(), principal, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

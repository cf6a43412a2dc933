package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var in dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	booking, err := h.bookings.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	bookings, err := h.bookings.ListMine(c.Request.Context(), principal)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	booking, err := h.bookings.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	booking, err := h.bookings.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	booking, err := h.bookings.UpdateStatus(c.Request.Context(), principal, id, models.BookingStatus(in.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.bookings.Delete(c.Request.Context(), principal, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

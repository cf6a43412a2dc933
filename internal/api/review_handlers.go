package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
)

func (h *Handler) CreateReview(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var in dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	review, err := h.reviews.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) GetReview(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	review, err := h.reviews.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondBindingError(c, err)
		return
	}
	review, err := h.reviews.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.reviews.Delete(c.Request.Context(), principal, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

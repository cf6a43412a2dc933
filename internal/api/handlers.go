package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/middleware"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/service"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

type Handler struct {
	listings *service.ListingService
	bookings *service.BookingService
	reviews  *service.ReviewService
	logger   *logrus.Logger
}

func NewHandler(listings *service.ListingService, bookings *service.BookingService, reviews *service.ReviewService, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Handler{
		listings: listings,
		bookings: bookings,
		reviews:  reviews,
		logger:   logger,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// principal extracts the authenticated user set by the auth middleware.
// Routes behind the middleware always have one; a miss means a wiring bug.
func (h *Handler) principal(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.logger.Error("No principal in context on a protected route")
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
			"code": "Unauthorized", "message": "authentication required",
		}})
	}
	return user, ok
}

// pathID parses the :id path parameter.
func (h *Handler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    validation.CodeInvalidField,
			"field":   "id",
			"message": "id must be a valid UUID",
		}})
		return uuid.Nil, false
	}
	return id, true
}

// statusForKind maps the validation taxonomy onto HTTP statuses.
func statusForKind(kind validation.Kind) int {
	switch kind {
	case validation.KindNotFound:
		return http.StatusNotFound
	case validation.KindDuplicate:
		return http.StatusConflict
	case validation.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// respondError renders structured validation errors with the right status
// and hides everything else behind a 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(statusForKind(verrs[0].Kind), gin.H{"errors": verrs})
		return
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(statusForKind(verr.Kind), gin.H{"error": verr})
		return
	}
	h.logger.WithError(err).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
		"code": "Internal", "message": "internal server error",
	}})
}

// respondBindingError converts gin binding failures into the same structured
// shape as rule violations.
func (h *Handler) respondBindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make(validation.Errors, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, validation.FieldErr(fe.Field(), "failed on rule "+fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": out})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
		"code":    validation.CodeInvalidField,
		"message": "invalid request payload",
	}})
}

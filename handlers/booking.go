package handlers

import (
	"net/http"

	"clinicportal/models"
	"clinicportal/services/booking"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and lookup.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// CreateBookingHandler handles POST /bookings. A rejected booking still
// answers 200 with {acknowledged:false, message}; only store failures are
// surfaced as errors.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload", "details": err.Error()})
		return
	}

	ack, err := h.Service.Admit(req)
	if err != nil {
		logger.Error("Failed to admit booking", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ack)
}

// GetBookingsByEmailHandler handles GET /bookings?email=<E>.
func (h *BookingHandler) GetBookingsByEmailHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

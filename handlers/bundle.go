package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetAppointmentOptionsHandler   gin.HandlerFunc
	GetAppointmentOptionsV2Handler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler      gin.HandlerFunc
	GetBookingsByEmailHandler gin.HandlerFunc

	// User endpoints
	CreateUserHandler gin.HandlerFunc
}

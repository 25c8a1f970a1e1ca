package handlers

import (
	"net/http"

	"clinicportal/services/availability"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the availability view through both resolver
// strategies. The v1 route differences in-process, the v2 route lets the
// store do the join; responses are identical in shape.
type AvailabilityHandler struct {
	TwoQuery  availability.Resolver
	Aggregate availability.Resolver
}

func NewAvailabilityHandler(twoQuery, aggregate availability.Resolver) *AvailabilityHandler {
	return &AvailabilityHandler{TwoQuery: twoQuery, Aggregate: aggregate}
}

// GetAppointmentOptionsHandler handles GET /appointmentOptions?date=<D>.
func (h *AvailabilityHandler) GetAppointmentOptionsHandler(c *gin.Context) {
	h.resolve(c, h.TwoQuery)
}

// GetAppointmentOptionsV2Handler handles GET /v2/appointmentOptions?date=<D>.
func (h *AvailabilityHandler) GetAppointmentOptionsV2Handler(c *gin.Context) {
	h.resolve(c, h.Aggregate)
}

func (h *AvailabilityHandler) resolve(c *gin.Context, resolver availability.Resolver) {
	logger := utils.GetLogger()
	date := c.Query("date")

	options, err := resolver.Resolve(date)
	if err != nil {
		logger.Error("Failed to resolve availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

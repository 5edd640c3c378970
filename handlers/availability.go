package handlers

import (
	"net/http"

	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the per-date open-slot endpoint.
type AvailabilityHandler struct {
	Engine availability.AvailabilityEngine
	Logger *zap.Logger
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(engine availability.AvailabilityEngine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// GetAvailable handles GET /available?date=YYYY-MM-DD. The date is passed
// through verbatim; bookings match on exact string equality.
func (h *AvailabilityHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	services, err := h.Engine.ComputeAvailability(date)
	if err != nil {
		h.Logger.Error("availability computation failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": services})
}

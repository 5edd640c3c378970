package handlers

import (
	"net/http"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ServiceHandler exposes the treatment catalog listing.
type ServiceHandler struct {
	Repo   serviceRepo.ServiceRepository
	Logger *zap.Logger
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(repo serviceRepo.ServiceRepository, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Repo: repo, Logger: logger}
}

// ListServices handles GET /service with a name-only projection; slot data
// is served by the availability endpoint instead.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.GetAllWithProjection(bson.M{"name": 1})
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": services})
}

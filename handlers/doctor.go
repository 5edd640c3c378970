package handlers

import (
	"errors"
	"net/http"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DoctorHandler exposes the admin-only doctor roster endpoints.
type DoctorHandler struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(repo doctorRepo.DoctorRepository, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Repo: repo, Logger: logger}
}

// ListDoctors handles GET /doctor.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": doctors})
}

// AddDoctor handles POST /doctor.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}
	if doc.Email == "" || doc.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required", "")
		return
	}

	doc.ID = uuid.New().String()
	if err := h.Repo.Create(&doc); err != nil {
		h.Logger.Error("failed to add doctor", zap.String("email", doc.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Inserted successfully"})
}

// RemoveDoctor handles DELETE /doctor/:email.
func (h *DoctorHandler) RemoveDoctor(c *gin.Context) {
	email := c.Param("email")
	if err := h.Repo.DeleteByEmail(email); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		h.Logger.Error("failed to remove doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed successfully"})
}

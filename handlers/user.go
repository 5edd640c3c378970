package handlers

import (
	"errors"
	"net/http"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes login, user listing, and role management.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// Login handles PUT /user/:email: upserts the user record and issues a
// fresh access token. The route is public; it is how a caller obtains a
// credential in the first place.
func (h *UserHandler) Login(c *gin.Context) {
	var body models.User
	if err := c.ShouldBindJSON(&body); err != nil {
		// An empty body is fine; the email path parameter is authoritative.
		body = models.User{}
	}
	body.Email = c.Param("email")
	if body.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required", "")
		return
	}

	token, err := h.Service.Login(body)
	if err != nil {
		h.Logger.Error("login failed", zap.String("email", body.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// ListUsers handles GET /user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": users})
}

// GrantAdmin handles PUT /user/admin/:email. Only reachable through the
// admin-gated route group.
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	email := c.Param("email")
	if err := h.Service.GrantAdmin(email); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		h.Logger.Error("failed to grant admin", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin role granted"})
}

// CheckAdmin handles GET /admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.Service.IsAdmin(c.Param("email"))
	if err != nil {
		h.Logger.Error("admin check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user sign-in upserts, listings and role operations.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// upsertUserRequest carries the profile fields of PUT /user/:email.
type upsertUserRequest struct {
	Name string `json:"name"`
}

// UpsertUserHandler creates or updates the user record for the email in the
// path and answers with a fresh bearer token for it.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	token, err := h.Service.SignIn(&models.User{Email: email, Name: req.Name})
	if err != nil {
		zap.L().Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to upsert user", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": "updated", "token": token})
}

// GetAllUsersHandler returns all users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler reports whether the email resolves to the admin role.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		zap.L().Error("Failed to resolve role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to resolve role", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PromoteUserHandler sets role=admin on the target user. Promoting an
// unknown email is a 404; no record is created.
func (h *UserHandler) PromoteUserHandler(c *gin.Context) {
	email := c.Param("email")

	if err := h.Service.Promote(email); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		zap.L().Error("Failed to promote user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to promote user", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": "promoted", "email": email})
}

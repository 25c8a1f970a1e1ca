package handlers

import (
	"net/http"

	"clinicportal/models"
	"clinicportal/services/user"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user record creation.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// CreateUserHandler handles POST /users.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user payload", "details": err.Error()})
		return
	}

	if err := h.Service.CreateUser(&req); err != nil {
		logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.InsertAck{Acknowledged: true, InsertedID: req.ID})
}

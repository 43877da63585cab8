package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DraymeM/tiomi/internal/service"
	"github.com/DraymeM/tiomi/pkg/response"
)

// UserHandler serves the user lookup endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetUser returns a user projection by id.
// GET /api/v1/users/:id (superuser only)
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	result, err := h.userSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

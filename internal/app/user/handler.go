package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListUsers(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List users
// @Description Get all known identities, for assignee and filter pickers
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} ListUsersResponse
// @Router /api/v1/users [get]
func (h *handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, ListUsersResponse{
		Success: true,
		Message: "Users fetched successfully.",
		Data:    users,
	})
}

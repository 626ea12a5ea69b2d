package task

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/apperror"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListTasksByBoardID(c *gin.Context)
	CreateTask(c *gin.Context)
	UpdateTaskStatus(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List board tasks
// @Description Get a board's tasks grouped by status with per-group counts
// @Tags Task
// @Accept json
// @Produce json
// @Param board_id path int true "Board id"
// @Param search query string false "Case-insensitive title/description filter"
// @Param filter_user_id query int false "Only tasks this user created or last updated"
// @Success 200 {object} ListTasksResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks/{board_id} [get]
func (h *handler) ListTasksByBoardID(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil || boardID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}

	search := c.Query("search")

	var filterUserID *uint64
	if raw := c.Query("filter_user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
			return
		}
		filterUserID = &id
	}

	grouped, err := h.service.ListTasks(c.Request.Context(), boardID, search, filterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListTasksResponse{
		Success: true,
		Message: "Tasks fetched successfully.",
		MetaData: ListMeta{
			Pending:    grouped.Counts.Pending,
			InProgress: grouped.Counts.InProgress,
			Completed:  grouped.Counts.Completed,
			Total:      grouped.Total,
		},
		Data: grouped.Tasks,
	})
}

// @Summary Create task
// @Description Create a pending task under a live board
// @Tags Task
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task fields"
// @Success 201 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks [post]
func (h *handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}

	t, err := h.service.CreateTask(c.Request.Context(), req.BoardID, req.Title, req.Description, req.AssigneeID, middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Task created successfully.",
		Data:    t,
	})
}

// @Summary Update task status
// @Description Set a task's status; transitions are unconstrained
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param request body UpdateTaskStatusRequest true "New status"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks/status/{id} [patch]
func (h *handler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}

	if err := h.service.UpdateTaskStatus(c.Request.Context(), id, req.Status, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Task status updated successfully.",
	})
}

// @Summary Update task
// @Description Patch title, description, status and/or assignee of a task
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param request body Patch true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks/{id} [patch]
func (h *handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}
	if patch.Title.Set && (len(patch.Title.Value) < 1 || len(patch.Title.Value) > 255) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}
	if patch.Status.Set && !patch.Status.Value.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}

	if err := h.service.UpdateTask(c.Request.Context(), id, patch, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Task updated successfully.",
	})
}

// @Summary Delete task
// @Description Soft-delete a task
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks/{id} [delete]
func (h *handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), id, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Task deleted successfully.",
	})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{Success: false, Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: "Internal server error."})
}

package board

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/apperror"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateBoard(c *gin.Context)
	ListBoards(c *gin.Context)
	GetBoardByID(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create board
// @Description Create a new board owned by the caller
// @Tags Board
// @Accept json
// @Produce json
// @Param request body CreateBoardRequest true "Board fields"
// @Success 201 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}

	b, err := h.service.CreateBoard(c.Request.Context(), req.Name, req.Description, middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Board created successfully.",
		Data:    b,
	})
}

// @Summary List boards
// @Description List boards visible to the caller, optionally filtered by search term
// @Tags Board
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive name/description filter"
// @Success 200 {object} Response
// @Router /api/v1/boards [get]
func (h *handler) ListBoards(c *gin.Context) {
	search := c.Query("search")

	boards, err := h.service.ListBoards(c.Request.Context(), middleware.CallerID(c), search)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Boards fetched successfully.",
		Data:    boards,
	})
}

// @Summary Get board
// @Description Get a single board by id
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/boards/{id} [get]
func (h *handler) GetBoardByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBoardByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if b == nil {
		respondError(c, apperror.NewNotFound("Board not found!"))
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Board fetched successfully.",
		Data:    b,
	})
}

// @Summary Update board
// @Description Patch name and/or description of a board
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board id"
// @Param request body Patch true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/boards/{id} [patch]
func (h *handler) UpdateBoard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}
	if patch.Name.Set && (len(patch.Name.Value) < 1 || len(patch.Name.Value) > 255) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Data validation failed"})
		return
	}

	if err := h.service.UpdateBoard(c.Request.Context(), id, patch, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Board updated successfully.",
	})
}

// @Summary Delete board
// @Description Soft-delete a board
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/boards/{id} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBoard(c.Request.Context(), id, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Board deleted successfully.",
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

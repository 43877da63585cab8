package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DraymeM/tiomi/internal/dto"
	"github.com/DraymeM/tiomi/internal/service"
	"github.com/DraymeM/tiomi/pkg/response"
)

// TetelHandler serves the study-item catalog endpoints.
type TetelHandler struct {
	tetelSvc service.TetelService
}

// NewTetelHandler creates the TetelHandler.
func NewTetelHandler(tetelSvc service.TetelService) *TetelHandler {
	return &TetelHandler{tetelSvc: tetelSvc}
}

func parseTetelID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid tétel id")
		return 0, false
	}
	return id, true
}

// List returns the catalog summaries.
// GET /api/v1/tetelek
func (h *TetelHandler) List(c *gin.Context) {
	list, err := h.tetelSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.ListResponse{List: list, Total: len(list)})
}

// GetDetails returns one tétel with its full section tree, summary and
// derived reading time.
// GET /api/v1/tetelek/:id
func (h *TetelHandler) GetDetails(c *gin.Context) {
	id, ok := parseTetelID(c)
	if !ok {
		return
	}

	result, err := h.tetelSvc.GetDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTetelNotFound) {
			response.NotFound(c, 12001, "tétel not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create stores a new tétel.
// POST /api/v1/tetelek
func (h *TetelHandler) Create(c *gin.Context) {
	var req dto.CreateTetelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "validation failed", err.Error())
		return
	}

	ref, err := h.tetelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, ref)
}

// Update replaces a tétel's name, section tree and summary.
// PUT /api/v1/tetelek/:id
func (h *TetelHandler) Update(c *gin.Context) {
	id, ok := parseTetelID(c)
	if !ok {
		return
	}

	var req dto.UpdateTetelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "validation failed", err.Error())
		return
	}

	if err := h.tetelSvc.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrTetelNotFound) {
			response.NotFound(c, 12001, "tétel not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Delete removes a tétel and its dependent rows.
// DELETE /api/v1/tetelek/:id (superuser only)
func (h *TetelHandler) Delete(c *gin.Context) {
	id, ok := parseTetelID(c)
	if !ok {
		return
	}

	if err := h.tetelSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTetelNotFound) {
			response.NotFound(c, 12001, "tétel not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

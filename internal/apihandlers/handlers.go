package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vlogtagger/internal/app"
	"vlogtagger/internal/services"
	"vlogtagger/internal/store"
)

// APIHandler serves the vlog and analysis routes.
type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// requireVlogService guards routes that need Postgres-backed state.
func (h *APIHandler) requireVlogService(c *gin.Context) *services.VlogService {
	if h.App.VlogService == nil {
		Internal(c, "vlog persistence is not configured (no database DSN)")
		return nil
	}
	return h.App.VlogService
}

// CreateVlogRequest is the POST /vlogs body.
type CreateVlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// CreateVlogHandler stores a new vlog, auto-tagging per configuration.
func (h *APIHandler) CreateVlogHandler(c *gin.Context) {
	svc := h.requireVlogService(c)
	if svc == nil {
		return
	}

	var req CreateVlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	v, err := svc.CreateVlog(c.Request.Context(), services.CreateVlogParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		Internal(c, fmt.Sprintf("create vlog: %v", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": v})
}

// UpdateVlogRequest is the PUT /vlogs/:id body. Omitted fields are
// left unchanged.
type UpdateVlogRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
}

// UpdateVlogHandler applies a partial update, re-running tag
// generation when the description changes.
func (h *APIHandler) UpdateVlogHandler(c *gin.Context) {
	svc := h.requireVlogService(c)
	if svc == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid vlog id")
		return
	}

	var req UpdateVlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	v, err := svc.UpdateVlog(c.Request.Context(), id, services.UpdateVlogParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "vlog not found")
			return
		}
		Internal(c, fmt.Sprintf("update vlog: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": v})
}

// GetVlogHandler fetches one vlog.
func (h *APIHandler) GetVlogHandler(c *gin.Context) {
	svc := h.requireVlogService(c)
	if svc == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid vlog id")
		return
	}

	v, err := svc.GetVlog(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "vlog not found")
			return
		}
		Internal(c, fmt.Sprintf("get vlog: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": v})
}

// ListVlogsHandler lists vlogs newest-first with excerpts.
func (h *APIHandler) ListVlogsHandler(c *gin.Context) {
	svc := h.requireVlogService(c)
	if svc == nil {
		return
	}

	limit, offset := parsePagination(c)
	summaries, err := svc.ListVlogs(c.Request.Context(), limit, offset)
	if err != nil {
		Internal(c, fmt.Sprintf("list vlogs: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

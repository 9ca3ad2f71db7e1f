package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/service"
)

type Handler struct {
	analyzer     *service.Analyzer
	defaultDepth int
}

func New(analyzer *service.Analyzer, defaultDepth int) *Handler {
	return &Handler{analyzer: analyzer, defaultDepth: defaultDepth}
}

func (h *Handler) Trace(c *gin.Context) {
	var req TraceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Field == "" {
		c.String(http.StatusBadRequest, "field is required")
		return
	}

	tree, err := h.analyzer.TraceField(req.Field, h.depth(req.Depth))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *Handler) Impact(c *gin.Context) {
	var req TraceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Field == "" {
		c.String(http.StatusBadRequest, "field is required")
		return
	}

	tree, err := h.analyzer.AnalyzeImpact(req.Field, h.depth(req.Depth))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *Handler) Paths(c *gin.Context) {
	var req PathsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Field == "" {
		c.String(http.StatusBadRequest, "field is required")
		return
	}

	paths, err := h.analyzer.FieldLineagePaths(req.Field)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, PathsResponse{Field: req.Field, Paths: paths})
}

func (h *Handler) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.Validate())
}

func (h *Handler) Graph(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.ExportGraph())
}

func (h *Handler) depth(requested *int) int {
	if requested == nil {
		return h.defaultDepth
	}
	return *requested
}

func (h *Handler) queryError(c *gin.Context, err error) {
	var fieldErr *domain.FieldNotFoundError
	var nodeErr *domain.NodeNotFoundError
	if errors.As(err, &fieldErr) || errors.As(err, &nodeErr) {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	c.String(http.StatusInternalServerError, err.Error())
}

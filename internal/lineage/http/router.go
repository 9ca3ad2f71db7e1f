package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/trace", h.Trace)
	rg.POST("/impact", h.Impact)
	rg.POST("/paths", h.Paths)

	// read-only views over the completed graph
	rg.GET("/validate", h.Validate)
	rg.GET("/graph", h.Graph)
}

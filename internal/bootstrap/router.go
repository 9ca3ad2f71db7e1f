package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/DataLineage-25-26J-512/lineage-backend/internal/api/http"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/api/http/middleware"
	lineagehttp "github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/http"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Analyzer    *service.Analyzer
	MaxDepth    int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	lineageHandler := lineagehttp.New(dep.Analyzer, dep.MaxDepth)
	lineageHandler.Register(api.Group("/lineage"))

	return r
}

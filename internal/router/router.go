package router

import (
	"taskboard/internal/app/board"
	"taskboard/internal/app/health"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
	apiV1  *gin.RouterGroup
}

func NewRouter(logger *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	// Everything under /api/v1 requires a resolved caller identity.
	apiV1 := engine.Group("/api/v1", middleware.IdentityMiddleware())

	return &Router{Engine: engine, apiV1: apiV1}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.apiV1, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.apiV1, handler)
}

func (r *Router) RegisterTaskRoutes(handler task.Handler) {
	task.RegisterRoutes(r.apiV1, handler)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}

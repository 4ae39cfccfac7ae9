package handlers

import (
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	uploadsDir string
}

// NewHandler constructs a new HTTP handler with dependencies. uploadsDir is
// mounted for static serving under /uploads; pass "" to skip mounting.
func NewHandler(services *service.Service, log *logger.Logger, uploadsDir string) *Handler {
	return &Handler{services: services, log: log, uploadsDir: uploadsDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Uploaded files are served directly from disk
	if h.uploadsDir != "" {
		router.Static("/uploads", h.uploadsDir)
	}

	api := router.Group("/api")
	{
		h.registerPublicRoutes(api)
		h.registerProtectedRoutes(api)
	}

	return router
}

func (h *Handler) registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:id", h.getProject)
	api.POST("/login", h.login)
	api.GET("/resume", h.getResume)
}

func (h *Handler) registerProtectedRoutes(api *gin.RouterGroup) {
	protected := api.Group("", h.identityMiddleware)
	{
		protected.GET("/verify", h.verify)
		protected.POST("/projects", h.createProject)
		protected.PUT("/projects/:id", h.updateProject)
		protected.DELETE("/projects/:id", h.deleteProject)
		protected.POST("/change-password", h.changePassword)
		protected.POST("/resume", h.uploadResume)
		protected.DELETE("/resume", h.deleteResume)
	}
}

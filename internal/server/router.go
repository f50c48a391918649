// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/yukikurage/student-directory-api/internal/constants"
	"github.com/yukikurage/student-directory-api/internal/handlers"
	"github.com/yukikurage/student-directory-api/internal/middleware"
	"github.com/yukikurage/student-directory-api/internal/repository"
	"github.com/yukikurage/student-directory-api/internal/services"
	"gorm.io/gorm"
)

// Deps are the collaborators the router is built from. IndexCache may be nil.
type Deps struct {
	DB           *gorm.DB
	SessionStore sessions.Store
	IndexCache   services.IndexCache
	Logger       zerolog.Logger
	Registry     *prometheus.Registry
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(deps Deps) *gin.Engine {
	userRepo := repository.NewUserRepository(deps.DB)
	projectRepo := repository.NewProjectRepository(deps.DB)

	authOpts := []services.AuthOption{}
	if deps.IndexCache != nil {
		authOpts = append(authOpts, services.WithAuthIndexCache(deps.IndexCache))
	}
	authService := services.NewAuthService(userRepo, authOpts...)
	userService := services.NewUserService(userRepo, deps.IndexCache)
	projectService := services.NewProjectService(projectRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(metrics.Handler())
	r.Use(sessions.Sessions(constants.SessionCookieName, deps.SessionStore))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/edit", middleware.RequireProfileOwner(), userHandler.EditUser)
			users.PATCH("/:id", middleware.RequireProfileOwner(), userHandler.UpdateUser)
			users.PUT("/:id", middleware.RequireProfileOwner(), userHandler.UpdateUser)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/join", projectHandler.JoinProject)
			projects.DELETE("/:id/members/:user_id", projectHandler.RemoveMember)
		}
	}

	return r
}

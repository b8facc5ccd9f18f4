package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/scenescore/scenescore/internal/transport/http/handler"
	"github.com/scenescore/scenescore/internal/transport/http/middleware"
	"github.com/scenescore/scenescore/internal/web"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Project *handler.ProjectHandler
	Scene   *handler.SceneHandler
	Public  *handler.PublicHandler
	Search  *handler.SearchHandler
	Views   *web.Handler
}

func NewRouter(logger *slog.Logger, h Handlers, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(jwtKey)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/change-password", authMW, h.Auth.ChangePassword)
	auth.POST("/reset-request", h.Auth.RequestReset)
	auth.POST("/reset", h.Auth.Reset)

	admin := api.Group("/admin", authMW)
	admin.GET("/projects", h.Project.List)
	admin.POST("/projects", h.Project.Create)
	admin.GET("/projects/:id", h.Project.Get)
	admin.PUT("/projects/:id", h.Project.Update)
	admin.DELETE("/projects/:id", h.Project.Delete)
	admin.GET("/projects/:id/scenes", h.Scene.List)
	admin.POST("/projects/:id/scenes", h.Scene.Create)
	admin.PUT("/scenes/:id", h.Scene.Update)
	admin.DELETE("/scenes/:id", h.Scene.Delete)

	api.GET("/public/:slug", h.Public.GetBySlug)
	api.POST("/spotify/search", authMW, h.Search.Search)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Views
	r.GET("/", h.Views.Dashboard)
	r.GET("/edit/:id", h.Views.Editor)
	r.GET("/p/:slug", h.Views.Player)

	return r
}

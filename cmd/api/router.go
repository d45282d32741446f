package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

// SetupRouter wires the HTTP surface. The catalog endpoints are public;
// login and logout live under /auth and manage the session tokens that
// middleware.SessionAuth understands.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))
		api.GET("/getAuthors", c.AuthorHandler.Get)
		api.GET("/getBooks", c.BookHandler.Get)

		writes := api.Group("")
		if c.Config.Session.ProtectWrites {
			writes.Use(middleware.SessionAuth(c.Sessions))
		}
		writes.POST("/addAuthor", c.AuthorHandler.Create)
		writes.POST("/addBook", c.BookHandler.Create)
		writes.PUT("/editBook", c.BookHandler.Edit)
		writes.DELETE("/deleteResource", c.ResourceHandler.Delete)
	}

	auth := router.Group("/auth")
	{
		auth.PUT("/login", c.UserHandler.Login)
		auth.PUT("/logout", c.UserHandler.Logout)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		sessionStatus := "ok"
		if err := appCtx.Sessions.Ping(ctx); err != nil {
			sessionStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"sessions": sessionStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

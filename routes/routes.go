package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/dealshub/DealsHub/controllers"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	// Global middleware must precede route registration
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Visitor sessions back click attribution
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dealshub-session"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24 * 365,
		Path:     "/",
		Secure:   os.Getenv("ENV") == "production",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("dealshub", store))
	router.Use(utils.VisitorSessionMiddleware())

	// Auth routes (Google sign-in lives outside the versioned API)
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// API version group
	api := router.Group("/v1")
	{
		initPublicRoutes(api)
		initAdminRoutes(api)
	}

	router.NoRoute(notFoundHandler)

	return router
}

// notFoundHandler content-negotiates the 404 fallback between json, html
// and plain text.
func notFoundHandler(c *gin.Context) {
	accept := c.GetHeader("Accept")
	switch {
	case strings.Contains(accept, "application/json"):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	case strings.Contains(accept, "text/html"):
		c.Data(http.StatusNotFound, "text/html; charset=utf-8",
			[]byte("<html><body><h1>404 Not Found</h1><p>The page you requested does not exist.</p></body></html>"))
	default:
		c.String(http.StatusNotFound, "404 not found")
	}
}

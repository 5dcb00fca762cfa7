package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/config"
	"github.com/RekhaKadam/sonna-s-cafe/handlers"
	"github.com/RekhaKadam/sonna-s-cafe/otp"
	"github.com/RekhaKadam/sonna-s-cafe/routes"
	"github.com/RekhaKadam/sonna-s-cafe/session"
	"github.com/RekhaKadam/sonna-s-cafe/store"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Wire up services
	st := store.New(store.NewGormKV(config.DB))
	gen := otp.NewGenerator()
	sessions := session.NewManager(st, gen)
	h := handlers.New(st, gen, sessions)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, "+handlers.SessionHeader)
		c.Header("Access-Control-Expose-Headers", handlers.SessionHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Sonna's Cafe Storefront API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "☕ Welcome to the Sonna's Cafe Storefront API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"menu":    "/api/menu",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	port := config.Port()
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

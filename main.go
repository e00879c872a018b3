package main

import (
	"log"
	"time"

	"finance-assistant-api/config"
	"finance-assistant-api/middleware"
	"finance-assistant-api/routes"
	"finance-assistant-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set: chat is unavailable and tips fall back to the static list")
	}

	ai := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	tipAI := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiTipModel)
	tips := services.NewTipService(tipAI, services.NewFileTipCache(cfg.TipCacheFile))

	router := gin.Default()

	allowedOrigins := []string{cfg.FrontendURL}
	if cfg.FrontendURL != "http://localhost:3000" {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000")
	}

	log.Printf("🌍 CORS: Allowing origins:")
	for _, origin := range allowedOrigins {
		log.Printf("   - %s", origin)
	}

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID())
	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("📨 [%s] %s %s from %s - %d (%v)",
			middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path,
			c.ClientIP(), c.Writer.Status(), time.Since(start))
	})
	router.Use(middleware.RateLimiter(100, time.Minute))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Finance assistant backend with Gemini API is running!"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":            "healthy",
			"gemini_configured": ai.Configured(),
			"time":              time.Now().Format(time.RFC3339),
		})
	})

	root := router.Group("/")
	{
		routes.SetupChatRoutes(root, ai)
		routes.SetupReportRoutes(root)
		routes.SetupTipRoutes(root, tips)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

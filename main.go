package main

import (
	"log"
	"os"
	"playfair-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.ExposeHeaders = []string{"X-Cipher-Mode", "X-Cipher-Digraphs", "X-Request-ID"}
	config.AllowCredentials = true
	router.Use(cors.New(config))
	router.Use(requestID())

	cipherHandler := handlers.NewCipherHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.EncryptText)
			cipher.POST("/decrypt", cipherHandler.DecryptText)
			cipher.POST("/grid", cipherHandler.BuildGrid)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/cipher/encrypt - Encrypt text with the Playfair cipher")
	log.Printf("  POST /api/v1/cipher/decrypt - Decrypt Playfair ciphertext")
	log.Printf("  POST /api/v1/cipher/grid    - Show the 5x5 key square for a key")
	log.Printf("  GET  /api/v1/health         - Health check")
	log.Printf("")
	log.Printf("Features:")
	log.Printf("  • 5x5 key square built from a keyword (default: KEYWORD)")
	log.Printf("  • Configurable alphabet reduction (J merged into I, or Q dropped)")
	log.Printf("  • Automatic digraph formation with X padding")
	log.Printf("  • Formatted output grouped into letter pairs")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// requestID stamps every response with a unique id for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Request-ID", uuid.NewString())
		c.Next()
	}
}

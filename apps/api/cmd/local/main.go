//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/chessclub/club-events-api/apps/api/server"
	"github.com/chessclub/club-events-api/libs/go/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Chess Club Events API
// @version         1.0
// @description     Event booking, refunds, discounts and organizer email for the chess club

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token.

func main() {
	err := godotenv.Load("../../.env")
	if err != nil {
		// the environment may be set directly
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

package main

import (
	"context"
	"log"

	"app/catalog"
	"app/config"
	"app/database"
	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.Load()

	ctx := context.Background()

	// Initialize database. The dashboard stays functional without one:
	// the catalog falls back to the JSON file and history endpoints
	// report storage as unavailable.
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB(config.AppConfig.DatabaseURL)
		defer database.CloseDB()

		if err := database.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure database schema: %v", err)
		}
	} else {
		log.Println("DATABASE_URL is not set, running without persistence")
	}

	// Load the product catalog
	if err := catalog.Load(ctx, database.GetDB(), config.AppConfig.ProductsPath); err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	if !config.AppConfig.HasGeminiKey() {
		log.Println("No valid Gemini API key found, chat will use fallback responses")
	}

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

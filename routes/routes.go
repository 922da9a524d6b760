package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Catalog & Analysis ---
	api.Get("/products", handlers.HandleGetProducts)
	api.Get("/products/:name/history", handlers.HandleProductHistory)
	api.Post("/analyze", handlers.HandleAnalyze)

	// --- Dashboard & Analytics ---
	api.Get("/dashboard/stats", handlers.HandleDashboardStats)
	api.Get("/analytics", handlers.HandleAnalyticsData)
	api.Get("/analyses/recent", handlers.HandleRecentAnalyses)
	api.Get("/offers", handlers.HandleGetOffers)

	// --- AI Chat ---
	api.Post("/chat", handlers.HandleChat)

	// --- Profile (authenticated) ---
	api.Put("/profile", middleware.JWTMiddleware, handlers.HandleUpdateProfile)
}

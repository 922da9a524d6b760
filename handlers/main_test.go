package handlers

import (
	"context"
	"os"
	"testing"

	"app/catalog"

	"github.com/gofiber/fiber/v2"
)

func TestMain(m *testing.M) {
	// Handlers read the catalog; tests run without a database.
	if err := catalog.Load(context.Background(), nil, "../data/products.json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/analyze", HandleAnalyze)
	app.Get("/api/v1/products", HandleGetProducts)
	app.Get("/api/v1/dashboard/stats", HandleDashboardStats)
	app.Post("/api/v1/chat", HandleChat)
	return app
}

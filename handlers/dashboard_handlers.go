package handlers

import (
	"context"
	"fmt"
	"log"

	"app/catalog"
	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
)

// HandleDashboardStats returns the aggregate numbers shown on the dashboard
// landing page. Catalog figures are always available; analysis and chat
// counters come from the database and degrade to zero without one.
// GET /api/v1/dashboard/stats
func HandleDashboardStats(c *fiber.Ctx) error {
	products := catalog.All()

	distribution := make(map[string]int)
	var totalPrice float64
	for _, p := range products {
		distribution[p.Category]++
		totalPrice += p.CurrentPrice
	}

	avgPrice := 0.0
	if len(products) > 0 {
		avgPrice = totalPrice / float64(len(products))
	}

	stats := models.DashboardStats{
		TotalProducts:        len(products),
		TotalAnalyses:        countRows(c.Context(), "inventory_analysis"),
		TotalChats:           countRows(c.Context(), "chatbot_conversations"),
		Categories:           catalog.Categories(),
		AvgPrice:             fmt.Sprintf("₹%.2f", avgPrice),
		CategoryDistribution: distribution,
	}

	return c.JSON(fiber.Map{"status": "success", "data": stats})
}

func countRows(ctx context.Context, table string) int {
	db := database.GetDB()
	if db == nil {
		return 0
	}
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		log.Printf("Error counting rows in %s: %v", table, err)
		return 0
	}
	return count
}

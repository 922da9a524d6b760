package handlers

import (
	"database/sql"
	"fmt"
	"log"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetOffers suggests promotions for overstocked products based on
// their most recent analysis: a discount once stock exceeds predicted
// demand, and buy-one-get-one at 1.5x demand or more.
// GET /api/v1/offers
func HandleGetOffers(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Analysis history storage is not configured"})
	}

	rows, err := db.Query(c.Context(),
		`SELECT product_name, category, current_stock, COALESCE(predicted_demand, 0)
		 FROM inventory_analysis ORDER BY created_at DESC LIMIT 1000`)
	if err != nil {
		log.Printf("Error fetching analyses for offers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to compute offers"})
	}
	defer rows.Close()

	offers := make([]models.ProductOffers, 0)
	seen := make(map[string]bool)

	for rows.Next() {
		var productName string
		var category sql.NullString
		var currentStock, predictedDemand int
		if err := rows.Scan(&productName, &category, &currentStock, &predictedDemand); err != nil {
			log.Printf("Error scanning analysis for offers: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to compute offers"})
		}

		// Only the latest analysis per product counts.
		if seen[productName] {
			continue
		}
		seen[productName] = true

		productOffers := buildOffers(productName, currentStock, predictedDemand)
		if len(productOffers) == 0 {
			continue
		}
		offers = append(offers, models.ProductOffers{
			ProductName:     productName,
			Category:        utils.NullStringToStringPtr(category),
			CurrentStock:    currentStock,
			PredictedDemand: predictedDemand,
			Offers:          productOffers,
		})
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating analyses for offers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to compute offers"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": offers})
}

func buildOffers(productName string, currentStock, predictedDemand int) []models.Offer {
	if predictedDemand <= 0 {
		return nil
	}

	var offers []models.Offer
	if currentStock > predictedDemand {
		offers = append(offers, models.Offer{
			Type:            "DISCOUNT",
			DiscountPercent: 20,
			Message:         fmt.Sprintf("Apply 20%% discount on %s to boost sales.", productName),
		})
	}
	if currentStock >= predictedDemand+predictedDemand/2 {
		offers = append(offers, models.Offer{
			Type:    "BOGO",
			Message: fmt.Sprintf("Offer Buy-One-Get-One for %s to clear excess stock.", productName),
		})
	}
	return offers
}

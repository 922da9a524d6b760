package handlers

import (
	"errors"
	"fmt"
	"log"

	"app/catalog"
	"app/models"
	"app/predictor"

	"github.com/gofiber/fiber/v2"
)

// HandleAnalyze runs the demand prediction and restock recommendation for a
// single product.
// POST /api/v1/analyze
func HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.Product == "" || req.Season == "" || req.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing required fields (product, season, stock)"})
	}

	product, ok := catalog.Get(req.Product)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	season, err := predictor.ParseSeason(req.Season)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Invalid season %q", req.Season)})
	}

	stock := *req.Stock
	if stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid stock value"})
	}

	demand, err := predictor.PredictDemand(product, season)
	if err != nil {
		return analyzeError(c, err)
	}

	rec, err := predictor.Recommend(demand, stock, product)
	if err != nil {
		return analyzeError(c, err)
	}

	result := models.AnalysisResult{
		Product:            product.Name,
		Category:           product.Category,
		CurrentStock:       stock,
		Season:             string(season),
		PredictedDemand:    demand,
		SeasonalMultiplier: predictor.SeasonalMultiplier(product.Category, season),
		Recommendation:     rec,
		Price:              product.CurrentPrice,
		Unit:               product.Unit,
	}

	saveAnalysis(c.Context(), result)
	logActivity(c.Context(), "inventory_analysis",
		fmt.Sprintf("Analyzed %s for %s season", product.Name, season),
		fmt.Sprintf(`{"stock": %d, "decision": %q}`, stock, rec.Decision))

	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// analyzeError maps core errors onto client responses. Every error the
// engine raises is a validation failure, never a server fault.
func analyzeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, predictor.ErrInvalidSeason),
		errors.Is(err, predictor.ErrInvalidProduct),
		errors.Is(err, predictor.ErrInvalidStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	default:
		log.Printf("Unexpected analysis error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Analysis failed"})
	}
}

package handlers

import (
	"context"
	"database/sql"
	"log"
	"net/url"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const analysisColumns = `id, product_name, category, season, current_stock,
	COALESCE(predicted_demand, 0), recommendation, decision, price, unit,
	optimal_level, created_at`

func scanAnalysisRow(rows pgx.Rows) (models.AnalysisRecord, error) {
	var rec models.AnalysisRecord
	var category, recommendation, decision, unit sql.NullString
	var price sql.NullFloat64
	var optimalLevel sql.NullInt64

	err := rows.Scan(&rec.ID, &rec.ProductName, &category, &rec.Season, &rec.CurrentStock,
		&rec.PredictedDemand, &recommendation, &decision, &price, &unit, &optimalLevel, &rec.CreatedAt)
	if err != nil {
		return rec, err
	}

	rec.Category = utils.NullStringToStringPtr(category)
	rec.Recommendation = utils.NullStringToStringPtr(recommendation)
	rec.Decision = utils.NullStringToStringPtr(decision)
	rec.Unit = utils.NullStringToStringPtr(unit)
	if price.Valid {
		rec.Price = &price.Float64
	}
	if optimalLevel.Valid {
		level := int(optimalLevel.Int64)
		rec.OptimalLevel = &level
	}
	return rec, nil
}

func queryAnalyses(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	db := database.GetDB()
	rows, err := db.Query(ctx,
		`SELECT `+analysisColumns+` FROM inventory_analysis ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.AnalysisRecord, 0)
	for rows.Next() {
		rec, err := scanAnalysisRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func queryDistribution(ctx context.Context, query string) (map[string]int, error) {
	db := database.GetDB()
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dist := make(map[string]int)
	for rows.Next() {
		var key sql.NullString
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		if key.Valid {
			dist[key.String] = count
		}
	}
	return dist, rows.Err()
}

// HandleAnalyticsData returns the full analytics breakdown of persisted
// analyses and chats.
// GET /api/v1/analytics
func HandleAnalyticsData(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Analytics storage is not configured"})
	}

	ctx := c.Context()
	var data models.AnalyticsData
	var err error

	data.TotalAnalyses = countRows(ctx, "inventory_analysis")
	data.TotalChats = countRows(ctx, "chatbot_conversations")

	if data.Categories, err = queryDistribution(ctx,
		`SELECT category, COUNT(*) FROM inventory_analysis GROUP BY category`); err != nil {
		return analyticsError(c, "category distribution", err)
	}
	if data.Seasons, err = queryDistribution(ctx,
		`SELECT season, COUNT(*) FROM inventory_analysis GROUP BY season`); err != nil {
		return analyticsError(c, "season distribution", err)
	}
	if data.Decisions, err = queryDistribution(ctx,
		`SELECT decision, COUNT(*) FROM inventory_analysis WHERE decision IS NOT NULL GROUP BY decision`); err != nil {
		return analyticsError(c, "decision distribution", err)
	}
	if data.ChatSources, err = queryDistribution(ctx,
		`SELECT source, COUNT(*) FROM chatbot_conversations GROUP BY source`); err != nil {
		return analyticsError(c, "chat sources", err)
	}

	rows, err := db.Query(ctx,
		`SELECT product_name, COUNT(*) AS count FROM inventory_analysis
		 GROUP BY product_name ORDER BY count DESC LIMIT 10`)
	if err != nil {
		return analyticsError(c, "top products", err)
	}
	defer rows.Close()
	data.TopProducts = make([]models.ProductCount, 0)
	for rows.Next() {
		var pc models.ProductCount
		if err := rows.Scan(&pc.ProductName, &pc.Count); err != nil {
			return analyticsError(c, "top products", err)
		}
		data.TopProducts = append(data.TopProducts, pc)
	}

	if data.RecentAnalyses, err = queryAnalyses(ctx, 20); err != nil {
		return analyticsError(c, "recent analyses", err)
	}

	return c.JSON(fiber.Map{"status": "success", "data": data})
}

func analyticsError(c *fiber.Ctx, what string, err error) error {
	log.Printf("Error fetching %s: %v", what, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch analytics"})
}

// HandleRecentAnalyses returns the most recent persisted analyses.
// GET /api/v1/analyses/recent?limit=N
func HandleRecentAnalyses(c *fiber.Ctx) error {
	if database.GetDB() == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Analysis history storage is not configured"})
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 500 {
		limit = 20
	}

	records, err := queryAnalyses(c.Context(), limit)
	if err != nil {
		log.Printf("Error fetching recent analyses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch recent analyses"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": records})
}

// HandleProductHistory returns every persisted analysis for one product.
// GET /api/v1/products/:name/history
func HandleProductHistory(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Analysis history storage is not configured"})
	}

	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	rows, err := db.Query(c.Context(),
		`SELECT `+analysisColumns+` FROM inventory_analysis WHERE product_name = $1 ORDER BY created_at DESC`, name)
	if err != nil {
		log.Printf("Error fetching product history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch product history"})
	}
	defer rows.Close()

	history := make([]models.AnalysisRecord, 0)
	for rows.Next() {
		rec, err := scanAnalysisRow(rows)
		if err != nil {
			log.Printf("Error scanning product history: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to read product history"})
		}
		history = append(history, rec)
	}

	return c.JSON(fiber.Map{"status": "success", "data": history})
}

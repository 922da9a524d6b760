package handlers

import (
	"context"
	"log"

	"app/database"
	"app/models"
)

// Persistence in this package is best-effort: a storage failure is logged
// and never fails the request that produced the data.

func saveAnalysis(ctx context.Context, res models.AnalysisResult) {
	db := database.GetDB()
	if db == nil {
		return
	}
	_, err := db.Exec(ctx,
		`INSERT INTO inventory_analysis
			(product_name, category, season, current_stock, predicted_demand,
			 recommendation, decision, price, unit, optimal_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.Product, res.Category, res.Season, res.CurrentStock, res.PredictedDemand,
		res.Recommendation.Advice, string(res.Recommendation.Decision), res.Price, res.Unit,
		res.Recommendation.OptimalLevel)
	if err != nil {
		log.Printf("Failed to save analysis: %v", err)
	}
}

func saveChat(ctx context.Context, userMessage, botResponse, source string) {
	db := database.GetDB()
	if db == nil {
		return
	}
	_, err := db.Exec(ctx,
		`INSERT INTO chatbot_conversations (user_message, bot_response, source) VALUES ($1, $2, $3)`,
		userMessage, botResponse, source)
	if err != nil {
		log.Printf("Failed to save chat: %v", err)
	}
}

func logActivity(ctx context.Context, activityType, description, details string) {
	db := database.GetDB()
	if db == nil {
		return
	}
	_, err := db.Exec(ctx,
		`INSERT INTO user_activity (activity_type, description, details) VALUES ($1, $2, $3)`,
		activityType, description, details)
	if err != nil {
		log.Printf("Failed to log activity: %v", err)
	}
}

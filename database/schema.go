package database

import (
	"context"
	"log"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT,
		current_price DOUBLE PRECISION,
		unit TEXT,
		historical_price_avg DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_analysis (
		id BIGSERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		category TEXT,
		season TEXT NOT NULL,
		current_stock INTEGER NOT NULL,
		predicted_demand INTEGER,
		recommendation TEXT,
		decision TEXT,
		price DOUBLE PRECISION,
		unit TEXT,
		optimal_level INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS chatbot_conversations (
		id BIGSERIAL PRIMARY KEY,
		user_message TEXT NOT NULL,
		bot_response TEXT NOT NULL,
		source TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_activity (
		id BIGSERIAL PRIMARY KEY,
		activity_type TEXT NOT NULL,
		description TEXT,
		details TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT,
		password_hash TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables the service writes to. Safe to run on
// every startup.
func EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Println("Database schema ensured")
	return nil
}

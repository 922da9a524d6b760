// Package catalog holds the read-only product catalog. It is loaded once at
// startup and never mutated afterwards, so concurrent reads need no
// synchronization.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"app/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

var store struct {
	byName   map[string]models.Product
	products []models.Product
}

// Load populates the catalog. Products stored in the database take
// precedence; the JSON file at path is the fallback and the seed source for
// an empty products table. db may be nil when the service runs without
// persistence.
func Load(ctx context.Context, db *pgxpool.Pool, path string) error {
	var products []models.Product

	if db != nil {
		fromDB, err := loadFromDB(ctx, db)
		if err != nil {
			log.Printf("Error loading products from database: %v", err)
		}
		products = fromDB
	}

	seeded := false
	if len(products) == 0 {
		fromFile, err := loadFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to load product catalog: %w", err)
		}
		products = fromFile
		seeded = db != nil
	}

	if len(products) == 0 {
		return fmt.Errorf("product catalog is empty")
	}

	byName := make(map[string]models.Product, len(products))
	for _, p := range products {
		if _, exists := byName[p.Name]; exists {
			return fmt.Errorf("duplicate product name in catalog: %q", p.Name)
		}
		byName[p.Name] = p
	}

	store.byName = byName
	store.products = products
	log.Printf("Loaded %d products into the catalog", len(products))

	if seeded {
		seedDB(ctx, db, products)
	}
	return nil
}

// Get resolves a product by its unique name.
func Get(name string) (models.Product, bool) {
	p, ok := store.byName[name]
	return p, ok
}

// All returns every product in catalog order.
func All() []models.Product {
	out := make([]models.Product, len(store.products))
	copy(out, store.products)
	return out
}

// Categories returns the distinct categories present in the catalog, sorted.
func Categories() []string {
	seen := map[string]bool{}
	for _, p := range store.products {
		seen[p.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func loadFromDB(ctx context.Context, db *pgxpool.Pool) ([]models.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, category, current_price, historical_price_avg, unit FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.CurrentPrice, &p.HistoricalPriceAvg, &p.Unit); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func loadFromFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// seedDB persists the JSON catalog so later runs read it from the database.
// Failures are logged only; the in-memory catalog is already usable.
func seedDB(ctx context.Context, db *pgxpool.Pool, products []models.Product) {
	for _, p := range products {
		_, err := db.Exec(ctx,
			`INSERT INTO products (name, category, current_price, unit, historical_price_avg)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (name) DO UPDATE SET
				category = EXCLUDED.category,
				current_price = EXCLUDED.current_price,
				unit = EXCLUDED.unit,
				historical_price_avg = EXCLUDED.historical_price_avg,
				updated_at = now()`,
			p.Name, p.Category, p.CurrentPrice, p.Unit, p.HistoricalPriceAvg)
		if err != nil {
			log.Printf("Failed to seed product %q: %v", p.Name, err)
			return
		}
	}
	log.Printf("Seeded %d products into the database", len(products))
}

package predictor

import (
	"errors"
	"math"

	"app/models"
)

// Product categories known to the demand model. Products with any other
// category fall back to CategoryMiscellaneous.
const (
	CategoryGroceries     = "Groceries"
	CategoryDairy         = "Dairy"
	CategoryBeverages     = "Beverages"
	CategoryFruits        = "Fruits"
	CategoryVegetables    = "Vegetables"
	CategoryPersonalCare  = "Personal Care"
	CategorySnacks        = "Snacks"
	CategoryFrozen        = "Frozen"
	CategoryCondiments    = "Condiments"
	CategoryBakery        = "Bakery"
	CategoryMiscellaneous = "Miscellaneous"
)

var allCategories = []string{
	CategoryGroceries,
	CategoryDairy,
	CategoryBeverages,
	CategoryFruits,
	CategoryVegetables,
	CategoryPersonalCare,
	CategorySnacks,
	CategoryFrozen,
	CategoryCondiments,
	CategoryBakery,
	CategoryMiscellaneous,
}

// ErrInvalidProduct is returned when a product is missing positive price
// fields.
var ErrInvalidProduct = errors.New("invalid product")

// Baseline units a category is expected to move in a regular season window.
var categoryBaseDemand = map[string]int{
	CategoryGroceries:     150,
	CategoryDairy:         200,
	CategoryBeverages:     180,
	CategoryFruits:        120,
	CategoryVegetables:    140,
	CategoryPersonalCare:  90,
	CategorySnacks:        160,
	CategoryFrozen:        80,
	CategoryCondiments:    70,
	CategoryBakery:        110,
	CategoryMiscellaneous: 100,
}

// seasonalMultipliers maps (season, category) to a demand factor. Every
// season has an entry for every category. Summer lifts beverages and fresh
// produce, winter lifts dairy and bakery, monsoon lifts groceries and
// personal care, and festival seasons apply one uniform boost across the
// whole catalog. Regular is 1.0 everywhere.
var seasonalMultipliers = map[Season]map[string]float64{
	SeasonSummer: {
		CategoryGroceries:     1.0,
		CategoryDairy:         0.9,
		CategoryBeverages:     1.5,
		CategoryFruits:        1.4,
		CategoryVegetables:    1.3,
		CategoryPersonalCare:  1.2,
		CategorySnacks:        1.1,
		CategoryFrozen:        1.3,
		CategoryCondiments:    1.0,
		CategoryBakery:        0.8,
		CategoryMiscellaneous: 1.0,
	},
	SeasonWinter: {
		CategoryGroceries:     1.1,
		CategoryDairy:         1.3,
		CategoryBeverages:     0.8,
		CategoryFruits:        0.9,
		CategoryVegetables:    1.2,
		CategoryPersonalCare:  1.0,
		CategorySnacks:        1.1,
		CategoryFrozen:        0.7,
		CategoryCondiments:    1.1,
		CategoryBakery:        1.3,
		CategoryMiscellaneous: 1.0,
	},
	SeasonMonsoon: {
		CategoryGroceries:     1.3,
		CategoryDairy:         1.0,
		CategoryBeverages:     1.2,
		CategoryFruits:        1.1,
		CategoryVegetables:    1.0,
		CategoryPersonalCare:  1.4,
		CategorySnacks:        1.2,
		CategoryFrozen:        0.9,
		CategoryCondiments:    1.2,
		CategoryBakery:        1.0,
		CategoryMiscellaneous: 1.0,
	},
	SeasonRegular:  uniformMultipliers(1.0),
	SeasonDiwali:   uniformMultipliers(1.8),
	SeasonNewYear:  uniformMultipliers(1.7),
	SeasonHoli:     uniformMultipliers(1.6),
	SeasonFestival: uniformMultipliers(1.5),
}

func uniformMultipliers(factor float64) map[string]float64 {
	m := make(map[string]float64, len(allCategories))
	for _, c := range allCategories {
		m[c] = factor
	}
	return m
}

// Categories returns every category the demand model has factors for.
func Categories() []string {
	out := make([]string, len(allCategories))
	copy(out, allCategories)
	return out
}

// BaseDemand returns the baseline unit demand for a category.
func BaseDemand(category string) int {
	if d, ok := categoryBaseDemand[category]; ok {
		return d
	}
	return categoryBaseDemand[CategoryMiscellaneous]
}

// SeasonalMultiplier returns the demand factor for a (category, season)
// pair. Unknown categories use the Miscellaneous factor; unknown seasons are
// neutral.
func SeasonalMultiplier(category string, season Season) float64 {
	factors, ok := seasonalMultipliers[season]
	if !ok {
		return 1.0
	}
	if f, ok := factors[category]; ok {
		return f
	}
	return factors[CategoryMiscellaneous]
}

// priceElasticity approximates demand sensitivity to price: demand shrinks
// when the current price sits above the historical average and grows when it
// sits below. Clamped to [0.5, 1.5].
func priceElasticity(p models.Product) float64 {
	factor := p.HistoricalPriceAvg / p.CurrentPrice
	if factor < 0.5 {
		return 0.5
	}
	if factor > 1.5 {
		return 1.5
	}
	return factor
}

// PredictDemand estimates the unit demand for a product over a season
// window. The result is deterministic and never negative.
func PredictDemand(p models.Product, season Season) (int, error) {
	if !season.Valid() {
		return 0, ErrInvalidSeason
	}
	if p.CurrentPrice <= 0 || p.HistoricalPriceAvg <= 0 {
		return 0, ErrInvalidProduct
	}

	base := float64(BaseDemand(p.Category)) * priceElasticity(p)
	demand := int(math.Round(base * SeasonalMultiplier(p.Category, season)))
	if demand < 0 {
		demand = 0
	}
	return demand, nil
}

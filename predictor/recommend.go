package predictor

import (
	"errors"
	"fmt"
	"math"

	"app/models"
)

// ErrInvalidStock is returned when the current stock is negative.
var ErrInvalidStock = errors.New("invalid stock")

const (
	// safetyStockFraction is the buffer held against demand variance.
	safetyStockFraction = 0.20
	// reorderCheckpointFraction places the reorder point at the mid-season
	// demand checkpoint, on top of the safety buffer.
	reorderCheckpointFraction = 0.50
)

// Recommend turns a predicted demand and the current stock into a stocking
// decision with derived levels. Levels are computed in order: safety stock,
// reorder point, optimal level. Stock exactly at the reorder point or the
// optimal level is left alone; reduction only triggers once stock exceeds
// the optimal level by more than half of it again.
func Recommend(predictedDemand, currentStock int, p models.Product) (models.Recommendation, error) {
	if currentStock < 0 {
		return models.Recommendation{}, ErrInvalidStock
	}
	if predictedDemand < 0 {
		predictedDemand = 0
	}

	safetyStock := int(math.Round(float64(predictedDemand) * safetyStockFraction))
	reorderPoint := int(math.Round(float64(predictedDemand)*reorderCheckpointFraction)) + safetyStock
	optimalLevel := predictedDemand + safetyStock

	rec := models.Recommendation{
		Decision:      models.DecisionMaintainStock,
		OptimalLevel:  optimalLevel,
		ReorderPoint:  reorderPoint,
		SafetyStock:   safetyStock,
		RequiredStock: optimalLevel,
	}
	if gap := optimalLevel - currentStock; gap > 0 {
		rec.StockGap = gap
	}

	switch {
	case currentStock < reorderPoint:
		rec.Decision = models.DecisionAddStock
		rec.QuantityAction = optimalLevel - currentStock
		if rec.QuantityAction < 0 {
			rec.QuantityAction = 0
		}
		rec.Advice = fmt.Sprintf("Add %d units", rec.QuantityAction)
	case optimalLevel > 0 && currentStock > optimalLevel+optimalLevel/2:
		rec.Decision = models.DecisionReduceStock
		rec.QuantityAction = currentStock - optimalLevel
		rec.Advice = fmt.Sprintf("Reduce by %d units", rec.QuantityAction)
	default:
		rec.Advice = fmt.Sprintf("Maintain %d units", currentStock)
	}

	return rec, nil
}

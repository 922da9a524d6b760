package models

import "time"

// --- Core Models ---

// Product is a single entry in the read-only catalog. Name is unique and is
// the lookup key used by the API.
type Product struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	CurrentPrice       float64 `json:"current_price"`
	HistoricalPriceAvg float64 `json:"historical_price_avg"`
	Unit               string  `json:"unit"`
}

// Decision is the three-way stocking decision produced by the recommendation
// engine.
type Decision string

const (
	DecisionAddStock      Decision = "ADD STOCK"
	DecisionReduceStock   Decision = "REDUCE STOCK"
	DecisionMaintainStock Decision = "MAINTAIN STOCK"
)

// Recommendation is the structured output of the recommendation engine.
// Advice is presentation text derived from Decision and QuantityAction.
type Recommendation struct {
	Decision       Decision `json:"decision"`
	Advice         string   `json:"advice"`
	QuantityAction int      `json:"quantity_action"`
	OptimalLevel   int      `json:"optimal_level"`
	ReorderPoint   int      `json:"reorder_point"`
	SafetyStock    int      `json:"safety_stock"`
	RequiredStock  int      `json:"required_stock"`
	StockGap       int      `json:"stock_gap"`
}

// AnalysisResult is the full response of the analyze endpoint: the
// recommendation plus the echoed request context.
type AnalysisResult struct {
	Product            string         `json:"product"`
	Category           string         `json:"category"`
	CurrentStock       int            `json:"current_stock"`
	Season             string         `json:"season"`
	PredictedDemand    int            `json:"predicted_demand"`
	SeasonalMultiplier float64        `json:"seasonal_multiplier"`
	Recommendation     Recommendation `json:"recommendation"`
	Price              float64        `json:"price"`
	Unit               string         `json:"unit"`
}

// AnalysisRecord is a persisted analysis row.
type AnalysisRecord struct {
	ID              int64     `json:"id"`
	ProductName     string    `json:"product_name"`
	Category        *string   `json:"category,omitempty"`
	Season          string    `json:"season"`
	CurrentStock    int       `json:"current_stock"`
	PredictedDemand int       `json:"predicted_demand"`
	Recommendation  *string   `json:"recommendation,omitempty"`
	Decision        *string   `json:"decision,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	Unit            *string   `json:"unit,omitempty"`
	OptimalLevel    *int      `json:"optimal_level,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// --- Dashboard & Analytics ---

// DashboardStats is the payload of the dashboard statistics endpoint.
type DashboardStats struct {
	TotalProducts        int            `json:"total_products"`
	TotalAnalyses        int            `json:"total_analyses"`
	TotalChats           int            `json:"total_chats"`
	Categories           []string       `json:"categories"`
	AvgPrice             string         `json:"avg_price"`
	CategoryDistribution map[string]int `json:"category_distribution"`
}

// ProductCount pairs a product name with how often it was analyzed.
type ProductCount struct {
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
}

// AnalyticsData aggregates the persisted analysis and chat history.
type AnalyticsData struct {
	TotalAnalyses  int              `json:"total_analyses"`
	Categories     map[string]int   `json:"categories"`
	Seasons        map[string]int   `json:"seasons"`
	Decisions      map[string]int   `json:"decisions"`
	TopProducts    []ProductCount   `json:"top_products"`
	RecentAnalyses []AnalysisRecord `json:"recent_analyses"`
	TotalChats     int              `json:"total_chats"`
	ChatSources    map[string]int   `json:"chat_sources"`
}

// --- Offers ---

// Offer is a single promotion suggestion for an overstocked product.
type Offer struct {
	Type            string `json:"type"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	Message         string `json:"message"`
}

// ProductOffers groups the offer suggestions for one product.
type ProductOffers struct {
	ProductName     string  `json:"product_name"`
	Category        *string `json:"category,omitempty"`
	CurrentStock    int     `json:"current_stock"`
	PredictedDemand int     `json:"predicted_demand"`
	Offers          []Offer `json:"offers"`
}

// --- API Request Structs ---

// AnalyzeRequest defines the body for the analyze endpoint. Stock is a
// pointer so a missing field can be told apart from zero.
type AnalyzeRequest struct {
	Product string `json:"product"`
	Season  string `json:"season"`
	Stock   *int   `json:"stock"`
}

// ChatRequest defines the body for the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// LoginRequest defines the body for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest defines the body for the profile update endpoint.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

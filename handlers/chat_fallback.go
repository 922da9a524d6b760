package handlers

import "strings"

// Canned responses used when the Gemini API is unavailable or unconfigured.
// Phrase matches are checked before single keywords so the more specific
// answer wins.
var fallbackPhrases = []struct {
	match    string
	response string
}{
	{"seasonal trends dairy", "Dairy products have stable demand year-round with slight increases during winter months. Yogurt and flavored milk see higher demand in summer. Plan inventory considering festivals like Diwali and Holi."},
	{"seasonal trends vegetable", "Vegetables follow strong seasonal patterns. Summer vegetables: tomatoes, cucumber, bell peppers peak. Winter: root vegetables, leafy greens dominate. Monsoon brings better shelf life for stored vegetables."},
	{"seasonal trends fruit", "Fruits are highly seasonal. Mangoes: summer peak. Apples/grapes: winter. Monsoon: stone fruits, citrus. Plan sourcing 2-3 weeks ahead. Consider storage capacity."},
	{"festival demand", "Festival seasons (Diwali, Holi, NewYear) see 1.5-2x demand increases. Stock special items 3 weeks before. Snacks and dry goods see highest demand. Plan bulk purchases."},
	{"summer inventory", "Summer strategy: Stock beverages at 1.5x normal levels. Increase fruits/vegetables daily. Reduce dairy shelf life considerations. Push ice-cream and cold beverages. Monitor expiry dates closely."},
	{"winter inventory", "Winter strategy: Increase dairy products. Stock warm beverages (tea, coffee). Promote bakery items. Increase storage for longer shelf-life items. Plan for holiday shopping rush."},
	{"inventory management", "Best practices: Monitor reorder points closely. Maintain 20% safety stock. Track fast-moving items weekly. Implement FIFO. Use inventory management system. Regular stock audits."},
	{"pricing strategy", "Peak season: maintain or increase prices slightly. Off-season: run promotions. Monitor competitor pricing. Bundle slow items. Use dynamic pricing for perishables. Plan seasonal discounts."},
	{"demand forecast", "Use historical data from same season last year. Adjust for growth (5-10% annual). Consider local events and festivals. Track weather patterns. Update forecasts weekly."},
	{"reorder point", "Calculate: (Average Daily Sales × Lead Time) + Safety Stock. Review monthly. Adjust for seasonality. Set alerts in system. Monitor supplier reliability."},
	{"hello", "Hello! I'm your D-Mart AI Assistant. I can help with inventory management, seasonal planning, pricing strategies, and product insights. What would you like to know?"},
	{"hi", "Hi there! Ask me about inventory optimization, seasonal trends, pricing, or product categories. How can I help today?"},
	{"help", "I can assist with: inventory management, seasonal demand forecasting, pricing strategies, category insights, stock optimization, and retail best practices. What's your question?"},
}

var fallbackKeywords = []struct {
	match    string
	response string
}{
	{"dairy", "Dairy products are staple items with consistent demand. Winter sees 1.3x demand. Consider storage capacity and shelf life."},
	{"vegetable", "Vegetables are seasonal. Fresh sourcing critical. Monsoon: 1.0x. Summer: 1.3x. Winter: 1.2x demand."},
	{"beverage", "Beverages peak in summer (1.5x demand). Winter demand drops. Keep cold drinks well-stocked in summer."},
	{"season", "Seasons significantly impact inventory. Summer: beverages, fruits up. Winter: dairy, bakery up. Monsoon: groceries up."},
	{"price", "Pricing depends on seasonality and demand. Peak season: maintain/increase. Off-season: promote. Monitor costs."},
	{"stock", "Monitor stock levels closely. Set reorder points based on demand. Keep safety stock at 20%."},
	{"forecast", "Demand forecasting uses historical data, seasonality, and growth projections. Update weekly."},
}

const fallbackDefault = "I'd be happy to help! Ask me about inventory management, seasonal trends, pricing strategies, demand forecasting, or product categories. For real-time AI responses, please configure a Gemini API key in the .env file."

// fallbackResponse picks a canned answer for a query by keyword matching.
func fallbackResponse(query string) string {
	q := strings.ToLower(query)

	for _, entry := range fallbackPhrases {
		if strings.Contains(q, entry.match) {
			return entry.response
		}
	}
	for _, entry := range fallbackKeywords {
		if strings.Contains(q, entry.match) {
			return entry.response
		}
	}
	return fallbackDefault
}
